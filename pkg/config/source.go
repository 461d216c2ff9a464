// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/jllopis/parecho/pkg/provide"
)

// Source exposes a loaded Config through the provide protocol. Components
// request exactly the section they need, say
// provide.RequestRef[TelemetryConfig], without depending on the whole
// configuration tree or on how it was loaded.
type Source struct {
	cfg Config
}

// NewSource wraps a loaded config. The config is copied; later reloads
// need a new Source.
func NewSource(cfg *Config) *Source {
	return &Source{cfg: *cfg}
}

// Provide offers the whole config by value and each section by ref.
func (s *Source) Provide(d *provide.Demand) {
	provide.OfferValue(d, func() Config { return s.cfg })
	provide.OfferRef(d, &s.cfg.Log)
	provide.OfferRef(d, &s.cfg.Telemetry)
	provide.OfferRef(d, &s.cfg.Store)
}
