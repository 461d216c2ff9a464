// Copyright 2026 © The Parecho Authors
// SPDX-License-Identifier: Apache-2.0

// Package testing provides helpers for exercising provider implementations
// in tests: scripted providers with canned offers and a recording wrapper
// that captures capability call outcomes.
package testing

import (
	"sync"

	"github.com/jllopis/parecho/pkg/provide"
)

// ScriptedProvider answers demands from a fixed script of offers. Build it
// with OfferValue/OfferRef; offers are replayed in order on every
// capability call, so first-match-wins behaves exactly as in production
// providers.
type ScriptedProvider struct {
	offers []func(*provide.Demand)
}

// NewScriptedProvider creates an empty scripted provider.
func NewScriptedProvider() *ScriptedProvider {
	return &ScriptedProvider{}
}

// OfferValue scripts a lazily computed value offer. Returns the provider
// for chaining.
func OfferValue[T any](p *ScriptedProvider, compute func() T) *ScriptedProvider {
	p.offers = append(p.offers, func(d *provide.Demand) {
		provide.OfferValue(d, compute)
	})
	return p
}

// OfferRef scripts a ref offer. The pointer must stay valid as long as the
// provider is in use. Returns the provider for chaining.
func OfferRef[T any](p *ScriptedProvider, ref *T) *ScriptedProvider {
	p.offers = append(p.offers, func(d *provide.Demand) {
		provide.OfferRef(d, ref)
	})
	return p
}

// Provide replays the scripted offers.
func (p *ScriptedProvider) Provide(d *provide.Demand) {
	for _, offer := range p.offers {
		if d.Fulfilled() {
			return
		}
		offer(d)
	}
}

// RecordingProvider wraps another provider and captures every capability
// call's outcome. Safe for concurrent use.
type RecordingProvider struct {
	mu        sync.Mutex
	inner     provide.Provider
	calls     int
	fulfilled int
}

// NewRecordingProvider wraps inner.
func NewRecordingProvider(inner provide.Provider) *RecordingProvider {
	return &RecordingProvider{inner: inner}
}

// Provide delegates to the wrapped provider and records the outcome.
func (p *RecordingProvider) Provide(d *provide.Demand) {
	p.inner.Provide(d)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if d.Fulfilled() {
		p.fulfilled++
	}
}

// Calls returns how many capability calls were made.
func (p *RecordingProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// Fulfilled returns how many capability calls filled the slot.
func (p *RecordingProvider) Fulfilled() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fulfilled
}
