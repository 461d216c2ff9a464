// SPDX-License-Identifier: Apache-2.0
// Package report assembles human-readable diagnostics from error chains.
// Everything in a report is read through the pkg/errors accessors, so any
// error that participates in the provide protocol contributes context
// without this package knowing its concrete type.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jllopis/parecho/pkg/errors"
)

// Frame mirrors errors.Frame with marshalling tags.
type Frame struct {
	Function string `yaml:"function" json:"function"`
	File     string `yaml:"file" json:"file"`
	Line     int    `yaml:"line" json:"line"`
}

// Report is a snapshot of one error chain's diagnostic context. Reports
// own all their data; nothing in a Report points back into the error it
// was built from, so a Report may outlive the error freely.
type Report struct {
	ID         string            `yaml:"id" json:"id"`
	CreatedAt  time.Time         `yaml:"created_at" json:"created_at"`
	Code       string            `yaml:"code,omitempty" json:"code,omitempty"`
	Summary    string            `yaml:"summary" json:"summary"`
	Suggestion string            `yaml:"suggestion,omitempty" json:"suggestion,omitempty"`
	Attributes map[string]string `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Frames     []Frame           `yaml:"frames,omitempty" json:"frames,omitempty"`
}

// Build assembles a report from err. Absent context is simply omitted;
// a plain error yields a report holding only its message.
func Build(err error) *Report {
	r := &Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Summary:   err.Error(),
	}
	if code, ok := errors.CodeFrom(err); ok {
		r.Code = string(code)
	}
	if sum, ok := errors.SummaryFrom(err); ok {
		r.Summary = string(sum)
	}
	if s, ok := errors.SuggestionFrom(err); ok {
		r.Suggestion = string(s)
	}
	if attrs, ok := errors.AttributesFrom(err); ok {
		r.Attributes = make(map[string]string, len(attrs))
		for k, v := range attrs {
			r.Attributes[k] = v
		}
	}
	// Frames are copied out; the backtrace pointer never leaves Build.
	for _, f := range framesOf(err) {
		r.Frames = append(r.Frames, Frame(f))
	}
	return r
}

func framesOf(err error) []errors.Frame {
	bt, ok := errors.BacktraceFrom(err)
	if !ok {
		return nil
	}
	return bt.Frames()
}

// YAML renders the report for human consumption.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteText writes a terse plain-text rendering to w.
func (r *Report) WriteText(w io.Writer) error {
	if r.Code != "" {
		if _, err := fmt.Fprintf(w, "code:       %s\n", r.Code); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "summary:    %s\n", r.Summary); err != nil {
		return err
	}
	if r.Suggestion != "" {
		if _, err := fmt.Fprintf(w, "suggestion: %s\n", r.Suggestion); err != nil {
			return err
		}
	}
	for k, v := range r.Attributes {
		if _, err := fmt.Fprintf(w, "  %s=%s\n", k, v); err != nil {
			return err
		}
	}
	for _, f := range r.Frames {
		if _, err := fmt.Fprintf(w, "  %s\n    %s:%d\n", f.Function, f.File, f.Line); err != nil {
			return err
		}
	}
	return nil
}
