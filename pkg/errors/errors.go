// SPDX-License-Identifier: Apache-2.0
// Package errors provides diagnostic errors that expose typed context
// through the provide protocol. Callers read that context with the
// accessors in this package; the raw protocol types never reach them.
package errors

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jllopis/parecho/pkg/provide"
)

// Code classifies errors for monitoring and recovery.
type Code string

const (
	// CodeInternal indicates an internal system error.
	CodeInternal Code = "INTERNAL_ERROR"

	// CodeInvalidInput indicates the input was invalid.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeNotFound indicates a resource was not found.
	CodeNotFound Code = "NOT_FOUND"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout Code = "TIMEOUT"

	// CodeUnavailable indicates a dependency was unreachable.
	CodeUnavailable Code = "UNAVAILABLE"
)

// Suggestion is a human-readable hint on how to resolve an error. It is a
// defined type so its offers cannot collide with other string data.
type Suggestion string

// Attributes carries string key-value context for traces and logs.
type Attributes map[string]string

// Summary is a one-line rendering of an error, formatted on demand.
type Summary string

var _ provide.Provider = (*Error)(nil)

// Error is a typed error with rich diagnostic context. It implements the
// error interface, unwraps with errors.As/Is, and answers provide requests
// for its context: Backtrace, Suggestion and Attributes by ref, Code and
// Summary by value, plus any payloads attached with Detail.
type Error struct {
	Code       Code
	Message    string
	Err        error
	ID         string
	suggestion Suggestion
	attrs      Attributes
	trace      Backtrace
	details    []func(*provide.Demand)
}

// New creates an Error with the given code, message, and cause. The call
// stack is captured at this point.
func New(code Code, msg string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: msg,
		Err:     cause,
		ID:      uuid.NewString(),
		trace:   capture(1),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements errors.Unwrap for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithSuggestion attaches a resolution hint. Returns the error for chaining.
func (e *Error) WithSuggestion(s Suggestion) *Error {
	e.suggestion = s
	return e
}

// WithAttribute adds a string attribute. Returns the error for chaining.
func (e *Error) WithAttribute(key, value string) *Error {
	if e.attrs == nil {
		e.attrs = make(Attributes)
	}
	e.attrs[key] = value
	return e
}

// Detail attaches an arbitrary typed payload to e, retrievable with
// ValueFrom. Wrap same-shaped payloads in distinct defined types or they
// will collide. A package function because Go methods cannot take type
// parameters.
func Detail[T any](e *Error, v T) *Error {
	e.details = append(e.details, func(d *provide.Demand) {
		provide.OfferValue(d, func() T { return v })
	})
	return e
}

// Provide answers demands for this error's diagnostic context.
func (e *Error) Provide(d *provide.Demand) {
	provide.OfferRef(d, &e.trace)
	if e.suggestion != "" {
		provide.OfferRef(d, &e.suggestion)
	}
	if len(e.attrs) > 0 {
		provide.OfferRef(d, &e.attrs)
	}
	provide.OfferValue(d, func() Code { return e.Code })
	provide.OfferValue(d, func() Summary { return Summary(e.Error()) })
	for _, offer := range e.details {
		if d.Fulfilled() {
			return
		}
		offer(d)
	}
}

// MarshalJSON implements json.Marshaler for structured logging.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		ID         string     `json:"id"`
		Code       string     `json:"code"`
		Message    string     `json:"message"`
		Err        string     `json:"error,omitempty"`
		Suggestion string     `json:"suggestion,omitempty"`
		Attributes Attributes `json:"attributes,omitempty"`
	}{
		ID:         e.ID,
		Code:       string(e.Code),
		Message:    e.Message,
		Err:        errString(e.Err),
		Suggestion: string(e.suggestion),
		Attributes: e.attrs,
	})
}

// AsError converts err to an *Error, wrapping unknown errors as internal.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*Error); ok {
		return pe
	}
	return New(CodeInternal, "wrapped error", err)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
