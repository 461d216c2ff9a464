// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"github.com/jllopis/parecho/pkg/provide"
)

// The accessors walk an error chain and issue a provide request against
// every link that participates in the protocol, outermost first. They are
// the only way callers read diagnostic context: Tag and Demand stay
// internal to this package and pkg/provide.

// ValueFrom returns the first owned T provided by err's chain.
func ValueFrom[T any](err error) (T, bool) {
	if err == nil {
		var zero T
		return zero, false
	}
	return valueFrom[T](err)
}

// RefFrom returns the first *T provided by err's chain. The pointer is
// valid only while the caller keeps the error chain alive.
func RefFrom[T any](err error) (*T, bool) {
	return refFrom[T](err)
}

// BacktraceFrom returns the outermost captured backtrace in err's chain.
func BacktraceFrom(err error) (*Backtrace, bool) {
	return RefFrom[Backtrace](err)
}

// SuggestionFrom returns the outermost resolution hint in err's chain.
func SuggestionFrom(err error) (Suggestion, bool) {
	if s, ok := RefFrom[Suggestion](err); ok {
		return *s, true
	}
	return "", false
}

// AttributesFrom returns the outermost attribute set in err's chain.
func AttributesFrom(err error) (Attributes, bool) {
	if a, ok := RefFrom[Attributes](err); ok {
		return *a, true
	}
	return nil, false
}

// CodeFrom returns the outermost classification code in err's chain.
func CodeFrom(err error) (Code, bool) {
	return ValueFrom[Code](err)
}

// SummaryFrom returns the outermost formatted summary in err's chain.
func SummaryFrom(err error) (Summary, bool) {
	return ValueFrom[Summary](err)
}

func valueFrom[T any](err error) (T, bool) {
	if p, ok := err.(provide.Provider); ok {
		if v, ok := provide.RequestValue[T](p); ok {
			return v, true
		}
	}
	switch x := err.(type) {
	case interface{ Unwrap() error }:
		if next := x.Unwrap(); next != nil {
			return valueFrom[T](next)
		}
	case interface{ Unwrap() []error }:
		for _, next := range x.Unwrap() {
			if v, ok := valueFrom[T](next); ok {
				return v, true
			}
		}
	}
	var zero T
	return zero, false
}

func refFrom[T any](err error) (*T, bool) {
	if err == nil {
		return nil, false
	}
	if p, ok := err.(provide.Provider); ok {
		if v, ok := provide.RequestRef[T](p); ok {
			return v, true
		}
	}
	switch x := err.(type) {
	case interface{ Unwrap() error }:
		return refFrom[T](x.Unwrap())
	case interface{ Unwrap() []error }:
		for _, next := range x.Unwrap() {
			if v, ok := refFrom[T](next); ok {
				return v, true
			}
		}
	}
	return nil, false
}
