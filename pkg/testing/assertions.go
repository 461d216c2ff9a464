// Copyright 2026 © The Parecho Authors
// SPDX-License-Identifier: Apache-2.0

package testing

import (
	"testing"

	"github.com/jllopis/parecho/pkg/provide"
)

// AssertProvides fails the test unless p answers a value request for T
// with want.
func AssertProvides[T comparable](t *testing.T, p provide.Provider, want T) {
	t.Helper()
	got, ok := provide.RequestValue[T](p)
	if !ok {
		t.Errorf("expected a value of type %T to be provided", want)
		return
	}
	if got != want {
		t.Errorf("provided value: expected %v, got %v", want, got)
	}
}

// AssertProvidesRef fails the test unless p answers a ref request for T.
// It returns the pointer for further inspection.
func AssertProvidesRef[T any](t *testing.T, p provide.Provider) *T {
	t.Helper()
	got, ok := provide.RequestRef[T](p)
	if !ok {
		var zero T
		t.Errorf("expected a ref of type %T to be provided", &zero)
		return nil
	}
	return got
}

// AssertAbsent fails the test if p answers a value request for T.
func AssertAbsent[T any](t *testing.T, p provide.Provider) {
	t.Helper()
	if v, ok := provide.RequestValue[T](p); ok {
		t.Errorf("expected absence, got value %v", v)
	}
	if v, ok := provide.RequestRef[T](p); ok {
		t.Errorf("expected absence, got ref %v", v)
	}
}
