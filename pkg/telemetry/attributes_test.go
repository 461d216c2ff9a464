// Copyright 2026 © The Parecho Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestRequestAttributes(t *testing.T) {
	attrs := RequestAttributes("config-source", true, 1.5)

	assertAttributes(t, attrs, map[string]any{
		AttrProviderName:      "config-source",
		AttrRequestFulfilled:  true,
		AttrRequestDurationMs: 1.5,
	})
}

func TestRequestAttributesOmitsEmpty(t *testing.T) {
	attrs := RequestAttributes("", false, 0)
	if len(attrs) != 1 {
		t.Fatalf("expected only the fulfilled attribute, got %v", attrs)
	}
	if attrs[0].Key != attribute.Key(AttrRequestFulfilled) {
		t.Errorf("unexpected attribute %v", attrs[0])
	}
}

func TestReportAttributes(t *testing.T) {
	attrs := ReportAttributes("r-1", "TIMEOUT")
	assertAttributes(t, attrs, map[string]any{
		AttrReportID:   "r-1",
		AttrReportCode: "TIMEOUT",
	})
}

func assertAttributes(t *testing.T, attrs []attribute.KeyValue, expected map[string]any) {
	t.Helper()
	got := make(map[string]any, len(attrs))
	for _, kv := range attrs {
		got[string(kv.Key)] = kv.Value.AsInterface()
	}
	for key, want := range expected {
		if got[key] != want {
			t.Errorf("attribute %s: expected %v, got %v", key, want, got[key])
		}
	}
	if len(got) != len(expected) {
		t.Errorf("expected %d attributes, got %d (%v)", len(expected), len(got), got)
	}
}
