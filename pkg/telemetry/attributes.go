// Copyright 2026 © The Parecho Authors
// SPDX-License-Identifier: Apache-2.0

// Package telemetry provides OpenTelemetry integration for Parecho:
// exporter setup, trace-aware logging, and instrumentation of provide
// requests.
package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Semantic conventions for Parecho telemetry.
const (
	// Provider attributes
	AttrProviderName = "parecho.provider.name"

	// Request attributes
	AttrRequestFulfilled  = "parecho.request.fulfilled"
	AttrRequestDurationMs = "parecho.request.duration_ms"

	// Report attributes
	AttrReportID   = "parecho.report.id"
	AttrReportCode = "parecho.report.code"
)

// RequestAttributes returns attributes for one capability call.
func RequestAttributes(provider string, fulfilled bool, durationMs float64) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.Bool(AttrRequestFulfilled, fulfilled),
	}
	if provider != "" {
		attrs = append(attrs, attribute.String(AttrProviderName, provider))
	}
	if durationMs > 0 {
		attrs = append(attrs, attribute.Float64(AttrRequestDurationMs, durationMs))
	}
	return attrs
}

// ReportAttributes returns attributes for report assembly and persistence.
func ReportAttributes(id, code string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(AttrReportID, id),
	}
	if code != "" {
		attrs = append(attrs, attribute.String(AttrReportCode, code))
	}
	return attrs
}
