// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RequestMetrics tracks fulfilment rates and latency of provide requests.
type RequestMetrics struct {
	// requestCounter tracks capability calls by provider and outcome
	requestCounter metric.Int64Counter

	// durationHist tracks capability call latency in milliseconds
	durationHist metric.Float64Histogram
}

// NewRequestMetrics creates a request metrics tracker with OTEL meters.
func NewRequestMetrics() (*RequestMetrics, error) {
	meter := otel.Meter("parecho/provide")

	requestCounter, err := meter.Int64Counter(
		"parecho.requests.total",
		metric.WithDescription("Capability calls by provider and fulfilment"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"parecho.requests.duration",
		metric.WithDescription("Capability call latency"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &RequestMetrics{
		requestCounter: requestCounter,
		durationHist:   durationHist,
	}, nil
}

// Record registers one capability call. Safe on a nil receiver.
func (m *RequestMetrics) Record(ctx context.Context, provider string, fulfilled bool, durationMs float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrProviderName, provider),
		attribute.Bool(AttrRequestFulfilled, fulfilled),
	)
	m.requestCounter.Add(ctx, 1, attrs)
	m.durationHist.Record(ctx, durationMs, attrs)
}
