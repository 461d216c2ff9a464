// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jllopis/parecho/pkg/provide"
)

// Observe wraps p so every capability call is counted under the given
// provider name. Only fulfilment and latency are recorded; the wrapper
// learns nothing about which type was requested, same as the provider.
func Observe(p provide.Provider, m *RequestMetrics, name string) provide.Provider {
	return provide.ProviderFunc(func(d *provide.Demand) {
		start := time.Now()
		p.Provide(d)
		m.Record(context.Background(), name, d.Fulfilled(),
			float64(time.Since(start).Microseconds())/1000.0)
	})
}

// Trace wraps p so every capability call runs inside a span named after
// the provider.
func Trace(ctx context.Context, p provide.Provider, name string) provide.Provider {
	tracer := otel.Tracer("parecho/provide")
	return provide.ProviderFunc(func(d *provide.Demand) {
		_, span := tracer.Start(ctx, "provide.request",
			trace.WithAttributes(attribute.String(AttrProviderName, name)))
		defer span.End()
		p.Provide(d)
		span.SetAttributes(attribute.Bool(AttrRequestFulfilled, d.Fulfilled()))
	})
}
