package provider

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName is the name used for OTEL instrumentation.
const InstrumentationName = "github.com/fyrsmithlabs/minuted/internal/provider"

// Metrics provides OpenTelemetry metrics for provider calls.
type Metrics struct {
	extractTotal    metric.Int64Counter
	extractDuration metric.Float64Histogram

	initialized bool
}

// NewMetrics creates a Metrics instance with the provided meter. If
// meter is nil, uses the global meter provider.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		meter = otel.Meter(InstrumentationName)
	}

	m := &Metrics{}
	var err error

	m.extractTotal, err = meter.Int64Counter(
		"provider.extract.total",
		metric.WithDescription("Total number of provider extraction calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	m.extractDuration, err = meter.Float64Histogram(
		"provider.extract.duration.seconds",
		metric.WithDescription("Duration of provider extraction calls in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.1, 0.5, 1, 5, 10, 30, 60, 120),
	)
	if err != nil {
		return nil, err
	}

	m.initialized = true
	return m, nil
}

// RecordExtract records one provider call with its outcome.
func (m *Metrics) RecordExtract(ctx context.Context, provider, outcome string, duration time.Duration) {
	if m == nil || !m.initialized {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("outcome", outcome),
	)
	m.extractTotal.Add(ctx, 1, attrs)
	m.extractDuration.Record(ctx, duration.Seconds(), attrs)
}

// Tracer returns a tracer for the provider package.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}
