package jobs

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName is the name used for OTEL instrumentation.
const InstrumentationName = "github.com/fyrsmithlabs/minuted/internal/jobs"

// Metrics provides OpenTelemetry metrics for the orchestrator.
type Metrics struct {
	jobsSubmittedTotal metric.Int64Counter
	jobsFinishedTotal  metric.Int64Counter
	jobsActiveCount    metric.Int64UpDownCounter
	jobDuration        metric.Float64Histogram

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

	m.jobsSubmittedTotal, err = meter.Int64Counter(
		"jobs.submitted.total",
		metric.WithDescription("Total number of extraction jobs submitted"),
		metric.WithUnit("{job}"),
	)
	if err != nil {
		return nil, err
	}

	m.jobsFinishedTotal, err = meter.Int64Counter(
		"jobs.finished.total",
		metric.WithDescription("Total number of extraction jobs reaching a terminal state"),
		metric.WithUnit("{job}"),
	)
	if err != nil {
		return nil, err
	}

	m.jobsActiveCount, err = meter.Int64UpDownCounter(
		"jobs.active.count",
		metric.WithDescription("Number of jobs currently pending or processing"),
		metric.WithUnit("{job}"),
	)
	if err != nil {
		return nil, err
	}

	m.jobDuration, err = meter.Float64Histogram(
		"jobs.duration.seconds",
		metric.WithDescription("Duration from submission to terminal state in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 5, 10, 30, 60, 120, 300),
	)
	if err != nil {
		return nil, err
	}

	m.initialized = true
	return m, nil
}

// RecordSubmitted records a job submission.
func (m *Metrics) RecordSubmitted(ctx context.Context) {
	if m == nil || !m.initialized {
		return
	}
	m.jobsSubmittedTotal.Add(ctx, 1)
	m.jobsActiveCount.Add(ctx, 1)
}

// RecordFinished records a job reaching a terminal state.
func (m *Metrics) RecordFinished(ctx context.Context, status Status, provider string, duration time.Duration) {
	if m == nil || !m.initialized {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("status", string(status)),
		attribute.String("provider", provider),
	)
	m.jobsFinishedTotal.Add(ctx, 1, attrs)
	m.jobsActiveCount.Add(ctx, -1)
	m.jobDuration.Record(ctx, duration.Seconds(), attrs)
}

// Tracer returns a tracer for the jobs package.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}
