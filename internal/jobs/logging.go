package jobs

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger wraps zap.Logger with job-specific structured logging.
// Transcripts and credentials are never logged.
type Logger struct {
	logger *zap.Logger
}

// NewLogger creates a new Logger. If logger is nil, uses a no-op logger.
func NewLogger(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{logger: logger.Named("jobs")}
}

// JobSubmitted logs a job submission.
func (l *Logger) JobSubmitted(ctx context.Context, jobID, hint string, transcriptBytes int) {
	if l == nil || l.logger == nil {
		return
	}
	fields := l.baseFields(ctx, jobID)
	fields = append(fields,
		zap.String("hint", hint),
		zap.Int("transcript_bytes", transcriptBytes),
	)
	l.logger.Info("job submitted", fields...)
}

// ProviderAttempt logs the outcome of one provider invocation.
func (l *Logger) ProviderAttempt(ctx context.Context, jobID string, attempt Attempt) {
	if l == nil || l.logger == nil {
		return
	}
	fields := l.baseFields(ctx, jobID)
	fields = append(fields,
		zap.String("provider", attempt.Provider),
		zap.String("outcome", attempt.Outcome),
		zap.Duration("duration", attempt.Duration),
	)
	if attempt.Detail != "" {
		fields = append(fields, zap.String("detail", attempt.Detail))
	}
	if attempt.Outcome == OutcomeCompleted {
		fields = append(fields,
			zap.Float64("confidence", attempt.Confidence),
			zap.Bool("repaired", attempt.Repaired),
		)
		l.logger.Info("provider attempt succeeded", fields...)
		return
	}
	l.logger.Warn("provider attempt failed", fields...)
}

// JobCompleted logs a job reaching COMPLETED.
func (l *Logger) JobCompleted(ctx context.Context, jobID, provider string, confidence float64, repaired bool, duration time.Duration) {
	if l == nil || l.logger == nil {
		return
	}
	fields := l.baseFields(ctx, jobID)
	fields = append(fields,
		zap.String("provider", provider),
		zap.Float64("confidence", confidence),
		zap.Bool("repaired", repaired),
		zap.Duration("duration", duration),
	)
	l.logger.Info("job completed", fields...)
}

// JobFailed logs a job reaching FAILED.
func (l *Logger) JobFailed(ctx context.Context, jobID, reason string, attempts int, duration time.Duration) {
	if l == nil || l.logger == nil {
		return
	}
	fields := l.baseFields(ctx, jobID)
	fields = append(fields,
		zap.String("reason", reason),
		zap.Int("attempts", attempts),
		zap.Duration("duration", duration),
	)
	l.logger.Error("job failed", fields...)
}

// JobCancelled logs a job reaching CANCELLED.
func (l *Logger) JobCancelled(ctx context.Context, jobID string, duration time.Duration) {
	if l == nil || l.logger == nil {
		return
	}
	fields := l.baseFields(ctx, jobID)
	fields = append(fields, zap.Duration("duration", duration))
	l.logger.Info("job cancelled", fields...)
}

// Error logs an error with context.
func (l *Logger) Error(ctx context.Context, msg string, err error, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	allFields := l.traceFields(ctx)
	allFields = append(allFields, zap.Error(err))
	allFields = append(allFields, fields...)
	l.logger.Error(msg, allFields...)
}

// baseFields returns common fields for job events.
func (l *Logger) baseFields(ctx context.Context, jobID string) []zap.Field {
	fields := []zap.Field{
		zap.String("job_id", jobID),
	}
	return append(fields, l.traceFields(ctx)...)
}

// traceFields extracts trace context from the context.
func (l *Logger) traceFields(ctx context.Context) []zap.Field {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return nil
	}
	sc := span.SpanContext()
	fields := []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
	if sc.IsSampled() {
		fields = append(fields, zap.Bool("trace_sampled", true))
	}
	return fields
}
