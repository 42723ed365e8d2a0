package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fyrsmithlabs/minuted/internal/config"
	"github.com/fyrsmithlabs/minuted/internal/provider"
	"github.com/fyrsmithlabs/minuted/internal/summary"
)

// Selector produces the ordered provider chain for a request.
type Selector interface {
	Chain(hint string, creds provider.Credentials) []provider.Provider
}

// Orchestrator owns the extraction job lifecycle: submission,
// background processing through the provider fallback chain, and
// status/result queries.
type Orchestrator struct {
	repo     Repository
	selector Selector

	maxTranscriptBytes int
	minConfidence      float64
	localTimeout       time.Duration
	remoteTimeout      time.Duration

	logger          *Logger
	metrics         *Metrics
	providerMetrics *provider.Metrics

	sem chan struct{}
	wg  sync.WaitGroup

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// Option configures the Orchestrator.
type Option func(*Orchestrator)

// WithRepository replaces the default in-memory job store.
func WithRepository(repo Repository) Option {
	return func(o *Orchestrator) { o.repo = repo }
}

// WithLogger attaches a structured logger.
func WithLogger(logger *Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithMetrics attaches orchestrator metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(o *Orchestrator) { o.metrics = metrics }
}

// WithProviderMetrics attaches per-provider call metrics.
func WithProviderMetrics(metrics *provider.Metrics) Option {
	return func(o *Orchestrator) { o.providerMetrics = metrics }
}

// New creates an Orchestrator using the provider chain from selector.
func New(cfg *config.Config, selector Selector, opts ...Option) *Orchestrator {
	maxConcurrent := cfg.Jobs.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = config.DefaultMaxConcurrent
	}
	o := &Orchestrator{
		repo:               NewMemoryRepository(),
		selector:           selector,
		maxTranscriptBytes: cfg.Extraction.MaxTranscriptBytes,
		minConfidence:      cfg.Providers.MinConfidence,
		localTimeout:       cfg.Providers.Local.Timeout.Duration(),
		remoteTimeout:      cfg.Providers.Anthropic.Timeout.Duration(),
		logger:             NewLogger(nil),
		sem:                make(chan struct{}, maxConcurrent),
		cancels:            make(map[string]context.CancelFunc),
	}
	if o.localTimeout <= 0 {
		o.localTimeout = config.DefaultLocalTimeout
	}
	if o.remoteTimeout <= 0 {
		o.remoteTimeout = config.DefaultRemoteTimeout
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Submit validates the transcript, creates a job in PENDING, and starts
// the extraction as a background unit of work. It never blocks on the
// extraction itself. Credentials are forwarded to the workers and never
// stored on the job.
func (o *Orchestrator) Submit(ctx context.Context, transcript, hint string, creds provider.Credentials) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("transcript is empty: %w", ErrInvalidInput)
	}
	if len(transcript) > o.maxTranscriptBytes {
		return "", fmt.Errorf("transcript exceeds %d bytes: %w", o.maxTranscriptBytes, ErrInvalidInput)
	}
	if !utf8.ValidString(transcript) {
		return "", fmt.Errorf("transcript is not valid text: %w", ErrInvalidInput)
	}

	now := time.Now()
	job := &Job{
		ID:         uuid.NewString(),
		Transcript: transcript,
		Hint:       hint,
		Status:     StatusPending,
		Progress:   0,
		Message:    "queued",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := o.repo.Create(ctx, job); err != nil {
		return "", err
	}

	o.logger.JobSubmitted(ctx, job.ID, hint, len(transcript))
	o.metrics.RecordSubmitted(ctx)

	runCtx, cancel := context.WithCancel(context.Background())
	o.mu.Lock()
	o.cancels[job.ID] = cancel
	o.mu.Unlock()

	o.wg.Add(1)
	go o.run(runCtx, job.ID, transcript, hint, creds)

	return job.ID, nil
}

// Status returns a snapshot of the job. Repeated calls never mutate
// job state.
func (o *Orchestrator) Status(ctx context.Context, id string) (*Job, error) {
	return o.repo.Get(ctx, id)
}

// Result returns the structured summary of a COMPLETED job.
func (o *Orchestrator) Result(ctx context.Context, id string) (*summary.StructuredSummary, error) {
	job, err := o.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.Status != StatusCompleted {
		return nil, fmt.Errorf("job is %s: %w", job.Status, ErrJobNotReady)
	}
	return job.Result, nil
}

// Cancel requests cancellation of a job. The worker observes the signal
// between fallback-chain steps; a job mid-provider-call turns CANCELLED
// once the call returns. Terminal jobs cannot be cancelled.
func (o *Orchestrator) Cancel(ctx context.Context, id string) error {
	job, err := o.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if job.Status.IsTerminal() {
		return fmt.Errorf("job is %s: %w", job.Status, ErrJobTerminal)
	}

	o.mu.Lock()
	cancel, ok := o.cancels[id]
	o.mu.Unlock()
	if ok {
		cancel()
	}
	return nil
}

// Wait blocks until all background workers have finished. Intended for
// shutdown and tests.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// run drives one job through the provider fallback chain.
func (o *Orchestrator) run(ctx context.Context, id, transcript, hint string, creds provider.Credentials) {
	defer o.wg.Done()
	defer o.removeCancel(id)

	start := time.Now()

	select {
	case o.sem <- struct{}{}:
		defer func() { <-o.sem }()
	case <-ctx.Done():
		o.finishCancelled(id, start)
		return
	}

	ctx, span := Tracer().Start(ctx, "jobs.run",
		trace.WithAttributes(
			attribute.String("job_id", id),
			attribute.String("hint", hint),
		))
	defer span.End()

	if !o.advance(ctx, id, StatusProcessing, 10, "initializing") {
		return
	}

	chain := o.selector.Chain(hint, creds)
	var reasons []string

	for i, p := range chain {
		if ctx.Err() != nil {
			o.finishCancelled(id, start)
			return
		}

		callCtx, cancel := context.WithTimeout(ctx, o.timeoutFor(p.Name()))
		attemptStart := time.Now()
		candidate, err := p.Extract(callCtx, transcript, creds)
		cancel()
		elapsed := time.Since(attemptStart)

		if err != nil {
			if ctx.Err() != nil {
				o.finishCancelled(id, start)
				return
			}
			outcome := classifyOutcome(err)
			o.recordFailedAttempt(ctx, id, Attempt{
				Provider: p.Name(),
				Outcome:  outcome,
				Detail:   err.Error(),
				Duration: elapsed,
			})
			reasons = append(reasons, fmt.Sprintf("%s: %s", p.Name(), err))
			continue
		}

		result, validation, err := summary.Validate(candidate)
		if err != nil {
			o.recordFailedAttempt(ctx, id, Attempt{
				Provider: p.Name(),
				Outcome:  OutcomeSchemaInvalid,
				Detail:   err.Error(),
				Duration: elapsed,
			})
			reasons = append(reasons, fmt.Sprintf("%s: %s", p.Name(), err))
			continue
		}

		last := i == len(chain)-1
		if validation.Confidence < o.minConfidence && !last {
			o.recordFailedAttempt(ctx, id, Attempt{
				Provider:   p.Name(),
				Outcome:    OutcomeLowConfidence,
				Detail:     fmt.Sprintf("confidence %.2f below %.2f", validation.Confidence, o.minConfidence),
				Confidence: validation.Confidence,
				Repaired:   validation.Repaired,
				Duration:   elapsed,
			})
			reasons = append(reasons, fmt.Sprintf("%s: confidence %.2f below threshold", p.Name(), validation.Confidence))
			continue
		}

		o.complete(ctx, id, p.Name(), result, validation, elapsed, start)
		return
	}

	// Defensive: the rule-based tail makes exhaustion unexpected.
	o.fail(ctx, id, reasons, start)
}

// timeoutFor returns the per-call timeout for a provider.
func (o *Orchestrator) timeoutFor(name string) time.Duration {
	switch name {
	case provider.NameAnthropic, provider.NameOpenAI:
		return o.remoteTimeout
	default:
		return o.localTimeout
	}
}

// advance moves the job to a new status, updating progress and message.
// Progress never decreases.
func (o *Orchestrator) advance(ctx context.Context, id string, status Status, progress int, message string) bool {
	job, err := o.repo.Get(ctx, id)
	if err != nil {
		o.logger.Error(ctx, "failed to load job", err)
		return false
	}
	job.Status = status
	if progress > job.Progress {
		job.Progress = progress
	}
	job.Message = message
	job.UpdatedAt = time.Now()
	if err := o.repo.Update(ctx, job); err != nil {
		o.logger.Error(ctx, "failed to update job", err)
		return false
	}
	return true
}

// recordFailedAttempt appends the attempt and bumps progress by 20,
// capped at 90.
func (o *Orchestrator) recordFailedAttempt(ctx context.Context, id string, attempt Attempt) {
	o.logger.ProviderAttempt(ctx, id, attempt)
	o.providerMetrics.RecordExtract(ctx, attempt.Provider, attempt.Outcome, attempt.Duration)

	job, err := o.repo.Get(ctx, id)
	if err != nil {
		o.logger.Error(ctx, "failed to load job", err)
		return
	}
	job.Attempts = append(job.Attempts, attempt)
	if next := job.Progress + 20; next <= 90 {
		job.Progress = next
	} else {
		job.Progress = 90
	}
	job.Message = fmt.Sprintf("provider %s failed (%s), trying next", attempt.Provider, attempt.Outcome)
	job.UpdatedAt = time.Now()
	if err := o.repo.Update(ctx, job); err != nil {
		o.logger.Error(ctx, "failed to update job", err)
	}
}

// complete stores the result and moves the job to COMPLETED.
func (o *Orchestrator) complete(ctx context.Context, id, providerName string, result *summary.StructuredSummary, validation summary.Validation, callDuration time.Duration, start time.Time) {
	attempt := Attempt{
		Provider:   providerName,
		Outcome:    OutcomeCompleted,
		Confidence: validation.Confidence,
		Repaired:   validation.Repaired,
		Duration:   callDuration,
	}
	o.logger.ProviderAttempt(ctx, id, attempt)
	o.providerMetrics.RecordExtract(ctx, providerName, OutcomeCompleted, callDuration)

	job, err := o.repo.Get(ctx, id)
	if err != nil {
		o.logger.Error(ctx, "failed to load job", err)
		return
	}
	job.Attempts = append(job.Attempts, attempt)
	job.Status = StatusCompleted
	job.Progress = 100
	job.Message = "extraction complete"
	job.Result = result
	job.Provider = providerName
	job.Repaired = validation.Repaired
	job.Confidence = validation.Confidence
	job.UpdatedAt = time.Now()
	if err := o.repo.Update(ctx, job); err != nil {
		o.logger.Error(ctx, "failed to update job", err)
		return
	}

	total := time.Since(start)
	o.logger.JobCompleted(ctx, id, providerName, validation.Confidence, validation.Repaired, total)
	o.metrics.RecordFinished(ctx, StatusCompleted, providerName, total)
}

// fail moves the job to FAILED with an aggregated reason per attempt.
func (o *Orchestrator) fail(ctx context.Context, id string, reasons []string, start time.Time) {
	message := "all providers failed"
	if len(reasons) > 0 {
		message = "all providers failed: " + strings.Join(reasons, "; ")
	}

	job, err := o.repo.Get(ctx, id)
	if err != nil {
		o.logger.Error(ctx, "failed to load job", err)
		return
	}
	job.Status = StatusFailed
	job.Message = message
	job.UpdatedAt = time.Now()
	if err := o.repo.Update(ctx, job); err != nil {
		o.logger.Error(ctx, "failed to update job", err)
		return
	}

	total := time.Since(start)
	o.logger.JobFailed(ctx, id, message, len(reasons), total)
	o.metrics.RecordFinished(ctx, StatusFailed, "", total)
}

// finishCancelled moves the job to CANCELLED unless it is already
// terminal.
func (o *Orchestrator) finishCancelled(id string, start time.Time) {
	ctx := context.Background()

	job, err := o.repo.Get(ctx, id)
	if err != nil {
		o.logger.Error(ctx, "failed to load job", err)
		return
	}
	if job.Status.IsTerminal() {
		return
	}
	job.Status = StatusCancelled
	job.Message = "cancelled"
	job.UpdatedAt = time.Now()
	if err := o.repo.Update(ctx, job); err != nil {
		o.logger.Error(ctx, "failed to update job", err)
		return
	}

	total := time.Since(start)
	o.logger.JobCancelled(ctx, id, total)
	o.metrics.RecordFinished(ctx, StatusCancelled, "", total)
}

func (o *Orchestrator) removeCancel(id string) {
	o.mu.Lock()
	if cancel, ok := o.cancels[id]; ok {
		cancel()
		delete(o.cancels, id)
	}
	o.mu.Unlock()
}

// classifyOutcome maps a provider error onto the attempt taxonomy.
func classifyOutcome(err error) string {
	switch {
	case errors.Is(err, provider.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout
	case errors.Is(err, summary.ErrSchemaInvalid):
		return OutcomeSchemaInvalid
	default:
		return OutcomeUnavailable
	}
}
