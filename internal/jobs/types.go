// Package jobs implements the asynchronous extraction orchestrator:
// submitted transcripts become jobs that move through a small state
// machine while a provider fallback chain produces their summary.
package jobs

import (
	"time"

	"github.com/fyrsmithlabs/minuted/internal/summary"
)

// Status represents the lifecycle state of an extraction job.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// ValidTransitions defines allowed state transitions.
var ValidTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusFailed, StatusCancelled},
	StatusCompleted:  {}, // terminal
	StatusFailed:     {}, // terminal
	StatusCancelled:  {}, // terminal
}

// CanTransitionTo checks if a transition from the current status to
// target is valid.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := ValidTransitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if this is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Attempt outcomes recorded per provider invocation.
const (
	OutcomeCompleted     = "completed"
	OutcomeUnavailable   = "unavailable"
	OutcomeTimeout       = "timeout"
	OutcomeSchemaInvalid = "schema_invalid"
	OutcomeLowConfidence = "low_confidence"
)

// Attempt records one provider invocation within a job.
type Attempt struct {
	Provider   string        `json:"provider"`
	Outcome    string        `json:"outcome"`
	Detail     string        `json:"detail,omitempty"`
	Confidence float64       `json:"confidence,omitempty"`
	Repaired   bool          `json:"repaired,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// Job is one transcript extraction tracked by the orchestrator. The
// orchestrator owns the job for its lifetime; everything handed out is
// a copy. Credential material is never stored on the job.
type Job struct {
	ID         string                     `json:"id"`
	Transcript string                     `json:"-"`
	Hint       string                     `json:"hint,omitempty"`
	Status     Status                     `json:"status"`
	Progress   int                        `json:"progress"`
	Message    string                     `json:"message"`
	Result     *summary.StructuredSummary `json:"result,omitempty"`
	Provider   string                     `json:"provider,omitempty"`
	Repaired   bool                       `json:"repaired,omitempty"`
	Confidence float64                    `json:"confidence,omitempty"`
	Attempts   []Attempt                  `json:"attempts,omitempty"`
	CreatedAt  time.Time                  `json:"created_at"`
	UpdatedAt  time.Time                  `json:"updated_at"`
}

// Clone returns a deep enough copy for safe hand-out: the attempts
// slice is duplicated, the result pointer is shared because a stored
// result is never mutated again.
func (j *Job) Clone() *Job {
	c := *j
	if j.Attempts != nil {
		c.Attempts = make([]Attempt, len(j.Attempts))
		copy(c.Attempts, j.Attempts)
	}
	return &c
}
