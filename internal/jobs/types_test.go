package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusFailed, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusPending, false},
		{StatusCompleted, StatusFailed, false},
		{StatusCompleted, StatusProcessing, false},
		{StatusFailed, StatusProcessing, false},
		{StatusCancelled, StatusProcessing, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestStatusWireValues(t *testing.T) {
	assert.Equal(t, "pending", string(StatusPending))
	assert.Equal(t, "processing", string(StatusProcessing))
	assert.Equal(t, "completed", string(StatusCompleted))
	assert.Equal(t, "failed", string(StatusFailed))
	assert.Equal(t, "cancelled", string(StatusCancelled))
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusProcessing.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestJobClone(t *testing.T) {
	job := &Job{
		ID:       "job-1",
		Status:   StatusProcessing,
		Attempts: []Attempt{{Provider: "local", Outcome: OutcomeTimeout}},
	}

	clone := job.Clone()
	clone.Status = StatusFailed
	clone.Attempts[0].Outcome = OutcomeCompleted
	clone.Attempts = append(clone.Attempts, Attempt{Provider: "rule_based"})

	assert.Equal(t, StatusProcessing, job.Status)
	assert.Equal(t, OutcomeTimeout, job.Attempts[0].Outcome)
	assert.Len(t, job.Attempts, 1)
}
