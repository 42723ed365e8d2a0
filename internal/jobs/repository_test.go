package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	job := &Job{ID: "job-1", Status: StatusPending}
	require.NoError(t, repo.Create(ctx, job))

	got, err := repo.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", got.ID)
	assert.Equal(t, StatusPending, got.Status)

	// The repository hands out copies.
	got.Status = StatusFailed
	again, err := repo.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, again.Status)
}

func TestMemoryRepositoryDuplicateCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Create(ctx, &Job{ID: "job-1", Status: StatusPending}))
	err := repo.Create(ctx, &Job{ID: "job-1", Status: StatusPending})
	assert.ErrorIs(t, err, ErrJobAlreadyExists)
}

func TestMemoryRepositoryGetMissing(t *testing.T) {
	repo := NewMemoryRepository()
	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestMemoryRepositoryUpdateTransitions(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, &Job{ID: "job-1", Status: StatusPending}))

	job := &Job{ID: "job-1", Status: StatusProcessing}
	require.NoError(t, repo.Update(ctx, job))

	// Same-status updates carry progress and messages forward.
	job.Progress = 30
	require.NoError(t, repo.Update(ctx, job))

	// A terminal job cannot move again.
	job.Status = StatusCompleted
	require.NoError(t, repo.Update(ctx, job))
	job.Status = StatusFailed
	assert.ErrorIs(t, repo.Update(ctx, job), ErrInvalidTransition)
}

func TestMemoryRepositoryUpdateMissing(t *testing.T) {
	repo := NewMemoryRepository()
	err := repo.Update(context.Background(), &Job{ID: "ghost", Status: StatusProcessing})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestMemoryRepositoryList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, &Job{ID: "a", Status: StatusPending}))
	require.NoError(t, repo.Create(ctx, &Job{ID: "b", Status: StatusPending}))

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}
