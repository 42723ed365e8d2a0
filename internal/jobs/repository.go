package jobs

import (
	"context"
	"sync"
)

// Repository stores extraction jobs. Implementations must be safe for
// concurrent use.
type Repository interface {
	Create(ctx context.Context, job *Job) error
	Get(ctx context.Context, id string) (*Job, error)
	Update(ctx context.Context, job *Job) error
	List(ctx context.Context) ([]*Job, error)
}

// MemoryRepository is an in-memory Repository. It is thread-safe and
// suitable for single-instance deployments.
type MemoryRepository struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewMemoryRepository creates a new in-memory job repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		jobs: make(map[string]*Job),
	}
}

// Create stores a new job.
func (r *MemoryRepository) Create(ctx context.Context, job *Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[job.ID]; exists {
		return ErrJobAlreadyExists
	}

	// Store a copy to prevent external mutation.
	r.jobs[job.ID] = job.Clone()
	return nil
}

// Get retrieves a job by ID.
func (r *MemoryRepository) Get(ctx context.Context, id string) (*Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, exists := r.jobs[id]
	if !exists {
		return nil, ErrJobNotFound
	}
	return job.Clone(), nil
}

// Update modifies an existing job. The stored status must allow the
// update's status (same state or a valid transition).
func (r *MemoryRepository) Update(ctx context.Context, job *Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.jobs[job.ID]
	if !exists {
		return ErrJobNotFound
	}
	if current.Status != job.Status && !current.Status.CanTransitionTo(job.Status) {
		return ErrInvalidTransition
	}

	r.jobs[job.ID] = job.Clone()
	return nil
}

// List returns all stored jobs.
func (r *MemoryRepository) List(ctx context.Context) ([]*Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		result = append(result, job.Clone())
	}
	return result, nil
}

var _ Repository = (*MemoryRepository)(nil)
