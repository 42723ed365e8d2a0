package jobs

import "errors"

var (
	// ErrInvalidInput indicates a bad submission: empty, oversized, or
	// non-text transcript. No job is created.
	ErrInvalidInput = errors.New("invalid input")

	// ErrJobNotFound indicates an unknown job id.
	ErrJobNotFound = errors.New("job not found")

	// ErrJobNotReady indicates a result query on a job that has not
	// reached COMPLETED.
	ErrJobNotReady = errors.New("job not ready")

	// ErrJobAlreadyExists indicates a duplicate job id in the store.
	ErrJobAlreadyExists = errors.New("job already exists")

	// ErrJobTerminal indicates an operation on a job that already
	// reached a terminal state.
	ErrJobTerminal = errors.New("job already terminal")

	// ErrInvalidTransition indicates a state change the job lifecycle
	// does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
)
