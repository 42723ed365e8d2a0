package provider

import "errors"

var (
	// ErrUnavailable indicates the backend cannot serve the request at
	// all: connectivity failure, missing or rejected credential, or a
	// malformed request.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrTimeout indicates the backend did not answer within the call's
	// deadline.
	ErrTimeout = errors.New("provider timed out")
)
