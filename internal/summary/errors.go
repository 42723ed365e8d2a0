package summary

import "errors"

// ErrSchemaInvalid marks provider output that cannot be repaired into a
// valid StructuredSummary: the payload is not a key-value mapping, or the
// top-level summary is missing or empty after repair attempts.
var ErrSchemaInvalid = errors.New("candidate does not satisfy summary schema")
