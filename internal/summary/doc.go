// Package summary defines the canonical structured-summary schema for
// meeting transcripts and the validator that turns loosely structured
// provider output into a schema-valid result.
//
// The package has two halves:
//
//   - The canonical types (StructuredSummary, ActionItem, Decision, Risk,
//     UserStory) with their enum fields. The JSON field names and enum
//     values are a wire contract consumed by export renderers and must
//     stay stable.
//
//   - The Candidate type and Validate, which accept the raw output of any
//     extraction provider, coerce obviously-equivalent shapes, clamp enum
//     values to their declared sets, and score the result's confidence.
//
// Validation is repair-oriented: a single string where a list is expected
// becomes a one-element list, an unrecognized priority becomes "medium",
// and so on. Repairs are bounded and reported; only a payload with no
// usable top-level summary is rejected outright.
package summary
