// Package provider implements the extraction backends that turn
// transcript text into structured summary candidates.
//
// Three backends share one contract: a rule-based pass over the
// transcript, a locally hosted model, and hosted model APIs keyed by
// per-request credentials. The selector composes them into a
// deterministic fallback chain that always ends with the rule-based
// backend, so a chain as a whole cannot fail to produce a candidate.
package provider

import (
	"context"

	"github.com/fyrsmithlabs/minuted/internal/config"
	"github.com/fyrsmithlabs/minuted/internal/summary"
)

// Provider names used in hints, chain ordering, and telemetry.
const (
	NameRuleBased = "rule_based"
	NameLocal     = "local"
	NameAnthropic = "anthropic"
	NameOpenAI    = "openai"
)

// Credentials carries per-request API keys for the remote backends.
// Keys are used for the duration of one call and never persisted.
type Credentials struct {
	Anthropic config.Secret
	OpenAI    config.Secret
}

// Provider is one backend capable of turning transcript text into a
// candidate structured result.
type Provider interface {
	Name() string
	Extract(ctx context.Context, transcript string, creds Credentials) (summary.Candidate, error)
}
