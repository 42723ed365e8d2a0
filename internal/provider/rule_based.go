package provider

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/fyrsmithlabs/minuted/internal/extract"
	"github.com/fyrsmithlabs/minuted/internal/summary"
)

// RuleBased delegates to the deterministic pattern extractor. It is the
// guaranteed-success tail of every fallback chain and only rejects
// input that is not text.
type RuleBased struct {
	extractor *extract.Extractor
}

// NewRuleBased creates the rule-based backend.
func NewRuleBased(extractor *extract.Extractor) *RuleBased {
	return &RuleBased{extractor: extractor}
}

// Name implements Provider.
func (r *RuleBased) Name() string { return NameRuleBased }

// Extract implements Provider. Credentials are ignored.
func (r *RuleBased) Extract(ctx context.Context, transcript string, _ Credentials) (summary.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !utf8.ValidString(transcript) {
		return nil, fmt.Errorf("transcript is not valid text: %w", ErrUnavailable)
	}
	return r.extractor.Candidate(transcript), nil
}

var _ Provider = (*RuleBased)(nil)
