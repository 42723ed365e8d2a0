package provider

import (
	"context"

	"github.com/fyrsmithlabs/minuted/internal/config"
	"github.com/fyrsmithlabs/minuted/internal/extract"
)

// Selector builds the ordered fallback chain of providers for one
// extraction job.
type Selector struct {
	ruleBased *RuleBased
	local     *Local
	anthropic *Anthropic
	openAI    *OpenAI
}

// NewSelector wires the provider set from configuration.
func NewSelector(cfg config.ProvidersConfig) *Selector {
	extractor := extract.New(extract.DefaultConfig())
	return &Selector{
		ruleBased: NewRuleBased(extractor),
		local:     NewLocal(cfg.Local, extractor),
		anthropic: NewAnthropic(cfg.Anthropic),
		openAI:    NewOpenAI(cfg.OpenAI),
	}
}

// NewSelectorWithExtractor wires the provider set around a shared
// pattern extractor.
func NewSelectorWithExtractor(cfg config.ProvidersConfig, extractor *extract.Extractor) *Selector {
	return &Selector{
		ruleBased: NewRuleBased(extractor),
		local:     NewLocal(cfg.Local, extractor),
		anthropic: NewAnthropic(cfg.Anthropic),
		openAI:    NewOpenAI(cfg.OpenAI),
	}
}

// Chain produces the ordered fallback chain for a request.
//
// An explicit hint whose credential requirement is satisfied moves that
// provider to the front. Without a hint the chain starts with the local
// model. Remote providers join the chain only when their key is
// present. The rule-based provider is always the tail, so the chain as
// a whole cannot fail for lack of a working model.
func (s *Selector) Chain(hint string, creds Credentials) []Provider {
	var chain []Provider
	add := func(p Provider) {
		for _, existing := range chain {
			if existing.Name() == p.Name() {
				return
			}
		}
		chain = append(chain, p)
	}

	if hinted := s.byName(hint, creds); hinted != nil {
		add(hinted)
	}

	add(s.local)
	if creds.Anthropic.IsSet() {
		add(s.anthropic)
	}
	if creds.OpenAI.IsSet() {
		add(s.openAI)
	}
	add(s.ruleBased)

	// Nothing past the rule-based tail is reachable.
	for i, p := range chain {
		if p.Name() == NameRuleBased {
			return chain[:i+1]
		}
	}
	return chain
}

// byName resolves a hint to a provider, or nil when the hint is empty,
// unknown, or names a remote provider without its credential.
func (s *Selector) byName(hint string, creds Credentials) Provider {
	switch hint {
	case NameRuleBased:
		return s.ruleBased
	case NameLocal:
		return s.local
	case NameAnthropic:
		if creds.Anthropic.IsSet() {
			return s.anthropic
		}
	case NameOpenAI:
		if creds.OpenAI.IsSet() {
			return s.openAI
		}
	}
	return nil
}

// Availability reports which providers could serve a request right
// now. Remote availability means the credential is present, local
// availability means the runtime answered its health probe.
func (s *Selector) Availability(ctx context.Context, creds Credentials) map[string]bool {
	return map[string]bool{
		NameRuleBased: true,
		NameLocal:     s.local.Available(ctx),
		NameAnthropic: creds.Anthropic.IsSet(),
		NameOpenAI:    creds.OpenAI.IsSet(),
	}
}
