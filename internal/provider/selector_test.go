package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/minuted/internal/config"
)

func testSelector() *Selector {
	return NewSelector(config.ProvidersConfig{})
}

func chainNames(chain []Provider) []string {
	names := make([]string, len(chain))
	for i, p := range chain {
		names[i] = p.Name()
	}
	return names
}

func TestChainDefault(t *testing.T) {
	s := testSelector()

	got := chainNames(s.Chain("", Credentials{}))
	assert.Equal(t, []string{NameLocal, NameRuleBased}, got)
}

func TestChainIncludesKeyedRemotes(t *testing.T) {
	s := testSelector()

	creds := Credentials{Anthropic: "sk-ant-test", OpenAI: "sk-test"}
	got := chainNames(s.Chain("", creds))
	assert.Equal(t, []string{NameLocal, NameAnthropic, NameOpenAI, NameRuleBased}, got)
}

func TestChainHintMovesProviderFirst(t *testing.T) {
	s := testSelector()

	creds := Credentials{Anthropic: "sk-ant-test"}
	got := chainNames(s.Chain(NameAnthropic, creds))
	assert.Equal(t, []string{NameAnthropic, NameLocal, NameRuleBased}, got)
}

func TestChainHintWithoutCredentialIgnored(t *testing.T) {
	s := testSelector()

	got := chainNames(s.Chain(NameAnthropic, Credentials{}))
	assert.Equal(t, []string{NameLocal, NameRuleBased}, got)
}

func TestChainUnknownHintIgnored(t *testing.T) {
	s := testSelector()

	got := chainNames(s.Chain("mainframe", Credentials{}))
	assert.Equal(t, []string{NameLocal, NameRuleBased}, got)
}

func TestChainRuleBasedHintShortCircuits(t *testing.T) {
	s := testSelector()

	got := chainNames(s.Chain(NameRuleBased, Credentials{}))
	assert.Equal(t, []string{NameRuleBased}, got)
}

func TestChainAlwaysEndsWithRuleBased(t *testing.T) {
	s := testSelector()

	hints := []string{"", NameLocal, NameAnthropic, NameOpenAI, NameRuleBased, "bogus"}
	credSets := []Credentials{
		{},
		{Anthropic: "sk-ant-test"},
		{OpenAI: "sk-test"},
		{Anthropic: "sk-ant-test", OpenAI: "sk-test"},
	}
	for _, hint := range hints {
		for _, creds := range credSets {
			chain := s.Chain(hint, creds)
			require.NotEmpty(t, chain)
			assert.Equal(t, NameRuleBased, chain[len(chain)-1].Name(), "hint %q", hint)
		}
	}
}

func TestChainIsDeterministic(t *testing.T) {
	s := testSelector()

	creds := Credentials{Anthropic: "sk-ant-test", OpenAI: "sk-test"}
	first := chainNames(s.Chain(NameOpenAI, creds))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, chainNames(s.Chain(NameOpenAI, creds)))
	}
}
