package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fyrsmithlabs/minuted/internal/summary"
)

const budgetTranscript = `The budget review opened the call. Our budget is tight and the
budget line for contractors requires a second budget pass. The roadmap
slips if the roadmap is not trimmed, so the roadmap gets a rewrite.
Technical debt is piling up and the technical debt backlog lacks an owner.`

func TestKeyTopicsRankByFrequency(t *testing.T) {
	e := New(DefaultConfig())

	got := e.KeyTopics(budgetTranscript)
	assert.Equal(t, []string{"Budget", "Roadmap", "Technical Debt"}, got)
}

func TestKeyTopicsRespectCap(t *testing.T) {
	e := New(Config{TopicCount: 2})

	got := e.KeyTopics(budgetTranscript)
	assert.Equal(t, []string{"Budget", "Roadmap"}, got)
}

func TestKeyTopicsDefaultWhenEmpty(t *testing.T) {
	e := New(DefaultConfig())

	for _, text := range []string{"", "Hello there.", "We met and talked."} {
		assert.Equal(t, []string{summary.DefaultTopic}, e.KeyTopics(text))
	}
}

func TestKeyTopicsStableOrderOnTies(t *testing.T) {
	e := New(DefaultConfig())

	text := "zebra zebra zebra apple apple apple mango mango mango"
	want := []string{"Apple", "Mango", "Zebra"}
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, e.KeyTopics(text))
	}
}
