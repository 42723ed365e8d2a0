package extract

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/minuted/internal/summary"
)

const standupTranscript = `John: Good morning everyone, let's start the standup.
Sarah Chen: I will finish the quarterly report by Friday.
John: We agreed to ship the release next week because the testing is complete.
Sarah Chen: One risk: the database migration might slip.
Mike: Next steps: update the roadmap; schedule the retro.`

func TestCandidateAssemblesAllFields(t *testing.T) {
	e := New(DefaultConfig())
	c := e.Candidate(standupTranscript)

	for _, field := range []string{
		summary.FieldSummary,
		summary.FieldKeyTopics,
		summary.FieldActionItems,
		summary.FieldDecisions,
		summary.FieldRisks,
		summary.FieldUserStories,
		summary.FieldParticipants,
		summary.FieldNextSteps,
		summary.FieldSentiment,
	} {
		_, ok := c[field]
		assert.True(t, ok, "missing field %q", field)
	}

	s, _, err := summary.Validate(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"John", "Mike", "Sarah Chen"}, s.Participants)
}

func TestCandidateIsDeterministic(t *testing.T) {
	e := New(DefaultConfig())
	first := e.Candidate(standupTranscript)
	for i := 0; i < 5; i++ {
		if got := e.Candidate(standupTranscript); !reflect.DeepEqual(first, got) {
			t.Fatalf("run %d produced a different candidate", i+1)
		}
	}
}

func TestParticipants(t *testing.T) {
	e := New(DefaultConfig())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "speaker prefixes collapse aliases",
			text: "Sarah Chen: hi all.\nSarah: status update.\nJohn: here.",
			want: []string{"John", "Sarah Chen"},
		},
		{
			name: "timestamped turns",
			text: "[00:01:02] Maria Lopez: kickoff.\n[00:03:15] Deepak: thanks.",
			want: []string{"Deepak", "Maria Lopez"},
		},
		{
			name: "reported speech",
			text: "During the review Priya mentioned the rollout and later Tom said it was fine.",
			want: []string{"Priya", "Tom"},
		},
		{
			name: "sentence starters excluded",
			text: "The plan is set. This looks fine. When: later.",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Participants(tt.text))
		})
	}
}

func TestDecisions(t *testing.T) {
	e := New(DefaultConfig())

	text := "John: We agreed to ship the release next week because the testing is complete.\nSarah: agreed, let's ship it."
	decisions := e.Decisions(text)
	require.NotEmpty(t, decisions)

	first := decisions[0]
	assert.Equal(t, "ship the release next week because the testing is complete", first.Decision)
	assert.Equal(t, "John", first.MadeBy)
	assert.Equal(t, "the testing is complete", first.Rationale)
	assert.True(t, first.Impact.Valid())
}

func TestDecisionMakerFallsBackToTeam(t *testing.T) {
	e := New(DefaultConfig())

	decisions := e.Decisions("It was decided that the rollout happens in stages.")
	require.Len(t, decisions, 1)
	assert.Equal(t, "Team", decisions[0].MadeBy)
}

func TestRisks(t *testing.T) {
	e := New(DefaultConfig())

	text := "Sarah: One risk: the database migration could slow the launch. To address this we rehearse it on staging first."
	risks := e.Risks(text)
	require.NotEmpty(t, risks)
	assert.Contains(t, risks[0].Risk, "database migration")
	assert.True(t, risks[0].Impact.Valid())
	assert.True(t, risks[0].Likelihood.Valid())
}

func TestUserStories(t *testing.T) {
	e := New(DefaultConfig())

	text := "Priya: As a project manager, I want to export reports, so that stakeholders stay informed."
	stories := e.UserStories(text)
	require.Len(t, stories, 1)
	assert.Equal(t, "As a project manager, I want to export reports, so that stakeholders stay informed", stories[0].Story)
	assert.True(t, stories[0].Priority.Valid())
}

func TestNextSteps(t *testing.T) {
	e := New(DefaultConfig())

	steps := e.NextSteps("Mike: Next steps: update the roadmap; schedule the retro, circulate the notes.")
	assert.Equal(t, []string{"update the roadmap", "schedule the retro", "circulate the notes"}, steps)
}

func TestSentiment(t *testing.T) {
	e := New(DefaultConfig())

	tests := []struct {
		name string
		text string
		want summary.Sentiment
	}{
		{"no signal", "We reviewed the agenda items in order.", summary.SentimentNeutral},
		{"only positive", "Great progress, excellent work everyone.", summary.SentimentPositive},
		{"only negative", "The delay is a real problem and a risk.", summary.SentimentNegative},
		{"positive dominates", "Great great great work, one small concern though.", summary.SentimentPositive},
		{"balanced", "Great progress but the delay worries me.", summary.SentimentMixed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Sentiment(tt.text))
		})
	}
}

func TestSummaryMentionsCounts(t *testing.T) {
	e := New(DefaultConfig())

	participants := []string{"John", "Sarah Chen"}
	topics := []string{"Budget", "Roadmap"}
	actions := []summary.ActionItem{{Task: "draft plan"}}
	decisions := []summary.Decision{{Decision: "ship"}, {Decision: "hire"}}

	got := e.Summary(strings.Repeat("word ", 450), participants, topics, actions, decisions)
	assert.Contains(t, got, "approximately 3 minutes")
	assert.Contains(t, got, "2 participants")
	assert.Contains(t, got, "Budget and Roadmap")
	assert.Contains(t, got, "2 decisions were reached")
	assert.Contains(t, got, "1 action item was assigned")
}

func TestSummaryInfersMeetingType(t *testing.T) {
	e := New(DefaultConfig())

	got := e.Summary("quick daily standup sync", nil, nil, nil, nil)
	assert.Contains(t, got, "standup meeting")
}
