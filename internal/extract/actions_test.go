package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/minuted/internal/summary"
)

func TestActionItemsAttributeSpeakerCommitments(t *testing.T) {
	e := New(DefaultConfig())

	items := e.ActionItems("John: I will finish the report by Friday.")
	require.Len(t, items, 1)
	assert.Equal(t, "finish the report by Friday", items[0].Task)
	assert.Equal(t, "John", items[0].Assignee)
	require.NotNil(t, items[0].DueDate)
	assert.Equal(t, "Friday", *items[0].DueDate)
	assert.Equal(t, summary.PriorityMedium, items[0].Priority)
}

func TestActionItemsPatterns(t *testing.T) {
	e := New(DefaultConfig())

	tests := []struct {
		name     string
		text     string
		task     string
		assignee string
		dueDate  string
	}{
		{
			name:     "explicit annotation with named assignee",
			text:     "Action item: Mike will update the deck by 12/25.",
			task:     "update the deck by 12/25",
			assignee: "Mike",
			dueDate:  "12/25",
		},
		{
			name:     "annotation without assignee",
			text:     "Todo: circulate the minutes.",
			task:     "circulate the minutes",
			assignee: summary.UnknownAssignee,
		},
		{
			name:     "third person assignment",
			text:     "Priya should draft the incident summary by end of week.",
			task:     "draft the incident summary by end of week",
			assignee: "Priya",
			dueDate:  "end of week",
		},
		{
			name:     "mention assignment",
			text:     "@deepak: review the schema migration in 2 days.",
			task:     "review the schema migration in 2 days",
			assignee: "Deepak",
			dueDate:  "in 2 days",
		},
		{
			name:     "first person contraction without date",
			text:     "Sarah: I'll send the notes tomorrow.",
			task:     "send the notes tomorrow",
			assignee: "Sarah",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := e.ActionItems(tt.text)
			require.Len(t, items, 1)
			assert.Equal(t, tt.task, items[0].Task)
			assert.Equal(t, tt.assignee, items[0].Assignee)
			if tt.dueDate == "" {
				assert.Nil(t, items[0].DueDate)
			} else {
				require.NotNil(t, items[0].DueDate)
				assert.Equal(t, tt.dueDate, *items[0].DueDate)
			}
		})
	}
}

func TestActionItemsPriorityKeywords(t *testing.T) {
	e := New(DefaultConfig())

	high := e.ActionItems("Tom: I need to fix the login bug asap.")
	require.Len(t, high, 1)
	assert.Equal(t, summary.PriorityHigh, high[0].Priority)

	low := e.ActionItems("Tom: I should consider renaming the package eventually.")
	require.Len(t, low, 1)
	assert.Equal(t, summary.PriorityLow, low[0].Priority)
}

func TestActionItemsDeduplicate(t *testing.T) {
	e := New(DefaultConfig())

	text := "John: I will finish the report.\nJohn: I will finish the report."
	assert.Len(t, e.ActionItems(text), 1)
}

func TestActionItemsSkipNoise(t *testing.T) {
	e := New(DefaultConfig())

	assert.Empty(t, e.ActionItems("Um, yeah.\nOkay\n\nSounds good to me."))
}

func TestActionItemsCarryContext(t *testing.T) {
	e := New(DefaultConfig())

	text := "We reviewed the release checklist first.\nJohn: I will finish the report.\nThen the call moved on."
	items := e.ActionItems(text)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Context, "release checklist")
	assert.Contains(t, items[0].Context, "finish the report")
}
