package extract

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/minuted/internal/summary"
)

const defaultTopicCount = 10

// Config tunes the extractor.
type Config struct {
	// TopicCount caps the key topics list.
	TopicCount int
}

// DefaultConfig returns the standard extractor configuration.
func DefaultConfig() Config {
	return Config{TopicCount: defaultTopicCount}
}

// Extractor derives a structured summary candidate from transcript text
// using the pattern tables in this package. It holds no mutable state
// and is safe for concurrent use.
type Extractor struct {
	cfg Config
}

// New creates an Extractor. Zero or negative TopicCount falls back to
// the default.
func New(cfg Config) *Extractor {
	if cfg.TopicCount <= 0 {
		cfg.TopicCount = defaultTopicCount
	}
	return &Extractor{cfg: cfg}
}

// Candidate runs every extraction pass over the transcript and
// assembles the result as a loosely structured candidate in the
// canonical field layout. The same text always produces the same
// candidate.
func (e *Extractor) Candidate(text string) summary.Candidate {
	participants := e.Participants(text)
	actions := e.ActionItems(text)
	decisions := e.Decisions(text)
	risks := e.Risks(text)
	stories := e.UserStories(text)
	nextSteps := e.NextSteps(text)
	topics := e.KeyTopics(text)
	sentiment := e.Sentiment(text)

	return summary.Candidate{
		summary.FieldSummary:      e.Summary(text, participants, topics, actions, decisions),
		summary.FieldKeyTopics:    toAnySlice(topics),
		summary.FieldActionItems:  actionsToCandidates(actions),
		summary.FieldDecisions:    decisionsToCandidates(decisions),
		summary.FieldRisks:        risksToCandidates(risks),
		summary.FieldUserStories:  storiesToCandidates(stories),
		summary.FieldParticipants: toAnySlice(participants),
		summary.FieldNextSteps:    toAnySlice(nextSteps),
		summary.FieldSentiment:    string(sentiment),
	}
}

// Summary synthesizes an executive summary from the transcript and the
// other extraction passes. Duration is estimated at a 150 words per
// minute speaking rate.
func (e *Extractor) Summary(text string, participants, topics []string, actions []summary.ActionItem, decisions []summary.Decision) string {
	words := len(strings.Fields(text))
	minutes := words / 150
	lower := strings.ToLower(text)

	kind := "meeting"
	for _, mt := range meetingTypes {
		for _, kw := range mt.keywords {
			if strings.Contains(lower, kw) {
				kind = mt.name + " meeting"
				break
			}
		}
		if kind != "meeting" {
			break
		}
	}

	var b strings.Builder
	if minutes >= 1 {
		fmt.Fprintf(&b, "A %s lasting approximately %d minutes", kind, minutes)
	} else {
		fmt.Fprintf(&b, "A brief %s", kind)
	}
	switch n := len(participants); {
	case n == 1:
		fmt.Fprintf(&b, " with %s", participants[0])
	case n > 1:
		fmt.Fprintf(&b, " with %d participants", n)
	}
	b.WriteString(".")

	if len(topics) > 0 && topics[0] != summary.DefaultTopic {
		n := len(topics)
		if n > 3 {
			n = 3
		}
		fmt.Fprintf(&b, " Discussion focused on %s.", joinNatural(topics[:n]))
	}
	if len(decisions) > 0 {
		fmt.Fprintf(&b, " %d decision%s reached.", len(decisions), plural(len(decisions), " was", "s were"))
	}
	if len(actions) > 0 {
		fmt.Fprintf(&b, " %d action item%s assigned.", len(actions), plural(len(actions), " was", "s were"))
	}
	return b.String()
}

// Sentiment classifies the overall tone from keyword balance.
func (e *Extractor) Sentiment(text string) summary.Sentiment {
	lower := strings.ToLower(text)
	var pos, neg int
	for _, kw := range positiveSentimentKeywords {
		pos += strings.Count(lower, kw)
	}
	for _, kw := range negativeSentimentKeywords {
		neg += strings.Count(lower, kw)
	}
	switch {
	case pos == 0 && neg == 0:
		return summary.SentimentNeutral
	case neg == 0:
		return summary.SentimentPositive
	case pos == 0:
		return summary.SentimentNegative
	case pos >= 2*neg:
		return summary.SentimentPositive
	case neg >= 2*pos:
		return summary.SentimentNegative
	default:
		return summary.SentimentMixed
	}
}

func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func actionsToCandidates(items []summary.ActionItem) []any {
	out := make([]any, len(items))
	for i, it := range items {
		m := map[string]any{
			"task":     it.Task,
			"assignee": it.Assignee,
			"priority": string(it.Priority),
			"context":  it.Context,
		}
		if it.DueDate != nil {
			m["due_date"] = *it.DueDate
		}
		out[i] = m
	}
	return out
}

func decisionsToCandidates(items []summary.Decision) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = map[string]any{
			"decision":  it.Decision,
			"made_by":   it.MadeBy,
			"rationale": it.Rationale,
			"impact":    string(it.Impact),
		}
	}
	return out
}

func risksToCandidates(items []summary.Risk) []any {
	out := make([]any, len(items))
	for i, it := range items {
		m := map[string]any{
			"risk":       it.Risk,
			"impact":     string(it.Impact),
			"likelihood": string(it.Likelihood),
			"mitigation": it.Mitigation,
		}
		if it.Owner != nil {
			m["owner"] = *it.Owner
		}
		out[i] = m
	}
	return out
}

func storiesToCandidates(items []summary.UserStory) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = map[string]any{
			"story":               it.Story,
			"acceptance_criteria": toAnySlice(it.AcceptanceCriteria),
			"priority":            string(it.Priority),
		}
	}
	return out
}
