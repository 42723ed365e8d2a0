package summary

import (
	"errors"
	"testing"
)

func TestValidate_CanonicalCandidate(t *testing.T) {
	c := Candidate{
		FieldSummary:   "Sprint planning for the payments project.",
		FieldKeyTopics: []any{"Payments", "Timeline"},
		FieldActionItems: []any{
			map[string]any{
				"task":     "Finish the migration runbook",
				"assignee": "John",
				"due_date": "2026-09-05",
				"priority": "high",
				"context":  "needed before the cutover",
			},
		},
		FieldDecisions: []any{
			map[string]any{
				"decision":  "Ship the beta on Friday",
				"made_by":   "Sarah",
				"rationale": "customers are waiting",
				"impact":    "high",
			},
		},
		FieldParticipants: []any{"john", "Sarah Chen", "Sarah"},
		FieldNextSteps:    []any{"Schedule the retro"},
		FieldSentiment:    "positive",
	}

	s, v, err := Validate(c)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if v.Repaired {
		t.Error("Repaired = true for a clean candidate")
	}
	if len(s.ActionItems) != 1 || s.ActionItems[0].Assignee != "John" {
		t.Errorf("ActionItems = %+v", s.ActionItems)
	}
	if s.ActionItems[0].DueDate == nil || *s.ActionItems[0].DueDate != "2026-09-05" {
		t.Errorf("DueDate = %v, want 2026-09-05", s.ActionItems[0].DueDate)
	}
	if s.Sentiment != SentimentPositive {
		t.Errorf("Sentiment = %q, want positive", s.Sentiment)
	}
	// "Sarah" collapses into "Sarah Chen"; "john" is title-cased.
	want := []string{"John", "Sarah Chen"}
	if len(s.Participants) != len(want) {
		t.Fatalf("Participants = %v, want %v", s.Participants, want)
	}
	for i := range want {
		if s.Participants[i] != want[i] {
			t.Errorf("Participants[%d] = %q, want %q", i, s.Participants[i], want[i])
		}
	}
}

func TestValidate_RepairsEquivalentShapes(t *testing.T) {
	tests := []struct {
		name  string
		c     Candidate
		check func(t *testing.T, s *StructuredSummary)
	}{
		{
			name: "string where list expected",
			c: Candidate{
				FieldSummary:   "s",
				FieldNextSteps: "Send the recap email",
			},
			check: func(t *testing.T, s *StructuredSummary) {
				if len(s.NextSteps) != 1 || s.NextSteps[0] != "Send the recap email" {
					t.Errorf("NextSteps = %v", s.NextSteps)
				}
			},
		},
		{
			name: "single mapping where entry list expected",
			c: Candidate{
				FieldSummary: "s",
				FieldRisks:   map[string]any{"risk": "vendor delay"},
			},
			check: func(t *testing.T, s *StructuredSummary) {
				if len(s.Risks) != 1 || s.Risks[0].Risk != "vendor delay" {
					t.Errorf("Risks = %v", s.Risks)
				}
			},
		},
		{
			name: "legacy field aliases",
			c: Candidate{
				"executive_summary": "distilled",
				"key_decisions": []any{
					map[string]any{"decision": "adopt the new format"},
				},
			},
			check: func(t *testing.T, s *StructuredSummary) {
				if s.Summary != "distilled" {
					t.Errorf("Summary = %q", s.Summary)
				}
				if len(s.Decisions) != 1 || s.Decisions[0].MadeBy != "Team" {
					t.Errorf("Decisions = %v", s.Decisions)
				}
			},
		},
		{
			name: "unrecognized enums clamp to defaults",
			c: Candidate{
				FieldSummary: "s",
				FieldActionItems: []any{
					map[string]any{"task": "do the thing", "priority": "urgent!!"},
				},
				FieldSentiment: "ecstatic",
			},
			check: func(t *testing.T, s *StructuredSummary) {
				if s.ActionItems[0].Priority != PriorityMedium {
					t.Errorf("Priority = %q, want medium", s.ActionItems[0].Priority)
				}
				if s.Sentiment != SentimentNeutral {
					t.Errorf("Sentiment = %q, want neutral", s.Sentiment)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, v, err := Validate(tt.c)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if !v.Repaired {
				t.Error("Repaired = false, want true")
			}
			tt.check(t, s)
		})
	}
}

func TestValidate_EmptyTopicsGetFloor(t *testing.T) {
	s, _, err := Validate(Candidate{FieldSummary: "short sync"})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(s.KeyTopics) != 1 || s.KeyTopics[0] != DefaultTopic {
		t.Errorf("KeyTopics = %v, want [%s]", s.KeyTopics, DefaultTopic)
	}
}

func TestValidate_SchemaInvalid(t *testing.T) {
	tests := []struct {
		name string
		c    Candidate
	}{
		{"nil candidate", nil},
		{"missing summary", Candidate{FieldKeyTopics: []any{"x"}}},
		{"blank summary", Candidate{FieldSummary: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Validate(tt.c); !errors.Is(err, ErrSchemaInvalid) {
				t.Errorf("Validate() error = %v, want ErrSchemaInvalid", err)
			}
		})
	}
}

func TestValidate_ConfidenceOrdering(t *testing.T) {
	rich := Candidate{
		FieldSummary:   "full meeting",
		FieldKeyTopics: []any{"a"},
		FieldActionItems: []any{
			map[string]any{"task": "t", "assignee": "Ann"},
		},
		FieldDecisions: []any{
			map[string]any{"decision": "d", "rationale": "because"},
		},
		FieldParticipants: []any{"Ann"},
		FieldNextSteps:    []any{"n"},
		FieldSentiment:    "neutral",
	}
	sparse := Candidate{FieldSummary: "bare"}

	_, richV, err := Validate(rich)
	if err != nil {
		t.Fatal(err)
	}
	_, sparseV, err := Validate(sparse)
	if err != nil {
		t.Fatal(err)
	}

	if richV.Confidence <= sparseV.Confidence {
		t.Errorf("rich confidence %.2f <= sparse confidence %.2f", richV.Confidence, sparseV.Confidence)
	}
	if richV.Confidence < 0 || richV.Confidence > 1 {
		t.Errorf("confidence %.2f out of range", richV.Confidence)
	}
}
