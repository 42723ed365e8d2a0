package summary

import (
	"fmt"
	"strings"
)

// DefaultTopic is substituted when a candidate carries no topics at all,
// so that completed results always satisfy the schema.
const DefaultTopic = "General Discussion"

// Validation reports how a candidate fared: whether any repair was needed
// and the confidence score of the validated result.
type Validation struct {
	Repaired   bool
	Confidence float64
}

// Validate checks a candidate against the canonical schema, repairing
// obviously-equivalent shapes (single string for a list, legacy key
// aliases, out-of-range enum values) rather than failing outright.
// It fails with ErrSchemaInvalid only when the candidate is nil or the
// top-level summary is missing or empty after repair attempts.
func Validate(c Candidate) (*StructuredSummary, Validation, error) {
	if c == nil {
		return nil, Validation{}, fmt.Errorf("%w: payload is not a key-value mapping", ErrSchemaInvalid)
	}

	log := &repairLog{}
	s := &StructuredSummary{}

	s.Summary = strings.TrimSpace(log.str(c, FieldSummary))
	if s.Summary == "" {
		return nil, Validation{}, fmt.Errorf("%w: top-level summary missing or empty", ErrSchemaInvalid)
	}

	s.KeyTopics = dedupeOrdered(log.strList(c, FieldKeyTopics))
	if len(s.KeyTopics) == 0 {
		s.KeyTopics = []string{DefaultTopic}
		log.note()
	}

	s.ActionItems = log.actionItems(c)
	s.Decisions = log.decisions(c)
	s.Risks = log.risks(c)
	s.UserStories = log.userStories(c)
	s.Participants = CollapseNames(log.strList(c, FieldParticipants))
	s.NextSteps = log.strList(c, FieldNextSteps)
	s.Sentiment = log.sentiment(c)

	v := Validation{
		Repaired:   log.repaired,
		Confidence: scoreConfidence(s, log.repaired),
	}
	return s, v, nil
}

// repairLog accumulates whether any repair happened during validation.
type repairLog struct {
	repaired bool
}

func (l *repairLog) note() { l.repaired = true }

// str coerces a top-level field to a string. A one-element string list is
// unwrapped as a repair.
func (l *repairLog) str(c Candidate, key string) string {
	raw, aliased, ok := c.lookup(key)
	if !ok {
		return ""
	}
	if aliased {
		l.note()
	}
	switch v := raw.(type) {
	case string:
		return v
	case []any:
		if len(v) == 1 {
			if s, ok := v[0].(string); ok {
				l.note()
				return s
			}
		}
	case []string:
		if len(v) == 1 {
			l.note()
			return v[0]
		}
	}
	return ""
}

// strList coerces a top-level field to a list of strings. A bare string
// becomes a one-element list as a repair; non-string elements are dropped.
func (l *repairLog) strList(c Candidate, key string) []string {
	raw, aliased, ok := c.lookup(key)
	if !ok || raw == nil {
		return nil
	}
	if aliased {
		l.note()
	}
	return l.anyToStrList(raw)
}

func (l *repairLog) anyToStrList(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return trimAll(v)
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		l.note()
		return []string{strings.TrimSpace(v)}
	case []any:
		var out []string
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				l.note()
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	l.note()
	return nil
}

// entries coerces a top-level field to a list of mappings. A single bare
// mapping is wrapped as a repair; non-mapping elements are dropped.
func (l *repairLog) entries(c Candidate, key string) []map[string]any {
	raw, aliased, ok := c.lookup(key)
	if !ok || raw == nil {
		return nil
	}
	if aliased {
		l.note()
	}
	switch v := raw.(type) {
	case []map[string]any:
		return v
	case map[string]any:
		l.note()
		return []map[string]any{v}
	case []any:
		var out []map[string]any
		for _, e := range v {
			m, ok := e.(map[string]any)
			if !ok {
				l.note()
				continue
			}
			out = append(out, m)
		}
		return out
	}
	l.note()
	return nil
}

func (l *repairLog) actionItems(c Candidate) []ActionItem {
	var out []ActionItem
	for _, m := range l.entries(c, FieldActionItems) {
		task := strings.TrimSpace(entryStr(m, "task"))
		if task == "" {
			l.note()
			continue
		}
		assignee := strings.TrimSpace(entryStr(m, "assignee"))
		if assignee == "" {
			assignee = UnknownAssignee
		}
		out = append(out, ActionItem{
			Task:     task,
			Assignee: assignee,
			DueDate:  entryOptStr(m, "due_date"),
			Priority: l.priority(entryStr(m, "priority")),
			Context:  strings.TrimSpace(entryStr(m, "context")),
		})
	}
	return out
}

func (l *repairLog) decisions(c Candidate) []Decision {
	var out []Decision
	for _, m := range l.entries(c, FieldDecisions) {
		text := strings.TrimSpace(entryStr(m, "decision"))
		if text == "" {
			l.note()
			continue
		}
		madeBy := strings.TrimSpace(entryStr(m, "made_by"))
		if madeBy == "" {
			madeBy = "Team"
		}
		out = append(out, Decision{
			Decision:  text,
			MadeBy:    madeBy,
			Rationale: strings.TrimSpace(entryStr(m, "rationale")),
			Impact:    l.impact(entryStr(m, "impact")),
		})
	}
	return out
}

func (l *repairLog) risks(c Candidate) []Risk {
	var out []Risk
	for _, m := range l.entries(c, FieldRisks) {
		text := strings.TrimSpace(entryStr(m, "risk"))
		if text == "" {
			l.note()
			continue
		}
		out = append(out, Risk{
			Risk:       text,
			Impact:     l.impact(entryStr(m, "impact")),
			Likelihood: l.likelihood(entryStr(m, "likelihood")),
			Mitigation: strings.TrimSpace(entryStr(m, "mitigation")),
			Owner:      entryOptStr(m, "owner"),
		})
	}
	return out
}

func (l *repairLog) userStories(c Candidate) []UserStory {
	var out []UserStory
	for _, m := range l.entries(c, FieldUserStories) {
		story := strings.TrimSpace(entryStr(m, "story"))
		if story == "" {
			l.note()
			continue
		}
		out = append(out, UserStory{
			Story:              story,
			AcceptanceCriteria: l.anyToStrList(m["acceptance_criteria"]),
			Priority:           l.priority(entryStr(m, "priority")),
		})
	}
	return out
}

// Enum clamping. An unrecognized value maps to the documented default
// (medium, or neutral for sentiment) and counts as a repair, keeping
// downstream consumers robust against model drift.

func (l *repairLog) priority(raw string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PriorityMedium
	}
	if !p.Valid() {
		l.note()
		return PriorityMedium
	}
	return p
}

func (l *repairLog) impact(raw string) Impact {
	i := Impact(strings.ToLower(strings.TrimSpace(raw)))
	if i == "" {
		return ImpactMedium
	}
	if !i.Valid() {
		l.note()
		return ImpactMedium
	}
	return i
}

func (l *repairLog) likelihood(raw string) Likelihood {
	lk := Likelihood(strings.ToLower(strings.TrimSpace(raw)))
	if lk == "" {
		return LikelihoodMedium
	}
	if !lk.Valid() {
		l.note()
		return LikelihoodMedium
	}
	return lk
}

func (l *repairLog) sentiment(c Candidate) Sentiment {
	s := Sentiment(strings.ToLower(strings.TrimSpace(l.str(c, FieldSentiment))))
	if s == "" {
		return SentimentNeutral
	}
	if !s.Valid() {
		l.note()
		return SentimentNeutral
	}
	return s
}

// entryStr extracts a string sub-field from an entry mapping.
func entryStr(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// entryOptStr extracts an optional string sub-field; absent, null, or
// empty values stay nil rather than becoming malformed strings.
func entryOptStr(m map[string]any, key string) *string {
	v, ok := m[key].(string)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "null") || strings.EqualFold(v, "none") {
		return nil
	}
	return &v
}

// dedupeOrdered removes case-insensitive duplicates preserving first
// occurrence order.
func dedupeOrdered(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, s := range items {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func trimAll(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
