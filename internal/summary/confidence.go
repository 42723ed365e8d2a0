package summary

// Confidence weights. Sections-present dominates, entry completeness
// refines, and any repair zeroes the cleanliness component.
const (
	weightSections = 0.5
	weightEntries  = 0.3
	weightClean    = 0.2
)

// scoreConfidence computes a [0,1] quality estimate for a validated
// summary: (a) the fraction of schema sections present and non-empty,
// (b) the fraction of entries whose optional sub-fields are filled, and
// (c) whether any repair was needed. The score drives provider fallback
// decisions, not just observability.
func scoreConfidence(s *StructuredSummary, repaired bool) float64 {
	sections := 0
	if s.Summary != "" {
		sections++
	}
	if len(s.KeyTopics) > 0 {
		sections++
	}
	if len(s.ActionItems) > 0 {
		sections++
	}
	if len(s.Decisions) > 0 {
		sections++
	}
	if len(s.Risks) > 0 {
		sections++
	}
	if len(s.UserStories) > 0 {
		sections++
	}
	if len(s.Participants) > 0 {
		sections++
	}
	if len(s.NextSteps) > 0 {
		sections++
	}
	if s.Sentiment.Valid() {
		sections++
	}
	sectionScore := float64(sections) / 9.0

	filled, total := 0, 0
	for _, a := range s.ActionItems {
		total++
		if a.Assignee != UnknownAssignee && a.Assignee != "" {
			filled++
		}
	}
	for _, d := range s.Decisions {
		total++
		if d.Rationale != "" {
			filled++
		}
	}
	for _, r := range s.Risks {
		total++
		if r.Mitigation != "" {
			filled++
		}
	}
	for _, u := range s.UserStories {
		total++
		if len(u.AcceptanceCriteria) > 0 {
			filled++
		}
	}
	entryScore := 0.0
	if total > 0 {
		entryScore = float64(filled) / float64(total)
	}

	cleanScore := 1.0
	if repaired {
		cleanScore = 0.0
	}

	score := weightSections*sectionScore + weightEntries*entryScore + weightClean*cleanScore
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
