package provider

import "github.com/fyrsmithlabs/minuted/internal/summary"

// canonicalFields is the merge order for partial model output.
var canonicalFields = []string{
	summary.FieldSummary,
	summary.FieldKeyTopics,
	summary.FieldActionItems,
	summary.FieldDecisions,
	summary.FieldRisks,
	summary.FieldUserStories,
	summary.FieldParticipants,
	summary.FieldNextSteps,
	summary.FieldSentiment,
}

// mergeCandidates combines partial model output with the pattern
// extractor's result. The model value wins per field when present and
// well-formed; pattern output fills the gaps.
func mergeCandidates(model, pattern summary.Candidate) summary.Candidate {
	merged := make(summary.Candidate, len(canonicalFields))
	for _, field := range canonicalFields {
		if v, ok := model.Get(field); ok && filled(v) {
			merged[field] = v
			continue
		}
		if v, ok := pattern[field]; ok {
			merged[field] = v
		}
	}
	return merged
}

// filled reports whether a candidate value carries usable content.
func filled(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
