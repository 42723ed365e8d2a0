package summary

// Candidate is the raw, possibly-invalid output of one provider
// invocation: a loosely structured mapping mirroring the canonical schema
// fields. It exists only within one orchestration attempt; Validate turns
// it into a StructuredSummary or rejects it.
type Candidate map[string]any

// Canonical candidate keys. Providers should emit these, but Validate
// also accepts the legacy aliases below.
const (
	FieldSummary      = "summary"
	FieldKeyTopics    = "key_topics"
	FieldActionItems  = "action_items"
	FieldDecisions    = "decisions"
	FieldRisks        = "risks"
	FieldUserStories  = "user_stories"
	FieldParticipants = "participants"
	FieldNextSteps    = "next_steps"
	FieldSentiment    = "sentiment"
)

// fieldAliases maps legacy key names, still produced by some models, to
// their canonical form.
var fieldAliases = map[string]string{
	"executive_summary": FieldSummary,
	"key_decisions":     FieldDecisions,
	"topics":            FieldKeyTopics,
}

// Get returns the value for a canonical key, resolving aliases.
func (c Candidate) Get(key string) (any, bool) {
	v, _, ok := c.lookup(key)
	return v, ok
}

// lookup returns the value for the canonical key, falling back to any
// alias, and reports whether an alias was used.
func (c Candidate) lookup(key string) (val any, aliased, ok bool) {
	if v, present := c[key]; present {
		return v, false, true
	}
	for alias, canonical := range fieldAliases {
		if canonical != key {
			continue
		}
		if v, present := c[alias]; present {
			return v, true, true
		}
	}
	return nil, false, false
}
