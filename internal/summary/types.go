package summary

// Priority ranks an action item or user story.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether the priority is a declared value.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Impact rates the consequence of a decision or risk.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Valid reports whether the impact is a declared value.
func (i Impact) Valid() bool {
	return i == ImpactHigh || i == ImpactMedium || i == ImpactLow
}

// Likelihood rates how probable a risk is.
type Likelihood string

const (
	LikelihoodHigh   Likelihood = "high"
	LikelihoodMedium Likelihood = "medium"
	LikelihoodLow    Likelihood = "low"
)

// Valid reports whether the likelihood is a declared value.
func (l Likelihood) Valid() bool {
	return l == LikelihoodHigh || l == LikelihoodMedium || l == LikelihoodLow
}

// Sentiment captures the overall tone of a meeting.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentMixed    Sentiment = "mixed"
)

// Valid reports whether the sentiment is a declared value.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative, SentimentMixed:
		return true
	}
	return false
}

// UnknownAssignee is the placeholder assignee for tasks without an owner.
const UnknownAssignee = "unknown"

// ActionItem is a task extracted from a transcript.
type ActionItem struct {
	Task     string   `json:"task"`
	Assignee string   `json:"assignee"`
	DueDate  *string  `json:"due_date"`
	Priority Priority `json:"priority"`
	Context  string   `json:"context"`
}

// Decision is a decision made during a meeting.
type Decision struct {
	Decision  string `json:"decision"`
	MadeBy    string `json:"made_by"`
	Rationale string `json:"rationale"`
	Impact    Impact `json:"impact"`
}

// Risk is a concern or hazard raised during a meeting.
type Risk struct {
	Risk       string     `json:"risk"`
	Impact     Impact     `json:"impact"`
	Likelihood Likelihood `json:"likelihood"`
	Mitigation string     `json:"mitigation"`
	Owner      *string    `json:"owner"`
}

// UserStory is a requirement in "As a X, I want Y, so that Z" form.
type UserStory struct {
	Story              string   `json:"story"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	Priority           Priority `json:"priority"`
}

// StructuredSummary is the canonical, schema-valid output of transcript
// extraction. Field names and enum values are the wire contract.
type StructuredSummary struct {
	Summary      string       `json:"summary"`
	KeyTopics    []string     `json:"key_topics"`
	ActionItems  []ActionItem `json:"action_items"`
	Decisions    []Decision   `json:"decisions"`
	Risks        []Risk       `json:"risks"`
	UserStories  []UserStory  `json:"user_stories"`
	Participants []string     `json:"participants"`
	NextSteps    []string     `json:"next_steps"`
	Sentiment    Sentiment    `json:"sentiment"`
}
