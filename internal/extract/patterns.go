package extract

import "regexp"

// Speaker-signature patterns for participant extraction, tried in order.
var participantPatterns = []*regexp.Regexp{
	// "Name:" line prefix, the most common transcript format.
	regexp.MustCompile(`(?m)^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?):\s`),
	// "[00:12:03] Name:" timestamped turns.
	regexp.MustCompile(`\[\d{2}:\d{2}(?::\d{2})?\]\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?):`),
	// "<Name>" IRC-style turns.
	regexp.MustCompile(`<([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)>`),
	// Reported speech.
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:said|mentioned|asked|replied|responded|noted)`),
	// Attribution phrases.
	regexp.MustCompile(`(?:according to|from|by)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
}

// Sentence-initial words that look like names to the patterns above.
var participantFalsePositives = map[string]bool{
	"The": true, "This": true, "That": true, "And": true, "But": true,
	"So": true, "Or": true, "If": true, "When": true, "Where": true,
	"How": true, "What": true, "Why": true, "Then": true, "Also": true,
	"Next": true, "Team": true, "Meeting": true, "We": true, "He": true,
	"She": true, "They": true, "It": true, "Everyone": true,
	"Someone": true, "Let": true, "Action": true, "Note": true,
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true, "January": true,
	"February": true, "March": true, "April": true, "May": true,
	"June": true, "July": true, "August": true, "September": true,
	"October": true, "November": true, "December": true,
}

// Speaker turn prefix, used to attribute first-person commitments.
var speakerTurnPattern = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?):\s*(.*)$`)

// Action-item assignment patterns, applied per line after the speaker
// prefix is stripped.
var (
	actionDirectPattern      = regexp.MustCompile(`(?i)^(?:action item|todo|follow[- ]?up)[:.]\s*(.+)$`)
	actionFirstPersonPattern = regexp.MustCompile(`(?i)^i(?:'ll| will| should| need to| have to| must)\s+(.+)$`)
	actionAssigneePattern    = regexp.MustCompile(`^([A-Z][a-z]+)\s+(?:will|should|needs? to|has to|must)\s+(.+)$`)
	actionAssignToPattern    = regexp.MustCompile(`(?i)(?:assign(?:ed)? to|give to)\s+([A-Za-z]+)[:.]?\s*(.+)$`)
	actionMentionPattern     = regexp.MustCompile(`^@(\w+)[:.]?\s+(.+)$`)
)

// Timeline sub-pass patterns. The captured expression becomes the due
// date verbatim; nothing is guessed.
var dueDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:by|due|before)\s+((?:mon|tues|wednes|thurs|fri|satur|sun)day)`),
	regexp.MustCompile(`(?i)(?:by|due|before)\s+(tomorrow|end of (?:day|week|month|quarter))`),
	regexp.MustCompile(`(?i)(?:by|due|before)\s+(\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(?i)(?:by|due|before)\s+(\d{1,2}/\d{1,2}(?:/\d{2,4})?)`),
	regexp.MustCompile(`(?i)(?:by|due|before)\s+((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2})`),
	regexp.MustCompile(`(?i)\b(in\s+\d+\s+(?:day|week|month)s?)\b`),
}

// Decision-verb patterns.
var decisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:decided|agreed|resolved|concluded)(?:\s+(?:to|that))?[,:.]?\s+(.+)$`),
	regexp.MustCompile(`(?im)^(?:decision|resolution)[:.]\s*(.+)$`),
	regexp.MustCompile(`(?im)(?:consensus|unanimously)(?:\s+\w+)?[,:.]?\s+(.+)$`),
}

// Decision-maker patterns, searched in the context window around a
// decision.
var decisionMakerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][a-z]+)\s+(?:decided|agreed|approved|resolved)`),
	regexp.MustCompile(`(?i)(?:decision by|made by)\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`([A-Z][a-z]+):\s*[^.\n]*(?:decided|agreed)`),
}

var rationalePattern = regexp.MustCompile(`(?i)(?:because|since|due to)\s+([^.\n]{10,120})`)

// Risk-marker patterns.
var riskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:risk|concern|worried about|blocker)[:.]?\s+(.+)$`),
	regexp.MustCompile(`(?im)(?:might|could|may)\s+(?:be a problem|cause|lead to|break|block|slip)\s*(.*)$`),
	regexp.MustCompile(`(?im)(?:potential|possible)\s+(?:issue|problem|delay|regression)\s*(?:with|in|around)?\s*(.*)$`),
}

var (
	mitigationPattern = regexp.MustCompile(`(?i)(?:mitigat(?:e|ion)\w*|to address this|work around)[:,]?\s+([^.\n]{10,120})`)
	riskOwnerPattern  = regexp.MustCompile(`(?i)(?:owned by|owner[:.]?)\s+([A-Z][a-z]+)`)
)

// Story grammar: "as a X, I want Y, so that Z".
var (
	userStoryPattern        = regexp.MustCompile(`(?i)as\s+an?\s+(.+?),\s*i\s+want\s+(.+?),?\s*so\s+that\s+([^.\n]+)`)
	acceptanceCriteriaPattern = regexp.MustCompile(`(?i)acceptance criteria[:.]\s*(.+)$`)
)

// Next-step patterns.
var nextStepPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^.*?next steps?[:.]\s*(.+)$`),
	regexp.MustCompile(`(?im)^.*?follow[- ]?up[:.]\s*(.+)$`),
	regexp.MustCompile(`(?im)^.*?action plan[:.]\s*(.+)$`),
}

// Priority inference keyword tables.
var (
	highPriorityKeywords = []string{"urgent", "asap", "immediately", "critical", "must", "required", "deadline", "due", "blocker"}
	lowPriorityKeywords  = []string{"consider", "maybe", "eventually", "nice to have", "someday", "when we get time"}
)

// Impact inference keyword tables.
var (
	highImpactKeywords = []string{"budget", "hire", "launch", "cancel", "strategic", "critical", "major", "security", "outage", "customer"}
	lowImpactKeywords  = []string{"minor", "small", "quick", "simple", "temporary", "cosmetic"}
)

// Likelihood inference keyword tables.
var (
	highLikelihoodKeywords = []string{"likely", "probably", "almost certainly", "already happening", "keeps happening"}
	lowLikelihoodKeywords  = []string{"unlikely", "remote", "edge case", "rare", "worst case"}
)

// Sentiment keyword tables for the rule-based path.
var (
	positiveSentimentKeywords = []string{"great", "good", "excellent", "happy", "excited", "love", "perfect", "well done", "nice work", "agreed"}
	negativeSentimentKeywords = []string{"concern", "problem", "issue", "worried", "frustrated", "blocked", "delay", "risk", "failed", "behind schedule"}
)

// Filler prefixes that mark a fragment as noise.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:um|uh|oh|ah|well|so|like|you know)\b`),
	regexp.MustCompile(`(?i)^(?:yeah|yes|no|okay|right|sure|exactly)\b\s*$`),
	regexp.MustCompile(`^\W*$`),
}

// Leading connectives stripped from extracted fragments.
var leadingConnectivePattern = regexp.MustCompile(`(?i)^(?:that|to|and|but|so|then)\s+`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Meeting-type keyword tables for executive-summary synthesis. Ordered so
// inference is deterministic when several types match.
var meetingTypes = []struct {
	name     string
	keywords []string
}{
	{"standup", []string{"standup", "daily", "scrum", "status update"}},
	{"planning", []string{"planning", "roadmap", "milestone", "sprint planning", "project plan"}},
	{"retrospective", []string{"retrospective", "retro", "what went well", "lessons learned"}},
	{"one-on-one", []string{"1:1", "one on one", "performance", "career"}},
	{"all-hands", []string{"all hands", "company update", "quarterly", "town hall"}},
	{"client", []string{"client", "customer call", "stakeholder", "demo"}},
	{"interview", []string{"interview", "candidate", "hiring", "recruiting"}},
}
