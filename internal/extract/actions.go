package extract

import (
	"strings"

	"github.com/fyrsmithlabs/minuted/internal/summary"
)

const (
	maxTaskLen    = 450
	contextRadius = 100
)

// ActionItems scans the transcript line by line for task commitments.
// Speaker prefixes attribute first-person commitments to the speaker;
// a timeline sub-pass attaches due-date expressions verbatim.
func (e *Extractor) ActionItems(text string) []summary.ActionItem {
	var items []summary.ActionItem
	seen := make(map[string]bool)

	offset := 0
	for _, rawLine := range strings.Split(text, "\n") {
		lineStart := offset
		offset += len(rawLine) + 1
		line := strings.TrimSpace(rawLine)
		if line == "" || isNoise(line) {
			continue
		}

		speaker := ""
		body := line
		if m := speakerTurnPattern.FindStringSubmatch(line); m != nil {
			speaker = m[1]
			body = strings.TrimSpace(m[2])
		}

		task, assignee, ok := matchAction(body, speaker)
		if !ok {
			continue
		}
		task = cleanTask(task)
		if task == "" || isNoise(task) {
			continue
		}
		key := strings.ToLower(whitespacePattern.ReplaceAllString(task, " "))
		if seen[key] {
			continue
		}
		seen[key] = true

		if assignee == "" {
			assignee = summary.UnknownAssignee
		} else {
			assignee = summary.NormalizeName(assignee)
		}

		items = append(items, summary.ActionItem{
			Task:     task,
			Assignee: assignee,
			DueDate:  dueDate(line),
			Priority: inferPriority(line),
			Context:  contextAround(text, lineStart, len(rawLine)),
		})
	}
	return items
}

// matchAction tries the assignment patterns in precedence order and
// returns the raw task text and the assignee, if one can be named.
func matchAction(body, speaker string) (task, assignee string, ok bool) {
	if m := actionDirectPattern.FindStringSubmatch(body); m != nil {
		inner := strings.TrimSpace(m[1])
		if am := actionAssigneePattern.FindStringSubmatch(inner); am != nil && !participantFalsePositives[am[1]] {
			return am[2], am[1], true
		}
		return inner, "", true
	}
	if m := actionFirstPersonPattern.FindStringSubmatch(body); m != nil {
		return m[1], speaker, true
	}
	if m := actionAssigneePattern.FindStringSubmatch(body); m != nil {
		if participantFalsePositives[m[1]] {
			return "", "", false
		}
		return m[2], m[1], true
	}
	if m := actionAssignToPattern.FindStringSubmatch(body); m != nil {
		return m[2], m[1], true
	}
	if m := actionMentionPattern.FindStringSubmatch(body); m != nil {
		return m[2], m[1], true
	}
	return "", "", false
}

// dueDate runs the timeline sub-pass over the full line and returns the
// first date expression verbatim, or nil when none resolves.
func dueDate(line string) *string {
	for _, pat := range dueDatePatterns {
		if m := pat.FindStringSubmatch(line); m != nil {
			d := m[1]
			return &d
		}
	}
	return nil
}

func inferPriority(line string) summary.Priority {
	lower := strings.ToLower(line)
	for _, kw := range highPriorityKeywords {
		if strings.Contains(lower, kw) {
			return summary.PriorityHigh
		}
	}
	for _, kw := range lowPriorityKeywords {
		if strings.Contains(lower, kw) {
			return summary.PriorityLow
		}
	}
	return summary.PriorityMedium
}

func inferImpact(text string) summary.Impact {
	lower := strings.ToLower(text)
	for _, kw := range highImpactKeywords {
		if strings.Contains(lower, kw) {
			return summary.ImpactHigh
		}
	}
	for _, kw := range lowImpactKeywords {
		if strings.Contains(lower, kw) {
			return summary.ImpactLow
		}
	}
	return summary.ImpactMedium
}

func inferLikelihood(text string) summary.Likelihood {
	lower := strings.ToLower(text)
	for _, kw := range highLikelihoodKeywords {
		if strings.Contains(lower, kw) {
			return summary.LikelihoodHigh
		}
	}
	for _, kw := range lowLikelihoodKeywords {
		if strings.Contains(lower, kw) {
			return summary.LikelihoodLow
		}
	}
	return summary.LikelihoodMedium
}

// cleanTask strips leading connectives, cuts at the first sentence
// boundary, collapses whitespace, trims trailing punctuation, and caps
// the length.
func cleanTask(task string) string {
	task = strings.TrimSpace(task)
	task = leadingConnectivePattern.ReplaceAllString(task, "")
	if i := strings.Index(task, ". "); i > 0 {
		task = task[:i]
	}
	task = whitespacePattern.ReplaceAllString(task, " ")
	task = strings.TrimRight(task, ".,;: ")
	if len(task) > maxTaskLen {
		task = strings.TrimSpace(task[:maxTaskLen])
	}
	return task
}

// contextAround returns the surrounding transcript window, whitespace
// collapsed.
func contextAround(text string, start, length int) string {
	lo := start - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := start + length + contextRadius
	if hi > len(text) {
		hi = len(text)
	}
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text[lo:hi], " "))
}

func isNoise(s string) bool {
	for _, pat := range noisePatterns {
		if pat.MatchString(s) {
			return true
		}
	}
	return false
}
