package extract

import (
	"strings"

	"github.com/fyrsmithlabs/minuted/internal/summary"
)

// Decisions extracts resolved outcomes. The decision maker is searched
// for in a context window around each match, falling back to "Team".
func (e *Extractor) Decisions(text string) []summary.Decision {
	var decisions []summary.Decision
	seen := make(map[string]bool)

	for _, pat := range decisionPatterns {
		for _, idx := range pat.FindAllStringSubmatchIndex(text, -1) {
			stmt := cleanFragment(text[idx[2]:idx[3]])
			if stmt == "" || isNoise(stmt) {
				continue
			}
			key := strings.ToLower(stmt)
			if seen[key] {
				continue
			}
			seen[key] = true

			window := contextAround(text, idx[0], idx[1]-idx[0])
			decisions = append(decisions, summary.Decision{
				Decision:  stmt,
				MadeBy:    decisionMaker(window),
				Rationale: rationale(window),
				Impact:    inferImpact(window),
			})
		}
	}
	return decisions
}

func decisionMaker(window string) string {
	for _, pat := range decisionMakerPatterns {
		if m := pat.FindStringSubmatch(window); m != nil && !participantFalsePositives[m[1]] {
			return summary.NormalizeName(m[1])
		}
	}
	return "Team"
}

func rationale(window string) string {
	if m := rationalePattern.FindStringSubmatch(window); m != nil {
		return cleanFragment(m[1])
	}
	return ""
}

// Risks extracts concerns and blockers, with mitigation and owner
// searched in the surrounding window.
func (e *Extractor) Risks(text string) []summary.Risk {
	var risks []summary.Risk
	seen := make(map[string]bool)

	for _, pat := range riskPatterns {
		for _, idx := range pat.FindAllStringSubmatchIndex(text, -1) {
			var stmt string
			if idx[2] >= 0 {
				stmt = cleanFragment(text[idx[2]:idx[3]])
			}
			if stmt == "" {
				stmt = cleanFragment(text[idx[0]:idx[1]])
			}
			if stmt == "" || isNoise(stmt) {
				continue
			}
			key := strings.ToLower(stmt)
			if seen[key] {
				continue
			}
			seen[key] = true

			window := contextAround(text, idx[0], idx[1]-idx[0])
			r := summary.Risk{
				Risk:       stmt,
				Impact:     inferImpact(window),
				Likelihood: inferLikelihood(window),
			}
			if m := mitigationPattern.FindStringSubmatch(window); m != nil {
				r.Mitigation = cleanFragment(m[1])
			}
			if m := riskOwnerPattern.FindStringSubmatch(window); m != nil && !participantFalsePositives[m[1]] {
				owner := summary.NormalizeName(m[1])
				r.Owner = &owner
			}
			risks = append(risks, r)
		}
	}
	return risks
}

// UserStories extracts "as a X, I want Y, so that Z" statements and any
// acceptance criteria annotated nearby.
func (e *Extractor) UserStories(text string) []summary.UserStory {
	var stories []summary.UserStory
	seen := make(map[string]bool)

	for _, idx := range userStoryPattern.FindAllStringSubmatchIndex(text, -1) {
		role := cleanFragment(text[idx[2]:idx[3]])
		want := cleanFragment(text[idx[4]:idx[5]])
		why := cleanFragment(text[idx[6]:idx[7]])
		if role == "" || want == "" {
			continue
		}
		story := "As " + withArticle(role) + ", I want " + want
		if why != "" {
			story += ", so that " + why
		}
		key := strings.ToLower(story)
		if seen[key] {
			continue
		}
		seen[key] = true

		window := contextAround(text, idx[0], idx[1]-idx[0])
		var criteria []string
		if m := acceptanceCriteriaPattern.FindStringSubmatch(window); m != nil {
			for _, c := range strings.Split(m[1], ";") {
				if c = cleanFragment(c); c != "" {
					criteria = append(criteria, c)
				}
			}
		}
		stories = append(stories, summary.UserStory{
			Story:              story,
			AcceptanceCriteria: criteria,
			Priority:           inferPriority(window),
		})
	}
	return stories
}

// NextSteps extracts planned follow-up activity. A single annotated
// line may carry several steps separated by commas or semicolons.
func (e *Extractor) NextSteps(text string) []string {
	var steps []string
	seen := make(map[string]bool)

	for _, pat := range nextStepPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			for _, part := range splitSteps(m[1]) {
				if part == "" || isNoise(part) {
					continue
				}
				key := strings.ToLower(part)
				if seen[key] {
					continue
				}
				seen[key] = true
				steps = append(steps, part)
			}
		}
	}
	return steps
}

func splitSteps(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ','
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, cleanFragment(p))
	}
	return out
}

func withArticle(noun string) string {
	if noun != "" && strings.ContainsRune("aeiouAEIOU", rune(noun[0])) {
		return "an " + noun
	}
	return "a " + noun
}

func cleanFragment(s string) string {
	s = strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
	return strings.TrimRight(s, ".,;: ")
}
