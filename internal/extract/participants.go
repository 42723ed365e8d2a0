package extract

import "github.com/fyrsmithlabs/minuted/internal/summary"

// Participants extracts the distinct speakers and mentioned people from
// the transcript. Names are normalized and alias forms collapsed, so
// "Sarah" and "Sarah Chen" count once.
func (e *Extractor) Participants(text string) []string {
	var found []string
	for _, pat := range participantPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			name := m[1]
			if participantFalsePositives[name] {
				continue
			}
			found = append(found, name)
		}
	}
	return summary.CollapseNames(found)
}
