package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fyrsmithlabs/minuted/internal/summary"
)

// Common words excluded from topic frequency counting.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"has": true, "him": true, "his": true, "how": true, "its": true,
	"may": true, "new": true, "now": true, "old": true, "see": true,
	"two": true, "way": true, "who": true, "did": true, "get": true,
	"let": true, "say": true, "she": true, "too": true, "use": true,
	"that": true, "with": true, "have": true, "this": true, "will": true,
	"your": true, "from": true, "they": true, "know": true, "want": true,
	"been": true, "good": true, "much": true, "some": true, "time": true,
	"very": true, "when": true, "come": true, "here": true, "just": true,
	"like": true, "long": true, "make": true, "many": true, "over": true,
	"such": true, "take": true, "than": true, "them": true, "well": true,
	"were": true, "what": true, "going": true, "think": true, "about": true,
	"would": true, "there": true, "could": true, "should": true, "right": true,
	"really": true, "thing": true, "things": true, "yeah": true, "okay": true,
	"need": true, "needs": true, "also": true, "into": true, "then": true,
	"because": true, "maybe": true, "actually": true, "something": true,
	"meeting": true, "discuss": true, "discussed": true, "talk": true,
	"talked": true, "said": true, "mentioned": true, "next": true,
	"week": true, "team": true, "everyone": true, "thanks": true,
}

// Multi-word domain phrases counted ahead of single words.
var topicPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b((?:product|project|sprint|release) (?:launch|plan|planning|timeline|scope|review))\b`),
	regexp.MustCompile(`(?i)\b((?:user|customer) (?:feedback|research|experience|stories|interviews))\b`),
	regexp.MustCompile(`(?i)\b((?:budget|resource|capacity) (?:allocation|planning|constraints))\b`),
	regexp.MustCompile(`(?i)\b((?:technical|tech) debt)\b`),
	regexp.MustCompile(`(?i)\b((?:performance|security|infrastructure) (?:review|issues?|improvements?|testing))\b`),
	regexp.MustCompile(`(?i)\b((?:hiring|onboarding) (?:plan|process|pipeline))\b`),
	regexp.MustCompile(`(?i)\b((?:q[1-4]|quarterly) (?:goals?|targets?|planning|results))\b`),
	regexp.MustCompile(`(?i)\b((?:api|database|schema) (?:design|migration|changes?))\b`),
}

const (
	minWordLen     = 3
	minWordCount   = 3
	minPhraseCount = 2
)

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// KeyTopics clusters the transcript into its most frequent subjects.
// Phrases outrank single words; ties break alphabetically so the same
// transcript always yields the same ordering. A transcript with no
// qualifying topics gets the default topic.
func (e *Extractor) KeyTopics(text string) []string {
	type scored struct {
		topic string
		count int
	}
	var topics []scored
	covered := make(map[string]bool)

	for _, pat := range topicPhrasePatterns {
		counts := make(map[string]int)
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			counts[strings.ToLower(m[1])]++
		}
		for phrase, n := range counts {
			if n < minPhraseCount {
				continue
			}
			topics = append(topics, scored{titleCase(phrase), n})
			for _, w := range strings.Fields(phrase) {
				covered[w] = true
			}
		}
	}

	wordCounts := make(map[string]int)
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(w) < minWordLen || stopwords[w] || covered[w] {
			continue
		}
		wordCounts[w]++
	}
	for w, n := range wordCounts {
		if n < minWordCount {
			continue
		}
		topics = append(topics, scored{titleCase(w), n})
	}

	sort.Slice(topics, func(i, j int) bool {
		if topics[i].count != topics[j].count {
			return topics[i].count > topics[j].count
		}
		return topics[i].topic < topics[j].topic
	})

	if len(topics) > e.cfg.TopicCount {
		topics = topics[:e.cfg.TopicCount]
	}
	if len(topics) == 0 {
		return []string{summary.DefaultTopic}
	}
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = t.topic
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
