package summary

import (
	"sort"
	"strings"
)

// NormalizeName trims a participant name and title-cases each token.
func NormalizeName(name string) string {
	tokens := strings.Fields(name)
	for i, tok := range tokens {
		tokens[i] = capitalizeFirst(strings.ToLower(tok))
	}
	return strings.Join(tokens, " ")
}

// CollapseNames normalizes participant names, deduplicates them
// case-insensitively, and collapses short aliases into longer forms when
// one name is a token-boundary prefix of another ("Sarah" folds into
// "Sarah Chen"). The result is sorted for deterministic output.
func CollapseNames(names []string) []string {
	canonical := make(map[string]string)
	for _, n := range names {
		n = NormalizeName(n)
		if len(n) < 2 {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := canonical[key]; !ok {
			canonical[key] = n
		}
	}

	keys := make([]string, 0, len(canonical))
	for k := range canonical {
		keys = append(keys, k)
	}

	var out []string
	for _, k := range keys {
		alias := false
		for _, other := range keys {
			if k != other && isAliasOf(k, other) {
				alias = true
				break
			}
		}
		if !alias {
			out = append(out, canonical[k])
		}
	}

	sort.Strings(out)
	return out
}

// isAliasOf reports whether short is a token-boundary prefix of long.
// Both arguments must already be lowercased.
func isAliasOf(short, long string) bool {
	if len(short) >= len(long) {
		return false
	}
	if !strings.HasPrefix(long, short) {
		return false
	}
	return long[len(short)] == ' '
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
