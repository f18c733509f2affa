package autocomplete

import "strings"

// Match returns every corpus entry that contains query as a case-insensitive
// substring, in the corpus' original order. There is no ranking and no
// minimum query length; callers decide when a query is worth matching.
func Match(query string, corpus []string) []string {
	needle := strings.ToLower(query)

	matches := make([]string, 0)
	for _, candidate := range corpus {
		if strings.Contains(strings.ToLower(candidate), needle) {
			matches = append(matches, candidate)
		}
	}
	return matches
}

// MatchLimit is Match truncated to at most limit candidates.
// A non-positive limit returns every match.
func MatchLimit(query string, corpus []string, limit int) []string {
	matches := Match(query, corpus)
	if limit > 0 && len(matches) > limit {
		return matches[:limit]
	}
	return matches
}
