package match

// DefaultThreshold is the minimum Similarity for a suggestion.
const DefaultThreshold = 0.6

// Closest returns the candidate most similar to name, provided it reaches
// threshold. Ties keep the earliest candidate. An exact match of name is
// never suggested.
func Closest(name string, candidates []string, threshold float64) (string, bool) {
	best, bestScore := "", threshold

	found := false
	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(name, c)
		if score > bestScore || (!found && score == bestScore) {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}

// Hint formats a suggestion for name, or returns "" when nothing is close.
func Hint(name string, candidates []string) string {
	if s, ok := Closest(name, candidates, DefaultThreshold); ok {
		return `did you mean "` + s + `"?`
	}

	return ""
}
