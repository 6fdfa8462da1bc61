package match

import "strings"

// minScore is the normalized similarity below which a candidate is too
// far off to suggest.
const minScore = 0.6

// Closest returns the candidate most similar to name, or "" when nothing
// scores at least minScore. Comparison runs on normalized forms so that
// "pool_maxSize" still finds "pool.max-size".
func Closest(name string, candidates []string) string {
	best := ""
	bestScore := 0.0

	target := normalize(name)

	for _, c := range candidates {
		score := similarity(target, normalize(c))
		if score > bestScore {
			best = c
			bestScore = score
		}
	}

	if bestScore < minScore {
		return ""
	}

	return best
}

// normalize lowercases a property name and strips the separators commonly
// mixed up between naming conventions (dots, dashes, underscores).
func normalize(s string) string {
	s = strings.ToLower(s)

	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '-', '_', ' ':
			return -1
		default:
			return r
		}
	}, s)
}

// similarity is 1 - distance/maxLen, so 1.0 means identical and 0.0 means
// nothing in common.
func similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	maxLen := max(len(a), len(b))

	return 1.0 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein computes edit distance with the classic two-row dynamic
// program: O(len(a)*len(b)) time, O(min) space.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			del := prev[i] + 1
			ins := curr[i-1] + 1
			sub := prev[i-1] + cost

			curr[i] = min(del, ins, sub)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
