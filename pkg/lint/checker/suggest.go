package checker

import "fmt"

// maxSuggestDistance bounds how far a value may be from a permitted value
// before a suggestion is offered.
const maxSuggestDistance = 2

// SuggestValue returns a "Did you mean" hint for the permitted value closest
// to unknown, or "" when nothing is close enough.
func SuggestValue(unknown string, allowed []string) string {
	best := ""
	bestDistance := maxSuggestDistance + 1
	for _, a := range allowed {
		if d := levenshteinDistance(unknown, a); d < bestDistance {
			best, bestDistance = a, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf("Did you mean '%s'?", best)
}

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len1][len2]
}
