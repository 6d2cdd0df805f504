// ABOUTME: Edit-distance based fuzzy matching: similarity ratio and best-match selection
// ABOUTME: Pure functions, shared by entity resolution and quiz grading
package fuzzy

import (
	"sort"
	"strings"
)

// EditDistance computes the Levenshtein distance between a and b with unit
// costs for insertion, deletion, and substitution.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}
	return matrix[len(ra)][len(rb)]
}

// Similarity maps edit distance onto [0,1]: identical strings score 1.0,
// completely different strings approach 0. Two empty strings score 1.0.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	return float64(maxLen-EditDistance(a, b)) / float64(maxLen)
}

// BestMatches scores the query against every candidate (both case-folded) and
// returns the candidates at or above threshold, best first; ties keep the
// candidate order. Queries shorter than 3 characters return nothing. When no
// candidate clears the threshold the query itself comes back as a singleton,
// so callers that go on to test phrases always have at least one.
func BestMatches(query string, candidates []string, threshold float64) []string {
	if len(query) < 3 {
		return nil
	}

	q := strings.ToLower(query)
	type scored struct {
		value string
		sim   float64
	}
	var kept []scored
	for _, c := range candidates {
		if sim := Similarity(q, strings.ToLower(c)); sim >= threshold {
			kept = append(kept, scored{value: c, sim: sim})
		}
	}
	if len(kept) == 0 {
		return []string{query}
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].sim > kept[j].sim })
	out := make([]string, len(kept))
	for i, s := range kept {
		out[i] = s.value
	}
	return out
}
