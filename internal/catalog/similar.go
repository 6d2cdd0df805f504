// ABOUTME: Weighted similarity scorer for "find something like X"
// ABOUTME: Genres, kind, overview, cast, and year proximity feed one total
package catalog

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/moviemate/moviemate/internal/models"
)

// Similarity weights. The maximum possible score is 100.
const (
	genreWeight    = 35.0
	kindWeight     = 25.0
	overviewWeight = 25.0
	castWeight     = 10.0
)

// Scored pairs a record with its similarity score against a seed.
type Scored struct {
	Record models.MediaRecord
	Score  float64
}

// SimilarScored scores every other record against the seed and returns the
// top three positive scorers, best first; catalog order breaks ties. The seed
// itself is excluded by title.
func (c *Catalog) SimilarScored(seed models.MediaRecord) []Scored {
	var scored []Scored
	for _, rec := range c.records {
		if strings.EqualFold(rec.Title, seed.Title) {
			continue
		}
		if s := similarityScore(seed, rec); s > 0 {
			scored = append(scored, Scored{Record: rec, Score: s})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}
	return scored
}

// Similar is SimilarScored without the scores.
func (c *Catalog) Similar(seed models.MediaRecord) []models.MediaRecord {
	scored := c.SimilarScored(seed)
	out := make([]models.MediaRecord, len(scored))
	for i, s := range scored {
		out[i] = s.Record
	}
	return out
}

func similarityScore(a, b models.MediaRecord) float64 {
	score := overlapRatio(a.Genres, b.Genres) * genreWeight
	if a.Kind == b.Kind {
		score += kindWeight
	}
	score += overlapRatio(overviewWords(a.Overview), overviewWords(b.Overview)) * overviewWeight
	score += overlapRatio(foldAll(a.Cast), foldAll(b.Cast)) * castWeight
	score += yearProximity(a.Year, b.Year)
	return score
}

// overlapRatio is |intersection| / max(|setA|,|setB|) over the deduplicated
// inputs, 0 when either side is empty.
func overlapRatio(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := toSet(a)
	setB := toSet(b)
	common := 0
	for v := range setA {
		if _, ok := setB[v]; ok {
			common++
		}
	}
	return float64(common) / float64(max(len(setA), len(setB)))
}

// yearProximity rewards close release years: 5 for the same year, 3.5 within
// five, 2 within ten. Non-numeric years contribute nothing.
func yearProximity(a, b string) float64 {
	ya, errA := strconv.Atoi(strings.TrimSpace(a))
	yb, errB := strconv.Atoi(strings.TrimSpace(b))
	if errA != nil || errB != nil {
		return 0
	}
	diff := ya - yb
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0:
		return 5.0
	case diff <= 5:
		return 3.5
	case diff <= 10:
		return 2.0
	}
	return 0
}

// overviewWords splits an overview on non-alphanumeric runs, lowercased.
func overviewWords(overview string) []string {
	return strings.FieldsFunc(strings.ToLower(overview), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func foldAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, v := range items {
		set[v] = struct{}{}
	}
	return set
}
