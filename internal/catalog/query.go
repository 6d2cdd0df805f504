// ABOUTME: Multi-predicate filtering, the selection policy, and title/name lookups
// ABOUTME: All matching is case-insensitive; absent criteria are vacuously true
package catalog

import (
	"sort"
	"strings"

	"github.com/moviemate/moviemate/internal/models"
)

// HighRatingBar is the rating threshold behind the "highly rated" criterion
// and the selection policy's preference step.
const HighRatingBar = 7.0

// maxRecommendations caps every recommendation list.
const maxRecommendations = 3

// Criteria is a conjunction of optional predicates. Zero-valued fields do not
// constrain the result. Country and Language both test the platform field,
// which is how the catalog data encodes them.
type Criteria struct {
	Genres       []string
	Year         string
	HighlyRated  bool
	Kind         models.Kind
	Director     string
	Actor        string
	Country      string
	Language     string
	ExcludeTitle string
}

func (c Criteria) matches(rec models.MediaRecord) bool {
	if len(c.Genres) > 0 {
		hit := false
		for _, g := range c.Genres {
			if rec.HasGenre(g) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if c.Year != "" && rec.Year != c.Year {
		return false
	}
	if c.HighlyRated && rec.Rating < HighRatingBar {
		return false
	}
	if c.Kind != "" && rec.Kind != c.Kind {
		return false
	}
	if c.Director != "" && !containsFold(rec.Director, c.Director) {
		return false
	}
	if c.Actor != "" && !anyContainsFold(rec.Cast, c.Actor) {
		return false
	}
	if c.Country != "" && !containsFold(rec.Platform, c.Country) {
		return false
	}
	if c.Language != "" && !containsFold(rec.Platform, c.Language) {
		return false
	}
	if c.ExcludeTitle != "" && strings.EqualFold(rec.Title, c.ExcludeTitle) {
		return false
	}
	return true
}

// Filter returns every record satisfying all active predicates, in catalog order.
func (c *Catalog) Filter(criteria Criteria) []models.MediaRecord {
	var out []models.MediaRecord
	for _, rec := range c.records {
		if criteria.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Select applies the selection policy to filtered matches: up to two matches
// pass through unchanged; with more, the records at or above HighRatingBar
// are preferred (all matches when none qualify), sorted by descending rating
// with original order breaking ties, capped at three.
func Select(matches []models.MediaRecord) []models.MediaRecord {
	if len(matches) == 0 {
		return nil
	}
	if len(matches) <= 2 {
		return matches
	}

	var qualified []models.MediaRecord
	for _, m := range matches {
		if m.Rating >= HighRatingBar {
			qualified = append(qualified, m)
		}
	}
	pool := qualified
	if len(pool) == 0 {
		pool = matches
	}
	return topRated(pool)
}

// Recommend filters and selects in one step.
func (c *Catalog) Recommend(criteria Criteria) []models.MediaRecord {
	return Select(c.Filter(criteria))
}

// FindByTitle returns every record whose title contains the query or is
// contained by it, case-insensitively, in catalog order.
func (c *Catalog) FindByTitle(query string) []models.MediaRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []models.MediaRecord
	for _, rec := range c.records {
		title := strings.ToLower(rec.Title)
		if strings.Contains(title, q) || strings.Contains(q, title) {
			out = append(out, rec)
		}
	}
	return out
}

// ResolveTitle returns the first title match for the query, if any.
func (c *Catalog) ResolveTitle(query string) (models.MediaRecord, bool) {
	matches := c.FindByTitle(query)
	if len(matches) == 0 {
		return models.MediaRecord{}, false
	}
	return matches[0], true
}

// ByDirector returns up to three of the director's records, best rated first.
func (c *Catalog) ByDirector(name string) []models.MediaRecord {
	return topRated(c.Filter(Criteria{Director: name}))
}

// ByActor returns up to three records featuring the actor, best rated first.
func (c *Catalog) ByActor(name string) []models.MediaRecord {
	return topRated(c.Filter(Criteria{Actor: name}))
}

// topRated sorts by descending rating (stable, so catalog order breaks ties)
// and caps the result at maxRecommendations.
func topRated(matches []models.MediaRecord) []models.MediaRecord {
	if len(matches) == 0 {
		return nil
	}
	sorted := make([]models.MediaRecord, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	if len(sorted) > maxRecommendations {
		sorted = sorted[:maxRecommendations]
	}
	return sorted
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyContainsFold(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if containsFold(h, needle) {
			return true
		}
	}
	return false
}
