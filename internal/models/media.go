// ABOUTME: MediaRecord is the catalog entry for a single movie or TV show
// ABOUTME: Core data structure shared by the query engine, router, and loaders
package models

import (
	"fmt"
	"strings"
)

// UnknownPlatform is the placeholder platform for records without one.
const UnknownPlatform = "Unknown"

// Kind distinguishes movies from TV shows
type Kind string

const (
	// Movie - feature film catalog entry
	Movie Kind = "movie"

	// TVShow - episodic series catalog entry
	TVShow Kind = "tv_show"
)

// ParseKind folds common spellings onto the canonical Kind values.
// Unrecognized values come back lowercased and trimmed so they round-trip,
// they just never match a canonical filter.
func ParseKind(s string) Kind {
	k := strings.ToLower(strings.TrimSpace(s))
	k = strings.ReplaceAll(k, "-", " ")
	switch k {
	case "movie", "film", "movies":
		return Movie
	case "tv_show", "tv show", "tvshow", "tv", "show", "series", "tv series", "shows":
		return TVShow
	}
	return Kind(k)
}

// String returns a human-readable label for the kind
func (k Kind) String() string {
	switch k {
	case Movie:
		return "movie"
	case TVShow:
		return "TV show"
	}
	return string(k)
}

// MediaRecord represents a single catalog entry. Records are immutable after
// load; genres are lowercase and deduplicated, rating defaults to 0.0 and the
// platform to UnknownPlatform when the source row omits them.
type MediaRecord struct {
	Title    string   `json:"title"`
	Kind     Kind     `json:"kind"`
	Year     string   `json:"year"`
	Genres   []string `json:"genres"`
	Rating   float64  `json:"rating"`
	Director string   `json:"director,omitempty"`
	Cast     []string `json:"cast,omitempty"`
	Platform string   `json:"platform"`
	Overview string   `json:"overview,omitempty"`
}

// HasGenre reports whether the record carries the given genre (case-insensitive)
func (m MediaRecord) HasGenre(genre string) bool {
	genre = strings.ToLower(strings.TrimSpace(genre))
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Describe renders the full record as a single conversational message
func (m MediaRecord) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) is a", m.Title, m.Year)
	if len(m.Genres) > 0 {
		fmt.Fprintf(&b, " %s", strings.Join(m.Genres, "/"))
	}
	fmt.Fprintf(&b, " %s", m.Kind.String())
	if m.Director != "" {
		fmt.Fprintf(&b, " directed by %s", m.Director)
	}
	if len(m.Cast) > 0 {
		fmt.Fprintf(&b, ", starring %s", strings.Join(m.Cast, ", "))
	}
	fmt.Fprintf(&b, ". It is rated %.1f and available on %s.", m.Rating, m.Platform)
	if m.Overview != "" {
		fmt.Fprintf(&b, " %s", m.Overview)
	}
	return b.String()
}
