// ABOUTME: Tests for filtering, the selection policy, and name lookups
// ABOUTME: Pins the rating-bar preference and stable ordering guarantees
package catalog

import (
	"testing"

	"github.com/moviemate/moviemate/internal/models"
)

func testCatalog() *Catalog {
	return New([]models.MediaRecord{
		{Title: "Laugh One", Kind: models.Movie, Year: "2001", Genres: []string{"comedy"}, Rating: 8.0, Director: "Amy Chen", Cast: []string{"Pat Lane"}, Platform: "Netflix"},
		{Title: "Laugh Two", Kind: models.Movie, Year: "2002", Genres: []string{"comedy"}, Rating: 6.0, Director: "Bob Reed", Cast: []string{"Sam Hill"}, Platform: "Hulu"},
		{Title: "Laugh Three", Kind: models.Movie, Year: "2003", Genres: []string{"comedy"}, Rating: 9.0, Director: "Amy Chen", Cast: []string{"Pat Lane", "Kim Ro"}, Platform: "Netflix"},
		{Title: "Laugh Four", Kind: models.Movie, Year: "2004", Genres: []string{"comedy"}, Rating: 5.0, Director: "Cia Drew", Cast: []string{"Lee Park"}, Platform: "Egyptian TV"},
		{Title: "Laugh Five", Kind: models.Movie, Year: "2005", Genres: []string{"comedy"}, Rating: 7.0, Director: "Dan Obi", Cast: []string{"Sam Hill"}, Platform: "Shahid"},
		{Title: "Dark Streets", Kind: models.Movie, Year: "2003", Genres: []string{"thriller", "crime"}, Rating: 7.5, Director: "Amy Chen", Cast: []string{"Kim Ro"}, Platform: "Netflix"},
		{Title: "Night Desk", Kind: models.TVShow, Year: "2010", Genres: []string{"comedy", "drama"}, Rating: 8.4, Director: "Eve Sol", Cast: []string{"Lee Park"}, Platform: "Arabic OSN"},
	})
}

func TestFilter_Predicates(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name       string
		criteria   Criteria
		wantTitles []string
	}{
		{
			name:       "no criteria keeps everything",
			criteria:   Criteria{},
			wantTitles: []string{"Laugh One", "Laugh Two", "Laugh Three", "Laugh Four", "Laugh Five", "Dark Streets", "Night Desk"},
		},
		{
			name:       "genre any-of",
			criteria:   Criteria{Genres: []string{"thriller", "drama"}},
			wantTitles: []string{"Dark Streets", "Night Desk"},
		},
		{
			name:       "exact year string",
			criteria:   Criteria{Year: "2003"},
			wantTitles: []string{"Laugh Three", "Dark Streets"},
		},
		{
			name:       "highly rated bar",
			criteria:   Criteria{HighlyRated: true, Genres: []string{"comedy"}},
			wantTitles: []string{"Laugh One", "Laugh Three", "Laugh Five", "Night Desk"},
		},
		{
			name:       "kind",
			criteria:   Criteria{Kind: models.TVShow},
			wantTitles: []string{"Night Desk"},
		},
		{
			name:       "director substring case folded",
			criteria:   Criteria{Director: "chen"},
			wantTitles: []string{"Laugh One", "Laugh Three", "Dark Streets"},
		},
		{
			name:       "actor substring",
			criteria:   Criteria{Actor: "sam hill"},
			wantTitles: []string{"Laugh Two", "Laugh Five"},
		},
		{
			name:       "country against platform",
			criteria:   Criteria{Country: "egyptian"},
			wantTitles: []string{"Laugh Four"},
		},
		{
			name:       "language against platform",
			criteria:   Criteria{Language: "arabic"},
			wantTitles: []string{"Night Desk"},
		},
		{
			name:       "exclude title",
			criteria:   Criteria{Genres: []string{"thriller"}, ExcludeTitle: "Dark Streets"},
			wantTitles: nil,
		},
		{
			name:       "conjunction of predicates",
			criteria:   Criteria{Genres: []string{"comedy"}, Kind: models.Movie, Director: "amy"},
			wantTitles: []string{"Laugh One", "Laugh Three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.Filter(tt.criteria)
			if len(got) != len(tt.wantTitles) {
				t.Fatalf("Filter() returned %d records, want %d: %v", len(got), len(tt.wantTitles), titles(got))
			}
			for i, rec := range got {
				if rec.Title != tt.wantTitles[i] {
					t.Errorf("Filter()[%d] = %q, want %q", i, rec.Title, tt.wantTitles[i])
				}
			}
		})
	}
}

func TestFilter_NoFalsePositives(t *testing.T) {
	cat := testCatalog()
	criteria := Criteria{Genres: []string{"comedy"}, HighlyRated: true, Kind: models.Movie}

	for _, rec := range cat.Filter(criteria) {
		if !rec.HasGenre("comedy") {
			t.Errorf("%s fails genre predicate", rec.Title)
		}
		if rec.Rating < HighRatingBar {
			t.Errorf("%s fails rating predicate", rec.Title)
		}
		if rec.Kind != models.Movie {
			t.Errorf("%s fails kind predicate", rec.Title)
		}
	}
}

func TestSelect_Policy(t *testing.T) {
	recs := func(ratings ...float64) []models.MediaRecord {
		out := make([]models.MediaRecord, len(ratings))
		for i, r := range ratings {
			out[i] = models.MediaRecord{Title: title(i), Rating: r}
		}
		return out
	}

	tests := []struct {
		name        string
		matches     []models.MediaRecord
		wantRatings []float64
	}{
		{"zero matches", nil, nil},
		{"one passes through even below bar", recs(5.5), []float64{5.5}},
		{"two pass through unsorted", recs(5.5, 9.0), []float64{5.5, 9.0}},
		{"qualified sorted descending capped", recs(8, 6, 9, 5, 7), []float64{9, 8, 7}},
		{"none qualified falls back to best rated", recs(5, 6, 4, 3), []float64{6, 5, 4}},
		{"single qualifier stands alone", recs(6.5, 8.0, 5.0), []float64{8.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.matches)
			if len(got) != len(tt.wantRatings) {
				t.Fatalf("Select() returned %d records, want %d", len(got), len(tt.wantRatings))
			}
			for i, rec := range got {
				if rec.Rating != tt.wantRatings[i] {
					t.Errorf("Select()[%d].Rating = %v, want %v", i, rec.Rating, tt.wantRatings[i])
				}
			}
		})
	}
}

func TestSelect_TiesKeepCatalogOrder(t *testing.T) {
	matches := []models.MediaRecord{
		{Title: "First", Rating: 8.0},
		{Title: "Second", Rating: 8.0},
		{Title: "Third", Rating: 8.0},
		{Title: "Fourth", Rating: 8.0},
	}
	got := Select(matches)
	want := []string{"First", "Second", "Third"}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("Select()[%d] = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestFindByTitle(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{"query inside title", "dark", []string{"Dark Streets"}},
		{"title inside query", "the movie night desk please", []string{"Night Desk"}},
		{"several matches", "laugh", []string{"Laugh One", "Laugh Two", "Laugh Three", "Laugh Four", "Laugh Five"}},
		{"no match", "casablanca", nil},
		{"blank query", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cat.FindByTitle(tt.query)
			if len(got) != len(tt.wantTitles) {
				t.Fatalf("FindByTitle(%q) = %v, want %v", tt.query, titles(got), tt.wantTitles)
			}
			for i, rec := range got {
				if rec.Title != tt.wantTitles[i] {
					t.Errorf("FindByTitle(%q)[%d] = %q, want %q", tt.query, i, rec.Title, tt.wantTitles[i])
				}
			}
		})
	}
}

func TestResolveTitle(t *testing.T) {
	cat := testCatalog()

	if rec, ok := cat.ResolveTitle("night desk"); !ok || rec.Title != "Night Desk" {
		t.Errorf("ResolveTitle(night desk) = %v, %v", rec.Title, ok)
	}
	if _, ok := cat.ResolveTitle("unknown film"); ok {
		t.Error("ResolveTitle should miss for unknown titles")
	}
}

func TestByDirector(t *testing.T) {
	cat := testCatalog()

	got := cat.ByDirector("amy chen")
	want := []string{"Laugh Three", "Laugh One", "Dark Streets"}
	if len(got) != len(want) {
		t.Fatalf("ByDirector() = %v, want %v", titles(got), want)
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("ByDirector()[%d] = %q, want %q", i, got[i].Title, w)
		}
	}

	if miss := cat.ByDirector("nolan"); miss != nil {
		t.Errorf("ByDirector(nolan) = %v, want none", titles(miss))
	}
}

func TestByActor(t *testing.T) {
	cat := testCatalog()

	got := cat.ByActor("pat lane")
	want := []string{"Laugh Three", "Laugh One"}
	if len(got) != len(want) {
		t.Fatalf("ByActor() = %v, want %v", titles(got), want)
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("ByActor()[%d] = %q, want %q", i, got[i].Title, w)
		}
	}
}

func titles(recs []models.MediaRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func title(i int) string {
	return string(rune('A' + i))
}
