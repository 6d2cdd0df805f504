// ABOUTME: Tests for the chart and detail page parsers
// ABOUTME: Runs the pure parsers against fixture HTML under testdata
package crawl

import (
	"os"
	"path/filepath"
	"testing"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	return data
}

func TestParseChart(t *testing.T) {
	entries, err := ParseChart(loadFixture(t, "chart.html"), "https://example.com/chart/top/")
	if err != nil {
		t.Fatalf("ParseChart() failed: %v", err)
	}
	// The fixture has four rows; the link-less one must be skipped.
	if len(entries) != 3 {
		t.Fatalf("ParseChart() returned %d entries, want 3", len(entries))
	}

	first := entries[0]
	if first.Title != "The Shawshank Redemption" {
		t.Errorf("Title = %q, want The Shawshank Redemption", first.Title)
	}
	if first.DetailURL != "https://example.com/title/shawshank/" {
		t.Errorf("DetailURL = %q, want https://example.com/title/shawshank/", first.DetailURL)
	}
	if first.Year != "1994" {
		t.Errorf("Year = %q, want 1994", first.Year)
	}
	if first.Rating != 9.2 {
		t.Errorf("Rating = %v, want 9.2", first.Rating)
	}

	last := entries[2]
	if last.Title != "The Dark Knight" || last.Year != "2008" || last.Rating != 9.0 {
		t.Errorf("entries[2] = %+v, want The Dark Knight / 2008 / 9.0", last)
	}
}

func TestParseChart_Errors(t *testing.T) {
	if _, err := ParseChart(nil, "https://example.com/"); err == nil {
		t.Error("ParseChart(empty) = nil error, want error")
	}
	blocked := []byte("<html><body><p>Access denied</p></body></html>")
	if _, err := ParseChart(blocked, "https://example.com/"); err == nil {
		t.Error("ParseChart(no chart rows) = nil error, want error")
	}
}

func TestParseDetail(t *testing.T) {
	detail, err := ParseDetail(loadFixture(t, "detail_shawshank.html"))
	if err != nil {
		t.Fatalf("ParseDetail() failed: %v", err)
	}

	if len(detail.Genres) != 1 || detail.Genres[0] != "drama" {
		t.Errorf("Genres = %v, want [drama]", detail.Genres)
	}
	if detail.Director != "Frank Darabont" {
		t.Errorf("Director = %q, want Frank Darabont", detail.Director)
	}
	wantCast := []string{"Tim Robbins", "Morgan Freeman", "Bob Gunton"}
	if len(detail.Cast) != len(wantCast) {
		t.Fatalf("Cast = %v, want %v", detail.Cast, wantCast)
	}
	for i := range wantCast {
		if detail.Cast[i] != wantCast[i] {
			t.Errorf("Cast[%d] = %q, want %q", i, detail.Cast[i], wantCast[i])
		}
	}
	wantOverview := "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency."
	if detail.Overview != wantOverview {
		t.Errorf("Overview = %q, want %q", detail.Overview, wantOverview)
	}
}

func TestParseDetail_MultipleGenres(t *testing.T) {
	detail, err := ParseDetail(loadFixture(t, "detail_godfather.html"))
	if err != nil {
		t.Fatalf("ParseDetail() failed: %v", err)
	}
	want := []string{"crime", "drama"}
	if len(detail.Genres) != len(want) {
		t.Fatalf("Genres = %v, want %v", detail.Genres, want)
	}
	for i := range want {
		if detail.Genres[i] != want[i] {
			t.Errorf("Genres[%d] = %q, want %q", i, detail.Genres[i], want[i])
		}
	}
}

func TestParseDetail_Errors(t *testing.T) {
	if _, err := ParseDetail(nil); err == nil {
		t.Error("ParseDetail(empty) = nil error, want error")
	}
	junk := []byte("<html><body><p>Under maintenance</p></body></html>")
	if _, err := ParseDetail(junk); err == nil {
		t.Error("ParseDetail(no fields) = nil error, want error")
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base string
		href string
		want string
	}{
		{"https://example.com/chart/top/", "/title/x/", "https://example.com/title/x/"},
		{"https://example.com/chart/top/", "https://other.com/a", "https://other.com/a"},
		{"https://example.com/chart/top/", "  ", ""},
		{"https://example.com/a/b/", "c/d", "https://example.com/a/b/c/d"},
	}

	for _, tt := range tests {
		if got := resolveURL(tt.base, tt.href); got != tt.want {
			t.Errorf("resolveURL(%q, %q) = %q, want %q", tt.base, tt.href, got, tt.want)
		}
	}
}
