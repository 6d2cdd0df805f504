// ABOUTME: Tests for the quiz statistics aggregator
// ABOUTME: Covers category, language, hourly, and daily rollups
package journal

import (
	"testing"
	"time"

	"github.com/moviemate/moviemate/internal/models"
)

func entryAt(cat models.Category, correct bool, at time.Time) models.QuizLogEntry {
	return models.QuizLogEntry{
		Question:   "q",
		Category:   cat,
		Correct:    correct,
		AnsweredAt: at,
	}
}

func TestSummarize(t *testing.T) {
	morning := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	evening := time.Date(2026, 3, 14, 21, 30, 0, 0, time.Local)
	nextDay := time.Date(2026, 3, 15, 9, 15, 0, 0, time.Local)

	s := Summarize([]models.QuizLogEntry{
		entryAt(models.EnglishMovies, true, morning),
		entryAt(models.EnglishMovies, false, morning),
		entryAt(models.EnglishTV, true, evening),
		entryAt(models.ArabicMovies, true, nextDay),
	})

	if s.Overall.Total != 4 || s.Overall.Correct != 3 {
		t.Errorf("Overall = %+v, want 4 total, 3 correct", s.Overall)
	}
	if got := s.Overall.Accuracy(); got != 0.75 {
		t.Errorf("Overall.Accuracy() = %v, want 0.75", got)
	}

	if got := s.ByCategory[models.EnglishMovies]; got.Total != 2 || got.Correct != 1 {
		t.Errorf("ByCategory[english_movies] = %+v, want 2 total, 1 correct", got)
	}
	if got := s.ByCategory[models.ArabicMovies]; got.Total != 1 || got.Correct != 1 {
		t.Errorf("ByCategory[arabic_movies] = %+v, want 1 total, 1 correct", got)
	}

	if got := s.ByLanguage["English"]; got.Total != 3 || got.Correct != 2 {
		t.Errorf("ByLanguage[English] = %+v, want 3 total, 2 correct", got)
	}
	if got := s.ByLanguage["Arabic"]; got.Total != 1 || got.Correct != 1 {
		t.Errorf("ByLanguage[Arabic] = %+v, want 1 total, 1 correct", got)
	}

	if got := s.ByHour[9]; got.Total != 3 {
		t.Errorf("ByHour[9].Total = %d, want 3", got.Total)
	}
	if got := s.ByHour[21]; got.Total != 1 {
		t.Errorf("ByHour[21].Total = %d, want 1", got.Total)
	}

	if got := s.ByDay["2026-03-14"]; got.Total != 3 {
		t.Errorf("ByDay[2026-03-14].Total = %d, want 3", got.Total)
	}
	if got := s.ByDay["2026-03-15"]; got.Total != 1 {
		t.Errorf("ByDay[2026-03-15].Total = %d, want 1", got.Total)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	if s.Overall.Total != 0 {
		t.Errorf("Overall.Total = %d, want 0", s.Overall.Total)
	}
	if got := s.Overall.Accuracy(); got != 0 {
		t.Errorf("Accuracy() on empty tally = %v, want 0", got)
	}
	if len(s.ByCategory) != 0 || len(s.ByHour) != 0 {
		t.Error("empty summary has non-empty rollups")
	}
}
