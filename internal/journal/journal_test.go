// ABOUTME: Tests for journal append and read-back including malformed rows
// ABOUTME: Uses temp dirs and a pinned clock for stable timestamps
package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/moviemate/moviemate/internal/models"
)

func fixedTime() time.Time {
	return time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)
}

func TestAppendAndReadAll(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "journal.csv"))

	entries := []models.QuizLogEntry{
		{
			Question:      "Who directed the movie Inception?",
			Category:      models.EnglishMovies,
			UserAnswer:    "nolan",
			CorrectAnswer: "Christopher Nolan",
			Correct:       true,
			AnsweredAt:    fixedTime(),
		},
		{
			Question:      "من أخرج فيلم الأرض؟",
			Category:      models.ArabicMovies,
			UserAnswer:    "هنري بركات",
			CorrectAnswer: "يوسف شاهين",
			Correct:       false,
			AnsweredAt:    fixedTime().Add(time.Minute),
		},
	}
	for _, e := range entries {
		if err := j.Append(e); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	got, skipped, err := j.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if skipped != 0 {
		t.Errorf("ReadAll() skipped %d rows, want 0", skipped)
	}
	if len(got) != len(entries) {
		t.Fatalf("ReadAll() returned %d entries, want %d", len(got), len(entries))
	}
	for i, e := range entries {
		if got[i] != e {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], e)
		}
	}
}

func TestAppend_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "journal.csv")
	j := New(path)

	if err := j.Append(models.QuizLogEntry{Question: "q", AnsweredAt: fixedTime()}); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("journal file missing after append: %v", err)
	}
}

func TestAppend_QuotedFields(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "journal.csv"))

	entry := models.QuizLogEntry{
		Question:      `Which movie has the line "Here's Johnny!", released in 1980?`,
		Category:      models.EnglishMovies,
		UserAnswer:    "the shining, I think",
		CorrectAnswer: "The Shining",
		Correct:       true,
		AnsweredAt:    fixedTime(),
	}
	if err := j.Append(entry); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	got, _, err := j.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if len(got) != 1 || got[0] != entry {
		t.Errorf("round trip = %+v, want %+v", got, entry)
	}
}

func TestRecord(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "journal.csv"))
	j.now = fixedTime

	q := models.TriviaQuestion{
		Text:     "Which city is the US version of The Office set in?",
		Answer:   "Scranton",
		Category: models.EnglishTV,
	}
	if err := j.Record(q, "scranton", true); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	got, _, err := j.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ReadAll() returned %d entries, want 1", len(got))
	}
	want := models.QuizLogEntry{
		Question:      q.Text,
		Category:      models.EnglishTV,
		UserAnswer:    "scranton",
		CorrectAnswer: "Scranton",
		Correct:       true,
		AnsweredAt:    fixedTime(),
	}
	if got[0] != want {
		t.Errorf("entry = %+v, want %+v", got[0], want)
	}
}

func TestReadAll_MissingFile(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "journal.csv"))

	entries, skipped, err := j.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if len(entries) != 0 || skipped != 0 {
		t.Errorf("ReadAll() = %d entries, %d skipped; want empty", len(entries), skipped)
	}
}

func TestReadAll_SkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.csv")
	raw := "good one,english_movies,a,a,true,2026-03-14 15:09:26\n" +
		"too,short\n" +
		"bad bool,english_tv,a,b,maybe,2026-03-14 15:09:26\n" +
		"bad time,arabic_tv,a,b,false,yesterday\n" +
		"good two,arabic_movies,x,y,false,2026-03-15 09:00:00\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	j := New(path)
	entries, skipped, err := j.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if skipped != 3 {
		t.Errorf("ReadAll() skipped %d rows, want 3", skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadAll() returned %d entries, want 2", len(entries))
	}
	if entries[0].Question != "good one" || entries[1].Question != "good two" {
		t.Errorf("kept rows = %q, %q", entries[0].Question, entries[1].Question)
	}
	if entries[1].Category != models.ArabicMovies {
		t.Errorf("entry category = %s, want %s", entries[1].Category, models.ArabicMovies)
	}
}
