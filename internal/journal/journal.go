// ABOUTME: Append-only CSV journal of graded quiz answers
// ABOUTME: Read back in full by the stats aggregator, skipping malformed rows
package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/models"
)

// timeLayout is the timestamp format used in journal rows.
const timeLayout = "2006-01-02 15:04:05"

// columnCount is the fixed width of a journal row.
const columnCount = 6

// Journal is an append-only CSV log of graded quiz answers. Safe for
// concurrent use.
type Journal struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// New creates a journal writing to path. The file and its directory are
// created on first append.
func New(path string) *Journal {
	return &Journal{path: path, now: time.Now}
}

// Append writes one entry as a CSV row.
func (j *Journal) Append(entry models.QuizLogEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if dir := filepath.Dir(j.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating journal directory: %w", err)
		}
	}
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{
		entry.Question,
		string(entry.Category),
		entry.UserAnswer,
		entry.CorrectAnswer,
		strconv.FormatBool(entry.Correct),
		entry.AnsweredAt.Format(timeLayout),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("writing journal row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing journal: %w", err)
	}
	return nil
}

// Record appends one graded answer for q, stamped with the journal's clock.
func (j *Journal) Record(q models.TriviaQuestion, userAnswer string, correct bool) error {
	return j.Append(models.QuizLogEntry{
		Question:      q.Text,
		Category:      q.Category,
		UserAnswer:    userAnswer,
		CorrectAnswer: q.Answer,
		Correct:       correct,
		AnsweredAt:    j.now(),
	})
}

// ReadAll returns every well-formed entry plus a count of skipped rows. A
// missing journal file reads as empty.
func (j *Journal) ReadAll() ([]models.QuizLogEntry, int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var entries []models.QuizLogEntry
	skipped := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				continue
			}
			return nil, skipped, fmt.Errorf("reading journal: %w", err)
		}
		entry, ok := parseRow(row)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	if skipped > 0 {
		logging.Warn().Int("skipped", skipped).Str("path", j.path).Msg("skipped malformed journal rows")
	}
	return entries, skipped, nil
}

func parseRow(row []string) (models.QuizLogEntry, bool) {
	if len(row) != columnCount {
		return models.QuizLogEntry{}, false
	}
	correct, err := strconv.ParseBool(row[4])
	if err != nil {
		return models.QuizLogEntry{}, false
	}
	answeredAt, err := time.ParseInLocation(timeLayout, row[5], time.Local)
	if err != nil {
		return models.QuizLogEntry{}, false
	}
	return models.QuizLogEntry{
		Question:      row[0],
		Category:      models.Category(row[1]),
		UserAnswer:    row[2],
		CorrectAnswer: row[3],
		Correct:       correct,
		AnsweredAt:    answeredAt,
	}, true
}
