// ABOUTME: Question bank loading, one JSON document per category
// ABOUTME: A malformed or missing category degrades to empty, never failing startup
package quiz

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/models"
)

// Bank holds the loaded questions per category. Read-only after load.
type Bank struct {
	questions map[models.Category][]models.TriviaQuestion
}

// bankDocument is the wrapped file form; files may also be a bare array.
type bankDocument struct {
	Questions []models.TriviaQuestion `json:"questions"`
}

// NewBank builds a bank directly from a category map.
func NewBank(questions map[models.Category][]models.TriviaQuestion) *Bank {
	if questions == nil {
		questions = make(map[models.Category][]models.TriviaQuestion)
	}
	return &Bank{questions: questions}
}

// LoadBank reads <category>.json under dir for each category. Categories that
// cannot be read or parsed are logged and left empty.
func LoadBank(dir string) *Bank {
	b := NewBank(nil)
	for _, cat := range models.Categories() {
		path := filepath.Join(dir, string(cat)+".json")
		qs, err := loadCategory(path, cat)
		if err != nil {
			logging.Warn().Err(err).Str("category", string(cat)).Msg("question bank category unavailable")
			continue
		}
		b.questions[cat] = qs
		logging.Debug().Str("category", string(cat)).Int("questions", len(qs)).Msg("question bank category loaded")
	}
	return b
}

func loadCategory(path string, cat models.Category) ([]models.TriviaQuestion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bank file: %w", err)
	}
	parsed, err := parseQuestions(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var valid []models.TriviaQuestion
	for _, q := range parsed {
		// The file's location decides the category, whatever the tag says.
		q.Category = cat
		if err := q.Validate(); err != nil {
			logging.Warn().Err(err).Str("category", string(cat)).Msg("dropping invalid question")
			continue
		}
		valid = append(valid, q)
	}
	return valid, nil
}

// parseQuestions accepts both accepted document forms.
func parseQuestions(data []byte) ([]models.TriviaQuestion, error) {
	var doc bankDocument
	if err := json.Unmarshal(data, &doc); err == nil && doc.Questions != nil {
		return doc.Questions, nil
	}
	var arr []models.TriviaQuestion
	if err := json.Unmarshal(data, &arr); err != nil {
		return nil, err
	}
	return arr, nil
}

// Questions returns the questions loaded for one category.
func (b *Bank) Questions(cat models.Category) []models.TriviaQuestion {
	return b.questions[cat]
}

// All returns the union of every category's questions, in the categories'
// stable order.
func (b *Bank) All() []models.TriviaQuestion {
	var all []models.TriviaQuestion
	for _, cat := range models.Categories() {
		all = append(all, b.questions[cat]...)
	}
	return all
}

// Size returns the total number of questions.
func (b *Bank) Size() int {
	n := 0
	for _, qs := range b.questions {
		n += len(qs)
	}
	return n
}
