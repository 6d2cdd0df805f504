// ABOUTME: TriviaQuestion and its category labels for the quiz engine
// ABOUTME: Categories double as question-bank file names
package models

import (
	"errors"
	"strings"
)

// Category identifies one of the four question banks
type Category string

const (
	// EnglishMovies - English-language movie trivia
	EnglishMovies Category = "english_movies"

	// EnglishTV - English-language TV show trivia
	EnglishTV Category = "english_tv"

	// ArabicMovies - Arabic-language movie trivia
	ArabicMovies Category = "arabic_movies"

	// ArabicTV - Arabic-language TV show trivia
	ArabicTV Category = "arabic_tv"
)

// Categories returns the four categories in their stable presentation order
func Categories() []Category {
	return []Category{EnglishMovies, EnglishTV, ArabicMovies, ArabicTV}
}

// English reports whether the category holds English-language questions
func (c Category) English() bool {
	return strings.HasPrefix(string(c), "english")
}

// Language returns the category's language label
func (c Category) Language() string {
	if c.English() {
		return "English"
	}
	return "Arabic"
}

// TriviaQuestion is a single quiz item. Choices is either empty (open answer)
// or holds at least two options, one of which equals Answer.
type TriviaQuestion struct {
	Text     string   `json:"question"`
	Choices  []string `json:"choices,omitempty"`
	Answer   string   `json:"answer"`
	Category Category `json:"langType,omitempty"`
}

// Validate checks the question invariants
func (q TriviaQuestion) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("question text cannot be empty")
	}
	if strings.TrimSpace(q.Answer) == "" {
		return errors.New("question answer cannot be empty")
	}
	if len(q.Choices) == 1 {
		return errors.New("choices must be empty or hold at least two options")
	}
	return nil
}

// CorrectIndex returns the 1-based position of the answer among the choices,
// or 0 when the question has no choices or the answer is not one of them.
// Comparison ignores case and surrounding whitespace.
func (q TriviaQuestion) CorrectIndex() int {
	want := strings.ToLower(strings.TrimSpace(q.Answer))
	for i, c := range q.Choices {
		if strings.ToLower(strings.TrimSpace(c)) == want {
			return i + 1
		}
	}
	return 0
}
