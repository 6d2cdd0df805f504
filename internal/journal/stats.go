// ABOUTME: Aggregates journal entries into quiz performance statistics
// ABOUTME: Feeds the stats command's overall, category, language, and time views
package journal

import "github.com/moviemate/moviemate/internal/models"

// dayLayout keys the per-day tallies.
const dayLayout = "2006-01-02"

// Tally counts graded answers and how many were correct.
type Tally struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

func (t Tally) add(correct bool) Tally {
	t.Total++
	if correct {
		t.Correct++
	}
	return t
}

// Accuracy returns the fraction answered correctly, 0 for an empty tally.
func (t Tally) Accuracy() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Total)
}

// Summary aggregates journal entries along several axes. Hours are 0-23 in
// the entry's recorded wall clock, days key as YYYY-MM-DD.
type Summary struct {
	Overall    Tally                     `json:"overall"`
	ByCategory map[models.Category]Tally `json:"by_category"`
	ByLanguage map[string]Tally          `json:"by_language"`
	ByHour     map[int]Tally             `json:"by_hour"`
	ByDay      map[string]Tally          `json:"by_day"`
}

// Summarize folds entries into a summary.
func Summarize(entries []models.QuizLogEntry) Summary {
	s := Summary{
		ByCategory: make(map[models.Category]Tally),
		ByLanguage: make(map[string]Tally),
		ByHour:     make(map[int]Tally),
		ByDay:      make(map[string]Tally),
	}
	for _, e := range entries {
		lang := e.Category.Language()
		hour := e.AnsweredAt.Hour()
		day := e.AnsweredAt.Format(dayLayout)

		s.Overall = s.Overall.add(e.Correct)
		s.ByCategory[e.Category] = s.ByCategory[e.Category].add(e.Correct)
		s.ByLanguage[lang] = s.ByLanguage[lang].add(e.Correct)
		s.ByHour[hour] = s.ByHour[hour].add(e.Correct)
		s.ByDay[day] = s.ByDay[day].add(e.Correct)
	}
	return s
}
