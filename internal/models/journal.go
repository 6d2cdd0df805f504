// ABOUTME: QuizLogEntry is one graded quiz answer as persisted to the journal
// ABOUTME: Read back by the stats aggregator
package models

import "time"

// QuizLogEntry records a single graded answer
type QuizLogEntry struct {
	Question      string    `json:"question"`
	Category      Category  `json:"category"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	Correct       bool      `json:"is_correct"`
	AnsweredAt    time.Time `json:"answered_at"`
}
