// ABOUTME: Turn is one engine response plus the context the next turn needs
// ABOUTME: Turns are values; the router reads the previous one and builds a fresh one
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Intent classifies what a turn is doing
type Intent string

const (
	// IntentGreeting - salutations and the fixed opening turn
	IntentGreeting Intent = "greeting"

	// IntentRecommendation - the turn carries catalog suggestions
	IntentRecommendation Intent = "recommendation"

	// IntentSpecificMedia - the turn answers about one or more named titles
	IntentSpecificMedia Intent = "specific_media"

	// IntentQuizQuestion - the turn poses a trivia question and awaits an answer
	IntentQuizQuestion Intent = "quiz_question"

	// IntentQuizAnswer - the turn grades the user's answer to the pending question
	IntentQuizAnswer Intent = "quiz_answer"

	// IntentThanks - acknowledgement turns
	IntentThanks Intent = "thanks"

	// IntentHelp - capability summaries, apologies, and fallback guidance
	IntentHelp Intent = "help"
)

// GreetingMessage is the fixed opening line, also used whenever the user greets
const GreetingMessage = "Hi! I'm MovieMate. Ask me for movie and TV show recommendations, tell me about your mood, ask about a specific title, or say 'quiz me' for some trivia!"

// Turn is a single engine response. Recommendations is set only on turns that
// suggested titles; PendingQuestion is set only while a quiz answer is awaited.
type Turn struct {
	Intent          Intent          `json:"intent"`
	Message         string          `json:"message"`
	Recommendations []MediaRecord   `json:"recommendations,omitempty"`
	PendingQuestion *TriviaQuestion `json:"pending_question,omitempty"`
}

// Greeting returns the fixed turn every conversation starts from
func Greeting() Turn {
	return Turn{Intent: IntentGreeting, Message: GreetingMessage}
}

// AwaitingAnswer reports whether the turn left a quiz question open
func (t Turn) AwaitingAnswer() bool {
	return t.PendingQuestion != nil
}

// Validate checks the turn invariants
func (t Turn) Validate() error {
	if t.Intent == "" {
		return errors.New("turn intent cannot be empty")
	}
	if t.Message == "" {
		return errors.New("turn message cannot be empty")
	}
	if t.Intent == IntentQuizQuestion && t.PendingQuestion == nil {
		return errors.New("quiz question turn must carry the pending question")
	}
	return nil
}

// NewSessionID generates a unique conversation identifier
func NewSessionID() string {
	return fmt.Sprintf("chat_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
