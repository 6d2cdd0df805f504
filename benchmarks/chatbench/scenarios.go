// ABOUTME: Scripted conversation scenarios for dialogue benchmarks
// ABOUTME: Each turn carries the expected intent and response constraints

package chatbench

import (
	"github.com/moviemate/moviemate/internal/models"
)

// Scenario is a scripted conversation with per-turn expectations.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Turns       []ScriptedTurn
}

// ScriptedTurn is one user message with its expected outcome. WantInResponse
// strings must all appear in the reply; ForbiddenInResponse strings must not.
// Either list may be empty, leaving only the intent check.
type ScriptedTurn struct {
	UserMessage         string
	WantIntent          models.Intent
	WantInResponse      []string
	ForbiddenInResponse []string
}

// Result holds the scored outcome of one scenario run.
type Result struct {
	ScenarioID       string
	ScenarioName     string
	IntentAccuracy   float64
	ResponseFidelity float64
	OverallScore     float64
	Status           string // "PASS" or "FAIL"
	Details          map[string]interface{}
}

// GetRecommendationScenario covers the filter-and-suggest flow plus the
// follow-ups that build on a suggestion list.
func GetRecommendationScenario() Scenario {
	return Scenario{
		ID:          "recommendation",
		Name:        "Genre Recommendation and Follow-Up",
		Description: "Asks for comedies, drills into one suggestion, and says thanks",
		Turns: []ScriptedTurn{
			{
				UserMessage:    "hi",
				WantIntent:     models.IntentGreeting,
				WantInResponse: []string{"I'm MovieMate"},
			},
			{
				UserMessage: "recommend me a good comedy movie",
				WantIntent:  models.IntentRecommendation,
				WantInResponse: []string{
					"I recommend you watch:",
					"The Grand Budapest Hotel (2014)",
					"Paddington 2 (2017)",
					"Superbad (2007)",
				},
				ForbiddenInResponse: []string{"The Office"},
			},
			{
				UserMessage:    "tell me about the grand budapest hotel",
				WantIntent:     models.IntentSpecificMedia,
				WantInResponse: []string{"The Grand Budapest Hotel (2014)", "Wes Anderson"},
			},
			{
				UserMessage:    "thanks!",
				WantIntent:     models.IntentThanks,
				WantInResponse: []string{"You're welcome!"},
			},
		},
	}
}

// GetSimilarScenario covers the "something like that" flow threading off a
// specific-title turn.
func GetSimilarScenario() Scenario {
	return Scenario{
		ID:          "similar",
		Name:        "Similar-Title Follow-Up",
		Description: "Looks up one title, then asks for similar ones without naming it again",
		Turns: []ScriptedTurn{
			{
				UserMessage:    "tell me about inception",
				WantIntent:     models.IntentSpecificMedia,
				WantInResponse: []string{"Inception (2010)", "Christopher Nolan"},
			},
			{
				UserMessage: "got anything similar?",
				WantIntent:  models.IntentRecommendation,
				WantInResponse: []string{
					"Since you liked Inception",
					"Mad Max: Fury Road (2015)",
					"The Dark Knight (2008)",
				},
				ForbiddenInResponse: []string{"The Office"},
			},
		},
	}
}

// GetQuizScenario covers the trivia loop: question, graded answer, another
// round, and the close. Expectations avoid question text because the draw is
// random; grading and closing lines are fixed.
func GetQuizScenario() Scenario {
	return Scenario{
		ID:          "quiz",
		Name:        "Trivia Round Trip",
		Description: "Starts a quiz, answers wrong twice, and stops",
		Turns: []ScriptedTurn{
			{
				UserMessage: "quiz me",
				WantIntent:  models.IntentQuizQuestion,
			},
			{
				UserMessage:    "xyzzy",
				WantIntent:     models.IntentQuizAnswer,
				WantInResponse: []string{"Sorry, that's incorrect.", "Want another question?"},
			},
			{
				UserMessage: "yes",
				WantIntent:  models.IntentQuizQuestion,
			},
			{
				UserMessage:    "xyzzy",
				WantIntent:     models.IntentQuizAnswer,
				WantInResponse: []string{"Sorry, that's incorrect."},
			},
			{
				UserMessage:    "no",
				WantIntent:     models.IntentThanks,
				WantInResponse: []string{"No problem!"},
			},
		},
	}
}

// GetMoodScenario covers the mood shortcuts and the people lookups.
func GetMoodScenario() Scenario {
	return Scenario{
		ID:          "mood",
		Name:        "Mood and People Lookups",
		Description: "Boredom cue, then director and actor filters",
		Turns: []ScriptedTurn{
			{
				UserMessage: "i'm bored",
				WantIntent:  models.IntentRecommendation,
				WantInResponse: []string{
					"Sounds like you need some excitement!",
					"Inception (2010)",
					"Mad Max: Fury Road (2015)",
				},
			},
			{
				UserMessage: "anything directed by christopher nolan?",
				WantIntent:  models.IntentRecommendation,
				WantInResponse: []string{
					"The Dark Knight (2008)",
					"Inception (2010)",
				},
			},
			{
				UserMessage:    "anything starring tom hardy?",
				WantIntent:     models.IntentRecommendation,
				WantInResponse: []string{"Mad Max: Fury Road (2015)"},
			},
		},
	}
}

// GetFallbackScenario covers the classifier's smalltalk, fallback, and
// farewell paths. Replies there are randomized variants, so most turns check
// the intent only.
func GetFallbackScenario() Scenario {
	return Scenario{
		ID:          "fallback",
		Name:        "Classifier Fallbacks",
		Description: "Smalltalk, an off-topic question, and a farewell",
		Turns: []ScriptedTurn{
			{
				UserMessage: "how are you doing today?",
				WantIntent:  models.IntentGreeting,
			},
			{
				UserMessage:    "what's the weather like today?",
				WantIntent:     models.IntentHelp,
				WantInResponse: []string{"recommend"},
			},
			{
				UserMessage: "bye",
				WantIntent:  models.IntentThanks,
			},
		},
	}
}

// GetAllScenarios returns every benchmark scenario.
func GetAllScenarios() []Scenario {
	return []Scenario{
		GetRecommendationScenario(),
		GetSimilarScenario(),
		GetQuizScenario(),
		GetMoodScenario(),
		GetFallbackScenario(),
	}
}
