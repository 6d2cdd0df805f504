// ABOUTME: Response text used by the dialogue rules and fallback classifier
// ABOUTME: Fixed messages for rules, randomized variants for the classifier
package dialogue

import (
	"fmt"
	"strings"

	"github.com/moviemate/moviemate/internal/models"
)

// HelpMessage is the fixed capability summary.
const HelpMessage = "Here's what I can do: ask me to recommend movies or TV shows (by genre, year, rating, director, or actor), ask about a specific title, ask for something similar to one you liked, or say 'quiz me' for movie and TV trivia!"

const (
	thanksReply            = "You're welcome! Enjoy the show!"
	quizClosingMessage     = "No problem! Ask me for a recommendation any time, or say 'quiz me' when you feel like more trivia."
	quizUnavailableMessage = "I'm afraid I don't have any trivia questions loaded right now. Ask me for a recommendation instead!"
	boredPrefix            = "Sounds like you need some excitement! "
	sadPrefix              = "Sorry to hear that. A good comedy usually helps! "
)

var greetingVariants = []string{
	"Hello! Looking for something to watch?",
	"Hey there! I can recommend movies and TV shows, or quiz you on them.",
	"Hi! What are you in the mood to watch?",
}

var farewellVariants = []string{
	"Goodbye! Enjoy whatever you end up watching.",
	"See you later! Come back when you need a recommendation.",
}

var thanksVariants = []string{
	"You're welcome! Happy watching!",
	"Any time! Enjoy the show.",
}

var smalltalkVariants = []string{
	"I'm doing great and ready to talk movies! What are you in the mood for?",
	"All good here! Want a recommendation or some trivia?",
}

var fallbackVariants = []string{
	"I'm not sure I follow. I can recommend movies and shows, tell you about a title, or quiz you. Try 'recommend a comedy' or 'quiz me'.",
	"Hmm, I didn't catch that. Ask me for a recommendation, ask about a specific title, or say 'quiz me'.",
}

// joinTitles renders "T1 (Y1), T2 (Y2) and T3 (Y3)" for embedding in a
// sentence.
func joinTitles(recs []models.MediaRecord) string {
	parts := make([]string, len(recs))
	for i, rec := range recs {
		parts[i] = fmt.Sprintf("%s (%s)", rec.Title, rec.Year)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}
