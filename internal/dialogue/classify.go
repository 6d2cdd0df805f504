// ABOUTME: Fallback intent classifier for input no dialogue rule claimed
// ABOUTME: Token and fuzzy-phrase cues with randomized response variants
package dialogue

import (
	"strings"

	"github.com/moviemate/moviemate/internal/fuzzy"
	"github.com/moviemate/moviemate/internal/lexicon"
	"github.com/moviemate/moviemate/internal/models"
)

// The cue sets work on normalized tokens. Phrase cues are matched against
// the candidate phrases, which include fuzzy-corrected known phrases, so
// "good mornin" still lands on "good morning".
var (
	greetingTokens = map[string]struct{}{
		"hi": {}, "hello": {}, "hey": {}, "howdy": {}, "hiya": {}, "yo": {},
		"salam": {}, "marhaba": {},
	}
	farewellTokens = map[string]struct{}{
		"bye": {}, "goodbye": {}, "farewell": {}, "ciao": {}, "cya": {},
	}
	thanksTokens = map[string]struct{}{
		"thanks": {}, "thx": {}, "thankyou": {}, "shukran": {},
	}
	greetingPhrases = map[string]struct{}{
		"good morning": {}, "good afternoon": {}, "good evening": {},
	}
	farewellPhrases = map[string]struct{}{
		"good night": {}, "see you later": {},
	}
)

// classify is the last dialogue rule. It always produces a turn.
func (e *Engine) classify(req request) models.Turn {
	normalized := lexicon.Normalize(req.input)
	words := lexicon.Words(req.input)
	phrases := fuzzy.CandidatePhrases(words)

	if strings.Contains(normalized, "how are you") {
		return models.Turn{Intent: models.IntentGreeting, Message: e.variant(smalltalkVariants)}
	}
	if hasToken(words, greetingTokens) || hasPhrase(phrases, greetingPhrases) {
		return models.Turn{Intent: models.IntentGreeting, Message: e.variant(greetingVariants)}
	}
	if hasToken(words, farewellTokens) || hasPhrase(phrases, farewellPhrases) {
		return models.Turn{Intent: models.IntentThanks, Message: e.variant(farewellVariants)}
	}
	if hasToken(words, thanksTokens) {
		return models.Turn{Intent: models.IntentThanks, Message: e.variant(thanksVariants)}
	}
	return models.Turn{Intent: models.IntentHelp, Message: e.variant(fallbackVariants)}
}

func (e *Engine) variant(options []string) string {
	return options[e.rng.IntN(len(options))]
}

func hasToken(words []string, cues map[string]struct{}) bool {
	for _, w := range words {
		if _, ok := cues[w]; ok {
			return true
		}
	}
	return false
}

func hasPhrase(phrases []string, cues map[string]struct{}) bool {
	for _, p := range phrases {
		if _, ok := cues[p]; ok {
			return true
		}
	}
	return false
}
