// ABOUTME: Candidate phrase identification over token sequences
// ABOUTME: Finds 2/3-grams that could be titles, names, or idiomatic phrases
package fuzzy

import (
	"strings"

	"github.com/moviemate/moviemate/internal/lexicon"
)

// PhraseThreshold is the similarity bar for matching a candidate phrase
// against the known idiomatic phrases.
const PhraseThreshold = 0.8

// knownPhrases are short idioms the single-token cues would miss.
var knownPhrases = []string{
	"good morning",
	"good afternoon",
	"good evening",
	"good night",
	"how are you",
	"see you later",
	"nice to meet you",
	"thank you",
}

// CandidatePhrases builds every contiguous 2-gram and 3-gram whose first and
// last tokens are each longer than two characters and not stop words. Each
// candidate is followed by its fuzzy hits among the known idiomatic phrases
// (or by itself again when nothing clears the bar). Tokens must not have had
// stop words removed, otherwise the boundary guard has nothing to reject.
func CandidatePhrases(tokens []string) []string {
	var phrases []string
	for n := 2; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			first, last := tokens[i], tokens[i+n-1]
			if len(first) <= 2 || len(last) <= 2 {
				continue
			}
			if lexicon.IsStopWord(first) || lexicon.IsStopWord(last) {
				continue
			}
			phrase := strings.Join(tokens[i:i+n], " ")
			phrases = append(phrases, phrase)
			phrases = append(phrases, BestMatches(phrase, knownPhrases, PhraseThreshold)...)
		}
	}
	return phrases
}
