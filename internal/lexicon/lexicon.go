// ABOUTME: Lexical normalizer: lowercasing, contraction expansion, tokenization
// ABOUTME: Deterministic string pipeline, no I/O
package lexicon

import "strings"

// contractions are expanded by literal substring rewrite, in this order.
// Deliberately not word-boundary aware: possessives share the "'s" rewrite
// and a mid-word hit is accepted as a known false positive.
var contractions = [...][2]string{
	{"n't", " not"},
	{"'m", " am"},
	{"'s", " is"},
	{"'re", " are"},
}

// Normalize lowercases the text, expands contractions, and strips every
// character outside letters, digits, and whitespace.
func Normalize(text string) string {
	s := strings.ToLower(text)
	for _, c := range contractions {
		s = strings.ReplaceAll(s, c[0], c[1])
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '\v', r == '\f':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Words normalizes the text and splits it on whitespace runs, keeping stop
// words. Order and duplicates are preserved.
func Words(text string) []string {
	return strings.Fields(Normalize(text))
}

// Tokenize normalizes, splits, and drops stop words. Order and duplicates of
// the surviving tokens are preserved.
func Tokenize(text string) []string {
	fields := Words(text)
	tokens := fields[:0]
	for _, f := range fields {
		if !IsStopWord(f) {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
