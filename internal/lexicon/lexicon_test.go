// ABOUTME: Tests for the lexical normalizer pipeline
// ABOUTME: Pins contraction rewrites, stripping, ordering, and stop-word drops
package lexicon

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"expands not", "don't stop", "do not stop"},
		{"expands am", "I'm bored", "i am bored"},
		{"expands is", "what's up", "what is up"},
		{"expands are", "you're great", "you are great"},
		{"possessive becomes is", "nolan's movies", "nolan is movies"},
		{"strips punctuation", "action, drama & sci-fi!", "action drama  scifi"},
		{"keeps digits", "top 10 of 2021", "top 10 of 2021"},
		{"strips non-latin letters", "فيلم good", " good"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"keeps stop words", "the best movie", []string{"the", "best", "movie"}},
		{"collapses whitespace runs", "good   morning\tto you", []string{"good", "morning", "to", "you"}},
		{"empty input", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "drops stop words keeps order",
			input: "Can you recommend a good action movie?",
			want:  []string{"recommend", "good", "action", "movie"},
		},
		{
			name:  "duplicates preserved",
			input: "movie movie movie",
			want:  []string{"movie", "movie", "movie"},
		},
		{
			name:  "contraction expansion feeds the filter",
			input: "I'm looking for thrillers",
			want:  []string{"looking", "thrillers"},
		},
		{
			name:  "all stop words yields nothing",
			input: "is it not the same",
			want:  nil,
		},
		{
			name:  "punctuation stripped before split",
			input: "what's \"Inception\" about?",
			want:  []string{"inception"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsStopWord(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"the", true},
		{"not", true},
		{"i", true},
		{"movie", false},
		{"inception", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := IsStopWord(tt.token); got != tt.want {
				t.Errorf("IsStopWord(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}
