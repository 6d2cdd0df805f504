// ABOUTME: Tests for candidate phrase identification
// ABOUTME: Verifies n-gram boundary guards and known-phrase fuzzy hits
package fuzzy

import (
	"strings"
	"testing"
)

func TestCandidatePhrases(t *testing.T) {
	tests := []struct {
		name        string
		tokens      []string
		wantSome    []string
		wantAbsent  []string
		wantNothing bool
	}{
		{
			name:     "greeting phrase found",
			tokens:   []string{"good", "morning", "to", "you"},
			wantSome: []string{"good morning"},
		},
		{
			name:       "stop word boundary rejected",
			tokens:     []string{"the", "dark", "knight"},
			wantSome:   []string{"dark knight"},
			wantAbsent: []string{"the dark", "the dark knight"},
		},
		{
			name:       "short boundary token rejected",
			tokens:     []string{"up", "all", "night"},
			wantAbsent: []string{"up all", "up all night"},
		},
		{
			name:     "three gram spans interior stop word",
			tokens:   []string{"gone", "with", "wind"},
			wantSome: []string{"gone with wind"},
		},
		{
			name:        "single token yields nothing",
			tokens:      []string{"inception"},
			wantNothing: true,
		},
		{
			name:        "empty input",
			tokens:      nil,
			wantNothing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CandidatePhrases(tt.tokens)
			if tt.wantNothing && len(got) > 0 {
				t.Fatalf("CandidatePhrases(%v) = %v, want none", tt.tokens, got)
			}
			joined := strings.Join(got, "|")
			for _, want := range tt.wantSome {
				if !contains(got, want) {
					t.Errorf("CandidatePhrases(%v) = %s, missing %q", tt.tokens, joined, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if contains(got, absent) {
					t.Errorf("CandidatePhrases(%v) = %s, should not contain %q", tt.tokens, joined, absent)
				}
			}
		})
	}
}

func TestCandidatePhrases_FuzzyHitOnTypo(t *testing.T) {
	// "good mornin" is one edit from the known phrase, well over the bar.
	got := CandidatePhrases([]string{"good", "mornin"})
	if !contains(got, "good mornin") {
		t.Fatalf("literal phrase missing from %v", got)
	}
	if !contains(got, "good morning") {
		t.Errorf("fuzzy hit for known phrase missing from %v", got)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
