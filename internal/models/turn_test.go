// ABOUTME: Tests for Turn construction and validation
// ABOUTME: Verifies the fixed greeting, pending-question invariant, and session IDs
package models

import (
	"strings"
	"testing"
)

func TestGreeting(t *testing.T) {
	turn := Greeting()

	if turn.Intent != IntentGreeting {
		t.Errorf("Intent = %q, want %q", turn.Intent, IntentGreeting)
	}
	if turn.Message != GreetingMessage {
		t.Errorf("Message = %q, want the fixed greeting", turn.Message)
	}
	if turn.Recommendations != nil {
		t.Error("Greeting() should carry no recommendations")
	}
	if turn.PendingQuestion != nil {
		t.Error("Greeting() should carry no pending question")
	}
}

func TestTurn_AwaitingAnswer(t *testing.T) {
	q := &TriviaQuestion{Text: "Q?", Answer: "a"}

	tests := []struct {
		name string
		turn Turn
		want bool
	}{
		{"quiz turn with question", Turn{Intent: IntentQuizQuestion, Message: "Q?", PendingQuestion: q}, true},
		{"greeting", Greeting(), false},
		{"recommendation", Turn{Intent: IntentRecommendation, Message: "try these"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.turn.AwaitingAnswer(); got != tt.want {
				t.Errorf("AwaitingAnswer() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTurn_Validate(t *testing.T) {
	q := &TriviaQuestion{Text: "Q?", Answer: "a"}

	tests := []struct {
		name    string
		turn    Turn
		wantErr bool
	}{
		{"valid greeting", Greeting(), false},
		{"valid quiz question", Turn{Intent: IntentQuizQuestion, Message: "Q?", PendingQuestion: q}, false},
		{"missing intent", Turn{Message: "hi"}, true},
		{"missing message", Turn{Intent: IntentHelp}, true},
		{"quiz question without pending", Turn{Intent: IntentQuizQuestion, Message: "Q?"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.turn.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSessionID(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id := NewSessionID()
		if !strings.HasPrefix(id, "chat_") {
			t.Errorf("NewSessionID() = %q, should start with 'chat_'", id)
		}
		if ids[id] {
			t.Errorf("duplicate session ID generated: %s", id)
		}
		ids[id] = true
	}
}
