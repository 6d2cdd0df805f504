// ABOUTME: Tests for the interactive chat command
// ABOUTME: Drives the REPL through scripted stdin and checks transcripts

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moviemate/moviemate/internal/models"
)

func runChat(t *testing.T, input string, args ...string) string {
	t.Helper()
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(append([]string{"chat"}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return output.String()
}

func TestChatCmd_GreetsAndExits(t *testing.T) {
	setupTestEnv(t)

	got := runChat(t, "hi\nexit\n")

	// The greeting appears twice: once as the opening turn, once replying to "hi".
	if n := strings.Count(got, models.GreetingMessage); n != 2 {
		t.Errorf("greeting count = %d, want 2 in output:\n%s", n, got)
	}
	if !strings.Contains(got, FarewellMessage) {
		t.Errorf("output should close with the farewell, got:\n%s", got)
	}
}

func TestChatCmd_ThreadsTurns(t *testing.T) {
	setupTestEnv(t)

	got := runChat(t, "tell me about the office\ngot anything similar?\nexit\n")

	if !strings.Contains(got, "The Office (2005)") {
		t.Errorf("first reply should describe The Office, got:\n%s", got)
	}
	if !strings.Contains(got, "Since you liked The Office") {
		t.Errorf("follow-up should build on the previous turn, got:\n%s", got)
	}
}

func TestChatCmd_WritesTranscript(t *testing.T) {
	dir := setupTestEnv(t)

	runChat(t, "hi\nexit\n")

	data, err := os.ReadFile(filepath.Join(dir, "transcripts", "chathistory_0.txt"))
	if err != nil {
		t.Fatalf("reading transcript: %v", err)
	}
	if string(data) != "hi\nexit\n" {
		t.Errorf("transcript = %q, want %q", string(data), "hi\nexit\n")
	}
}

func TestChatCmd_NewFlagStartsFreshTranscript(t *testing.T) {
	dir := setupTestEnv(t)

	runChat(t, "hi\nexit\n")
	runChat(t, "recommend a comedy\nexit\n", "--new")

	data, err := os.ReadFile(filepath.Join(dir, "transcripts", "chathistory_1.txt"))
	if err != nil {
		t.Fatalf("reading second transcript: %v", err)
	}
	if !strings.Contains(string(data), "recommend a comedy") {
		t.Errorf("second transcript should hold the new session, got %q", string(data))
	}

	first, err := os.ReadFile(filepath.Join(dir, "transcripts", "chathistory_0.txt"))
	if err != nil {
		t.Fatalf("reading first transcript: %v", err)
	}
	if string(first) != "hi\nexit\n" {
		t.Errorf("first transcript should be untouched, got %q", string(first))
	}
}

func TestChatCmd_EOFEndsSession(t *testing.T) {
	setupTestEnv(t)

	got := runChat(t, "hi\n")

	if !strings.Contains(got, FarewellMessage) {
		t.Errorf("EOF should still close with the farewell, got:\n%s", got)
	}
}
