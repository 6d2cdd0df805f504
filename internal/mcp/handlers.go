// ABOUTME: MCP tool handler implementations for the assistant server
// ABOUTME: Threads per-session dialogue turns and drives the quiz flow explicitly
package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/moviemate/moviemate/internal/catalog"
	"github.com/moviemate/moviemate/internal/dialogue"
	"github.com/moviemate/moviemate/internal/journal"
	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/models"
	"github.com/moviemate/moviemate/internal/quiz"
)

// defaultSession names the session used when a caller passes none. Sessions
// hold only the previous turn; this is single-user state, not multi-tenancy.
const defaultSession = "default"

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	engine  *dialogue.Engine
	catalog *catalog.Catalog
	quiz    *quiz.Engine
	journal *journal.Journal

	mu       sync.Mutex
	sessions map[string]models.Turn
}

// Chat handles the chat tool.
func (h *Handlers) Chat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}
	session := request.GetString("session", defaultSession)

	turn := h.engine.Respond(message, h.previousTurn(session))
	h.setTurn(session, turn)

	response := map[string]interface{}{
		"session": session,
		"intent":  string(turn.Intent),
		"message": turn.Message,
	}
	if len(turn.Recommendations) > 0 {
		response["recommendations"] = turn.Recommendations
	}
	return marshalResult(response)
}

// Recommend handles the recommend tool.
func (h *Handlers) Recommend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	criteria := catalog.Criteria{
		Genres:      splitGenresArg(request.GetString("genre", "")),
		Year:        request.GetString("year", ""),
		Director:    request.GetString("director", ""),
		Actor:       request.GetString("actor", ""),
		Language:    request.GetString("language", ""),
		Country:     request.GetString("country", ""),
		HighlyRated: boolArg(request, "highly_rated"),
	}
	if kind := request.GetString("kind", ""); kind != "" {
		criteria.Kind = models.ParseKind(kind)
	}

	recs := h.catalog.Recommend(criteria)
	response := map[string]interface{}{
		"message":         catalog.FormatList(recs),
		"count":           len(recs),
		"recommendations": recs,
	}
	return marshalResult(response)
}

// StartQuiz handles the start_quiz tool.
func (h *Handlers) StartQuiz(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	session := request.GetString("session", defaultSession)

	q, ok := h.quiz.Pick()
	if !ok {
		return mcp.NewToolResultError("no trivia questions are loaded"), nil
	}
	turn := models.Turn{
		Intent:          models.IntentQuizQuestion,
		Message:         h.quiz.Present(q),
		PendingQuestion: &q,
	}
	h.setTurn(session, turn)

	response := map[string]interface{}{
		"session":  session,
		"question": turn.Message,
		"category": string(q.Category),
	}
	return marshalResult(response)
}

// AnswerQuiz handles the answer_quiz tool.
func (h *Handlers) AnswerQuiz(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answer, err := request.RequireString("answer")
	if err != nil {
		return mcp.NewToolResultError("answer argument is required and must be a string"), nil
	}
	session := request.GetString("session", defaultSession)

	prev := h.previousTurn(session)
	if prev.Intent != models.IntentQuizQuestion || prev.PendingQuestion == nil {
		return mcp.NewToolResultError("no quiz question is pending for this session; call start_quiz first"), nil
	}
	q := *prev.PendingQuestion

	correct := quiz.Grade(q, answer)
	if h.journal != nil {
		if err := h.journal.Record(q, answer, correct); err != nil {
			logging.Warn().Err(err).Msg("Failed to record quiz answer")
		}
	}
	h.setTurn(session, models.Turn{
		Intent:  models.IntentQuizAnswer,
		Message: quiz.ResultMessage(q, correct),
	})

	response := map[string]interface{}{
		"session":        session,
		"correct":        correct,
		"correct_answer": q.Answer,
		"message":        quiz.ResultMessage(q, correct),
	}
	return marshalResult(response)
}

// QuizStats handles the quiz_stats tool.
func (h *Handlers) QuizStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.journal == nil {
		return mcp.NewToolResultError("quiz journal is not configured"), nil
	}
	entries, skipped, err := h.journal.ReadAll()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read quiz journal: %v", err)), nil
	}

	summary := journal.Summarize(entries)
	response := map[string]interface{}{
		"summary":      summary,
		"accuracy":     summary.Overall.Accuracy(),
		"skipped_rows": skipped,
	}
	return marshalResult(response)
}

func (h *Handlers) previousTurn(session string) models.Turn {
	h.mu.Lock()
	defer h.mu.Unlock()
	if turn, ok := h.sessions[session]; ok {
		return turn
	}
	return models.Greeting()
}

func (h *Handlers) setTurn(session string, turn models.Turn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[session] = turn
}

func marshalResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// splitGenresArg splits a comma-separated genre argument, lowercased.
func splitGenresArg(arg string) []string {
	var genres []string
	for _, part := range strings.Split(arg, ",") {
		if g := strings.ToLower(strings.TrimSpace(part)); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// boolArg reads an optional boolean argument, false when absent or mistyped.
func boolArg(request mcp.CallToolRequest, key string) bool {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return false
	}
	v, _ := args[key].(bool)
	return v
}
