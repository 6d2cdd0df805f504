// ABOUTME: MCP tool definitions and registration for the assistant server
// ABOUTME: Defines JSON schemas for the chat, recommendation, and quiz tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/moviemate/moviemate/internal/catalog"
	"github.com/moviemate/moviemate/internal/dialogue"
	"github.com/moviemate/moviemate/internal/journal"
	"github.com/moviemate/moviemate/internal/models"
	"github.com/moviemate/moviemate/internal/quiz"
)

// RegisterTools registers all MCP tools with the server and returns the
// handlers that back them.
func RegisterTools(server *mcpserver.MCPServer, engine *dialogue.Engine, cat *catalog.Catalog, quizEngine *quiz.Engine, jrnl *journal.Journal) *Handlers {
	handlers := &Handlers{
		engine:   engine,
		catalog:  cat,
		quiz:     quizEngine,
		journal:  jrnl,
		sessions: make(map[string]models.Turn),
	}

	sessionProperty := map[string]interface{}{
		"type":        "string",
		"description": "Session name for threading turns across calls (default: \"default\")",
	}

	// 1. chat - free-form conversation with the dialogue engine
	server.AddTool(mcp.Tool{
		Name:        "chat",
		Description: "Send a message to the movie and TV assistant. Handles greetings, recommendations, title questions, moods, and trivia, threading context within a session.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message": map[string]interface{}{
					"type":        "string",
					"description": "User message to respond to",
				},
				"session": sessionProperty,
			},
			Required: []string{"message"},
		},
	}, handlers.Chat)

	// 2. recommend - structured recommendation lookup
	server.AddTool(mcp.Tool{
		Name:        "recommend",
		Description: "Get ranked catalog recommendations from structured criteria instead of free text. All criteria are optional and combine with AND.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"genre": map[string]interface{}{
					"type":        "string",
					"description": "Genre to match, comma-separated for several (e.g. 'comedy' or 'crime, thriller')",
				},
				"year": map[string]interface{}{
					"type":        "string",
					"description": "Release year to match (e.g. '2010')",
				},
				"kind": map[string]interface{}{
					"type":        "string",
					"description": "Restrict to 'movie' or 'tv_show'",
				},
				"director": map[string]interface{}{
					"type":        "string",
					"description": "Director name to match",
				},
				"actor": map[string]interface{}{
					"type":        "string",
					"description": "Cast member name to match",
				},
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Language to match (e.g. 'english', 'arabic')",
				},
				"country": map[string]interface{}{
					"type":        "string",
					"description": "Country of origin to match",
				},
				"highly_rated": map[string]interface{}{
					"type":        "boolean",
					"description": "Only return titles rated 7.0 or above",
				},
			},
		},
	}, handlers.Recommend)

	// 3. start_quiz - draw a trivia question
	server.AddTool(mcp.Tool{
		Name:        "start_quiz",
		Description: "Draw a random movie or TV trivia question. The question stays pending in the session until answer_quiz is called.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session": sessionProperty,
			},
		},
	}, handlers.StartQuiz)

	// 4. answer_quiz - grade the pending question
	server.AddTool(mcp.Tool{
		Name:        "answer_quiz",
		Description: "Answer the session's pending trivia question. The answer is graded with typo tolerance and the result is logged.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"answer": map[string]interface{}{
					"type":        "string",
					"description": "The user's answer, as text or a choice number",
				},
				"session": sessionProperty,
			},
			Required: []string{"answer"},
		},
	}, handlers.AnswerQuiz)

	// 5. quiz_stats - journal summary
	server.AddTool(mcp.Tool{
		Name:        "quiz_stats",
		Description: "Summarize logged quiz answers: overall accuracy plus per-category, per-language, hourly, and daily breakdowns.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.QuizStats)

	return handlers
}
