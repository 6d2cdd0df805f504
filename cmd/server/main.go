// ABOUTME: Standalone MCP server entry point with stdio transport
// ABOUTME: Loads config, wires the catalog, quiz, and dialogue engine, and serves tools

package main

import (
	"log"
	"math/rand/v2"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/moviemate/moviemate/internal/catalog"
	"github.com/moviemate/moviemate/internal/config"
	"github.com/moviemate/moviemate/internal/dialogue"
	"github.com/moviemate/moviemate/internal/journal"
	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/mcp"
	"github.com/moviemate/moviemate/internal/quiz"
)

var version = "dev"

func main() {
	// stdout carries the MCP protocol, so everything else goes to stderr.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	bank := quiz.LoadBank(cfg.Quiz.BankDir)
	jrnl := journal.New(cfg.Quiz.JournalPath)
	quizEngine := quiz.NewEngine(bank, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	engine := dialogue.NewEngine(cat, quizEngine, jrnl, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	server := mcpserver.NewMCPServer(
		"MovieMate",
		version,
	)

	mcp.RegisterTools(server, engine, cat, quizEngine, jrnl)

	logging.Info().Str("version", version).Msg("MovieMate MCP server starting on stdio")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
