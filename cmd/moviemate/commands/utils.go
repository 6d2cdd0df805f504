// ABOUTME: Shared helpers for MovieMate commands
// ABOUTME: Loads configuration and assembles the dialogue engine with its dependencies
package commands

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/moviemate/moviemate/internal/catalog"
	"github.com/moviemate/moviemate/internal/config"
	"github.com/moviemate/moviemate/internal/dialogue"
	"github.com/moviemate/moviemate/internal/journal"
	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/quiz"
)

// loadConfig loads .env, the config file, and environment overrides, then
// reconfigures logging according to the global flags.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	if quiet {
		level = "error"
	}
	logging.Init(logging.Config{Level: level, Format: cfg.Logging.Format, Output: os.Stderr})

	return cfg, nil
}

// assistant bundles the pieces every conversational command needs
type assistant struct {
	catalog *catalog.Catalog
	quiz    *quiz.Engine
	journal *journal.Journal
	engine  *dialogue.Engine
}

// newAssistant loads the catalog and question bank and wires up the dialogue
// engine. A missing question bank degrades to an empty one; a missing catalog
// is an error because almost every reply needs it.
func newAssistant(cfg *config.Config) (*assistant, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	bank := quiz.LoadBank(cfg.Quiz.BankDir)
	jrnl := journal.New(cfg.Quiz.JournalPath)

	quizEngine := quiz.NewEngine(bank, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	engine := dialogue.NewEngine(cat, quizEngine, jrnl, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	return &assistant{
		catalog: cat,
		quiz:    quizEngine,
		journal: jrnl,
		engine:  engine,
	}, nil
}

// printJSON writes v as indented JSON to the command's stdout
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
