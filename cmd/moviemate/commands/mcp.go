// ABOUTME: MCP command starts a Model Context Protocol server
// ABOUTME: Exposes chat, recommendations, and trivia to LLM agents over stdio
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Run MovieMate as an MCP (Model Context Protocol) server over stdio,
exposing chat, recommendations, and the trivia quiz as tools.

Logs go to stderr so stdout stays clean for the protocol.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by the agent host)
  moviemate mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "moviemate": {
  #       "command": "moviemate",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ast, err := newAssistant(cfg)
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer("MovieMate", versionInfo.Version)
	mcp.RegisterTools(server, ast.engine, ast.catalog, ast.quiz, ast.journal)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("MovieMate MCP server starting on stdio")

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
