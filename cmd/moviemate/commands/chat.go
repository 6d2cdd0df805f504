// ABOUTME: Interactive chat command for talking with MovieMate
// ABOUTME: Runs a REPL that threads turn context and records a transcript
package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/models"
	"github.com/moviemate/moviemate/internal/transcript"
)

// FarewellMessage closes a chat session when the user types exit or quit
const FarewellMessage = "Enjoy the show! Come back whenever you need something to watch."

// NewChatCmd creates the interactive chat command
func NewChatCmd() *cobra.Command {
	var startNew bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with MovieMate interactively",
		Long: `Start an interactive conversation with MovieMate.

Each line you type is appended to the current transcript and answered in
the context of the previous reply. Type 'exit' or 'quit' to leave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ast, err := newAssistant(cfg)
			if err != nil {
				return err
			}

			store := transcript.NewStore(cfg.Transcripts.Dir)
			var file string
			if startNew {
				file, err = store.StartNew()
			} else {
				file, err = store.Current()
			}
			if err != nil {
				logging.Warn().Err(err).Msg("transcript unavailable, continuing without one")
				file = ""
			}

			sessionID := models.NewSessionID()
			logging.Debug().Str("session", sessionID).Str("transcript", file).Msg("chat session started")

			out := cmd.OutOrStdout()
			prev := models.Greeting()
			fmt.Fprintln(out, prev.Message)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				if file != "" {
					if err := store.AppendUserLine(file, line); err != nil {
						logging.Warn().Err(err).Msg("failed to record transcript line")
					}
				}

				lower := strings.ToLower(line)
				if lower == "exit" || lower == "quit" {
					fmt.Fprintln(out, FarewellMessage)
					return nil
				}

				turn := ast.engine.Respond(line, prev)
				prev = turn
				fmt.Fprintln(out, turn.Message)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			fmt.Fprintln(out, FarewellMessage)
			return nil
		},
	}

	cmd.Flags().BoolVar(&startNew, "new", false, "Start a new transcript instead of continuing the current one")

	return cmd
}
