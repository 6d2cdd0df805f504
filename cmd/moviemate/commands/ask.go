// ABOUTME: Ask command for one-shot questions without an interactive session
// ABOUTME: Prints the reply as text, or as a full JSON turn for scripting
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moviemate/moviemate/internal/models"
)

// NewAskCmd creates the one-shot ask command
func NewAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask MovieMate a single question",
		Long: `Ask one question and print the reply.

With --format json the whole turn is printed, including the intent and
any recommended titles, which makes the output easy to pipe into jq.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ast, err := newAssistant(cfg)
			if err != nil {
				return err
			}

			turn := ast.engine.Respond(strings.Join(args, " "), models.Greeting())

			if outputFormat == "json" {
				return printJSON(cmd, turn)
			}
			fmt.Fprintln(cmd.OutOrStdout(), turn.Message)
			return nil
		},
	}
}
