// ABOUTME: Bridge command serving conversations over a pair of text files
// ABOUTME: Watches the input file and writes each reply to the output file
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/moviemate/moviemate/internal/bridge"
)

// NewBridgeCmd creates the file bridge command
func NewBridgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bridge",
		Short: "Serve conversations over a pair of text files",
		Long: `Run the file bridge: lines appended to the input file are answered in
the output file, one reply per line. Any program that can write a file
can talk to MovieMate this way.

The bridge reads the whole input file, truncates it, and answers each
line in order, so it expects a single writer that waits for its reply.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ast, err := newAssistant(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			b := bridge.New(cfg.Bridge.InputPath, cfg.Bridge.OutputPath, cfg.Bridge.PollInterval, ast.engine)
			return b.Run(ctx)
		},
	}
}
