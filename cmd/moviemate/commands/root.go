// ABOUTME: Root command setup for the MovieMate CLI
// ABOUTME: Defines global flags and wires all subcommands together
package commands

import (
	"github.com/spf13/cobra"
)

const banner = `
███╗   ███╗ ██████╗ ██╗   ██╗██╗███████╗███╗   ███╗ █████╗ ████████╗███████╗
████╗ ████║██╔═══██╗██║   ██║██║██╔════╝████╗ ████║██╔══██╗╚══██╔══╝██╔════╝
██╔████╔██║██║   ██║██║   ██║██║█████╗  ██╔████╔██║███████║   ██║   █████╗
██║╚██╔╝██║██║   ██║██║   ██║██║██╔══╝  ██║╚██╔╝██║██╔══██║   ██║   ██╔══╝
██║ ╚═╝ ██║╚██████╔╝ ╚████╔╝ ██║███████╗██║ ╚═╝ ██║██║  ██║   ██║   ███████╗
╚═╝     ╚═╝ ╚═════╝   ╚═══╝  ╚═╝╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚══════╝
`

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command for the MovieMate CLI
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moviemate",
		Short: "A movie and TV show companion you can talk to",
		Long: banner + `
MovieMate chats about movies and TV shows: ask for recommendations,
look up a specific title, or play a round of trivia. It also runs as
an MCP server and as a file bridge for other programs to talk to.

Conversation state lives entirely in the previous turn, so every
interface (chat, bridge, MCP) threads context the same way.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, json, or text")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewQuizCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewBridgeCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
