package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the digraph CLI and returns an error if any command fails.
// This is the main entry point for the binary.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd builds the root command with all subcommands attached and
// the logging PersistentPreRun installed. Exposed for tests, which swap
// the command's in/out streams before executing.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "digraph",
		Short:         "digraph runs graph algorithms over node/link documents",
		Long:          `digraph loads a directed graph from its JSON node/link document and runs topological sorting, shortest-path queries, and rendering over it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSortCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newRenderCmd())

	return root
}
