package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newStatsCmd builds the "stats" command: node/edge counts plus a
// per-node degree table in node-set order.
func newStatsCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print node/edge counts and per-node degrees",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes: %d\n", g.NodeCount())
			fmt.Fprintf(out, "edges: %d\n", g.EdgeCount())
			for _, id := range g.Nodes() {
				fmt.Fprintf(out, "%s\tin=%d\tout=%d\n", id, g.InDegree(id), g.OutDegree(id))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinPath, "graph document (JSON), - for stdin")

	return cmd
}
