package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphloom/digraph/dfs"
)

// newSortCmd builds the "sort" command: print a topological order of the
// loaded graph, one node per line.
func newSortCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Print a topological order of the graph",
		Long: `Sort prints the graph's nodes in topological order, one per line:
for every edge u->v of an acyclic graph, u is printed before v. A cyclic
graph still yields a total order, but not a valid one for the cyclic
portion; no cycle detection is performed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, input)
			if err != nil {
				return err
			}

			for _, id := range dfs.TopologicalSort(g) {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinPath, "graph document (JSON), - for stdin")

	return cmd
}
