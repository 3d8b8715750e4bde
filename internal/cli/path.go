package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphloom/digraph/dijkstra"
)

// newPathCmd builds the "path" command: shortest path between two nodes.
func newPathCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "path SOURCE DESTINATION",
		Short: "Print the shortest path between two nodes",
		Long: `Path runs Dijkstra's algorithm from SOURCE to DESTINATION and prints
the route with its accumulated weight. Edges without an explicit weight
cost 1. Fails if either endpoint is unknown or no route exists.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, input)
			if err != nil {
				return err
			}

			res, err := dijkstra.ShortestPath(g, args[0], args[1])
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("route found", "hops", len(res.Path)-1, "weight", res.Weight)

			fmt.Fprintf(cmd.OutOrStdout(), "%s (weight %s)\n",
				strings.Join(res.Path, " -> "),
				strconv.FormatFloat(res.Weight, 'g', -1, 64))

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinPath, "graph document (JSON), - for stdin")

	return cmd
}
