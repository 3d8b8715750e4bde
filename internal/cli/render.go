package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphloom/digraph/codec"
)

// newRenderCmd builds the "render" command: Graphviz DOT or SVG output.
func newRenderCmd() *cobra.Command {
	var (
		input  string
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the graph as Graphviz DOT or SVG",
		Long: `Render converts the graph to Graphviz DOT. With --format svg the DOT
is rendered through Graphviz to SVG bytes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, input)
			if err != nil {
				return err
			}

			dot := codec.ToDOT(g)
			switch format {
			case "dot":
				return writeOutput(cmd, output, []byte(dot))
			case "svg":
				svg, err := codec.RenderSVG(dot)
				if err != nil {
					return err
				}

				return writeOutput(cmd, output, svg)
			default:
				return fmt.Errorf("unknown format %q (want dot or svg)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinPath, "graph document (JSON), - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", stdinPath, "output file, - for stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")

	return cmd
}
