package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphloom/digraph/codec"
	"github.com/graphloom/digraph/core"
)

// stdinPath is the conventional input value selecting the command's
// stdin stream.
const stdinPath = "-"

// loadGraph reads a node/link JSON document from path ("-" for stdin)
// and hydrates a graph from it.
func loadGraph(cmd *cobra.Command, path string) (*core.Graph, error) {
	logger := loggerFromContext(cmd.Context())

	var r io.Reader
	if path == "" || path == stdinPath {
		logger.Debug("reading graph document from stdin")
		r = cmd.InOrStdin()
	} else {
		logger.Debug("reading graph document", "path", path)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	g, err := codec.Decode(r)
	if err != nil {
		return nil, err
	}
	logger.Debug("graph loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, nil
}

// writeOutput writes data to path, or to the command's stdout when path
// is "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == stdinPath {
		_, err := cmd.OutOrStdout().Write(data)

		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
