package codec

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/graphloom/digraph/core"
)

// ToDOT converts a graph to Graphviz DOT format. Nodes are declared in
// sorted node-set order, edges in adjacency order with their effective
// weight as the label, so the output is deterministic for a given graph.
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(g *core.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=rounded];\n")
	buf.WriteString("\n")

	if g != nil {
		nodes := g.Nodes()
		for _, id := range nodes {
			fmt.Fprintf(&buf, "  %q;\n", id)
		}
		buf.WriteString("\n")
		for _, u := range nodes {
			for _, v := range g.Adjacent(u) {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", u, v, fmtWeight(g.GetEdgeWeight(u, v)))
			}
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}

// fmtWeight renders a weight with the shortest exact representation.
func fmtWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("codec: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("codec: parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("codec: render: %w", err)
	}

	return buf.Bytes(), nil
}
