package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/graphloom/digraph/core"
)

// Serialize converts g into its node/link document. Nodes are enumerated
// in the store's sorted node-set order; links follow that same order per
// source, preserving each adjacency sequence. Every link carries the
// currently effective weight and payload for its ordered pair.
// Complexity: O(V log V + E)
func Serialize(g *core.Graph) *Document {
	doc := &Document{Nodes: []Node{}, Links: []Link{}}
	if g == nil {
		return doc
	}

	nodes := g.Nodes()
	doc.Nodes = make([]Node, 0, len(nodes))
	for _, id := range nodes {
		doc.Nodes = append(doc.Nodes, Node{ID: id})
	}

	for _, id := range nodes {
		for _, target := range g.Adjacent(id) {
			w := g.GetEdgeWeight(id, target)
			doc.Links = append(doc.Links, Link{
				Source: id,
				Target: target,
				Weight: &w,
				Data:   g.GetEdgeData(id, target),
			})
		}
	}

	return doc
}

// Deserialize hydrates a fresh graph from doc: every listed node is added
// (establishing empty adjacency for nodes with no outgoing links), then
// every link is replayed through AddEdge in document order, restoring
// adjacency order, weights, and payloads. Links with an absent weight or
// payload leave the pair's stored attribute untouched, so the default
// rules apply only to pairs never otherwise assigned.
// Complexity: O(V + E)
func Deserialize(doc *Document) *core.Graph {
	g := core.NewGraph()
	if doc == nil {
		return g
	}

	for _, n := range doc.Nodes {
		g.AddNode(n.ID)
	}
	for _, l := range doc.Links {
		opts := make([]core.EdgeOption, 0, 2)
		if l.Weight != nil {
			opts = append(opts, core.WithWeight(*l.Weight))
		}
		if l.Data != nil {
			opts = append(opts, core.WithData(l.Data))
		}
		g.AddEdge(l.Source, l.Target, opts...)
	}

	return g
}

// Encode writes g's document as JSON to w.
func Encode(w io.Writer, g *core.Graph) error {
	if err := json.NewEncoder(w).Encode(Serialize(g)); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}

	return nil
}

// Decode reads a JSON document from r and hydrates a graph from it.
// Unknown fields are ignored, per the wire contract.
func Decode(r io.Reader) (*core.Graph, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}

	return Deserialize(&doc), nil
}
