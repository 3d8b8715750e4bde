// File: methods_clone.go
// Role: Whole-graph maintenance: Clone and Clear.
package core

// Clone returns a deep copy of the graph: adjacency sequences and the
// weight map are copied, and each stored payload is re-keyed into a new
// map. The Metadata values themselves are shared with the original, the
// same way Vertex metadata is shared on shallow clones elsewhere in the
// ecosystem; callers needing isolation must copy payloads explicitly.
// Complexity: O(V+E)
func (g *Graph) Clone() *Graph {
	c := &Graph{
		adjacency: make(map[string][]string, len(g.adjacency)),
		weights:   make(map[edgeKey]float64, len(g.weights)),
		payloads:  make(map[edgeKey]Metadata, len(g.payloads)),
	}

	for u, succ := range g.adjacency {
		dup := make([]string, len(succ))
		copy(dup, succ)
		c.adjacency[u] = dup
	}
	for k, w := range g.weights {
		c.weights[k] = w
	}
	for k, d := range g.payloads {
		c.payloads[k] = d
	}

	return c
}

// Clear resets the graph to its empty state, discarding adjacency, weights,
// and payloads alike.
// Complexity: O(1) (old maps are left to the garbage collector)
func (g *Graph) Clear() {
	g.adjacency = make(map[string][]string)
	g.weights = make(map[edgeKey]float64)
	g.payloads = make(map[edgeKey]Metadata)
}
