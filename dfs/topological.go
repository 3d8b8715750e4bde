package dfs

import "github.com/graphloom/digraph/core"

// TopologicalSort returns DepthFirstSearch(g, opts...) with the sequence
// reversed: nodes in decreasing finish time. For an acyclic reachable
// subgraph this places u before v for every edge u→v present in the
// result. Cyclic portions yield a total but non-topological order; no
// error is reported, by contract.
func TopologicalSort(g *core.Graph, opts ...Option) []string {
	order := DepthFirstSearch(g, opts...)

	// Reverse the finish-time sequence in place.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order
}
