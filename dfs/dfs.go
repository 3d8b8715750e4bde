package dfs

import "github.com/graphloom/digraph/core"

// walker encapsulates state during a single traversal.
type walker struct {
	graph   *core.Graph     // underlying graph, read-only here
	visited map[string]bool // discovery marks
	order   []string        // finish-time sequence
}

// DepthFirstSearch traverses g depth-first and returns nodes in order of
// finish time: each node is appended exactly once, after all of its
// unvisited successors have been explored in adjacency order.
//
// Without options the traversal restarts from every node of the derived
// node set (sorted), covering disconnected components. See the Options in
// types.go for source selection and exclusion.
func DepthFirstSearch(g *core.Graph, opts ...Option) []string {
	// 1. Degenerate input: no graph, no traversal.
	if g == nil {
		return nil
	}

	// 2. Apply options
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	// 3. Default sources to the full node set
	sources := cfg.Sources
	if sources == nil {
		sources = g.Nodes()
	}

	w := &walker{
		graph:   g,
		visited: make(map[string]bool, len(sources)),
		order:   make([]string, 0, len(sources)),
	}

	// 4. Traverse
	if cfg.IncludeSources {
		for _, s := range sources {
			w.visit(s)
		}

		return w.order
	}

	// Exclusion mode: mark every source first so none is appended even
	// when reachable from another source, then explore their neighbors.
	for _, s := range sources {
		w.visited[s] = true
	}
	for _, s := range sources {
		for _, nb := range w.graph.Adjacent(s) {
			w.visit(nb)
		}
	}

	return w.order
}

// visit explores id's successors recursively and records id on the way
// back out (post-order). Already-visited nodes are skipped at entry.
func (w *walker) visit(id string) {
	if w.visited[id] {
		return
	}
	w.visited[id] = true

	for _, nb := range w.graph.Adjacent(id) {
		w.visit(nb)
	}

	w.order = append(w.order, id)
}
