package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/graphloom/digraph/core"
)

// ShortestPath computes the minimum-cost path from source to destination
// in g and returns it together with its accumulated weight.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a member of the node set (ErrUnknownNode).
//  3. destination must be a member of the node set (ErrUnknownNode).
//
// A destination unreachable from source yields ErrNoPath. Querying
// source == destination yields the single-node path with weight 0.
func ShortestPath(g *core.Graph, source, destination string) (*Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownNode, source)
	}
	if !g.HasNode(destination) {
		return nil, fmt.Errorf("%w: destination %q", ErrUnknownNode, destination)
	}

	// 2) Initialize state and run the main loop.
	r := newRunner(g, source)
	r.process()

	// 3) Reconstruct the path by walking predecessor links backwards.
	return r.reconstruct(source, destination)
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // input graph, read-only here
	dist    map[string]float64 // node ID → best known distance from source
	prev    map[string]string  // node ID → predecessor on the shortest path
	settled map[string]bool    // node ID → distance finalized
	pq      nodePQ             // lazy min-heap of (node, distance) pairs
}

// newRunner initializes distances to +Inf for every node except the
// source (0), and seeds the heap with the source entry.
func newRunner(g *core.Graph, source string) *runner {
	nodes := g.Nodes()
	r := &runner{
		g:       g,
		dist:    make(map[string]float64, len(nodes)),
		prev:    make(map[string]string, len(nodes)),
		settled: make(map[string]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}

	for _, id := range nodes {
		r.dist[id] = math.Inf(1)
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// process repeatedly extracts the unsettled node with minimum distance and
// relaxes its outgoing edges. When the heap drains, every remaining
// unsettled node is unreachable and is simply discarded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries (lazy decrease-key).
		if r.settled[u] {
			continue
		}
		r.settled[u] = true

		r.relax(u)
	}
}

// relax attempts to improve the distance of each successor of u via the
// edge (u,v). Parallel edges share one stored weight per ordered pair, so
// repeated successors relax to the same candidate distance harmlessly.
func (r *runner) relax(u string) {
	for _, v := range r.g.Adjacent(u) {
		if r.settled[v] {
			continue
		}

		// Candidate distance through u, using the default-weight-1 rule.
		cand := r.dist[u] + r.g.GetEdgeWeight(u, v)

		// Strict improvement only, to avoid churning on equal-cost ties.
		if cand >= r.dist[v] {
			continue
		}

		r.dist[v] = cand
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: cand})
	}
}

// reconstruct walks predecessor links from destination back to source and
// returns the forward path with its accumulated weight.
func (r *runner) reconstruct(source, destination string) (*Result, error) {
	if math.IsInf(r.dist[destination], 1) {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, source, destination)
	}

	// Collect destination..source, then reverse in place.
	path := []string{destination}
	for at := destination; at != source; {
		p, ok := r.prev[at]
		if !ok {
			// Safety: a finite distance implies a predecessor chain
			// terminating at the source.
			return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, source, destination)
		}
		path = append(path, p)
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{Path: path, Weight: r.dist[destination]}, nil
}

// nodeItem is a heap entry: a node and its distance from the source at
// push time.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Improved
// distances push duplicates; stale entries are skipped on pop via the
// settled set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
