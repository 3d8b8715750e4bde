// Package dijkstra defines the result type and sentinel errors for the
// shortest-path engine.
package dijkstra

import "errors"

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownNode indicates that the source or destination is not a
	// member of the graph's derived node set.
	ErrUnknownNode = errors.New("dijkstra: node not found in graph")

	// ErrNoPath indicates that no route exists from source to destination
	// in the weighted graph.
	ErrNoPath = errors.New("dijkstra: no path between source and destination")
)

// Result is a shortest path: the ordered node sequence from source to
// destination inclusive, and the sum of traversed edge weights.
type Result struct {
	// Path lists node IDs from source to destination. A query with
	// source == destination yields a single-element path.
	Path []string

	// Weight is the accumulated cost of the traversed edges, using the
	// store's default-weight-1 rule for pairs never assigned a weight.
	Weight float64
}
