// Package core defines the Graph type, its storage maps, and the
// EdgeOption mechanism used by AddEdge to attach optional attributes.
package core

// DefaultEdgeWeight is the implicit weight of an edge whose ordered pair
// was never assigned one. Absence means 1, not 0, so that unweighted
// graphs behave as hop-count graphs under shortest-path queries.
const DefaultEdgeWeight float64 = 1

// Metadata stores arbitrary user data attached to an edge.
// The zero value for an unset pair is an empty, non-nil map.
type Metadata map[string]any

// edgeKey identifies the ordered pair (from, to). Weights and payloads are
// keyed by edgeKey independently of adjacency membership, so attributes
// survive edge removal by design.
type edgeKey struct {
	from string
	to   string
}

// Graph is the core in-memory directed graph store.
//
// adjacency maps each node ID to its successor sequence in insertion order;
// duplicates are permitted and represent parallel edges. The node set is not
// stored separately: it is derived on demand as the union of adjacency keys
// and targets, which keeps membership impossible to drift out of sync.
type Graph struct {
	adjacency map[string][]string
	weights   map[edgeKey]float64
	payloads  map[edgeKey]Metadata
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		weights:   make(map[edgeKey]float64),
		payloads:  make(map[edgeKey]Metadata),
	}
}

// edgeAttrs collects the optional attributes supplied to AddEdge.
// A nil weight/data field means "leave any previously stored value alone".
type edgeAttrs struct {
	weight *float64
	data   Metadata
}

// EdgeOption configures attributes of an edge when it is added.
type EdgeOption func(*edgeAttrs)

// WithWeight sets the weight stored for the ordered pair (u,v) when the
// edge is added, overwriting any previously stored value.
func WithWeight(w float64) EdgeOption {
	return func(a *edgeAttrs) { a.weight = &w }
}

// WithData sets the payload stored for the ordered pair (u,v) when the
// edge is added, overwriting any previously stored value.
func WithData(d Metadata) EdgeOption {
	return func(a *edgeAttrs) { a.data = d }
}
