// File: methods_edges.go
// Role: Edge lifecycle & attributes: AddEdge/RemoveEdge/HasEdge plus the
//       weight/payload accessors.
// Invariant:
//   - weights and payloads are keyed by ordered pair independently of
//     adjacency membership; RemoveEdge/RemoveNode never purge them.
package core

// AddEdge appends v to u's successor sequence, implicitly adding both
// endpoints as nodes. The append is multigraph-capable: adding the same
// pair twice yields a parallel edge, not a no-op.
//
// WithWeight and WithData overwrite the stored attributes for the ordered
// pair (u,v); omitting them leaves any previously stored values untouched,
// so a re-added edge inherits the attributes of its removed predecessor.
// Complexity: O(1) amortized
func (g *Graph) AddEdge(u, v string, opts ...EdgeOption) *Graph {
	var attrs edgeAttrs
	for _, opt := range opts {
		opt(&attrs)
	}

	g.AddNode(u).AddNode(v)
	g.adjacency[u] = append(g.adjacency[u], v)

	if attrs.weight != nil {
		g.weights[edgeKey{u, v}] = *attrs.weight
	}
	if attrs.data != nil {
		g.payloads[edgeKey{u, v}] = attrs.data
	}

	return g
}

// RemoveEdge removes all occurrences of v from u's successor sequence
// (a filter, not a single removal). It is a no-op if u has no adjacency
// entry, and it leaves the pair's stored weight/payload in place.
// Complexity: O(deg(u))
func (g *Graph) RemoveEdge(u, v string) *Graph {
	succ, ok := g.adjacency[u]
	if !ok {
		return g
	}
	g.adjacency[u] = filterOut(succ, v)

	return g
}

// HasEdge reports whether at least one edge (u,v) is present in the
// adjacency relation.
// Complexity: O(deg(u))
func (g *Graph) HasEdge(u, v string) bool {
	for _, t := range g.adjacency[u] {
		if t == v {
			return true
		}
	}

	return false
}

// SetEdgeWeight stores w as the weight of the ordered pair (u,v).
// The pair need not be present in the adjacency relation.
// Complexity: O(1)
func (g *Graph) SetEdgeWeight(u, v string, w float64) *Graph {
	g.weights[edgeKey{u, v}] = w

	return g
}

// GetEdgeWeight returns the stored weight of the ordered pair (u,v),
// or DefaultEdgeWeight (1) if none was ever set.
// Complexity: O(1)
func (g *Graph) GetEdgeWeight(u, v string) float64 {
	if w, ok := g.weights[edgeKey{u, v}]; ok {
		return w
	}

	return DefaultEdgeWeight
}

// SetEdgeData stores d as the payload of the ordered pair (u,v).
// The pair need not be present in the adjacency relation.
// Complexity: O(1)
func (g *Graph) SetEdgeData(u, v string, d Metadata) *Graph {
	g.payloads[edgeKey{u, v}] = d

	return g
}

// GetEdgeData returns the stored payload of the ordered pair (u,v), or a
// fresh empty Metadata if none was ever set. Mutations of a returned
// default map are not reflected in the store.
// Complexity: O(1)
func (g *Graph) GetEdgeData(u, v string) Metadata {
	if d, ok := g.payloads[edgeKey{u, v}]; ok {
		return d
	}

	return Metadata{}
}
