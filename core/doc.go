// Package core provides the in-memory directed Graph store and its
// mutation API: nodes, insertion-ordered adjacency, per-edge weights,
// and per-edge payloads.
//
// The Graph G = (V,E) is deliberately small and permissive:
//
//   - Directed edges only; parallel edges are representable (AddEdge appends,
//     it does not de-duplicate).
//   - The node set is derived: every identifier appearing anywhere in the
//     adjacency data — as a key or as a target — is a member. A node that is
//     only ever the target of an edge has an empty adjacency sequence.
//   - Edge weights and payloads are independent sub-relations keyed by the
//     ordered pair (u,v). Removing an edge from the adjacency sequence does
//     not discard its stored weight or payload; re-adding the pair silently
//     inherits them.
//   - Queries never fail: unknown nodes degrade to empty sequences, zero
//     degrees, and default attributes (weight 1, empty payload).
//
// Core Methods:
//
//	// Node lifecycle & queries
//	AddNode(id string) *Graph        // O(1), idempotent
//	RemoveNode(id string) *Graph     // O(V+E)
//	Nodes() []string                 // O(V+E), sorted derived node set
//	HasNode(id string) bool          // O(V+E)
//	Adjacent(id string) []string     // O(deg(id)) copy of the successor sequence
//
//	// Edge lifecycle & attributes
//	AddEdge(u, v string, opts ...EdgeOption) *Graph // O(1) append
//	RemoveEdge(u, v string) *Graph                  // O(deg(u)), removes all occurrences
//	HasEdge(u, v string) bool                       // O(deg(u))
//	SetEdgeWeight(u, v string, w float64) *Graph    // O(1)
//	GetEdgeWeight(u, v string) float64              // O(1), default 1
//	SetEdgeData(u, v string, d Metadata) *Graph     // O(1)
//	GetEdgeData(u, v string) Metadata               // O(1), default empty
//
//	// Degrees & counts
//	InDegree(id string) int   // O(E)
//	OutDegree(id string) int  // O(1)
//	NodeCount() int           // O(V+E)
//	EdgeCount() int           // O(V)
//
//	// Maintenance
//	Clear()          // O(1): reset all storage
//	Clone() *Graph   // O(V+E): deep copy of adjacency and attributes
//
// Mutators return the receiver so construction chains naturally:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B").AddEdge("B", "C", core.WithWeight(2))
//
// Concurrency: none. The Graph is an exclusively-owned mutable structure
// with no internal synchronization; callers that share it across goroutines
// must serialize access externally.
package core
