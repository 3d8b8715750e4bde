// Package dijkstra implements Dijkstra's single-source single-destination
// shortest path on core.Graph.
//
// ShortestPath computes the minimum-cost route between two members of the
// graph's node set, reading weights through the store's default-weight-1
// rule: an edge whose pair was never assigned a weight costs 1, so an
// unweighted graph behaves as a hop-count graph.
//
// Precondition: all edge weights reachable from the source are
// non-negative. Negative weights are not validated and the result is
// unspecified in their presence.
//
// Implementation notes:
//
//   - Vertices are processed in increasing distance order via a min-heap
//     priority queue with the "lazy decrease-key" strategy: improved
//     distances push duplicate entries, stale entries are skipped when
//     popped. Tie-breaking between equal distances is arbitrary and never
//     changes the cost of the reported path.
//   - Unreachable distances are represented by math.Inf(1), a dedicated
//     sentinel rather than a large finite value.
//   - The path is reconstructed by walking predecessor links from the
//     destination back to the source.
//
// Errors (sentinel):
//
//   - ErrNilGraph     if the provided graph pointer is nil.
//   - ErrUnknownNode  if source or destination is not a member of the
//     derived node set.
//   - ErrNoPath       if the destination is unreachable from the source.
//
// These are logic errors on the caller's input — synchronous, immediate,
// and non-recoverable within the call; no retry is appropriate.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the heap (V extractions, up to E pushes).
//   - Space: O(V + E) for distances, predecessors, and heap entries.
package dijkstra
