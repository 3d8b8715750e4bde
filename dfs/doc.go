// Package dfs implements depth-first search and topological sorting on
// core.Graph.
//
// DepthFirstSearch performs a recursive traversal and reports nodes in
// order of finish time (post-order of the DFS forest). TopologicalSort is
// the same traversal with the result reversed: for every edge u→v present
// in the result, u precedes v, provided the reachable subgraph is acyclic.
// Cycles are not detected — on a cyclic subgraph the output is still total
// and deterministic per the algorithm, just not a valid topological order
// for the cyclic portion.
//
// Key behaviors:
//   - Default sources: the full derived node set, in sorted enumeration
//     order. Callers needing a specific visitation order supply
//     WithSources(ids...) explicitly.
//   - WithoutSources(): source nodes are pre-marked visited, so they are
//     never appended to the result even when reachable from another
//     source, but the traversal still proceeds into their neighbors.
//   - Each call is a fresh traversal; one entry per visited node, no
//     duplicates, no restart semantics.
//
// Traversal never fails: a nil graph yields nil, unknown source IDs are
// visited as isolated nodes (they have empty adjacency by definition).
//
// Complexity:
//
//   - Time:   O(V + E) for the traversal itself, plus the O(V+E) node-set
//     derivation when sources are defaulted.
//   - Memory: O(V) for the recursion stack and visited set.
package dfs
