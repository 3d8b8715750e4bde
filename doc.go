// Package digraph is a compact in-memory directed-graph toolkit:
// incremental construction, depth-first traversal, topological ordering,
// Dijkstra shortest paths, and a round-trippable node/link serialization.
//
// Everything is organized under small, focused subpackages:
//
//	core/     — the Graph store and its mutation API (nodes, edges, weights, payloads)
//	dfs/      — depth-first search and topological sort
//	dijkstra/ — single-source single-destination shortest path
//	codec/    — JSON node/link serialization and Graphviz DOT export
//	builder/  — deterministic graph constructors for tests and benchmarks
//
// A quick taste:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B").AddEdge("B", "C").AddEdge("A", "C")
//
//	order := dfs.TopologicalSort(g)              // ["A", "B", "C"]
//	res, _ := dijkstra.ShortestPath(g, "A", "C") // Path ["A","C"], Weight 1
//	doc := codec.Serialize(g)                    // {"nodes":[...],"links":[...]}
//
// The Graph is an exclusively-owned mutable structure: all operations are
// synchronous and single-threaded, and no internal locking is performed.
// Embedders that share a Graph across goroutines must serialize access
// themselves.
package digraph
