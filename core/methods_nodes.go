// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/RemoveNode/Nodes/HasNode/Adjacent,
//       plus degree counts.
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
package core

import "sort"

// AddNode ensures id has an adjacency entry, creating an empty one only if
// absent. Adding an existing node is a no-op and never resets its successor
// sequence. Returns the graph for chaining.
// Complexity: O(1)
func (g *Graph) AddNode(id string) *Graph {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}

	return g
}

// RemoveNode deletes id and every edge in which it appears as source or
// destination. Stale weight/payload entries for those pairs are left in the
// store (see package doc); only the adjacency relation is touched.
// Complexity: O(V+E)
func (g *Graph) RemoveNode(id string) *Graph {
	// Drop every occurrence of id as a target across all sequences.
	for u, succ := range g.adjacency {
		g.adjacency[u] = filterOut(succ, id)
	}
	// Drop id's own adjacency entry, removing its outgoing edges.
	delete(g.adjacency, id)

	return g
}

// Nodes returns the derived node set: the union of all adjacency keys and
// all targets appearing in any successor sequence. Each member appears
// exactly once; IDs are sorted for deterministic enumeration.
// Complexity: O(V+E) scan plus O(V log V) sort
func (g *Graph) Nodes() []string {
	set := make(map[string]struct{}, len(g.adjacency))
	for u, succ := range g.adjacency {
		set[u] = struct{}{}
		for _, v := range succ {
			set[v] = struct{}{}
		}
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// HasNode reports whether id is a member of the derived node set, i.e. it
// has an adjacency entry or appears as the target of any edge.
// Complexity: O(V+E) worst case, O(1) for nodes with an adjacency entry
func (g *Graph) HasNode(id string) bool {
	if _, ok := g.adjacency[id]; ok {
		return true
	}
	for _, succ := range g.adjacency {
		for _, v := range succ {
			if v == id {
				return true
			}
		}
	}

	return false
}

// Adjacent returns a copy of id's successor sequence in insertion order,
// duplicates included. Unknown nodes yield an empty sequence, never an error.
// Complexity: O(deg(id))
func (g *Graph) Adjacent(id string) []string {
	succ := g.adjacency[id]
	out := make([]string, len(succ))
	copy(out, succ)

	return out
}

// OutDegree returns the length of id's successor sequence, or 0 if id has
// no adjacency entry.
// Complexity: O(1)
func (g *Graph) OutDegree(id string) int {
	return len(g.adjacency[id])
}

// InDegree counts occurrences of id as a target across all successor
// sequences. Parallel edges count once each.
// Complexity: O(E)
func (g *Graph) InDegree(id string) int {
	var n int
	for _, succ := range g.adjacency {
		for _, v := range succ {
			if v == id {
				n++
			}
		}
	}

	return n
}

// NodeCount returns the size of the derived node set.
// Complexity: O(V+E)
func (g *Graph) NodeCount() int {
	set := make(map[string]struct{}, len(g.adjacency))
	for u, succ := range g.adjacency {
		set[u] = struct{}{}
		for _, v := range succ {
			set[v] = struct{}{}
		}
	}

	return len(set)
}

// EdgeCount returns the total number of edges, counting parallel edges
// individually.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	var n int
	for _, succ := range g.adjacency {
		n += len(succ)
	}

	return n
}

// filterOut returns seq with every occurrence of id removed, reusing the
// backing array. The relative order of kept entries is preserved.
func filterOut(seq []string, id string) []string {
	kept := seq[:0]
	for _, v := range seq {
		if v != id {
			kept = append(kept, v)
		}
	}

	return kept
}
