// Package dfs_test: topological-sort tests — edge-ordering property on
// DAGs and the documented non-detection of cycles.
package dfs_test

import (
	"reflect"
	"testing"

	"github.com/graphloom/digraph/core"
	"github.com/graphloom/digraph/dfs"
)

// indexOf maps each node to its position in order, for property checks.
func indexOf(order []string) map[string]int {
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	return pos
}

func TestTopologicalSort_Chain(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B").AddEdge("B", "C")

	got := dfs.TopologicalSort(g)
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopologicalSort = %v; want %v", got, want)
	}
}

func TestTopologicalSort_EdgeOrderingProperty(t *testing.T) {
	// For an acyclic graph, every edge u→v has u before v in the result.
	g := core.NewGraph()
	g.AddEdge("A", "B").AddEdge("A", "C").AddEdge("B", "D").AddEdge("C", "D").AddEdge("D", "E")

	pos := indexOf(dfs.TopologicalSort(g))
	edges := [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}}
	for _, e := range edges {
		if pos[e[0]] >= pos[e[1]] {
			t.Errorf("edge %s→%s out of order: pos[%s]=%d, pos[%s]=%d",
				e[0], e[1], e[0], pos[e[0]], e[1], pos[e[1]])
		}
	}
}

func TestTopologicalSort_DisconnectedComponents(t *testing.T) {
	// Both components are covered; within each, edges stay ordered.
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("C", "D")

	order := dfs.TopologicalSort(g)
	if len(order) != 4 {
		t.Fatalf("TopologicalSort covered %d nodes; want 4 (%v)", len(order), order)
	}
	pos := indexOf(order)
	if pos["A"] >= pos["B"] || pos["C"] >= pos["D"] {
		t.Errorf("component edges out of order: %v", order)
	}
}

func TestTopologicalSort_CycleYieldsTotalOrder(t *testing.T) {
	// A cyclic graph still yields a total, deterministic sequence — just
	// not a valid topological order — and no error is reported.
	g := core.NewGraph()
	g.AddEdge("A", "B").AddEdge("B", "C").AddEdge("C", "A")

	got := dfs.TopologicalSort(g)
	if len(got) != 3 {
		t.Fatalf("TopologicalSort = %v; want all 3 nodes present", got)
	}
	again := dfs.TopologicalSort(g)
	if !reflect.DeepEqual(got, again) {
		t.Errorf("cyclic sort not deterministic: %v vs %v", got, again)
	}
}

func TestTopologicalSort_RespectsOptions(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B").AddEdge("B", "C")

	got := dfs.TopologicalSort(g, dfs.WithSources("A", "B"), dfs.WithoutSources())
	want := []string{"C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopologicalSort = %v; want %v", got, want)
	}
}
