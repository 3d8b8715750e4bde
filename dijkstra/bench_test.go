package dijkstra_test

import (
	"strconv"
	"testing"

	"github.com/graphloom/digraph/core"
	"github.com/graphloom/digraph/dijkstra"
)

// layeredGraph builds width*depth nodes wired layer to layer, a dense-ish
// fixture exercising heap churn.
func layeredGraph(width, depth int) (*core.Graph, string, string) {
	g := core.NewGraph()
	id := func(layer, i int) string {
		return "n" + strconv.Itoa(layer) + "_" + strconv.Itoa(i)
	}
	for layer := 1; layer < depth; layer++ {
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				w := float64((i+j)%7 + 1)
				g.AddEdge(id(layer-1, i), id(layer, j), core.WithWeight(w))
			}
		}
	}

	return g, id(0, 0), id(depth-1, width-1)
}

func BenchmarkShortestPath_Layered(b *testing.B) {
	g, src, dst := layeredGraph(10, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, src, dst); err != nil {
			b.Fatal(err)
		}
	}
}
