package builder

import (
	"errors"
	"fmt"

	"github.com/graphloom/digraph/core"
)

// ErrTooFewNodes indicates a constructor parameter below the minimum node
// count for the requested topology.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// Minimum node counts per topology.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
	minStarNodes     = 2
)

// config is the resolved builder configuration; immutable once options
// are applied.
type config struct {
	idFn     func(i int) string
	weightFn func(u, v int) float64
}

// Option configures a constructor.
type Option func(*config)

// WithIDFunc replaces the vertex ID scheme. fn must be pure: the same
// index always yields the same ID.
func WithIDFunc(fn func(i int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithWeightFunc assigns each emitted edge the weight fn(u, v) computed
// from its endpoint indices. Without it, edges keep the implicit default
// weight.
func WithWeightFunc(fn func(u, v int) float64) Option {
	return func(c *config) {
		c.weightFn = fn
	}
}

// AlphaID is the default ID scheme: spreadsheet-style letters
// ("A".."Z", "AA", "AB", ...).
func AlphaID(i int) string {
	var b []byte
	for i >= 0 {
		b = append([]byte{byte('A' + i%26)}, b...)
		i = i/26 - 1
	}

	return string(b)
}

func resolve(opts []Option) config {
	cfg := config{idFn: AlphaID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addEdge emits one edge by endpoint index, applying the weight scheme
// when configured.
func addEdge(g *core.Graph, cfg config, u, v int) {
	if cfg.weightFn != nil {
		g.AddEdge(cfg.idFn(u), cfg.idFn(v), core.WithWeight(cfg.weightFn(u, v)))
		return
	}
	g.AddEdge(cfg.idFn(u), cfg.idFn(v))
}

// Path builds the simple path P_n: edges (i-1)→i for i in 1..n-1.
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}

	cfg := resolve(opts)
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		addEdge(g, cfg, i-1, i)
	}

	return g, nil
}

// Cycle builds the directed cycle C_n: P_n plus the closing edge
// (n-1)→0.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}

	cfg := resolve(opts)
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		addEdge(g, cfg, i-1, i)
	}
	addEdge(g, cfg, n-1, 0)

	return g, nil
}

// Complete builds the complete digraph K_n: one edge for every ordered
// pair of distinct indices, emitted in (u, v) lexicographic order.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}

	cfg := resolve(opts)
	g := core.NewGraph()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				addEdge(g, cfg, u, v)
			}
		}
	}

	return g, nil
}

// Star builds the out-star S_n: edges 0→i for i in 1..n-1, with index 0
// as the center.
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}

	cfg := resolve(opts)
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		addEdge(g, cfg, 0, i)
	}

	return g, nil
}
