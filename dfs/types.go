// Package dfs defines the options shared by DepthFirstSearch and
// TopologicalSort: source selection and source inclusion.
package dfs

// Options holds configurable parameters for a traversal.
type Options struct {
	// Sources is the ordered sequence of nodes to start from.
	// nil means "the full derived node set in sorted order".
	Sources []string

	// IncludeSources controls whether the source nodes themselves appear
	// in the result. When false they are pre-marked visited and excluded,
	// but their neighbors are still explored. Default is true.
	IncludeSources bool
}

// Option configures optional behavior of a traversal.
// Use with DepthFirstSearch(g, opts...) or TopologicalSort(g, opts...).
type Option func(*Options)

// DefaultOptions returns an Options struct with:
//   - full-graph sources (Sources = nil)
//   - sources included in the result (IncludeSources = true)
func DefaultOptions() Options {
	return Options{
		Sources:        nil,
		IncludeSources: true,
	}
}

// WithSources returns an Option that restricts the traversal to start
// from the given nodes, in the given order. Supplying an explicit,
// ordered sequence is the way to make traversal results deterministic
// beyond the default sorted enumeration.
func WithSources(ids ...string) Option {
	return func(o *Options) {
		o.Sources = ids
	}
}

// WithoutSources returns an Option that excludes the source nodes from
// the result while still exploring their neighbors.
func WithoutSources() Option {
	return func(o *Options) {
		o.IncludeSources = false
	}
}
