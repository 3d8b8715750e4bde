// Package builder provides deterministic graph constructors for tests,
// examples, and benchmarks: Path, Cycle, Complete, and Star topologies on
// core.Graph.
//
// Design contract:
//   - Determinism: the same n, options, and constructor produce identical
//     graphs — vertex IDs come from a pure idFn (default AlphaID:
//     "A".."Z", "AA", ...), edges are emitted in increasing index order.
//   - Validation: constructors return ErrTooFewNodes for parameter
//     domains that cannot form the topology; they never panic.
//   - Weights: implicit (default 1) unless WithWeightFunc supplies a
//     per-edge weight from the endpoint indices.
//
// Complexity: O(n) for Path/Cycle/Star, O(n²) for Complete.
package builder
