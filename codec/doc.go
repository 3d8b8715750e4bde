// Package codec converts core.Graph to and from a plain node/link-list
// document, the library's only wire-level contract, plus a Graphviz DOT
// export for visualization.
//
// The exchanged representation is:
//
//	{
//	  "nodes": [ { "id": "A" }, ... ],
//	  "links": [ { "source": "A", "target": "B",
//	               "weight": 2, "data": { ... } }, ... ]
//	}
//
// Contract highlights:
//
//   - links order determines adjacency-sequence order on deserialization;
//     it is significant for downstream DFS/topological-sort results and is
//     preserved by Serialize (links are emitted per node in node-set
//     enumeration order, per adjacency order within a node).
//   - An absent "weight" means the implicit default 1 applies only if the
//     pair was never otherwise assigned; Link.Weight is a *float64 so 0
//     and "absent" stay distinguishable.
//   - An absent "data" means the empty record.
//   - Unknown extra fields are ignored on decode (no schema versioning).
//   - Parallel edges produce one link entry each but share the single
//     weight/payload stored for their ordered pair.
//
// Deserialize is a left inverse of Serialize up to node/edge-set content:
// the round trip preserves the node set, the adjacency sequences
// (duplicates and order included), and the per-pair weight/data.
package codec
