// Package cc labels the nodes of a csr.Graph with forward-reachability
// components.
//
// Semantics
//
//	Seeds are taken in ascending node id. Each unlabeled seed opens a new
//	label and claims every still-unlabeled node reachable from it along
//	out-edges. For a directed graph this differs from both weakly and
//	strongly connected components:
//
//	  edges 1→0          labels: {0}, {1}     (0 is seeded first and reaches nothing)
//	  edges 0→1, 2→3     labels: {0,1}, {2,3}
//	  edges 0→1, 1→0     labels: {0,1}
//
//	A node is guaranteed to share its seed's label only if the seed reaches
//	it; reaching an already-labeled node never merges labels.
//
// Determinism
//
//	The partition depends only on the graph, not on neighbor order within a
//	row. Labels are numbered 0..Count-1 in seed order.
//
// Errors
//
//   - ErrGraphNil        nil graph.
//   - ErrComponentIndex  Result.Members with a label outside [0, Count).
package cc
