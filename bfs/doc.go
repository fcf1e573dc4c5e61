// Package bfs provides serial breadth-first search over a csr.Graph,
// returning hop levels, parent links, and traversal throughput (TEPS).
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a source, following
//     out-edges only.
//   - Returns a Result containing:
//   - Level: per-node hop distance (Unreached = -1)
//   - Parent: per-node BFS-tree predecessor (the source is its own parent)
//   - Reached, EdgesExamined, PeakQueue, Elapsed, and TEPS()
//   - Supports hooks at two stages:
//   - OnEnqueue (when a node is discovered)
//   - OnDequeue (before its out-edges are scanned)
//
// Why
//
//   - Serial measurement baseline for a later parallel BFS: every edge
//     scanned from a dequeued node counts toward TEPS, whether or not it
//     discovers a new node.
//
// Determinism
//
//	Neighbors are scanned in col_ind order, so Level, Parent and the
//	discovery order are fully reproducible for a given Graph.
//
// Complexity (V = NumNodes, E = NumEdges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for Level, Parent and the worklist. Each node is enqueued
//     at most once, so the worklist never holds more than V entries.
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // ErrGraphNil or ErrSourceOutOfRange
//	}
//	fmt.Printf("reached %d, %.2f TEPS\n", res.Reached, res.TEPS())
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrSourceOutOfRange  if source is outside [0, NumNodes) on a non-empty graph.
//   - ErrNoPath            from Result.PathTo for unreached nodes.
//
// An empty graph is a no-op: BFS returns a Result with Reached == 0.
package bfs
