// Package csr builds and stores directed graphs in Compressed Sparse Row form.
//
// What
//
//   - Graph: immutable row_ptr / col_ind arrays. Node u's out-neighbors are
//     col_ind[row_ptr[u]:row_ptr[u+1]] in insertion order. Parallel edges and
//     self-loops are preserved (multigraph semantics).
//   - Build: three passes over an edgelist.Stream (sizing, degree, fill).
//   - WriteSnapshot / ReadSnapshot / SaveFile / LoadFile: the binary
//     interchange format consumed by the traversal engine.
//
// Invariants (checked by Validate)
//
//	row_ptr[0] == 0
//	row_ptr[i] <= row_ptr[i+1]
//	row_ptr[num_nodes] == num_edges
//	0 <= col_ind[k] < num_nodes
//
// Replay precondition
//
//	Build calls Stream.Replay three times and assumes the same sequence each
//	time. Use edgelist.Edges (in memory) or edgelist.ReaderStream over an
//	unchanging seekable source. Divergent replays are detected only where
//	they would corrupt memory (ErrReplayMismatch); otherwise the result is
//	unspecified.
//
// Capacity
//
//	Counts and ids are int32 to match the snapshot. Graphs beyond that, or
//	beyond WithMaxNodes / WithMaxEdges, fail with ErrCapacity before the
//	degree table or col_ind are allocated.
//
// Usage
//
//	g, err := csr.Build(edgelist.Edges{{0, 1}, {1, 2}, {2, 0}})
//	if err != nil { /* ErrCapacity, ErrReplayMismatch, stream errors */ }
//	for _, v := range g.Neighbors(0) { _ = v }
//	err = csr.SaveFile("graph.csr", g)
package csr
