// Package csrgraph is a compact, read-only graph toolkit built around the
// Compressed Sparse Row layout: convert a text edge list once, then traverse
// the binary snapshot as often as you like.
//
// 🚀 What is csrgraph?
//
//	A small, allocation-aware pipeline that brings together:
//		• edgelist: streaming "u v" parser with lenient/strict policies
//		• csr:      three-pass builder, immutable Graph, binary snapshots
//		• bfs:      serial breadth-first search with levels, parents, TEPS
//		• cc:       forward-reachability component labeling
//		• generate: deterministic fixtures (paths, grids, trees, random multigraphs)
//		• report:   baseline text lines or YAML records
//
// ✨ Why a CSR?
//
//   - Two int32 arrays: row_ptr (n+1) and col_ind (m). No per-node objects.
//   - Neighbors are a contiguous slice; scans are cache-friendly.
//   - Snapshots are the arrays verbatim, so loading is a single read.
//
// Commands live under cmd/:
//
//	csrgen     - write a synthetic edge list
//	csrconvert - edge list → snapshot (input streamed three times from disk)
//	csranalyze - snapshot → BFS and component report
//
// Quick ASCII example:
//
//	    0 ──▶ 1
//	    ▲     │
//	    └── 2 ◀┘
//
//	edges 0 1, 1 2, 2 0 give row_ptr [0 1 2 3] and col_ind [1 2 0].
//
// Multigraph semantics: duplicate edges and self-loops are kept as given.
//
//	go install github.com/katalvlaran/csrgraph/cmd/...@latest
package csrgraph
