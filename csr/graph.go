// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// graph.go - the immutable CSR value.

package csr

import "fmt"

// Graph is a directed multigraph in Compressed Sparse Row form.
//
// Node ids are 0..NumNodes()-1. The out-neighbors of node u are
// colInd[rowPtr[u]:rowPtr[u+1]] in insertion order; parallel edges and
// self-loops are kept. A Graph is never mutated after construction and is
// safe for concurrent readers.
type Graph struct {
	rowPtr []int32 // len numNodes+1, rowPtr[0]=0, rowPtr[numNodes]=numEdges
	colInd []int32 // len numEdges
}

// New validates rowPtr / colInd and wraps them in a Graph.
// The slices are adopted, not copied; the caller must not modify them afterwards.
func New(rowPtr, colInd []int32) (*Graph, error) {
	g := &Graph{rowPtr: rowPtr, colInd: colInd}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// NumNodes returns the node count (max observed id + 1).
func (g *Graph) NumNodes() int { return len(g.rowPtr) - 1 }

// NumEdges returns the edge count, duplicates included.
func (g *Graph) NumEdges() int { return len(g.colInd) }

// Degree returns the out-degree of u. u must be in [0, NumNodes()).
func (g *Graph) Degree(u int32) int {
	return int(g.rowPtr[u+1] - g.rowPtr[u])
}

// Neighbors returns the out-neighbors of u as a view into the graph's
// storage. Callers must treat the slice as read-only.
func (g *Graph) Neighbors(u int32) []int32 {
	return g.colInd[g.rowPtr[u]:g.rowPtr[u+1]:g.rowPtr[u+1]]
}

// EdgeRange returns the half-open col_ind range [lo, hi) holding u's neighbors.
func (g *Graph) EdgeRange(u int32) (lo, hi int32) {
	return g.rowPtr[u], g.rowPtr[u+1]
}

// RowPtr returns a copy of the offset table.
func (g *Graph) RowPtr() []int32 { return append([]int32(nil), g.rowPtr...) }

// ColInd returns a copy of the flat neighbor array.
func (g *Graph) ColInd() []int32 { return append([]int32(nil), g.colInd...) }

// MaxDegree returns the node with the largest out-degree (lowest id on ties)
// and that degree. An empty graph yields (-1, 0).
func (g *Graph) MaxDegree() (node int32, degree int) {
	node = -1
	for u := int32(0); int(u) < g.NumNodes(); u++ {
		if d := g.Degree(u); node < 0 || d > degree {
			node, degree = u, d
		}
	}
	return node, degree
}

// HasEdge reports whether at least one edge u → v exists. Linear in deg(u).
func (g *Graph) HasEdge(u, v int32) bool {
	if u < 0 || int(u) >= g.NumNodes() {
		return false
	}
	for _, w := range g.Neighbors(u) {
		if w == v {
			return true
		}
	}
	return false
}

// Validate checks every CSR invariant:
//   - len(rowPtr) >= 1 and rowPtr[0] == 0
//   - rowPtr is nondecreasing and rowPtr[n] == len(colInd)
//   - every colInd entry lies in [0, n)
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	if g == nil {
		return ErrGraphNil
	}
	if len(g.rowPtr) == 0 {
		return fmt.Errorf("%w: row_ptr is empty", ErrInvalidCSR)
	}
	if g.rowPtr[0] != 0 {
		return fmt.Errorf("%w: row_ptr[0] = %d, want 0", ErrInvalidCSR, g.rowPtr[0])
	}
	n := g.NumNodes()
	for i := 0; i < n; i++ {
		if g.rowPtr[i+1] < g.rowPtr[i] {
			return fmt.Errorf("%w: row_ptr decreases at %d (%d > %d)",
				ErrInvalidCSR, i, g.rowPtr[i], g.rowPtr[i+1])
		}
	}
	if int(g.rowPtr[n]) != len(g.colInd) {
		return fmt.Errorf("%w: row_ptr[%d] = %d, want num_edges %d",
			ErrInvalidCSR, n, g.rowPtr[n], len(g.colInd))
	}
	for i, v := range g.colInd {
		if v < 0 || int(v) >= n {
			return fmt.Errorf("%w: col_ind[%d] = %d outside [0,%d)", ErrInvalidCSR, i, v, n)
		}
	}
	return nil
}
