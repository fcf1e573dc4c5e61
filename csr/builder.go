// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// builder.go - three-pass CSR construction over a replayable edge stream.
//
// Passes (each a full Replay of the stream):
//   1. sizing: max node id and edge count → num_nodes, num_edges.
//   2. degree: out-degree per node.
//      offsets: exclusive prefix sum of degree → row_ptr.
//   3. fill:   cursor := row_ptr[:n]; col_ind[cursor[u]++] = v in stream order.
//
// After the fill pass cursor[i] == row_ptr[i+1] for every node.

package csr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/csrgraph/edgelist"
)

// errStop aborts a Replay from inside the callback.
var errStop = errors.New("stop")

// Build converts s into a Graph.
//
// Precondition: every s.Replay call yields the identical edge sequence. Build
// does not verify this in full. Mismatches that would index outside the sized
// arrays, or that leave the fill cursors short of row_ptr, return
// ErrReplayMismatch; any other divergence produces an unspecified graph.
//
// Errors: ErrStreamNil, ErrCapacity, ErrReplayMismatch, edgelist.ErrNegativeID,
// or any error returned by the stream itself.
//
// Complexity: O(V + E) time over three passes, O(V + E) space.
func Build(s edgelist.Stream, opts ...BuildOption) (*Graph, error) {
	if s == nil {
		return nil, ErrStreamNil
	}
	cfg := newBuildConfig(opts...)

	numNodes, numEdges, err := sizingPass(s, cfg)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("csr: sizing pass complete", "nodes", numNodes, "edges", numEdges)

	degree, err := degreePass(s, numNodes, numEdges)
	if err != nil {
		return nil, err
	}

	rowPtr := prefixSum(degree)
	cfg.logger.Debug("csr: offsets computed", "row_ptr_len", len(rowPtr))

	colInd, err := fillPass(s, rowPtr, numEdges)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("csr: fill pass complete")

	return &Graph{rowPtr: rowPtr, colInd: colInd}, nil
}

// sizingPass finds num_nodes = max id + 1 and num_edges, enforcing capacity
// limits before anything proportional to the graph is allocated.
func sizingPass(s edgelist.Stream, cfg buildConfig) (numNodes, numEdges int, err error) {
	maxNode := int64(-1)
	var edges int64
	var capErr error

	err = s.Replay(func(e edgelist.Edge) error {
		if e.U < 0 || e.V < 0 {
			return fmt.Errorf("%w: edge (%d,%d)", edgelist.ErrNegativeID, e.U, e.V)
		}
		maxNode = max(maxNode, int64(e.U), int64(e.V))
		edges++
		if edges > cfg.maxEdges {
			capErr = fmt.Errorf("csr.Build: %w: more than %d edges", ErrCapacity, cfg.maxEdges)
			return errStop
		}
		return nil
	})
	if errors.Is(err, errStop) {
		return 0, 0, capErr
	}
	if err != nil {
		return 0, 0, fmt.Errorf("csr.Build: sizing pass: %w", err)
	}

	nodes := maxNode + 1
	if nodes > cfg.maxNodes {
		return 0, 0, fmt.Errorf("csr.Build: %w: %d nodes, limit %d", ErrCapacity, nodes, cfg.maxNodes)
	}
	return int(nodes), int(edges), nil
}

// degreePass counts out-degrees. Ids outside [0, numNodes) or a different
// edge count than the sizing pass indicate the stream did not replay.
func degreePass(s edgelist.Stream, numNodes, numEdges int) ([]int32, error) {
	degree := make([]int32, numNodes)
	seen := 0

	err := s.Replay(func(e edgelist.Edge) error {
		if e.U < 0 || int(e.U) >= numNodes || e.V < 0 || int(e.V) >= numNodes {
			return fmt.Errorf("%w: edge (%d,%d) outside %d sized nodes", ErrReplayMismatch, e.U, e.V, numNodes)
		}
		seen++
		if seen > numEdges {
			return fmt.Errorf("%w: more than %d edges", ErrReplayMismatch, numEdges)
		}
		degree[e.U]++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("csr.Build: degree pass: %w", err)
	}
	if seen != numEdges {
		return nil, fmt.Errorf("csr.Build: degree pass: %w: %d edges, sized %d", ErrReplayMismatch, seen, numEdges)
	}
	return degree, nil
}

// prefixSum returns the exclusive prefix sum of degree, with one trailing
// entry holding the total.
func prefixSum(degree []int32) []int32 {
	rowPtr := make([]int32, len(degree)+1)
	for i, d := range degree {
		rowPtr[i+1] = rowPtr[i] + d
	}
	return rowPtr
}

// fillPass scatters every v into its source's range using a cursor table.
func fillPass(s edgelist.Stream, rowPtr []int32, numEdges int) ([]int32, error) {
	numNodes := len(rowPtr) - 1
	colInd := make([]int32, numEdges)
	cursor := make([]int32, numNodes)
	copy(cursor, rowPtr[:numNodes])

	err := s.Replay(func(e edgelist.Edge) error {
		if e.U < 0 || int(e.U) >= numNodes || e.V < 0 || int(e.V) >= numNodes {
			return fmt.Errorf("%w: edge (%d,%d) outside %d sized nodes", ErrReplayMismatch, e.U, e.V, numNodes)
		}
		pos := cursor[e.U]
		if pos >= rowPtr[e.U+1] {
			return fmt.Errorf("%w: node %d has more edges than counted", ErrReplayMismatch, e.U)
		}
		colInd[pos] = e.V
		cursor[e.U] = pos + 1
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("csr.Build: fill pass: %w", err)
	}

	for i := 0; i < numNodes; i++ {
		if cursor[i] != rowPtr[i+1] {
			return nil, fmt.Errorf("csr.Build: fill pass: %w: node %d filled %d of %d",
				ErrReplayMismatch, i, cursor[i]-rowPtr[i], rowPtr[i+1]-rowPtr[i])
		}
	}
	return colInd, nil
}
