// SPDX-License-Identifier: MIT
// Package: csrgraph/generate
//
// topology.go - deterministic shapes.
//
// Contract for every constructor here:
//   - Validate the size first and return ErrTooFewVertices with the method tag.
//   - Reserve the whole block before emitting any edge.
//   - Emit in a stable, documented order (ids relative to the block base).

package generate

import (
	"fmt"
	"math"
)

const (
	methodPath       = "Path"
	methodCycle      = "Cycle"
	methodStar       = "Star"
	methodWheel      = "Wheel"
	methodComplete   = "Complete"
	methodGrid       = "Grid"
	methodBinaryTree = "BinaryTree"

	minPathNodes  = 1
	minCycleNodes = 1
	minStarNodes  = 1
	minWheelNodes = 4
	minGridDim    = 1
	minTreeNodes  = 1
)

func tooFew(method, param string, got, minimum int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, minimum, ErrTooFewVertices)
}

// Path emits 0→1→…→n-1. Path(1) reserves a single isolated id.
func Path(n int) Constructor {
	return func(e *Emitter, _ config) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		base, err := e.Reserve(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := int32(1); i < int32(n); i++ {
			e.Add(base+i-1, base+i)
		}
		return nil
	}
}

// Cycle emits the path 0→…→n-1 and the closing edge n-1→0. Cycle(1) is a
// single self-loop.
func Cycle(n int) Constructor {
	return func(e *Emitter, _ config) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		base, err := e.Reserve(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		for i := int32(1); i < int32(n); i++ {
			e.Add(base+i-1, base+i)
		}
		e.Add(base+int32(n)-1, base)
		return nil
	}
}

// Star emits center 0 → every leaf 1..n-1.
func Star(n int) Constructor {
	return func(e *Emitter, _ config) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		base, err := e.Reserve(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		for i := int32(1); i < int32(n); i++ {
			e.Add(base, base+i)
		}
		return nil
	}
}

// Wheel emits spokes 0→1..n-1 first, then the rim cycle 1→2→…→n-1→1.
func Wheel(n int) Constructor {
	return func(e *Emitter, _ config) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		base, err := e.Reserve(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		for i := int32(1); i < int32(n); i++ {
			e.Add(base, base+i)
		}
		for i := int32(2); i < int32(n); i++ {
			e.Add(base+i-1, base+i)
		}
		e.Add(base+int32(n)-1, base+1)
		return nil
	}
}

// Complete emits i→j for every i < j, i ascending then j ascending.
func Complete(n int) Constructor {
	return func(e *Emitter, _ config) error {
		if n < 1 {
			return tooFew(methodComplete, "n", n, 1)
		}
		base, err := e.Reserve(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}
		for i := int32(0); i < int32(n); i++ {
			for j := i + 1; j < int32(n); j++ {
				e.Add(base+i, base+j)
			}
		}
		return nil
	}
}

// Grid emits a rows×cols lattice with row-major ids r*cols+c. Each cell
// points to its right neighbor, then its bottom neighbor, where present.
func Grid(rows, cols int) Constructor {
	return func(e *Emitter, _ config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if int64(rows)*int64(cols) > math.MaxInt32 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooManyVertices)
		}
		base, err := e.Reserve(rows * cols)
		if err != nil {
			return fmt.Errorf("%s: %w", methodGrid, err)
		}
		id := func(r, c int) int32 { return base + int32(r*cols+c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					e.Add(id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					e.Add(id(r, c), id(r+1, c))
				}
			}
		}
		return nil
	}
}

// BinaryTree emits heap-ordered parent→child edges i→2i+1, i→2i+2 over
// n nodes. Every node is reachable from 0 and sits at depth floor(log2(i+1)).
func BinaryTree(n int) Constructor {
	return func(e *Emitter, _ config) error {
		if n < minTreeNodes {
			return tooFew(methodBinaryTree, "n", n, minTreeNodes)
		}
		base, err := e.Reserve(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodBinaryTree, err)
		}
		for i := int64(0); 2*i+1 < int64(n); i++ {
			e.Add(base+int32(i), base+int32(2*i+1))
			if 2*i+2 < int64(n) {
				e.Add(base+int32(i), base+int32(2*i+2))
			}
		}
		return nil
	}
}
