// SPDX-License-Identifier: MIT
// Package: csrgraph/generate
//
// api.go - the Edges orchestrator and the emitter shared by constructors.

package generate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/csrgraph/edgelist"
)

// Constructor appends one topology to e. It must reserve its ids through
// e.Reserve before emitting and must not panic on bad parameters.
type Constructor func(e *Emitter, cfg config) error

// Emitter accumulates edges and hands out disjoint id blocks.
type Emitter struct {
	edges     edgelist.Edges
	reserved  int64
	symmetric bool
}

// Reserve claims n consecutive ids and returns the first.
func (e *Emitter) Reserve(n int) (int32, error) {
	if int64(n)+e.reserved > math.MaxInt32 {
		return 0, fmt.Errorf("reserve %d after %d: %w", n, e.reserved, ErrTooManyVertices)
	}
	base := int32(e.reserved)
	e.reserved += int64(n)
	return base, nil
}

// Add emits u→v, and v→u as well when symmetric and u != v.
func (e *Emitter) Add(u, v int32) {
	e.edges = append(e.edges, edgelist.Edge{U: u, V: v})
	if e.symmetric && u != v {
		e.edges = append(e.edges, edgelist.Edge{U: v, V: u})
	}
}

// Reserved reports how many ids have been claimed so far.
func (e *Emitter) Reserved() int { return int(e.reserved) }

// Edges resolves opts and runs cons in order. Any constructor error is
// wrapped with "generate.Edges: %w" and returned immediately.
func Edges(opts []Option, cons ...Constructor) (edgelist.Edges, error) {
	cfg := newConfig(opts...)
	e := &Emitter{edges: edgelist.Edges{}, symmetric: cfg.symmetric}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("generate.Edges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(e, cfg); err != nil {
			return nil, fmt.Errorf("generate.Edges: %w", err)
		}
	}

	if cfg.anchor && e.reserved > 0 {
		last := int32(e.reserved - 1)
		e.edges = append(e.edges, edgelist.Edge{U: last, V: last})
	}
	return e.edges, nil
}

// MustEdges is Edges for fixtures known to be valid; it panics on error.
func MustEdges(opts []Option, cons ...Constructor) edgelist.Edges {
	es, err := Edges(opts, cons...)
	if err != nil {
		panic(err)
	}
	return es
}
