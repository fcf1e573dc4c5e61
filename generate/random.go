// SPDX-License-Identifier: MIT
// Package: csrgraph/generate
//
// random.go - seeded random topologies.
//
// Determinism:
//   - RandomSparse trials run i ascending, then j ascending.
//   - RandomMultigraph draws (u, v) in that order, m times.
//   - Identical seed and constructor order give identical output.

package generate

import "fmt"

const (
	methodRandomSparse     = "RandomSparse"
	methodRandomMultigraph = "RandomMultigraph"
	probMin                = 0.0
	probMax                = 1.0
)

// RandomSparse runs one Bernoulli(p) trial per ordered pair (i,j), i != j
// unless WithSelfLoops, and emits the pair on success. p of 0 or 1 needs no
// RNG. Cost is O(n²) trials; use RandomMultigraph for large sparse graphs.
func RandomSparse(n int, p float64) Constructor {
	return func(e *Emitter, cfg config) error {
		if n < 1 {
			return tooFew(methodRandomSparse, "n", n, 1)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		base, err := e.Reserve(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}
		for i := int32(0); i < int32(n); i++ {
			for j := int32(0); j < int32(n); j++ {
				if i == j && !cfg.loops {
					continue
				}
				hit := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					hit = cfg.rng.Float64() < p
				}
				if hit {
					e.Add(base+i, base+j)
				}
			}
		}
		return nil
	}
}

// RandomMultigraph draws m edges with endpoints uniform over n nodes.
// Duplicates and self-loops occur naturally.
func RandomMultigraph(n, m int) Constructor {
	return func(e *Emitter, cfg config) error {
		if n < 1 {
			return tooFew(methodRandomMultigraph, "n", n, 1)
		}
		if m < 0 {
			return tooFew(methodRandomMultigraph, "m", m, 0)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomMultigraph, ErrNeedRandSource)
		}
		base, err := e.Reserve(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRandomMultigraph, err)
		}
		for k := 0; k < m; k++ {
			u := int32(cfg.rng.Intn(n))
			v := int32(cfg.rng.Intn(n))
			e.Add(base+u, base+v)
		}
		return nil
	}
}
