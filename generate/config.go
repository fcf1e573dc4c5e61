// SPDX-License-Identifier: MIT
// Package: csrgraph/generate
//
// config.go - generator configuration and functional options.
//
// Deterministic defaults:
//   - rng       = nil   (stochastic constructors fail with ErrNeedRandSource)
//   - symmetric = false (canonical orientation only)
//   - loops     = false (RandomSparse skips (i,i) trials)
//   - anchor    = false (no trailing self-loop)

package generate

import "math/rand"

// Option configures Edges.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	symmetric bool
	loops     bool
	anchor    bool
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded RNG for reproducible random fixtures.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSymmetric emits the reverse of every non-loop edge right after it.
func WithSymmetric() Option {
	return func(c *config) { c.symmetric = true }
}

// WithSelfLoops lets RandomSparse draw (i,i) pairs.
func WithSelfLoops() Option {
	return func(c *config) { c.loops = true }
}

// WithAnchor appends a self-loop on the last reserved id.
func WithAnchor() Option {
	return func(c *config) { c.anchor = true }
}
