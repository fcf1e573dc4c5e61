// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// options.go - functional options for Build.
//
// Contract:
//   • Options mutate buildConfig before the first pass; later options win.
//   • Option constructors panic on meaningless values (negative limits);
//     Build itself never panics on a well-behaved stream.

package csr

import (
	"log/slog"
	"math"
)

// BuildOption customizes Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	logger   *slog.Logger
	maxNodes int64
	maxEdges int64
}

// Deterministic defaults: the int32 snapshot layout is the only ceiling.
const (
	defaultMaxNodes = int64(math.MaxInt32)
	defaultMaxEdges = int64(math.MaxInt32)
)

func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{
		logger:   slog.New(slog.DiscardHandler),
		maxNodes: defaultMaxNodes,
		maxEdges: defaultMaxEdges,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes per-pass Debug records to l. nil keeps the discard logger.
func WithLogger(l *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxNodes caps num_nodes; Build fails with ErrCapacity above it.
// Values above the int32 layout limit are clamped to it. Panics if n < 0.
func WithMaxNodes(n int64) BuildOption {
	if n < 0 {
		panic("csr: WithMaxNodes(negative)")
	}
	return func(c *buildConfig) {
		c.maxNodes = min(n, defaultMaxNodes)
	}
}

// WithMaxEdges caps num_edges; Build fails with ErrCapacity above it.
// Values above the int32 layout limit are clamped to it. Panics if m < 0.
func WithMaxEdges(m int64) BuildOption {
	if m < 0 {
		panic("csr: WithMaxEdges(negative)")
	}
	return func(c *buildConfig) {
		c.maxEdges = min(m, defaultMaxEdges)
	}
}
