// Package bfs provides tunable options and error definitions
// for breadth-first search over a csr.Graph.
package bfs

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source is not in [0, NumNodes)
	// of a non-empty graph.
	ErrSourceOutOfRange = errors.New("bfs: source node out of range")

	// ErrNoPath is returned by PathTo for an unreached destination.
	ErrNoPath = errors.New("bfs: no path to node")
)

// Unreached marks Level and Parent entries of nodes BFS never discovered.
const Unreached int32 = -1

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds the hooks and clock used by a BFS run.
type Options struct {
	// OnEnqueue is called when a node is discovered, with its level.
	OnEnqueue func(node, level int32)

	// OnDequeue is called when a node is taken off the worklist,
	// immediately before its out-edges are scanned.
	OnDequeue func(node, level int32)

	// Now is the clock used for Elapsed. Tests inject a fake one.
	Now func() time.Time
}

// DefaultOptions returns no-op hooks and the wall clock.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int32, int32) {},
		OnDequeue: func(int32, int32) {},
		Now:       time.Now,
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(node, level int32)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a node is dequeued.
func WithOnDequeue(fn func(node, level int32)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithClock replaces time.Now for Elapsed measurement.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Level: hop distance from Source per node, Unreached if not reached.
//   - Parent: BFS-tree predecessor per node; Source is its own parent.
//   - Reached: nodes ever enqueued, Source included.
//   - EdgesExamined: every out-edge scanned from a dequeued node, whether or
//     not it discovered anything.
//   - PeakQueue: largest number of pending worklist entries; never above
//     NumNodes since each node is enqueued at most once.
//   - Elapsed: wall time of the traversal loop (allocation excluded).
type Result struct {
	Source        int32
	Level         []int32
	Parent        []int32
	Reached       int
	EdgesExamined int64
	PeakQueue     int
	Elapsed       time.Duration
}

// TEPS returns traversed edges per second, or 0 when Elapsed is not positive.
func (r *Result) TEPS() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.EdgesExamined) / r.Elapsed.Seconds()
}

// MaxLevel returns the largest level reached (the BFS depth), or -1 when
// nothing was reached.
func (r *Result) MaxLevel() int32 {
	depth := Unreached
	for _, l := range r.Level {
		depth = max(depth, l)
	}
	return depth
}

// PathTo reconstructs the path from Source to dest along Parent links.
// Returns ErrNoPath if dest was not reached or is out of range.
func (r *Result) PathTo(dest int32) ([]int32, error) {
	if dest < 0 || int(dest) >= len(r.Level) || r.Level[dest] == Unreached {
		return nil, fmt.Errorf("%w %d", ErrNoPath, dest)
	}
	// build reversed path
	path := make([]int32, 0, r.Level[dest]+1)
	for cur := dest; ; cur = r.Parent[cur] {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
