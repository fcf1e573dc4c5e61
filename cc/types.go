package cc

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrGraphNil indicates a nil graph pointer.
	ErrGraphNil = errors.New("cc: graph is nil")
	// ErrComponentIndex indicates a requested component label is invalid.
	ErrComponentIndex = errors.New("cc: component index out of range")
)

// Unassigned is the label of a node before any seed reaches it. No node
// carries it once ConnectedComponents returns.
const Unassigned int32 = -1

// Option configures a labeling run.
type Option func(*Options)

// Options holds the hook and clock used by ConnectedComponents.
type Options struct {
	// OnSeed is called each time an unlabeled node opens a new component.
	OnSeed func(seed, label int32)

	// Now is the clock used for Elapsed.
	Now func() time.Time
}

// DefaultOptions returns a no-op hook and the wall clock.
func DefaultOptions() Options {
	return Options{
		OnSeed: func(int32, int32) {},
		Now:    time.Now,
	}
}

// WithOnSeed registers a callback for every new component.
func WithOnSeed(fn func(seed, label int32)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSeed = fn
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

// Result is a complete labeling.
//
// Component[v] is in [0, Count) for every node. Seeds[k] is the node that
// opened label k; Seeds is strictly increasing.
type Result struct {
	Component []int32
	Count     int
	Seeds     []int32
	Elapsed   time.Duration
}

// Sizes returns the number of nodes carrying each label.
func (r *Result) Sizes() []int {
	sizes := make([]int, r.Count)
	for _, c := range r.Component {
		sizes[c]++
	}
	return sizes
}

// Members returns the nodes labeled id, in ascending order.
func (r *Result) Members(id int) ([]int32, error) {
	if id < 0 || id >= r.Count {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrComponentIndex, id, r.Count)
	}
	var out []int32
	for v, c := range r.Component {
		if int(c) == id {
			out = append(out, int32(v))
		}
	}
	return out, nil
}
