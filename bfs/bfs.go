package bfs

import (
	"fmt"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/internal/worklist"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *csr.Graph
	opts  Options
	queue *worklist.Queue
	res   *Result
}

// BFS runs breadth-first search on g from source, applying any number of
// functional Options.
//
// An empty graph yields an empty Result and no error. Otherwise returns
// ErrGraphNil or ErrSourceOutOfRange for invalid input.
func BFS(g *csr.Graph, source int32, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NumNodes()
	if n == 0 {
		return &Result{Source: source, Level: []int32{}, Parent: []int32{}}, nil
	}
	if source < 0 || int(source) >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	// Level doubles as the visited set.
	w := &walker{
		graph: g,
		opts:  o,
		queue: worklist.New(n),
		res: &Result{
			Source: source,
			Level:  filled(n, Unreached),
			Parent: filled(n, Unreached),
		},
	}

	start := o.Now()
	w.enqueue(source, 0, source)
	w.loop()
	w.res.Elapsed = o.Now().Sub(start)
	w.res.Reached = w.queue.Pushed()
	w.res.PeakQueue = w.queue.Peak()

	return w.res, nil
}

// enqueue marks node visited at level d with the given parent and adds it
// to the worklist.
func (w *walker) enqueue(node, d, parent int32) {
	w.res.Level[node] = d
	w.res.Parent[node] = parent
	w.opts.OnEnqueue(node, d)
	w.queue.Push(node)
}

// loop drains the worklist. Every scanned edge counts toward EdgesExamined.
func (w *walker) loop() {
	for {
		node, ok := w.queue.Pop()
		if !ok {
			return
		}
		d := w.res.Level[node]
		w.opts.OnDequeue(node, d)

		for _, nbr := range w.graph.Neighbors(node) {
			w.res.EdgesExamined++
			// first time seen?
			if w.res.Level[nbr] == Unreached {
				w.enqueue(nbr, d+1, node)
			}
		}
	}
}

func filled(n int, v int32) []int32 {
	s := make([]int32, n)
	for i := range s {
		s[i] = v
	}
	return s
}
