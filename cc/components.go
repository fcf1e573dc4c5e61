package cc

import (
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/internal/worklist"
)

// ConnectedComponents labels every node of g with a forward-reachability
// component.
//
// Nodes are scanned in ascending id. Each node still Unassigned opens the
// next label and a forward-only BFS from it claims every Unassigned node it
// reaches. Nodes already labeled by an earlier seed stop the search, so a
// later seed that can reach an earlier component does not merge with it.
// This is deliberately not undirected connectivity.
//
// Time:   O(V + E); every edge is scanned once, from the seed that claims its source.
// Memory: O(V) for labels and the worklist, which is reused across seeds.
func ConnectedComponents(g *csr.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NumNodes()
	comp := make([]int32, n)
	for i := range comp {
		comp[i] = Unassigned
	}
	res := &Result{Component: comp, Seeds: []int32{}}
	queue := worklist.New(0)

	start := o.Now()
	for seed := int32(0); int(seed) < n; seed++ {
		if comp[seed] != Unassigned {
			continue
		}
		label := int32(res.Count)
		res.Count++
		res.Seeds = append(res.Seeds, seed)
		o.OnSeed(seed, label)

		// BFS to claim the component
		queue.Reset()
		comp[seed] = label
		queue.Push(seed)
		for {
			u, ok := queue.Pop()
			if !ok {
				break
			}
			for _, v := range g.Neighbors(u) {
				if comp[v] == Unassigned {
					comp[v] = label
					queue.Push(v)
				}
			}
		}
	}
	res.Elapsed = o.Now().Sub(start)

	return res, nil
}
