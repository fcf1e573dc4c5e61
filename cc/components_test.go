package cc_test

import (
	"testing"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrgraph/cc"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/edgelist"
	"github.com/katalvlaran/csrgraph/generate"
)

func mustBuild(t *testing.T, es edgelist.Edges) *csr.Graph {
	t.Helper()
	g, err := csr.Build(es)
	require.NoError(t, err)
	return g
}

func randomEdges(seed int64, n, m int) edgelist.Edges {
	return generate.MustEdges([]generate.Option{generate.WithSeed(seed), generate.WithAnchor()},
		generate.RandomMultigraph(n, m))
}

func TestConnectedComponents_Nil(t *testing.T) {
	_, err := cc.ConnectedComponents(nil)
	assert.ErrorIs(t, err, cc.ErrGraphNil)
}

// TestScenarios covers the fixed scenarios and the asymmetric cases.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name  string
		edges edgelist.Edges
		want  []int32
		count int
	}{
		{"A triangle", edgelist.Edges{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}, []int32{0, 0, 0}, 1},
		{"B two chains", edgelist.Edges{{U: 0, V: 1}, {U: 2, V: 3}}, []int32{0, 0, 1, 1}, 2},
		{"C empty", edgelist.Edges{}, []int32{}, 0},
		{"back edge only", edgelist.Edges{{U: 1, V: 0}}, []int32{0, 1}, 2},
		{"later seed reaches earlier component", edgelist.Edges{{U: 0, V: 1}, {U: 2, V: 1}, {U: 2, V: 3}}, []int32{0, 0, 1, 1}, 2},
		{"isolated tail", edgelist.Edges{{U: 0, V: 1}, {U: 4, V: 4}}, []int32{0, 0, 1, 2, 3}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := cc.ConnectedComponents(mustBuild(t, tc.edges))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, res.Component); diff != "" {
				t.Errorf("Component mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.count, res.Count)
		})
	}
}

// TestLabeling_Properties checks totality, contiguity, seeds and sizes.
func TestLabeling_Properties(t *testing.T) {
	g := mustBuild(t, randomEdges(3, 300, 250))

	var hooked []int32
	res, err := cc.ConnectedComponents(g, cc.WithOnSeed(func(seed, label int32) {
		assert.Equal(t, int32(len(hooked)), label)
		hooked = append(hooked, seed)
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Seeds, hooked)

	used := make([]bool, res.Count)
	for v, c := range res.Component {
		require.GreaterOrEqual(t, c, int32(0), "node %d unlabeled", v)
		require.Less(t, int(c), res.Count)
		used[c] = true
	}
	for id, ok := range used {
		assert.True(t, ok, "label %d has no members", id)
	}

	for k := 1; k < len(res.Seeds); k++ {
		assert.Less(t, res.Seeds[k-1], res.Seeds[k])
	}
	for k, s := range res.Seeds {
		assert.Equal(t, int32(k), res.Component[s], "seed %d carries its own label", s)
	}

	total := 0
	for _, sz := range res.Sizes() {
		total += sz
	}
	assert.Equal(t, g.NumNodes(), total)
}

// TestLabeling_Deterministic re-runs on the same graph and on a permuted stream.
func TestLabeling_Deterministic(t *testing.T) {
	es := randomEdges(11, 150, 200)
	g := mustBuild(t, es)

	first, err := cc.ConnectedComponents(g)
	require.NoError(t, err)
	second, err := cc.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, first.Component, second.Component)

	// reversing the stream reverses every adjacency row; labels must not change
	rev := make(edgelist.Edges, len(es))
	for i, e := range es {
		rev[len(es)-1-i] = e
	}
	third, err := cc.ConnectedComponents(mustBuild(t, rev))
	require.NoError(t, err)
	assert.Equal(t, first.Component, third.Component)
}

// TestLabeling_MatchesReachability checks every label against forward
// reachability computed by dominikbraun/graph: each seed's label covers
// exactly the nodes it reaches that no earlier seed claimed.
func TestLabeling_MatchesReachability(t *testing.T) {
	const n = 120
	es := randomEdges(21, n, 110)
	g := mustBuild(t, es)

	ref := graph.New(graph.IntHash, graph.Directed())
	for v := 0; v < n; v++ {
		require.NoError(t, ref.AddVertex(v))
	}
	for _, e := range es {
		_ = ref.AddEdge(int(e.U), int(e.V))
	}

	res, err := cc.ConnectedComponents(g)
	require.NoError(t, err)

	for label, seed := range res.Seeds {
		reach := map[int]bool{}
		require.NoError(t, graph.BFS(ref, int(seed), func(v int) bool {
			reach[v] = true
			return false
		}))

		members, err := res.Members(label)
		require.NoError(t, err)
		for _, v := range members {
			assert.True(t, reach[int(v)], "label %d member %d not reachable from seed %d", label, v, seed)
		}
		for v := range reach {
			assert.LessOrEqual(t, int(res.Component[v]), label,
				"node %d reachable from seed %d but labeled later", v, seed)
		}
	}
}

// TestResult_Members validates the label range.
func TestResult_Members(t *testing.T) {
	res, err := cc.ConnectedComponents(mustBuild(t, edgelist.Edges{{U: 0, V: 1}, {U: 2, V: 3}}))
	require.NoError(t, err)

	m, err := res.Members(1)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 3}, m)

	_, err = res.Members(2)
	assert.ErrorIs(t, err, cc.ErrComponentIndex)
	_, err = res.Members(-1)
	assert.ErrorIs(t, err, cc.ErrComponentIndex)
	assert.Equal(t, []int{2, 2}, res.Sizes())
}

// TestElapsed uses the injected clock.
func TestElapsed(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return time.Unix(int64(calls), 0)
	}
	res, err := cc.ConnectedComponents(mustBuild(t, edgelist.Edges{{U: 0, V: 1}}), cc.WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, time.Second, res.Elapsed)
}

// BenchmarkConnectedComponents labels a sparse random multigraph.
func BenchmarkConnectedComponents(b *testing.B) {
	g, err := csr.Build(randomEdges(42, 50000, 60000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cc.ConnectedComponents(g)
	}
}
