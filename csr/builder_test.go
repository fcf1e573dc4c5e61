package csr_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/edgelist"
	"github.com/katalvlaran/csrgraph/generate"
)

// randomEdges returns m edges over n nodes from a fixed seed; duplicates and
// self-loops occur naturally.
func randomEdges(seed int64, n, m int) edgelist.Edges {
	return generate.MustEdges([]generate.Option{generate.WithSeed(seed)}, generate.RandomMultigraph(n, m))
}

// TestBuild_ScenarioA is the directed triangle 0→1→2→0.
func TestBuild_ScenarioA(t *testing.T) {
	g, err := csr.Build(edgelist.Edges{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, []int32{0, 1, 2, 3}, g.RowPtr())
	assert.Equal(t, []int32{1, 2, 0}, g.ColInd())
}

// TestBuild_ScenarioC: empty stream gives row_ptr=[0] and no edges.
func TestBuild_ScenarioC(t *testing.T) {
	g, err := csr.Build(edgelist.Edges{})
	require.NoError(t, err)

	assert.Equal(t, 0, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, []int32{0}, g.RowPtr())
	assert.Empty(t, g.ColInd())
	require.NoError(t, g.Validate())

	node, deg := g.MaxDegree()
	assert.Equal(t, int32(-1), node)
	assert.Zero(t, deg)
}

// TestBuild_InsertionOrderDuplicatesLoops keeps stream order per row, parallel
// edges and self-loops.
func TestBuild_InsertionOrderDuplicatesLoops(t *testing.T) {
	es := edgelist.Edges{{U: 2, V: 0}, {U: 0, V: 3}, {U: 0, V: 1}, {U: 2, V: 2}, {U: 0, V: 3}, {U: 2, V: 0}}
	g, err := csr.Build(es)
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumNodes())
	if diff := cmp.Diff([]int32{3, 1, 3}, g.Neighbors(0)); diff != "" {
		t.Errorf("Neighbors(0) mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, g.Neighbors(1))
	if diff := cmp.Diff([]int32{0, 2, 0}, g.Neighbors(2)); diff != "" {
		t.Errorf("Neighbors(2) mismatch (-want +got):\n%s", diff)
	}
	// node 3 only appears as a target
	assert.Equal(t, 0, g.Degree(3))
	assert.True(t, g.HasEdge(2, 2))
	assert.False(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(9, 0))

	node, deg := g.MaxDegree()
	assert.Equal(t, int32(0), node, "ties resolve to the lowest id")
	assert.Equal(t, 3, deg)
}

// TestBuild_Properties checks the structural properties on random multigraphs.
func TestBuild_Properties(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		es := randomEdges(seed, 50, 400)
		g, err := csr.Build(es)
		require.NoError(t, err)
		require.NoError(t, g.Validate())

		rowPtr := g.RowPtr()
		assert.Equal(t, int32(0), rowPtr[0])
		assert.Equal(t, int32(len(es)), rowPtr[g.NumNodes()])

		// degree sum equals num_edges
		sum := 0
		for u := int32(0); int(u) < g.NumNodes(); u++ {
			sum += g.Degree(u)
		}
		assert.Equal(t, g.NumEdges(), sum)

		// per-source multiplicity of every target matches the input
		want := map[[2]int32]int{}
		for _, e := range es {
			want[[2]int32{e.U, e.V}]++
		}
		got := map[[2]int32]int{}
		for u := int32(0); int(u) < g.NumNodes(); u++ {
			for _, v := range g.Neighbors(u) {
				got[[2]int32{u, v}]++
			}
		}
		assert.Equal(t, want, got, "seed %d", seed)
	}
}

// TestBuild_ReaderStreamMatchesBuffered builds from text the same graph as from memory.
func TestBuild_ReaderStreamMatchesBuffered(t *testing.T) {
	text := "# comment\n0 4\n4 1\n\n1 1\n0 4\n"
	rs := edgelist.NewReaderStream(strings.NewReader(text))
	fromText, err := csr.Build(rs)
	require.NoError(t, err)
	assert.Equal(t, 3, rs.Passes())

	fromMem, err := csr.Build(edgelist.Edges{{U: 0, V: 4}, {U: 4, V: 1}, {U: 1, V: 1}, {U: 0, V: 4}})
	require.NoError(t, err)

	assert.Equal(t, fromMem.RowPtr(), fromText.RowPtr())
	assert.Equal(t, fromMem.ColInd(), fromText.ColInd())
}

// shrinkingStream drops its last edge after the first pass.
type shrinkingStream struct {
	es    edgelist.Edges
	calls int
}

func (s *shrinkingStream) Replay(fn func(edgelist.Edge) error) error {
	s.calls++
	es := s.es
	if s.calls > 1 {
		es = es[:len(es)-1]
	}
	return es.Replay(fn)
}

// growingStream yields an extra edge on the fill pass only.
type growingStream struct {
	es    edgelist.Edges
	extra edgelist.Edge
	calls int
}

func (s *growingStream) Replay(fn func(edgelist.Edge) error) error {
	s.calls++
	es := s.es
	if s.calls == 3 {
		es = append(append(edgelist.Edges{}, es...), s.extra)
	}
	return es.Replay(fn)
}

// TestBuild_ReplayMismatch covers the detectable divergence classes.
func TestBuild_ReplayMismatch(t *testing.T) {
	base := edgelist.Edges{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}

	t.Run("fewer edges", func(t *testing.T) {
		g, err := csr.Build(&shrinkingStream{es: base})
		assert.ErrorIs(t, err, csr.ErrReplayMismatch)
		assert.Nil(t, g)
	})
	t.Run("id beyond sized range", func(t *testing.T) {
		g, err := csr.Build(&growingStream{es: base, extra: edgelist.Edge{U: 7, V: 0}})
		assert.ErrorIs(t, err, csr.ErrReplayMismatch)
		assert.Nil(t, g)
	})
	t.Run("row overflow", func(t *testing.T) {
		g, err := csr.Build(&growingStream{es: base, extra: edgelist.Edge{U: 0, V: 2}})
		assert.ErrorIs(t, err, csr.ErrReplayMismatch)
		assert.Nil(t, g)
	})
}

// TestBuild_Capacity rejects graphs above the configured limits.
func TestBuild_Capacity(t *testing.T) {
	es := edgelist.Edges{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 9}}

	_, err := csr.Build(es, csr.WithMaxEdges(2))
	assert.ErrorIs(t, err, csr.ErrCapacity)

	_, err = csr.Build(es, csr.WithMaxNodes(9))
	assert.ErrorIs(t, err, csr.ErrCapacity)

	g, err := csr.Build(es, csr.WithMaxNodes(10), csr.WithMaxEdges(3))
	require.NoError(t, err)
	assert.Equal(t, 10, g.NumNodes())

	// max int32 id would need 2^31 nodes
	_, err = csr.Build(edgelist.Edges{{U: 0, V: 2147483647}})
	assert.ErrorIs(t, err, csr.ErrCapacity)

	assert.Panics(t, func() { csr.WithMaxNodes(-1) })
	assert.Panics(t, func() { csr.WithMaxEdges(-1) })
}

// TestBuild_Errors covers nil streams, negative ids and stream failures.
func TestBuild_Errors(t *testing.T) {
	_, err := csr.Build(nil)
	assert.ErrorIs(t, err, csr.ErrStreamNil)

	_, err = csr.Build(edgelist.Edges{{U: 0, V: -1}})
	assert.ErrorIs(t, err, edgelist.ErrNegativeID)

	strict := edgelist.NewReaderStream(strings.NewReader("0 1\nbad\n"),
		edgelist.WithStrictness(edgelist.Strict))
	_, err = csr.Build(strict)
	assert.ErrorIs(t, err, edgelist.ErrMalformedLine)
}

// TestBuild_LogsPasses routes Debug records to the supplied logger.
func TestBuild_LogsPasses(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := csr.Build(edgelist.Edges{{U: 0, V: 1}}, csr.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sizing pass complete")
	assert.Contains(t, buf.String(), "fill pass complete")
}

// BenchmarkBuild measures the three-pass construction on an in-memory stream.
func BenchmarkBuild(b *testing.B) {
	es := randomEdges(42, 10000, 100000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = csr.Build(es)
	}
}
