package builder_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgraph/builder"
	"github.com/katalvlaran/pathgraph/graph"
)

func TestPath(t *testing.T) {
	g, err := builder.Build(nil, builder.Path[int](4))
	require.NoError(t, err)
	assert.Equal(t, graph.Graph[string, int]{
		"0": {"1": 1},
		"1": {"2": 1},
		"2": {"3": 1},
		"3": {},
	}, g)
}

func TestCycle_SymbolIDs(t *testing.T) {
	g, err := builder.Build([]builder.Option[int]{
		builder.WithIDScheme[int](builder.SymbolIDFn),
		builder.WithWeightFn(builder.ConstantWeightFn(-1)),
	}, builder.Cycle[int](3))
	require.NoError(t, err)
	assert.Equal(t, graph.Graph[string, int]{
		"A": {"B": -1},
		"B": {"C": -1},
		"C": {"A": -1},
	}, g)
}

func TestStar(t *testing.T) {
	g, err := builder.Build(nil, builder.Star[int](4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, []string{"0", "1", "2"}, g.Neighbors(builder.CenterVertexID))
	assert.True(t, g.HasEdge("2", builder.CenterVertexID))
}

func TestComplete(t *testing.T) {
	g, err := builder.Build(nil, builder.Complete[float64](4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount())
	assert.False(t, g.HasEdge("1", "1"))
}

func TestGrid(t *testing.T) {
	g, err := builder.Build(nil, builder.Grid[int64](2, 3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1", "0,2", "1,0", "1,1", "1,2"}, g.Vertices())
	// 2 rows × 2 horizontal links + 3 vertical links, both directions.
	assert.Equal(t, 14, g.EdgeCount())
	assert.Equal(t, []string{"0,1", "1,0"}, g.Neighbors("0,0"))
	assert.Equal(t, []string{"0,0", "0,2", "1,1"}, g.Neighbors("0,1"))
}

func TestGrid_SharedWeights(t *testing.T) {
	g, err := builder.Build([]builder.Option[int64]{
		builder.WithSeed[int64](3),
		builder.WithWeightFn(builder.UniformWeightFn(-5, 5)),
	}, builder.Grid[int64](3, 3))
	require.NoError(t, err)

	for _, e := range g.Edges() {
		back, ok := g.Weight(e.To, e.From)
		require.True(t, ok)
		assert.Equal(t, e.Weight, back, "%s↔%s", e.From, e.To)
		assert.GreaterOrEqual(t, e.Weight, int64(-5))
		assert.LessOrEqual(t, e.Weight, int64(5))
	}
}

func TestRandomSparse(t *testing.T) {
	build := func(seed int64) graph.Graph[string, int64] {
		g, err := builder.Build([]builder.Option[int64]{
			builder.WithSeed[int64](seed),
			builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
		}, builder.RandomSparse[int64](12, 0.3))
		require.NoError(t, err)
		return g
	}

	a, b := build(42), build(42)
	assert.Equal(t, a, b, "same seed must give the same graph")
	assert.Equal(t, 12, a.VertexCount())
	assert.Positive(t, a.EdgeCount())
	assert.Less(t, a.EdgeCount(), 12*11)
	for v := range a {
		assert.False(t, a.HasEdge(v, v), "no self-loops")
	}

	// p = 0 and p = 1 need no RNG.
	none, err := builder.Build(nil, builder.RandomSparse[int](5, 0))
	require.NoError(t, err)
	assert.Zero(t, none.EdgeCount())
	full, err := builder.Build(nil, builder.RandomSparse[int](5, 1))
	require.NoError(t, err)
	assert.Equal(t, 20, full.EdgeCount())
}

func TestComposition(t *testing.T) {
	g, err := builder.Build([]builder.Option[int]{
		builder.WithIDScheme[int](builder.PrefixIDFn("v")),
	}, builder.Path[int](3), builder.Cycle[int](2))
	require.NoError(t, err)
	// Cycle(2) reuses v0, v1 and adds v1→v0.
	assert.Equal(t, graph.Graph[string, int]{
		"v0": {"v1": 1},
		"v1": {"v2": 1, "v0": 1},
		"v2": {},
	}, g)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		con  builder.Constructor[int]
		is   error
	}{
		{"path", builder.Path[int](1), builder.ErrTooFewVertices},
		{"cycle", builder.Cycle[int](1), builder.ErrTooFewVertices},
		{"star", builder.Star[int](1), builder.ErrTooFewVertices},
		{"complete", builder.Complete[int](0), builder.ErrTooFewVertices},
		{"grid", builder.Grid[int](0, 3), builder.ErrTooFewVertices},
		{"sparse n", builder.RandomSparse[int](0, 0.5), builder.ErrTooFewVertices},
		{"sparse p", builder.RandomSparse[int](3, 1.5), builder.ErrInvalidProbability},
		{"sparse rng", builder.RandomSparse[int](3, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := builder.Build(nil, tt.con)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tt.is), "got %v", err)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme[int](nil) })
	assert.Panics(t, func() { builder.WithRand[int](nil) })
	assert.Panics(t, func() { builder.WithWeightFn[int](nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 1) })
	assert.Panics(t, func() { builder.UniformWeightFn(math.MinInt64, math.MaxInt64) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, math.MaxInt64) })
	assert.Panics(t, func() { builder.UniformFloatWeightFn(1, 0) })
	assert.NotPanics(t, func() { builder.WithRand[int](rand.New(rand.NewSource(1))) })
}

func TestCheckWeightRange(t *testing.T) {
	assert.NoError(t, builder.CheckWeightRange(-5, 5))
	assert.NoError(t, builder.CheckWeightRange(7, 7))
	assert.NoError(t, builder.CheckWeightRange(0, math.MaxInt64-1))
	assert.NoError(t, builder.CheckWeightRange(math.MinInt64, -2))

	assert.ErrorIs(t, builder.CheckWeightRange(3, 1), builder.ErrWeightRange)
	assert.ErrorIs(t, builder.CheckWeightRange(0, math.MaxInt64), builder.ErrWeightRange)
	assert.ErrorIs(t, builder.CheckWeightRange(math.MinInt64, math.MaxInt64), builder.ErrWeightRange)
	assert.ErrorIs(t, builder.CheckWeightRange(math.MinInt64, -1), builder.ErrWeightRange)

	// The widest accepted range still samples inside its bounds.
	u := builder.UniformWeightFn(math.MinInt64, -2)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		w := u(rng)
		require.LessOrEqual(t, w, int64(-2))
	}
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "v7", builder.PrefixIDFn("v")(7))
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	u := builder.UniformWeightFn(-3, 3)
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		w := u(rng)
		require.GreaterOrEqual(t, w, int64(-3))
		require.LessOrEqual(t, w, int64(3))
		seen[w] = true
	}
	assert.Len(t, seen, 7, "every value in range is drawn")
	assert.Equal(t, int64(-3), u(nil))

	f := builder.UniformFloatWeightFn(0.5, 1.5)
	for i := 0; i < 100; i++ {
		w := f(rng)
		require.GreaterOrEqual(t, w, 0.5)
		require.Less(t, w, 1.5)
	}
}
