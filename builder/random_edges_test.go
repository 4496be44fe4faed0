package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V int }

func TestMaxEdges(t *testing.T) {
	assert.Equal(t, 0, builder.MaxEdges(0))
	assert.Equal(t, 0, builder.MaxEdges(1))
	assert.Equal(t, 1, builder.MaxEdges(2))
	assert.Equal(t, 6, builder.MaxEdges(4))
	assert.Equal(t, 45, builder.MaxEdges(10))
	assert.Equal(t, 10, builder.MaxEdges(5))

	// Large counts stay exact or saturate; they never wrap negative.
	assert.Equal(t, (1<<30)*(1<<31-1), builder.MaxEdges(1<<31))
	assert.Equal(t, math.MaxInt, builder.MaxEdges(3_000_000_000_000))
	assert.Equal(t, math.MaxInt, builder.MaxEdges(math.MaxInt))
	assert.Positive(t, builder.MaxEdges(core.MaxVertices))
}

func TestRandomEdges_Validation(t *testing.T) {
	g := core.MustNewGraph(4)

	assert.ErrorIs(t, builder.RandomEdges(nil, 1, builder.WithSeed(1)), builder.ErrNilGraph)
	assert.ErrorIs(t, builder.RandomEdges(g, 0, builder.WithSeed(1)), builder.ErrTooFewEdges)
	assert.ErrorIs(t, builder.RandomEdges(g, 7, builder.WithSeed(1)), builder.ErrTooManyEdges)
	assert.ErrorIs(t, builder.RandomEdges(g, 3), builder.ErrNeedRandSource)
	assert.ErrorIs(t, builder.RandomEdges(core.MustNewGraph(1), 1, builder.WithSeed(1)), builder.ErrTooManyEdges)

	assert.Zero(t, g.EdgeCount(), "invalid calls must not touch the graph")
}

func TestRandomEdges_Invariants(t *testing.T) {
	const n, m = 8, 20
	g := core.MustNewGraph(n)
	require.NoError(t, builder.RandomEdges(g, m, builder.WithSeed(7)))

	edges := g.Edges()
	require.Len(t, edges, m)

	seen := make(map[edgeKey]bool, m)
	for _, e := range edges {
		assert.NotEqual(t, e.From, e.To, "self-loop %v", e)
		assert.False(t, seen[edgeKey{e.From, e.To}], "duplicate %v", e)
		assert.False(t, seen[edgeKey{e.To, e.From}], "anti-parallel %v", e)
		seen[edgeKey{e.From, e.To}] = true

		assert.GreaterOrEqual(t, e.Weight, float64(builder.DefaultMinWeight))
		assert.LessOrEqual(t, e.Weight, float64(builder.DefaultMaxWeight))
		assert.Equal(t, float64(int(e.Weight)), e.Weight, "integer weight")
	}
}

func TestRandomEdges_Complete(t *testing.T) {
	// Asking for every pair must terminate and cover all of them.
	const n = 6
	g := core.MustNewGraph(n)
	require.NoError(t, builder.RandomEdges(g, builder.MaxEdges(n), builder.WithSeed(3)))

	covered := make(map[edgeKey]bool)
	for _, e := range g.Edges() {
		lo, hi := e.From, e.To
		if lo > hi {
			lo, hi = hi, lo
		}
		covered[edgeKey{lo, hi}] = true
	}
	assert.Len(t, covered, builder.MaxEdges(n))
}

func TestRandomEdges_Deterministic(t *testing.T) {
	a := core.MustNewGraph(10)
	b := core.MustNewGraph(10)
	require.NoError(t, builder.RandomEdges(a, 12, builder.WithSeed(99)))
	require.NoError(t, builder.RandomEdges(b, 12, builder.WithRand(rand.New(rand.NewSource(99)))))

	assert.Equal(t, a.Edges(), b.Edges())
}

func TestRandomEdges_WeightOptions(t *testing.T) {
	g := core.MustNewGraph(5)
	require.NoError(t, builder.RandomEdges(g, 10, builder.WithSeed(1), builder.WithWeightRange(-3, -1)))
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, float64(-3))
		assert.LessOrEqual(t, e.Weight, float64(-1))
	}

	g = core.MustNewGraph(5)
	require.NoError(t, builder.RandomEdges(g, 4, builder.WithSeed(1), builder.WithWeightFn(builder.ConstantWeightFn(2.5))))
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithWeightRange(5, 1) })
}

func TestUniformIntWeightFn(t *testing.T) {
	fn := builder.UniformIntWeightFn(4, 4)
	assert.Equal(t, float64(4), fn(rand.New(rand.NewSource(1))))

	fn = builder.UniformIntWeightFn(1, 3)
	assert.Equal(t, float64(1), fn(nil), "nil rng falls back to min")

	rng := rand.New(rand.NewSource(5))
	hits := map[float64]bool{}
	for i := 0; i < 200; i++ {
		hits[fn(rng)] = true
	}
	assert.Equal(t, map[float64]bool{1: true, 2: true, 3: true}, hits)
}
