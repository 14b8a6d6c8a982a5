package builder_test

import (
	"math/rand"
	"testing"

	"github.com/avernet/fxrank/builder"
	"github.com/avernet/fxrank/digraph"
	"github.com/avernet/fxrank/pagerank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCycle verifies the ring topology and its minimum size.
func TestCycle(t *testing.T) {
	g, err := builder.Cycle(4)
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("#0", "#1"))
	assert.True(t, g.HasEdge("#3", "#0"))

	loop, err := builder.Cycle(1)
	require.NoError(t, err)
	assert.True(t, loop.HasEdge("#0", "#0"), "one-node cycle is a self-loop")

	_, err = builder.Cycle(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestComplete verifies K_n structure and its minimum size.
func TestComplete(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount())
	assert.False(t, g.HasEdge("#0", "#0"), "no loops in a complete graph")

	_, err = builder.Complete(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestGrid verifies lattice shape, symmetry and the degenerate cases.
func TestGrid(t *testing.T) {
	g, err := builder.Grid(2, 3)
	require.NoError(t, err)

	assert.Equal(t, 6, g.VertexCount())
	// 2·( rows·(cols-1) + (rows-1)·cols ) = 2·(4 + 3)
	assert.Equal(t, 14, g.EdgeCount())
	assert.True(t, g.HasEdge("#0", "#1"), "right neighbor")
	assert.True(t, g.HasEdge("#1", "#0"), "every edge is mirrored")
	assert.True(t, g.HasEdge("#0", "#3"), "down neighbor in row-major layout")
	assert.False(t, g.HasEdge("#2", "#3"), "no wrap across the row boundary")

	single, err := builder.Grid(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, single.VertexCount())
	assert.Equal(t, 0, single.EdgeCount(), "one cell has no neighbors")

	_, err = builder.Grid(0, 3)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestRandom_Shape verifies vertex/edge counts and the no-dangling
// guarantee.
func TestRandom_Shape(t *testing.T) {
	const nodes, edges = 50, 200
	g, err := builder.Random(nodes, edges, builder.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, nodes, g.VertexCount())
	assert.Equal(t, edges, g.EdgeCount())
	for i := 0; i < nodes; i++ {
		deg, err := g.OutDegree(builder.Label(i))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, deg, 1, "vertex %d must not dangle", i)
	}
}

// TestRandom_Deterministic verifies seed-for-seed reproducibility.
func TestRandom_Deterministic(t *testing.T) {
	a, err := builder.Random(30, 90, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.Random(30, 90, builder.WithSeed(7))
	require.NoError(t, err)

	require.Equal(t, a.Vertices(), b.Vertices())
	for _, u := range a.Vertices() {
		na, err := a.OutNeighbors(u)
		require.NoError(t, err)
		nb, err := b.OutNeighbors(u)
		require.NoError(t, err)
		assert.Equal(t, na, nb, "out-neighbors of %s", u)
	}

	c, err := builder.Random(30, 90, builder.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, edgeSet(t, a), edgeSet(t, c), "different seeds should differ")
}

// edgeSet flattens a graph into a comparable edge list.
func edgeSet(t *testing.T, g *digraph.Graph) map[[2]string]struct{} {
	t.Helper()
	set := make(map[[2]string]struct{})
	for _, u := range g.Vertices() {
		nbrs, err := g.OutNeighbors(u)
		require.NoError(t, err)
		for _, v := range nbrs {
			set[[2]string{u, v}] = struct{}{}
		}
	}

	return set
}

// TestRandom_Validation covers infeasible budgets.
func TestRandom_Validation(t *testing.T) {
	_, err := builder.Random(0, 0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Random(10, 9)
	assert.ErrorIs(t, err, builder.ErrBadEdgeCount, "fewer edges than nodes cannot cover every node")

	_, err = builder.Random(3, 10)
	assert.ErrorIs(t, err, builder.ErrBadEdgeCount, "more edges than n² cannot stay distinct")
}

// TestWithRand verifies an externally supplied RNG and the nil panic.
func TestWithRand(t *testing.T) {
	g, err := builder.Random(10, 20, builder.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	assert.Equal(t, 20, g.EdgeCount())

	assert.Panics(t, func() { builder.WithRand(nil) })
}

// TestRandom_FeedsEngine end-to-end: a generated fixture must be
// accepted by the stochastic view and converge under defaults.
func TestRandom_FeedsEngine(t *testing.T) {
	g, err := builder.Random(100, 400, builder.WithSeed(5))
	require.NoError(t, err)

	sg, err := pagerank.NewStochasticGraph(g)
	require.NoError(t, err)
	assert.Empty(t, sg.Dangling(), "generator guarantees no dangling nodes")

	table, err := pagerank.Rank(sg)
	require.NoError(t, err)
	assert.Less(t, table.Iterations(), pagerank.DefaultMaxIter)
}
