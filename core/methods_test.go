// Package core_test exercises vertex/edge lifecycle, neighborhood queries
// and uniform draws on core.Graph.
package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ust/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns queued values from Intn, modulo n.
type fixedRand struct {
	vals []int
	i    int
}

func (r *fixedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// square builds the 4-cycle 0-1-3-2-0.
func square(t *testing.T) *core.Graph[int] {
	t.Helper()
	g, err := core.FromEdges([]int{0, 1, 2, 3}, []core.Edge[int]{
		{From: 0, To: 1}, {From: 1, To: 3}, {From: 3, To: 2}, {From: 2, To: 0},
	})
	require.NoError(t, err)
	return g
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("A")
	g.AddVertex("A")
	g.AddVertex("B")

	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Empty(t, nbs)
}

func TestAddEdge_SymmetricAndIdempotent(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"))

	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())

	a, _ := g.Neighbors("A")
	b, _ := g.Neighbors("B")
	assert.Equal(t, []string{"B"}, a)
	assert.Equal(t, []string{"A"}, b)
}

func TestAddEdge_SelfLoopRejected(t *testing.T) {
	g := core.NewGraph[int]()
	err := g.AddEdge(7, 7)
	assert.True(t, errors.Is(err, core.ErrLoopNotAllowed))
	assert.False(t, g.HasVertex(7), "rejected loop must not add its vertex")
	assert.Zero(t, g.EdgeCount())
}

func TestAddPath(t *testing.T) {
	t.Run("empty and singleton are no-ops", func(t *testing.T) {
		g := core.NewGraph[int]()
		require.NoError(t, g.AddPath(nil))
		require.NoError(t, g.AddPath([]int{4}))
		assert.Zero(t, g.VertexCount())
	})

	t.Run("consecutive pairs", func(t *testing.T) {
		g := core.NewGraph[int]()
		require.NoError(t, g.AddPath([]int{1, 2, 3, 4}))
		assert.Equal(t, 3, g.EdgeCount())
		assert.True(t, g.HasEdge(1, 2))
		assert.True(t, g.HasEdge(2, 3))
		assert.True(t, g.HasEdge(3, 4))
		assert.False(t, g.HasEdge(1, 4))
	})

	t.Run("loop step leaves graph untouched", func(t *testing.T) {
		g := core.NewGraph[int]()
		err := g.AddPath([]int{1, 2, 2, 3})
		assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
		assert.Zero(t, g.VertexCount())
	})
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := square(t)
	_, err := g.Neighbors(42)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.Degree(42)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := square(t)
	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, nbs)

	nbs[0] = 99
	again, _ := g.Neighbors(0)
	assert.Equal(t, []int{1, 2}, again)
}

func TestRandomNeighbor_Errors(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("lonely")
	rng := rand.New(rand.NewSource(1))

	_, err := g.RandomNeighbor("lonely", rng)
	assert.ErrorIs(t, err, core.ErrNoNeighbors)

	_, err = g.RandomNeighbor("ghost", rng)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.RandomNeighbor("lonely", nil)
	assert.ErrorIs(t, err, core.ErrNilRand)
}

func TestRandomNeighbor_IndexesNeighborSlice(t *testing.T) {
	g := square(t)
	// N(0) = [1 2] in insertion order.
	r := &fixedRand{vals: []int{1, 0}}

	v, err := g.RandomNeighbor(0, r)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = g.RandomNeighbor(0, r)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestRandomNeighbor_Uniform(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 1; i <= 5; i++ {
		require.NoError(t, g.AddEdge(0, i))
	}
	rng := rand.New(rand.NewSource(7))

	const draws = 50000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		v, err := g.RandomNeighbor(0, rng)
		require.NoError(t, err)
		counts[v]++
	}

	require.Len(t, counts, 5)
	for v, c := range counts {
		// expected 10000 each; 6 sigma is ~540
		assert.InDelta(t, draws/5, c, 600, "neighbor %d drawn %d times", v, c)
	}
}

func TestRandomVertex(t *testing.T) {
	g := core.NewGraph[int]()
	_, err := g.RandomVertex(rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	g.AddVertex(10)
	g.AddVertex(20)
	v, err := g.RandomVertex(&fixedRand{vals: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, 20, v)
}

func TestEdges_EachOnceInVertexOrder(t *testing.T) {
	g := square(t)
	want := []core.Edge[int]{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 3},
	}
	assert.Equal(t, want, g.Edges())
}

func TestFromEdges_AutoAddsEndpoints(t *testing.T) {
	g, err := core.FromEdges(nil, []core.Edge[string]{{From: "x", To: "y"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, g.Vertices())

	_, err = core.FromEdges([]string{"a"}, []core.Edge[string]{{From: "a", To: "a"}})
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestFromEdges_DoesNotShareContainers(t *testing.T) {
	g1, _ := core.FromEdges[int](nil, nil)
	g2, _ := core.FromEdges[int](nil, nil)
	g1.AddVertex(1)
	assert.Zero(t, g2.VertexCount())
}

func TestClone(t *testing.T) {
	g := square(t)
	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.Edges(), c.Edges())

	require.NoError(t, c.AddEdge(0, 3))
	assert.False(t, g.HasEdge(0, 3), "clone must be independent")

	empty := g.CloneEmpty()
	assert.Equal(t, g.Vertices(), empty.Vertices())
	assert.Zero(t, empty.EdgeCount())
}

func TestStats(t *testing.T) {
	g := square(t)
	g.AddVertex(9)
	s := g.Stats()
	assert.Equal(t, core.GraphStats{
		VertexCount:   5,
		EdgeCount:     4,
		IsolatedCount: 1,
		MinDegree:     0,
		MaxDegree:     2,
	}, *s)

	assert.Equal(t, core.GraphStats{}, *core.NewGraph[int]().Stats())
}

func TestString(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2))
	assert.Equal(t, "vertices: [1 2]\nneighbors of 1: [2]\nneighbors of 2: [1]", g.String())
}
