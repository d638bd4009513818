package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ust/builder"
	"github.com/katalvlaran/ust/core"
)

// TestBuilders_Functional checks vertex/edge counts and a topology-specific
// property for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph[string])
	}{
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				for _, v := range g.Vertices() {
					d, err := g.Degree(v)
					require.NoError(t, err)
					require.Equal(t, 4, d)
				}
			},
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0,
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				require.True(t, g.HasEdge("4", "0"))
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				require.Equal(t, []core.Edge[string]{{From: "0", To: "1"}, {From: "1", To: "2"}, {From: "2", To: "3"}}, g.Edges())
			},
		},
		{
			name: "Star(6)", ctor: builder.Star(6), wantV: 6, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				d, err := g.Degree(builder.CenterVertexID)
				require.NoError(t, err)
				require.Equal(t, 5, d)
			},
		},
		{
			name: "Wheel(6)", ctor: builder.Wheel(6), wantV: 6, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				require.True(t, g.HasEdge(builder.CenterVertexID, "4"))
				require.True(t, g.HasEdge("4", "0"))
			},
		},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantV: 12, wantE: 3*3 + 4*2,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				require.Equal(t, "0,0", g.Vertices()[0])
				require.Equal(t, "2,3", g.Vertices()[11])
				require.True(t, g.HasEdge("1,1", "1,2"))
				require.True(t, g.HasEdge("1,1", "2,1"))
				require.False(t, g.HasEdge("1,1", "2,2"))
			},
		},
		{
			name: "Grid(1,1)", ctor: builder.Grid(1, 1), wantV: 1, wantE: 0,
		},
		{
			name: "TriangularLattice(3,3)", ctor: builder.TriangularLattice(3, 3), wantV: 9, wantE: 6 + 6 + 4,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				require.True(t, g.HasEdge("0,0", "1,1"))
				require.False(t, g.HasEdge("0,1", "1,0"))
				d, err := g.Degree("1,1")
				require.NoError(t, err)
				require.Equal(t, 6, d)
			},
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"TriangularLattice(2,0)", builder.TriangularLattice(2, 0), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,-0.1)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []core.Edge[string] {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(20, 0.2))
		require.NoError(t, err)
		return g.Edges()
	}
	require.Equal(t, build(7), build(7))
	require.NotEqual(t, build(7), build(8))
}

func TestBuildGraph_Composition(t *testing.T) {
	t.Parallel()

	// the same constructor twice is idempotent
	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())

	// ID schemes are honored by index-based constructors
	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestParseGridID(t *testing.T) {
	t.Parallel()

	r, c, err := builder.ParseGridID(builder.GridID(12, 3))
	require.NoError(t, err)
	require.Equal(t, 12, r)
	require.Equal(t, 3, c)

	for _, bad := range []string{"", "3", "a,1", "1,b", "-1,2", "1,2,3"} {
		_, _, err := builder.ParseGridID(bad)
		require.ErrorIs(t, err, builder.ErrBadGridID, bad)
	}
}

func TestIDFns(t *testing.T) {
	t.Parallel()

	require.Equal(t, "10", builder.DefaultIDFn(10))
	require.Equal(t, "Z", builder.SymbolIDFn(25))
	require.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	require.Equal(t, "AB", builder.ExcelColumnIDFn(27))
	require.Equal(t, "ff", builder.HexIDFn(255))
	require.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))

	require.Panics(t, func() { builder.SymbolIDFn(26) })
	require.Panics(t, func() { builder.HexIDFn(-1) })
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}
