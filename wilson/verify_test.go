package wilson_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ust/core"
	"github.com/katalvlaran/ust/wilson"
)

func TestVerify(t *testing.T) {
	// square a-b-c-d-a with chord a-c
	g := core.NewGraph[string]()
	require.NoError(t, g.AddPath([]string{"a", "b", "c", "d", "a", "c"}))

	tree := func(edges ...[2]string) *core.Graph[string] {
		out := core.NewGraph[string]()
		for _, v := range g.Vertices() {
			out.AddVertex(v)
		}
		for _, e := range edges {
			require.NoError(t, out.AddEdge(e[0], e[1]))
		}
		return out
	}

	require.NoError(t, wilson.Verify(g, tree([2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"c", "d"})))

	tests := []struct {
		name string
		tree *core.Graph[string]
	}{
		{"too few edges", tree([2]string{"a", "b"}, [2]string{"b", "c"})},
		{"cycle", tree([2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"}, [2]string{"c", "d"})},
		{"cycle with n-1 edges", tree([2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"})},
		{"foreign edge", tree([2]string{"a", "b"}, [2]string{"b", "d"}, [2]string{"c", "d"})},
		{"missing vertex", func() *core.Graph[string] {
			out := core.NewGraph[string]()
			require.NoError(t, out.AddPath([]string{"a", "b", "c"}))
			return out
		}()},
		{"wrong vertex", func() *core.Graph[string] {
			out := core.NewGraph[string]()
			require.NoError(t, out.AddPath([]string{"a", "b", "c", "z"}))
			return out
		}()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, wilson.Verify(g, tc.tree), wilson.ErrNotSpanningTree)
		})
	}

	require.ErrorIs(t, wilson.Verify(nil, g), wilson.ErrGraphNil)
	require.ErrorIs(t, wilson.Verify(core.NewGraph[string](), core.NewGraph[string]()), wilson.ErrEmptyGraph)
}
