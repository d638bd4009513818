// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/ust/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[string]()
	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num, "expected %d unique neighbors", num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadWhileWriting mixes AddPath writers with RandomNeighbor
// and Edges readers; symmetry must hold throughout.
func TestConcurrentReadWhileWriting(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(0, 1))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddPath([]int{0, id + 2, id + 3})
		}(i)

		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			_, _ = g.RandomNeighbor(0, rng)
			for _, e := range g.Edges() {
				if !g.HasEdge(e.To, e.From) {
					t.Errorf("asymmetric edge %v", e)
				}
			}
		}(int64(i))
	}
	wg.Wait()
}
