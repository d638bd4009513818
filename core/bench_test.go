package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ust/core"
)

// buildRing returns an n-vertex ring over ints.
func buildRing(n int) *core.Graph[int] {
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, (i+1)%n)
	}
	return g
}

func BenchmarkAddEdge(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = buildRing(1000)
	}
}

func BenchmarkRandomNeighbor(b *testing.B) {
	g := buildRing(1000)
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	v := 0
	for i := 0; i < b.N; i++ {
		v, _ = g.RandomNeighbor(v, rng)
	}
}
