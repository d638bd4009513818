package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/ust/core"
	"github.com/katalvlaran/ust/matrix"
)

// ExampleSpanningTreeCount counts the spanning trees of K4 (Cayley: 4² = 16).
func ExampleSpanningTreeCount() {
	g := core.NewGraph[string]()
	vs := []string{"a", "b", "c", "d"}
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			_ = g.AddEdge(vs[i], vs[j])
		}
	}

	tau, _ := matrix.SpanningTreeCount(g)
	fmt.Println(tau)
	// Output: 16
}
