package core_test

import (
	"fmt"

	"github.com/katalvlaran/ust/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected graph over string IDs:
	g := core.NewGraph[string]()

	// 2) Add edges (auto-adds vertices A, B, C):
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))
	nbs, _ := g.Neighbors("B")
	fmt.Println("Neighbors of B:", nbs)
	fmt.Println("Edges:", g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B-A exists? true
	// Neighbors of B: [A C]
	// Edges: 3
}

// ExampleGraph_AddPath grows a tree-shaped graph path by path.
func ExampleGraph_AddPath() {
	t := core.NewGraph[int]()
	t.AddVertex(0)
	_ = t.AddPath([]int{3, 1, 0})
	_ = t.AddPath([]int{2, 1})

	fmt.Println(t.VertexCount(), t.EdgeCount())
	fmt.Println(t.Edges())

	// Output:
	// 4 3
	// [{0 1} {3 1} {1 2}]
}
