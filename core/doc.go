// Package core provides the undirected, unweighted Graph that every other
// package in this module builds on.
//
// The Graph G = (V,E) is generic over any comparable vertex type:
//
//   - Vertices are kept in insertion order (Vertices() is stable).
//   - Adjacency is symmetric: AddEdge(u,v) inserts v into N(u) and u into N(v).
//   - Self-loops are rejected with ErrLoopNotAllowed; a loop never moves a
//     random walk anywhere new.
//   - Neighbor sets are indexable (slice + position map), so RandomNeighbor
//     is a single uniform index draw whatever the backing map does.
//   - A single sync.RWMutex guards the structure; readers may run in parallel.
//
// Core Methods:
//
//	// Construction
//	NewGraph[V]() *Graph[V]                         // O(1)
//	FromEdges(vertices, edges) (*Graph[V], error)   // O(V+E)
//	AddVertex(v)                                    // O(1), idempotent
//	AddEdge(v1, v2) error                           // O(1), idempotent
//	AddPath(seq) error                              // O(len(seq))
//
//	// Query
//	HasVertex(v) bool, HasEdge(v1, v2) bool         // O(1)
//	Neighbors(v) ([]V, error)                       // O(deg v)
//	RandomNeighbor(v, rng) (V, error)               // O(1)
//	RandomVertex(rng) (V, error)                    // O(1)
//	Vertices() []V, Edges() []Edge[V]               // O(V), O(V+E)
//	VertexCount(), EdgeCount(), Degree(v), Stats()
//
//	// Cloning
//	CloneEmpty(), Clone(), String()
//
// Errors:
//
//	ErrVertexNotFound – missing vertex
//	ErrNoNeighbors    – random neighbor of an isolated vertex
//	ErrLoopNotAllowed – self-loop insertion
//	ErrNilRand        – nil random source
//
// Quick ASCII example:
//
//	0───1
//	│   │
//	2───3
//
//	g, _ := core.FromEdges([]int{0, 1, 2, 3}, []core.Edge[int]{
//		{From: 0, To: 1}, {From: 1, To: 3}, {From: 3, To: 2}, {From: 2, To: 0},
//	})
package core
