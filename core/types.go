// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and neighborSet declarations, sentinel errors, NewGraph.
//
// Storage model:
//   - Vertices live in an insertion-ordered slice plus a position index.
//   - Every vertex owns a neighborSet: an indexable slice plus a position map.
//   - Both structures are indexable so a uniform draw is a single Intn call,
//     independent of Go's map iteration order.
//
// Errors:
//
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrNoNeighbors     - random neighbor requested from an isolated vertex.
//	ErrLoopNotAllowed  - self-loop insertion attempted.
//	ErrNilRand         - nil random source passed to a draw.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNoNeighbors indicates a random neighbor was requested from an isolated vertex.
	ErrNoNeighbors = errors.New("core: vertex has no neighbors")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilRand indicates a nil random source was supplied to a draw.
	ErrNilRand = errors.New("core: random source is nil")
)

// Rand is the minimal random source used for uniform draws.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniformly distributed integer in [0, n). n > 0.
	Intn(n int) int
}

// Edge is an undirected edge between two vertices.
// From/To record the orientation in which the edge was first inserted.
type Edge[V comparable] struct {
	From V
	To   V
}

// neighborSet is an indexable set: items holds members in insertion order,
// pos maps each member to its slot in items.
type neighborSet[V comparable] struct {
	items []V
	pos   map[V]int
}

func newNeighborSet[V comparable]() *neighborSet[V] {
	return &neighborSet[V]{pos: make(map[V]int)}
}

// add inserts v if absent and reports whether it was inserted.
func (s *neighborSet[V]) add(v V) bool {
	if _, ok := s.pos[v]; ok {
		return false
	}
	s.pos[v] = len(s.items)
	s.items = append(s.items, v)

	return true
}

func (s *neighborSet[V]) has(v V) bool {
	_, ok := s.pos[v]
	return ok
}

func (s *neighborSet[V]) len() int { return len(s.items) }

// Graph is a mutable, undirected, unweighted adjacency structure.
//
// Invariant: adjacency is symmetric, v2 ∈ adj[v1] ⇔ v1 ∈ adj[v2].
// Vertices and edges are only ever added, never removed.
// mu guards every field; all exported methods are safe for concurrent use.
type Graph[V comparable] struct {
	mu sync.RWMutex

	order []V                   // vertices in insertion order
	index map[V]int             // vertex → position in order
	adj   map[V]*neighborSet[V] // vertex → neighbor set
	edges int                   // number of undirected edges
}

// NewGraph creates an empty Graph. Every call allocates its own containers.
// Complexity: O(1).
func NewGraph[V comparable]() *Graph[V] {
	return &Graph[V]{
		index: make(map[V]int),
		adj:   make(map[V]*neighborSet[V]),
	}
}

// FromEdges builds a Graph holding the given vertices (in order) and edges.
// Either slice may be nil. Endpoints missing from vertices are auto-added
// in edge order.
//
// Errors: ErrLoopNotAllowed if any edge is a self-loop.
// Complexity: O(V + E).
func FromEdges[V comparable](vertices []V, edges []Edge[V]) (*Graph[V], error) {
	g := NewGraph[V]()
	for _, v := range vertices {
		g.AddVertex(v)
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return g, nil
}
