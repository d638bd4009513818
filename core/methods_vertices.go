// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.
//
// Concurrency:
//   - Writers take mu exclusively; readers take mu.RLock.
package core

// AddVertex inserts v if missing (idempotent) and bootstraps an empty
// neighbor set for it.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(v)
}

// addVertexLocked is AddVertex without locking. Caller holds mu.
func (g *Graph[V]) addVertexLocked(v V) {
	if _, exists := g.index[v]; exists {
		return
	}
	g.index[v] = len(g.order)
	g.order = append(g.order, v)
	g.adj[v] = newNeighborSet[V]()
}

// HasVertex reports whether v exists in the graph.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[v]

	return ok
}

// Vertices returns a copy of the vertex list in insertion order.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the number of neighbors of v.
//
// Errors: ErrVertexNotFound if v is absent.
// Complexity: O(1).
func (g *Graph[V]) Degree(v V) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adj[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return set.len(), nil
}

// RandomVertex returns a vertex drawn uniformly at random.
//
// Errors: ErrNilRand if rng is nil, ErrVertexNotFound if the graph is empty.
// Complexity: O(1).
func (g *Graph[V]) RandomVertex(rng Rand) (V, error) {
	var zero V
	if rng == nil {
		return zero, ErrNilRand
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.order) == 0 {
		return zero, ErrVertexNotFound
	}

	return g.order[rng.Intn(len(g.order))], nil
}
