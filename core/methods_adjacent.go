// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, RandomNeighbor).
// Determinism:
//   - Neighbors() returns neighbors in the order their edges were inserted.
//   - RandomNeighbor() consumes exactly one rng.Intn call per successful draw.
// Concurrency:
//   - Read operations hold mu.RLock.

package core

// Neighbors returns a copy of the neighbor set of v.
//
// Errors: ErrVertexNotFound if v is absent.
// Complexity: O(deg(v)).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adj[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]V, len(set.items))
	copy(out, set.items)

	return out, nil
}

// RandomNeighbor returns one neighbor of v chosen uniformly among its
// deg(v) neighbors. The draw is an index into the indexable neighbor slice,
// so uniformity does not depend on map internals.
//
// Errors:
//   - ErrNilRand if rng is nil.
//   - ErrVertexNotFound if v is absent.
//   - ErrNoNeighbors if v is isolated.
//
// Complexity: O(1).
func (g *Graph[V]) RandomNeighbor(v V, rng Rand) (V, error) {
	var zero V
	if rng == nil {
		return zero, ErrNilRand
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adj[v]
	if !ok {
		return zero, ErrVertexNotFound
	}
	if set.len() == 0 {
		return zero, ErrNoNeighbors
	}

	return set.items[rng.Intn(set.len())], nil
}
