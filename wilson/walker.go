package wilson

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ust/core"
)

// vertexPool is an indexable set of vertices not yet in the tree.
// Removal swaps with the last slot, so draws stay O(1) and uniform.
type vertexPool[V comparable] struct {
	items []V
	pos   map[V]int
}

func newVertexPool[V comparable](capacity int) *vertexPool[V] {
	return &vertexPool[V]{
		items: make([]V, 0, capacity),
		pos:   make(map[V]int, capacity),
	}
}

func (p *vertexPool[V]) add(v V) {
	if _, ok := p.pos[v]; ok {
		return
	}
	p.pos[v] = len(p.items)
	p.items = append(p.items, v)
}

func (p *vertexPool[V]) remove(v V) {
	i, ok := p.pos[v]
	if !ok {
		return
	}
	last := p.items[len(p.items)-1]
	p.items[i] = last
	p.pos[last] = i
	p.items = p.items[:len(p.items)-1]
	delete(p.pos, v)
}

func (p *vertexPool[V]) len() int { return len(p.items) }

func (p *vertexPool[V]) draw(rng core.Rand) V {
	return p.items[rng.Intn(len(p.items))]
}

// walker holds the state one random walk needs: the source graph, the
// growing tree (membership only) and the pool of walk origins.
type walker[V comparable] struct {
	graph    *core.Graph[V]
	tree     *core.Graph[V]
	pending  *vertexPool[V]
	rng      core.Rand
	ctx      context.Context
	maxSteps int
}

// walk draws a start uniformly from pending and steps to uniformly random
// neighbors until it first hits a tree vertex. The returned trace starts at
// the drawn vertex, ends at the tree vertex and may repeat vertices.
func (w *walker[V]) walk() ([]V, error) {
	if w.pending.len() == 0 {
		return nil, ErrAlreadyComplete
	}

	cur := w.pending.draw(w.rng)
	trace := []V{cur}
	for steps := 0; !w.tree.HasVertex(cur); steps++ {
		if w.maxSteps > 0 && steps >= w.maxSteps {
			return nil, fmt.Errorf("%w: %d steps from %v", ErrStepLimit, w.maxSteps, trace[0])
		}
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		next, err := w.graph.RandomNeighbor(cur, w.rng)
		if err != nil {
			if errors.Is(err, core.ErrNoNeighbors) {
				return nil, fmt.Errorf("%w: vertex %v: %w", ErrDisconnectedGraph, cur, err)
			}
			return nil, fmt.Errorf("wilson: step from %v: %w", cur, err)
		}
		trace = append(trace, next)
		cur = next
	}

	return trace, nil
}

// RandomWalk performs one unbiased random walk on g from a vertex drawn
// uniformly among g.vertices − tree.vertices, stopping at the first vertex
// that belongs to tree.
//
// Only Ctx, Rand and MaxSteps are read from opts. Without WithSeed/WithRand
// every call uses the same default-seeded stream.
//
// Errors:
//   - ErrGraphNil if g or tree is nil.
//   - ErrEmptyTree if tree has no vertices.
//   - ErrAlreadyComplete if every vertex of g is already in tree.
//   - ErrDisconnectedGraph if the walk reaches an isolated vertex.
//   - ErrStepLimit, ErrOptionViolation, or the context's error.
//
// Termination: almost sure on a connected graph, unbounded in the worst
// case; on a disconnected graph it only returns via MaxSteps or Ctx.
func RandomWalk[V comparable](g, tree *core.Graph[V], opts ...Option) ([]V, error) {
	if g == nil || tree == nil {
		return nil, ErrGraphNil
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if tree.VertexCount() == 0 {
		return nil, ErrEmptyTree
	}

	vs := g.Vertices()
	pending := newVertexPool[V](len(vs))
	for _, v := range vs {
		if !tree.HasVertex(v) {
			pending.add(v)
		}
	}

	w := &walker[V]{
		graph:    g,
		tree:     tree,
		pending:  pending,
		rng:      o.Rand,
		ctx:      o.Ctx,
		maxSteps: o.MaxSteps,
	}

	return w.walk()
}
