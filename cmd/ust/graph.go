package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/ust/builder"
	"github.com/katalvlaran/ust/core"
	"github.com/katalvlaran/ust/gridgraph"
)

const (
	kindComplete   = "complete"
	kindCycle      = "cycle"
	kindPath       = "path"
	kindStar       = "star"
	kindWheel      = "wheel"
	kindGrid       = "grid"
	kindTriangular = "triangular"
	kindRandom     = "random"
	kindMask       = "mask"
)

var errUnknownKind = errors.New("unknown graph kind")

// buildGraph runs the builder constructor named by gc.Kind.
func buildGraph(gc graphConfig) (*core.Graph[string], error) {
	var ctor builder.Constructor
	switch gc.Kind {
	case kindComplete:
		ctor = builder.Complete(gc.N)
	case kindCycle:
		ctor = builder.Cycle(gc.N)
	case kindPath:
		ctor = builder.Path(gc.N)
	case kindStar:
		ctor = builder.Star(gc.N)
	case kindWheel:
		ctor = builder.Wheel(gc.N)
	case kindGrid:
		ctor = builder.Grid(gc.Rows, gc.Cols)
	case kindTriangular:
		ctor = builder.TriangularLattice(gc.Rows, gc.Cols)
	case kindRandom:
		ctor = builder.RandomSparse(gc.N, gc.P)
	case kindMask:
		return maskGraph(gc)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownKind, gc.Kind)
	}

	return builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(gc.Seed)}, ctor)
}

// isLattice reports whether gc produces "r,c" vertex IDs.
func isLattice(gc graphConfig) bool {
	return gc.Kind == kindGrid || gc.Kind == kindTriangular || gc.Kind == kindMask
}

// maskGraph reads gc.Mask and returns its largest land component, which is
// connected by construction.
func maskGraph(gc graphConfig) (*core.Graph[string], error) {
	if gc.Mask == "" {
		return nil, errors.New("mask: --mask file is required")
	}
	data, err := os.ReadFile(gc.Mask)
	if err != nil {
		return nil, fmt.Errorf("mask: %w", err)
	}
	cells, err := gridgraph.ParseMask(string(data))
	if err != nil {
		return nil, fmt.Errorf("mask %s: %w", gc.Mask, err)
	}
	opts := gridgraph.DefaultGridOptions()
	if gc.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.NewGridGraph(cells, opts)
	if err != nil {
		return nil, fmt.Errorf("mask %s: %w", gc.Mask, err)
	}

	return gg.LargestComponentGraph()
}
