package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ust/builder"
	"github.com/katalvlaran/ust/core"
)

// Mask characters accepted by ParseMask.
const (
	MaskLand  = '.'
	MaskWater = '#'
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// ParseMask turns text rows into cell values: MaskLand → 1, MaskWater → 0.
// Blank lines are skipped, so a mask file may end with a newline.
func ParseMask(text string) ([][]int, error) {
	var out [][]int
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for col, ch := range line {
			switch ch {
			case MaskLand:
				row = append(row, 1)
			case MaskWater:
				row = append(row, 0)
			default:
				return nil, fmt.Errorf("line %d col %d %q: %w", lineNo+1, col+1, ch, ErrBadMaskRune)
			}
		}
		out = append(out, row)
	}

	return out, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at least LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// ToCoreGraph converts the land cells into an undirected *core.Graph.
// Cell (x,y) becomes vertex builder.GridID(y, x), i.e. "row,col", so the
// result shares the coordinate layout of builder.Grid. Vertices are added
// row-major; edges follow gg.Conn between land neighbors.
// Complexity: O(W×H×d), Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() *core.Graph[string] {
	return gg.induced(gg.IsLand)
}

// LargestComponentGraph returns the induced graph of the largest land
// component (ties go to the component found first in row-major order).
// The sampler needs a connected input; this is the usual way to get one
// from an arbitrary mask.
//
// Errors: ErrNoLand.
func (gg *GridGraph) LargestComponentGraph() (*core.Graph[string], error) {
	comps := gg.ConnectedComponents()
	if len(comps) == 0 {
		return nil, ErrNoLand
	}
	best := comps[0]
	for _, c := range comps[1:] {
		if len(c) > len(best) {
			best = c
		}
	}
	in := make(map[int]bool, len(best))
	for _, idx := range best {
		in[idx] = true
	}

	return gg.induced(func(x, y int) bool { return in[gg.index(x, y)] }), nil
}

func (gg *GridGraph) induced(keep func(x, y int) bool) *core.Graph[string] {
	g := core.NewGraph[string]()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if keep(x, y) {
				g.AddVertex(builder.GridID(y, x))
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !keep(x, y) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) || !keep(nx, ny) {
					continue
				}
				// distinct cells, so AddEdge cannot reject a self-loop
				_ = g.AddEdge(builder.GridID(y, x), builder.GridID(ny, nx))
			}
		}
	}

	return g
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
