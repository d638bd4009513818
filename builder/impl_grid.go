// SPDX-License-Identifier: MIT
// Package: ust/builder
//
// impl_grid.go - Grid(rows, cols) and TriangularLattice(rows, cols).
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex IDs use a fixed scheme "r,c" (row-major order). This is a
//     deliberate exception to cfg.idFn so coordinates stay explicit; renderers
//     recover them with ParseGridID.
//   • TriangularLattice adds the down-right diagonal (r,c)-(r+1,c+1) to every
//     cell, giving each interior vertex degree 6.
//
// Complexity:
//   • Time: O(rows*cols) vertices and edges.
//   • Space: O(1) extra (IDs are composed on the fly).
//
// Determinism:
//   • Stable vertex order: row-major (r asc, then c asc).
//   • Stable edge order: for each (r,c) emit Right, Bottom, then Diagonal.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/ust/core"
)

const (
	methodGrid       = "Grid"
	methodTriangular = "TriangularLattice"
	minGridDim       = 1
	gridIDSep        = ","
)

// GridID returns the "r,c" vertex ID used by Grid and TriangularLattice.
func GridID(r, c int) string {
	return strconv.Itoa(r) + gridIDSep + strconv.Itoa(c)
}

// ParseGridID splits an "r,c" vertex ID back into coordinates.
// Errors: ErrBadGridID for anything that is not two non-negative integers.
func ParseGridID(id string) (r, c int, err error) {
	rs, cs, ok := strings.Cut(id, gridIDSep)
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", id, ErrBadGridID)
	}
	if r, err = strconv.Atoi(rs); err != nil || r < 0 {
		return 0, 0, fmt.Errorf("%q: row: %w", id, ErrBadGridID)
	}
	if c, err = strconv.Atoi(cs); err != nil || c < 0 {
		return 0, 0, fmt.Errorf("%q: col: %w", id, ErrBadGridID)
	}

	return r, c, nil
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Edge count: rows*(cols-1) + cols*(rows-1).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], _ builderConfig) error {
		return buildLattice(g, methodGrid, rows, cols, false)
	}
}

// TriangularLattice returns a Constructor for a rows×cols grid in which each
// cell also carries its down-right diagonal.
// Edge count: rows*(cols-1) + cols*(rows-1) + (rows-1)*(cols-1).
func TriangularLattice(rows, cols int) Constructor {
	return func(g *core.Graph[string], _ builderConfig) error {
		return buildLattice(g, methodTriangular, rows, cols, true)
	}
}

func buildLattice(g *core.Graph[string], method string, rows, cols int, diagonal bool) error {
	if rows < minGridDim || cols < minGridDim {
		return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			method, rows, cols, minGridDim, ErrTooFewVertices)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddVertex(GridID(r, c))
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := GridID(r, c)
			if c+1 < cols {
				if err := addEdge(g, method, u, GridID(r, c+1)); err != nil {
					return err
				}
			}
			if r+1 < rows {
				if err := addEdge(g, method, u, GridID(r+1, c)); err != nil {
					return err
				}
			}
			if diagonal && r+1 < rows && c+1 < cols {
				if err := addEdge(g, method, u, GridID(r+1, c+1)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
