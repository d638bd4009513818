package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ust/builder"
	"github.com/katalvlaran/ust/core"
)

// gridShape recovers rows×cols from "r,c" vertex IDs.
func gridShape(g *core.Graph[string]) (rows, cols int, err error) {
	for _, v := range g.Vertices() {
		r, c, err := builder.ParseGridID(v)
		if err != nil {
			return 0, 0, fmt.Errorf("maze: %w", err)
		}
		rows, cols = max(rows, r+1), max(cols, c+1)
	}

	return rows, cols, nil
}

// renderMaze draws a spanning tree of a rows×cols grid as a maze: every
// tree edge is a gap in the wall between two cells and cells outside the
// tree are filled. Diagonal edges have no wall and are not drawn.
func renderMaze(tree *core.Graph[string], rows, cols int) string {
	var b strings.Builder
	b.WriteByte('+')
	for c := 0; c < cols; c++ {
		b.WriteString("--+")
	}
	b.WriteByte('\n')

	for r := 0; r < rows; r++ {
		b.WriteByte('|')
		for c := 0; c < cols; c++ {
			if tree.HasVertex(builder.GridID(r, c)) {
				b.WriteString("  ")
			} else {
				b.WriteString("##")
			}
			if c+1 < cols && tree.HasEdge(builder.GridID(r, c), builder.GridID(r, c+1)) {
				b.WriteByte(' ')
			} else {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')

		b.WriteByte('+')
		for c := 0; c < cols; c++ {
			if r+1 < rows && tree.HasEdge(builder.GridID(r, c), builder.GridID(r+1, c)) {
				b.WriteString("  ")
			} else {
				b.WriteString("--")
			}
			b.WriteByte('+')
		}
		b.WriteByte('\n')
	}

	return b.String()
}
