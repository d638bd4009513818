// Package gridgraph treats a 2D grid of cells as a graph, so spanning trees
// (mazes) can be sampled on arbitrary shapes, not just full rectangles.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - ParseMask reads a text mask ('.' land, '#' water).
//   - ConnectedComponents identifies "islands" of land cells.
//   - ToCoreGraph / LargestComponentGraph convert land cells to a
//     *core.Graph[string] with builder's "row,col" vertex IDs.
//
// Complexity:
//
//   - ConnectedComponents:   O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ToCoreGraph:           O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoLand: no land cell to build a graph from.
//   - ErrBadMaskRune: mask text with an unknown character.
package gridgraph
