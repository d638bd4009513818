// Package builder provides reusable "functional-options"-style constructors
// for the undirected test and demo graphs that the samplers run on. It keeps
// configuration, ID schemes and validation in one place so fixtures stay
// deterministic and consistent across packages and the CLI.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph:        resolves options once and runs constructors in order.
//     – Constructor:       a deterministic mutation of a *core.Graph[string].
//   - Topologies:
//     – Complete, Cycle, Path, Star, Wheel.
//     – Grid ("r,c" IDs) and TriangularLattice (grid + one diagonal per cell).
//     – RandomSparse: Erdős–Rényi G(n,p).
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Coordinates:
//     – GridID / ParseGridID: the "r,c" layout used by Grid and
//     TriangularLattice, exposed for renderers.
//
// Guarantees:
//
//   - Idempotent: re-running the same constructor on g adds nothing new.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime parameter errors wrap sentinels (ErrTooFewVertices, …) with the
//     method name as context.
//   - Determinism: same inputs, options and seed ⇒ identical vertex and edge
//     insertion order, hence identical samples downstream.
package builder
