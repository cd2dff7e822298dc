// Package grid models a rectangular maze lattice as a graph with two
// relations over the same cells.
//
// What:
//
//   - Grid owns rows×columns cells in a single row-major arena.
//   - Neighbor relation: fixed positional adjacency (North, South, East, West),
//     wired once by ConfigureNeighbors.
//   - Link relation: mutable, symmetric "passage exists" edges carved by a
//     generation algorithm through Link / Unlink.
//   - Analysis of the carved graph: LinkCount, ConnectedComponents, DeadEnds,
//     IsPerfect (spanning-tree check).
//
// Why:
//
//   - Cells never hold references to each other. Every relation is a Coord
//     resolved through the owning Grid, so the cyclic neighbor structure
//     (A→east→B, B→west→A) carries no ownership.
//   - All link mutation goes through the Grid, keeping both endpoints in sync.
//
// Complexity:
//
//   - New:                 O(R×C) time and memory.
//   - ConfigureNeighbors:  O(R×C).
//   - Link / Unlink:       O(1) (link lists hold at most four entries for
//     neighbor links).
//   - ConnectedComponents: O(R×C + L), L = number of links.
//
// Concurrency:
//
//	A Grid is not safe for concurrent mutation. Callers sharing a Grid across
//	goroutines must guard the whole Grid with one lock.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or columns < 1, or rows×columns overflows int.
//   - ErrCellNotFound:      Link / Unlink received an out-of-bounds Coord.
package grid
