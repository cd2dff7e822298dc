// Package generate carves perfect mazes into a *grid.Grid.
//
// Every algorithm mutates the grid in place through grid.Link and, on a grid
// whose neighbors were configured and whose links start empty, leaves a
// spanning tree behind: Size()-1 links, connected, acyclic.
//
// Algorithms Provided
//
//   - BinaryTree: each cell links north or east at random. Long corridors
//     along the top row and the east column.
//   - Sidewinder: row-wise runs of east links, each run closed by one north
//     link from a random member. One open corridor along the top row.
//   - RecursiveBacktracker: randomized depth-first carving from a start cell
//     (default (0,0)) with an explicit stack. Long winding passages.
//   - Kruskal: shuffled south/east candidate walls merged through a
//     union-find forest; cycle-closing walls are kept.
//
// Randomness
//
//	All draws go through a Source (Intn + Shuffle). *math/rand.Rand satisfies
//	it; Sequence replays a scripted list of draws for tests. Use WithSeed,
//	WithRand or WithSource; without one, a time-seeded *rand.Rand is used.
//
// Caller responsibilities
//
//   - Call grid.ConfigureNeighbors first. On an unconfigured grid every
//     algorithm finishes without error and leaves every cell isolated.
//   - Run one algorithm per grid. Running a second one composes link sets and
//     voids the spanning-tree guarantee; this is not detected.
//
// Complexity:
//
//   - BinaryTree, Sidewinder, RecursiveBacktracker: O(R×C).
//   - Kruskal: O(E·log V) with E ≈ 2·R·C candidate walls.
//
// Errors:
//
//   - ErrGridNil:        a nil grid was passed.
//   - ErrUnknownMethod:  Apply received an unregistered method name.
//   - ErrStartNotFound:  WithStart named a coord outside the grid.
package generate
