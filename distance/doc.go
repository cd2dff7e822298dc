// Package distance computes breadth-first hop counts over the carved links
// of a grid.Grid and reconstructs shortest paths from them.
//
// What:
//
//   - From runs BFS over links (never over bare neighbor relations) and
//     returns a Distances map from root.
//   - PathTo walks backward from a goal, always stepping to a linked cell with
//     a strictly smaller distance, and returns the breadcrumbs as a new
//     Distances.
//   - Max and LongestPath find the farthest cell and the longest path of a
//     perfect maze (two BFS passes).
//
// Errors:
//
//   - ErrGridNil:       nil grid.
//   - ErrRootNotFound:  root outside the grid.
//   - ErrNoPath:        goal unreached, or no strictly-decreasing linked
//     neighbor exists during the backward walk.
//
// Complexity:
//
//   - From:   O(V + L) time, O(V) memory (V cells, L links).
//   - PathTo: O(P·4), P = path length.
package distance
