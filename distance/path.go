package distance

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/labyrinth/grid"
)

// PathTo reconstructs a shortest path from the root to goal and returns it as
// breadcrumbs: a Distances holding only the cells on the path, each with its
// distance from the root.
//
// The walk starts at goal and repeatedly moves to a linked cell whose
// recorded distance is strictly smaller, stopping at the root. Distances
// strictly decrease, so the walk visits each cell at most once and always
// terminates.
//
// Returns ErrNoPath if goal has no recorded distance or some cell on the way
// has no strictly closer linked cell.
func (d *Distances) PathTo(goal grid.Coord) (*Distances, error) {
	if d.g == nil {
		return nil, ErrGridNil
	}
	dist, ok := d.cells[goal]
	if !ok {
		return nil, fmt.Errorf("%w: %v not reached from %v", ErrNoPath, goal, d.root)
	}

	crumbs := &Distances{g: d.g, root: d.root, cells: map[grid.Coord]int{goal: dist}}
	cur := goal
	for cur != d.root {
		next, nextDist, found := d.closer(cur, dist)
		if !found {
			return nil, fmt.Errorf("%w: no linked cell of %v closer than %d", ErrNoPath, cur, dist)
		}
		crumbs.cells[next] = nextDist
		cur, dist = next, nextDist
	}

	return crumbs, nil
}

// closer returns the first linked cell of c whose distance is below dist.
func (d *Distances) closer(c grid.Coord, dist int) (grid.Coord, int, bool) {
	for _, l := range d.g.Links(c) {
		if v, ok := d.cells[l]; ok && v < dist {
			return l, v, true
		}
	}
	return grid.Coord{}, 0, false
}

// Path lists the recorded cells ordered by distance, ties row-major. On the
// result of PathTo this is the route from root to goal.
func (d *Distances) Path() []grid.Coord {
	out := d.Cells()
	sort.SliceStable(out, func(i, j int) bool { return d.cells[out[i]] < d.cells[out[j]] })
	return out
}

// Max returns the farthest recorded cell and its distance. Ties go to the
// first cell in row-major order. An empty map yields (root, 0).
func (d *Distances) Max() (grid.Coord, int) {
	best, bestDist := d.root, 0
	first := true
	for _, c := range d.Cells() {
		if v := d.cells[c]; first || v > bestDist {
			best, bestDist = c, v
			first = false
		}
	}
	return best, bestDist
}

// LongestPath finds the longest path of a perfect maze with two BFS passes:
// the farthest cell from (0,0) is one end, the farthest cell from that end is
// the other. The result is PathTo breadcrumbs rooted at the first end.
//
// On a maze with several components only the component holding (0,0) is
// considered.
func LongestPath(g *grid.Grid) (*Distances, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	fromOrigin, err := From(g, grid.Coord{})
	if err != nil {
		return nil, err
	}
	start, _ := fromOrigin.Max()

	fromStart, err := From(g, start)
	if err != nil {
		return nil, err
	}
	goal, _ := fromStart.Max()

	return fromStart.PathTo(goal)
}
