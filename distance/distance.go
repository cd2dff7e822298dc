package distance

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// From runs breadth-first search over the carved links of g starting at
// root and returns the hop count of every reachable cell.
//
// Steps:
//  1. Record root at 0 and enqueue it.
//  2. Dequeue a cell, call OnVisit, and for every linked cell without a
//     recorded distance record current+1 and enqueue it.
//  3. Stop when the queue is empty.
//
// Each reachable cell is visited exactly once. On a perfect maze every cell
// is reached. Returns ErrGridNil or ErrRootNotFound for invalid input.
func From(g *grid.Grid, root grid.Coord, opts ...Option) (*Distances, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(root) {
		return nil, fmt.Errorf("%w: %v", ErrRootNotFound, root)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := New(g, root)
	queue := make([]grid.Coord, 0, g.Size())
	queue = append(queue, root)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		dist := d.cells[cur]
		o.OnVisit(cur, dist)

		for _, next := range g.Links(cur) {
			if _, seen := d.cells[next]; seen {
				continue
			}
			d.cells[next] = dist + 1
			queue = append(queue, next)
		}
	}

	return d, nil
}
