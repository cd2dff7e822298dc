package generate

import (
	"fmt"
	"time"

	"github.com/katalvlaran/labyrinth/grid"
)

// RecursiveBacktracker carves a randomized depth-first tree with an explicit
// stack, starting from Options.Start (default (0,0)).
//
// Steps:
//  1. Push the start cell.
//  2. Look at the top cell's neighbors that have no links yet.
//  3. None left → pop (backtrack). Otherwise pick one at random, link it to
//     the top cell and push it.
//  4. Stop when the stack is empty.
//
// Every cell reachable through neighbor relations is linked exactly once, to
// the cell that discovered it.
//
// Returns ErrStartNotFound when the start cell is outside the grid.
// Complexity: O(R×C) time, O(R×C) worst-case stack.
func RecursiveBacktracker(g *grid.Grid, opts ...Option) error {
	c, err := newCarver(g, opts)
	if err != nil {
		return err
	}
	start := c.opts.Start
	if g.CellAt(start) == nil {
		return fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}
	started := time.Now()

	stack := make([]grid.Coord, 0, g.Size())
	stack = append(stack, start)
	unvisited := make([]grid.Coord, 0, 4)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		unvisited = unvisited[:0]
		for _, n := range g.Neighbors(top) {
			if g.CellAt(n).LinkCount() == 0 {
				unvisited = append(unvisited, n)
			}
		}

		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := c.pick(unvisited)
		if err := c.link(top, next); err != nil {
			return err
		}
		stack = append(stack, next)
	}

	c.report(MethodRecursiveBacktracker, started)
	return nil
}
