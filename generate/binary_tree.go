package generate

import (
	"time"

	"github.com/katalvlaran/labyrinth/grid"
)

// BinaryTree links every cell to its north or east neighbor, chosen
// uniformly among those that exist (candidate order: north, east). The
// north-east corner has neither and stays a pure endpoint.
//
// Steps:
//  1. Visit cells in row-major order.
//  2. Collect the existing {north, east} neighbors.
//  3. If any, link to candidates[Intn(len)].
//
// Complexity: O(R×C) time, O(1) extra memory.
func BinaryTree(g *grid.Grid, opts ...Option) error {
	c, err := newCarver(g, opts)
	if err != nil {
		return err
	}
	started := time.Now()

	candidates := make([]grid.Coord, 0, 2)
	for _, cell := range g.Cells() {
		candidates = candidates[:0]
		if n, ok := cell.Neighbor(grid.North); ok {
			candidates = append(candidates, n)
		}
		if e, ok := cell.Neighbor(grid.East); ok {
			candidates = append(candidates, e)
		}
		if len(candidates) == 0 {
			continue
		}
		if err := c.link(cell.Coord(), c.pick(candidates)); err != nil {
			return err
		}
	}

	c.report(MethodBinaryTree, started)
	return nil
}
