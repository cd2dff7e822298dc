package generate

import (
	"time"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sidewinder carves each row west to east, growing a run of consecutive
// cells joined by east links. A run closes when the current cell has no east
// neighbor, or, when a north neighbor exists, on a fair coin flip. Closing
// picks one run member at random, links it north if it can, and starts a new
// run. The top row never closes upward, so it ends as one open corridor.
//
// Draw order per cell: the coin (only when both east and north neighbors
// exist), then the member index on close-out.
//
// Complexity: O(R×C) time, O(C) memory for the run.
func Sidewinder(g *grid.Grid, opts ...Option) error {
	c, err := newCarver(g, opts)
	if err != nil {
		return err
	}
	started := time.Now()
	src := c.opts.Source

	run := make([]*grid.Cell, 0, g.Columns())
	for r := 0; r < g.Rows(); r++ {
		run = run[:0]
		for _, cell := range g.Row(r) {
			run = append(run, cell)

			atEastern := !cell.HasNeighbor(grid.East)
			atNorthern := !cell.HasNeighbor(grid.North)
			closeOut := atEastern || (!atNorthern && src.Intn(2) == 0)

			if closeOut {
				member := run[src.Intn(len(run))]
				if north, ok := member.Neighbor(grid.North); ok {
					if err := c.link(member.Coord(), north); err != nil {
						return err
					}
				}
				run = run[:0]
				continue
			}

			east, _ := cell.Neighbor(grid.East)
			if err := c.link(cell.Coord(), east); err != nil {
				return err
			}
		}
	}

	c.report(MethodSidewinder, started)
	return nil
}
