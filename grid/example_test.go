// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// ExampleGrid_Link demonstrates the two relations of a cell: fixed neighbors
// and carved links.
func ExampleGrid_Link() {
	g, _ := grid.New(2, 2)
	g.ConfigureNeighbors()

	origin := grid.Coord{Row: 0, Column: 0}
	fmt.Println("neighbors:", g.Neighbors(origin))

	_ = g.Link(origin, grid.Coord{Row: 0, Column: 1})
	fmt.Println("links:", g.Links(origin))
	fmt.Println("linked east:", g.Cell(0, 0).LinkedTo(grid.East))
	fmt.Println("linked south:", g.Cell(0, 0).LinkedTo(grid.South))

	// Output:
	// neighbors: [(1,0) (0,1)]
	// links: [(0,1)]
	// linked east: true
	// linked south: false
}
