package render_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/distance"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/render"
)

// ExampleASCII draws a binary-tree maze carved with every draw at 0, labeled
// with distances from the north-west corner.
func ExampleASCII() {
	g, _ := grid.New(3, 4)
	g.ConfigureNeighbors()
	_ = generate.BinaryTree(g, generate.WithSource(generate.NewSequence(0)))

	d, _ := distance.From(g, grid.Coord{})
	g.SetDistances(d)
	fmt.Print(render.ASCII(g, render.Options{}))
	// Output:
	// +---+---+---+---+
	// | 0   1   2   3 |
	// +   +   +   +   +
	// | 1 | 2 | 3 | 4 |
	// +   +   +   +   +
	// | 2 | 3 | 4 | 5 |
	// +---+---+---+---+
}
