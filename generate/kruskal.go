package generate

import (
	"time"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/unionfind"
)

// wall is a candidate passage between a cell and its south or east neighbor.
// Only those two directions are listed so each shared wall appears once.
type wall struct {
	from grid.Coord
	dir  grid.Direction
}

// Kruskal carves a maze by processing every interior wall in a uniformly
// shuffled order and removing it unless its two cells are already connected.
//
// Steps:
//  1. One union-find element per cell (row-major index).
//  2. One wall per existing south/east neighbor pair, listed per cell as
//     south then east.
//  3. Shuffle the walls with Source.Shuffle.
//  4. For each wall: equal roots → keep the wall (it would close a cycle);
//     otherwise link the cells and union their sets.
//
// Each accepted wall reduces the number of components by exactly one, so a
// configured grid ends with Size()-1 links. The forest is discarded after
// the run. A malformed forest panics (see unionfind.ErrMalformedForest).
//
// Complexity: O(E·log V) time, O(V + E) memory, E ≈ 2·R·C.
func Kruskal(g *grid.Grid, opts ...Option) error {
	c, err := newCarver(g, opts)
	if err != nil {
		return err
	}
	started := time.Now()

	if err := c.kruskal(func(*unionfind.Forest) {}); err != nil {
		return err
	}

	c.report(MethodKruskal, started)
	return nil
}

// kruskal runs the carving loop; accepted is called after each merge with
// the forest state.
func (c *carver) kruskal(accepted func(*unionfind.Forest)) error {
	g := c.g
	walls := candidateWalls(g)
	c.opts.Source.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	forest := unionfind.New(g.Size())
	for _, w := range walls {
		to, ok := g.CellAt(w.from).Neighbor(w.dir)
		if !ok {
			continue
		}
		a, b := g.Index(w.from), g.Index(to)
		if forest.Root(a) == forest.Root(b) {
			continue
		}
		if err := c.link(w.from, to); err != nil {
			return err
		}
		forest.Union(a, b)
		accepted(forest)
	}
	return nil
}

// candidateWalls lists the south and east walls of every cell that has such
// a neighbor. An unconfigured grid yields none.
func candidateWalls(g *grid.Grid) []wall {
	walls := make([]wall, 0, 2*g.Size())
	for _, cell := range g.Cells() {
		if cell.HasNeighbor(grid.South) {
			walls = append(walls, wall{from: cell.Coord(), dir: grid.South})
		}
		if cell.HasNeighbor(grid.East) {
			walls = append(walls, wall{from: cell.Coord(), dir: grid.East})
		}
	}
	return walls
}
