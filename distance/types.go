package distance

import (
	"errors"
	"sort"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for distance computation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("distance: grid is nil")

	// ErrRootNotFound is returned when the root lies outside the grid.
	ErrRootNotFound = errors.New("distance: root cell not found")

	// ErrNoPath is returned when a goal cannot be traced back to the root.
	ErrNoPath = errors.New("distance: no path")
)

// Option configures From via functional arguments.
type Option func(*Options)

// Options holds BFS callbacks.
type Options struct {
	// OnVisit is called as each cell is dequeued, with its distance.
	OnVisit func(c grid.Coord, dist int)
}

// DefaultOptions returns Options with a no-op OnVisit.
func DefaultOptions() Options {
	return Options{OnVisit: func(grid.Coord, int) {}}
}

// WithOnVisit registers a callback run once per reached cell, in BFS order.
func WithOnVisit(fn func(c grid.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Distances maps cells to hop counts from a root. A missing entry means the
// cell has not been reached, not that it is infinitely far.
//
// Distances satisfies grid.DistanceView, so a result can be attached to its
// grid with SetDistances for rendering.
type Distances struct {
	g     *grid.Grid
	root  grid.Coord
	cells map[grid.Coord]int
}

// New returns a Distances over g holding only root at distance 0.
func New(g *grid.Grid, root grid.Coord) *Distances {
	return &Distances{
		g:     g,
		root:  root,
		cells: map[grid.Coord]int{root: 0},
	}
}

// Root returns the cell distances are measured from.
func (d *Distances) Root() grid.Coord { return d.root }

// Get returns the recorded distance of c.
func (d *Distances) Get(c grid.Coord) (int, bool) {
	v, ok := d.cells[c]
	return v, ok
}

// Set records dist for c, replacing any previous value.
func (d *Distances) Set(c grid.Coord, dist int) { d.cells[c] = dist }

// Clear forgets c.
func (d *Distances) Clear(c grid.Coord) { delete(d.cells, c) }

// Len reports how many cells have a recorded distance.
func (d *Distances) Len() int { return len(d.cells) }

// Cells returns every recorded cell in row-major order.
func (d *Distances) Cells() []grid.Coord {
	out := make([]grid.Coord, 0, len(d.cells))
	for c := range d.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return rowMajorLess(out[i], out[j]) })
	return out
}

func rowMajorLess(a, b grid.Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Column < b.Column
}
