package render

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/labyrinth/grid"
)

// ErrGridNil is returned if a nil grid pointer is passed.
var ErrGridNil = errors.New("render: grid is nil")

// Options configures every renderer.
type Options struct {
	// Distances supplies the per-cell glyphs. When nil the grid's attached
	// view (grid.Grid.Distances) is used, and when that is nil too every
	// cell renders blank.
	Distances grid.DistanceView

	// Highlight marks cells to emphasize, typically a PathTo result. Cells
	// with a recorded value are styled; others render plainly.
	Highlight grid.DistanceView

	// HighlightStyle overrides PathStyle for ASCII output. Pass a plain
	// lipgloss.NewStyle() to disable color.
	HighlightStyle *lipgloss.Style
}

// distances resolves the view to draw glyphs from.
func (o Options) distances(g *grid.Grid) grid.DistanceView {
	if o.Distances != nil {
		return o.Distances
	}
	return g.Distances()
}

// highlighted reports whether c is on the highlight view.
func (o Options) highlighted(c grid.Coord) bool {
	if o.Highlight == nil {
		return false
	}
	_, ok := o.Highlight.Get(c)
	return ok
}

// style returns the lipgloss style for highlighted ASCII bodies.
func (o Options) style() lipgloss.Style {
	if o.HighlightStyle != nil {
		return *o.HighlightStyle
	}
	return PathStyle
}
