package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/labyrinth/grid"
)

const (
	corner     = "+"
	wallEast   = "|"
	wallSouth  = "---"
	openEast   = " "
	openSouth  = "   "
)

// PathStyle is applied to highlighted cell bodies by ASCII.
var PathStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))

// ASCII draws g with walls wherever two neighbors are not linked:
//
//	+---+---+
//	| 0   1 |
//	+   +---+
//	| 1   2 |
//	+---+---+
//
// Each row is two lines: cell bodies with east walls, then south walls.
// Bodies show Glyph of the cell's distance. Highlighted bodies are rendered
// with Options.HighlightStyle or PathStyle, which emits no escape codes when the output has no color
// profile.
func ASCII(g *grid.Grid, opts Options) string {
	if g == nil {
		return ""
	}
	dist := opts.distances(g)

	var b strings.Builder
	b.WriteString(corner)
	for c := 0; c < g.Columns(); c++ {
		b.WriteString(wallSouth + corner)
	}
	b.WriteByte('\n')

	var top, bottom strings.Builder
	for r := 0; r < g.Rows(); r++ {
		top.Reset()
		bottom.Reset()
		top.WriteString(wallEast)
		bottom.WriteString(corner)

		for _, cell := range g.Row(r) {
			top.WriteString(body(cell.Coord(), dist, opts))
			if cell.LinkedTo(grid.East) {
				top.WriteString(openEast)
			} else {
				top.WriteString(wallEast)
			}
			if cell.LinkedTo(grid.South) {
				bottom.WriteString(openSouth)
			} else {
				bottom.WriteString(wallSouth)
			}
			bottom.WriteString(corner)
		}

		b.WriteString(top.String())
		b.WriteByte('\n')
		b.WriteString(bottom.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// body renders the three-character interior of one cell.
func body(c grid.Coord, dist grid.DistanceView, opts Options) string {
	glyph := " "
	if dist != nil {
		glyph = Glyph(dist.Get(c))
	}
	s := " " + glyph + " "
	if opts.highlighted(c) {
		return opts.style().Render(s)
	}
	return s
}
