package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/labyrinth/grid"
)

// ToDOT converts g to an undirected Graphviz graph: one node per cell pinned
// at its grid position, one edge per carved passage. Node labels are glyphs
// from the distances view; highlighted cells are filled.
//
// The graph requests the neato layout so pinned positions are honored.
func ToDOT(g *grid.Grid, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=square, width=0.4, fixedsize=true, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [penwidth=6, color=\"#444444\"];\n")
	if g == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	dist := opts.distances(g)
	buf.WriteString("\n")
	for _, cell := range g.Cells() {
		c := cell.Coord()
		label := " "
		if dist != nil {
			label = Glyph(dist.Get(c))
		}
		attrs := fmt.Sprintf("label=%q, pos=\"%d,%d!\"", label, c.Column, -c.Row)
		if opts.highlighted(c) {
			attrs += ", fillcolor=\"#5fd7af\""
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(c), attrs)
	}

	buf.WriteString("\n")
	for _, cell := range g.Cells() {
		for _, d := range []grid.Direction{grid.South, grid.East} {
			if !cell.LinkedTo(d) {
				continue
			}
			to, _ := cell.Neighbor(d)
			fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(cell.Coord()), nodeID(to))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(c grid.Coord) string {
	return fmt.Sprintf("%d,%d", c.Row, c.Column)
}

// RenderSVG lays out a DOT graph with Graphviz and returns the SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
