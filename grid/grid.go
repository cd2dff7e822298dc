package grid

import "math"

// New allocates a rows×columns grid. Every cell starts with no neighbors and
// no links; call ConfigureNeighbors before running a generation algorithm.
// Returns ErrInvalidDimensions for rows < 1, columns < 1, or when
// rows*columns overflows int.
// Complexity: O(R×C) time and memory.
func New(rows, columns int) (*Grid, error) {
	if rows < 1 || columns < 1 || rows > math.MaxInt/columns {
		return nil, ErrInvalidDimensions
	}
	g := &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}
	for i := range g.cells {
		g.cells[i].coord = g.Coordinate(i)
	}

	return g, nil
}

// ConfigureNeighbors wires each cell's north/south/east/west relation to the
// in-bounds cell in that direction. Calling it again is a no-op.
// Complexity: O(R×C).
func (g *Grid) ConfigureNeighbors() {
	if g.configured {
		return
	}
	for i := range g.cells {
		c := &g.cells[i]
		for _, d := range Directions {
			n := c.coord.Step(d)
			if g.InBounds(n) {
				c.neighbors[d] = n
				c.hasNbr[d] = true
			}
		}
	}
	g.configured = true
}

// Configured reports whether ConfigureNeighbors has run.
func (g *Grid) Configured() bool { return g.configured }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Size returns rows*columns.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether c lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Column >= 0 && c.Column < g.columns
}

// Cell returns the cell at (row, column), or nil when out of bounds.
func (g *Grid) Cell(row, column int) *Cell {
	return g.CellAt(Coord{Row: row, Column: column})
}

// CellAt returns the cell at c, or nil when out of bounds.
func (g *Grid) CellAt(c Coord) *Cell {
	if !g.InBounds(c) {
		return nil
	}
	return &g.cells[g.index(c)]
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	for i := range g.cells {
		out[i] = &g.cells[i]
	}
	return out
}

// Row returns the cells of row r from west to east, or nil when r is out of range.
func (g *Grid) Row(r int) []*Cell {
	if r < 0 || r >= g.rows {
		return nil
	}
	out := make([]*Cell, g.columns)
	for col := 0; col < g.columns; col++ {
		out[col] = &g.cells[r*g.columns+col]
	}
	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(*Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// RandomCell picks a cell uniformly using intn, which must return a value in [0, n).
func (g *Grid) RandomCell(intn func(n int) int) *Cell {
	return &g.cells[intn(len(g.cells))]
}

// SetDistances attaches a computed distance view to the grid, replacing any
// previous one. Pass nil to detach.
func (g *Grid) SetDistances(d DistanceView) { g.distances = d }

// Distances returns the attached distance view, or nil.
func (g *Grid) Distances() DistanceView { return g.distances }

// Index maps c to its row-major arena index. c must be in bounds.
func (g *Grid) Index(c Coord) int { return g.index(c) }

// index maps c to row*columns + column.
// Complexity: O(1).
func (g *Grid) index(c Coord) int {
	return c.Row*g.columns + c.Column
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.columns, Column: idx % g.columns}
}
