package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates rows or columns below one, or a cell count
	// that does not fit in an int.
	ErrInvalidDimensions = errors.New("grid: rows and columns must be at least 1 and rows*columns must fit in int")

	// ErrCellNotFound indicates a Coord outside the grid bounds.
	ErrCellNotFound = errors.New("grid: cell not found")
)

// Direction names one of the four positional neighbor relations.
type Direction int

const (
	// North is the neighbor at (row-1, column).
	North Direction = iota
	// South is the neighbor at (row+1, column).
	South
	// East is the neighbor at (row, column+1).
	East
	// West is the neighbor at (row, column-1).
	West

	numDirections = 4
)

// Directions lists all directions in the fixed order used by Neighbors.
var Directions = [numDirections]Direction{North, South, East, West}

// offsets[d] is the (row, column) delta for direction d.
var offsets = [numDirections][2]int{
	North: {-1, 0},
	South: {1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Coord identifies a cell. Two Coords with equal Row and Column denote the
// same cell, whatever handle they were obtained from.
type Coord struct {
	Row    int
	Column int
}

// String formats the coord as "(row,column)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// Step returns the coord one cell away in direction d. The result may lie
// outside any grid.
func (c Coord) Step(d Direction) Coord {
	off := offsets[d]
	return Coord{Row: c.Row + off[0], Column: c.Column + off[1]}
}

// Cell is a node of the Grid arena. Its fields are only mutated by the owning
// Grid; callers read them through the accessor methods.
type Cell struct {
	coord     Coord
	neighbors [numDirections]Coord
	hasNbr    [numDirections]bool
	links     []Coord // insertion order, no duplicates
}

// Coord returns the cell identity.
func (c *Cell) Coord() Coord { return c.coord }

// Row returns the cell row.
func (c *Cell) Row() int { return c.coord.Row }

// Column returns the cell column.
func (c *Cell) Column() int { return c.coord.Column }

// Neighbor returns the positional neighbor in direction d, if wired.
func (c *Cell) Neighbor(d Direction) (Coord, bool) {
	return c.neighbors[d], c.hasNbr[d]
}

// HasNeighbor reports whether a neighbor exists in direction d.
func (c *Cell) HasNeighbor(d Direction) bool {
	return c.hasNbr[d]
}

// Neighbors returns the wired neighbors in North, South, East, West order.
func (c *Cell) Neighbors() []Coord {
	out := make([]Coord, 0, numDirections)
	for _, d := range Directions {
		if c.hasNbr[d] {
			out = append(out, c.neighbors[d])
		}
	}
	return out
}

// Links returns a copy of the carved-link partners in the order they were linked.
func (c *Cell) Links() []Coord {
	out := make([]Coord, len(c.links))
	copy(out, c.links)
	return out
}

// LinkCount returns the number of carved links on this cell.
func (c *Cell) LinkCount() int { return len(c.links) }

// Linked reports whether other is among this cell's link partners.
func (c *Cell) Linked(other Coord) bool {
	return c.indexOf(other) >= 0
}

// LinkedTo reports whether the cell is linked to its neighbor in direction d.
func (c *Cell) LinkedTo(d Direction) bool {
	return c.hasNbr[d] && c.Linked(c.neighbors[d])
}

func (c *Cell) indexOf(other Coord) int {
	for i, l := range c.links {
		if l == other {
			return i
		}
	}
	return -1
}

// DistanceView exposes per-cell distances for rendering. Absence means the
// cell was not reached.
type DistanceView interface {
	Get(c Coord) (int, bool)
}

// Grid owns a rows×columns arena of cells in row-major order.
type Grid struct {
	rows, columns int
	cells         []Cell
	configured    bool
	distances     DistanceView
}
