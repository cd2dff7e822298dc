package grid

import "fmt"

// Link carves a passage between a and b, recording each in the other's link
// list. Linking an already-linked pair changes nothing. a and b need not be
// positional neighbors; generation algorithms only link neighbors by
// discipline. Returns ErrCellNotFound if either coord is out of bounds.
func (g *Grid) Link(a, b Coord) error {
	ca, cb, err := g.pair(a, b)
	if err != nil {
		return err
	}
	if !ca.Linked(b) {
		ca.links = append(ca.links, b)
	}
	if !cb.Linked(a) {
		cb.links = append(cb.links, a)
	}
	return nil
}

// Unlink removes the passage between a and b on both endpoints. Unlinking a
// pair that is not linked is a no-op. Returns ErrCellNotFound if either coord
// is out of bounds.
func (g *Grid) Unlink(a, b Coord) error {
	ca, cb, err := g.pair(a, b)
	if err != nil {
		return err
	}
	ca.removeLink(b)
	cb.removeLink(a)
	return nil
}

// Linked reports whether a and b share a carved passage. Out-of-bounds coords
// are never linked.
func (g *Grid) Linked(a, b Coord) bool {
	ca := g.CellAt(a)
	if ca == nil {
		return false
	}
	return ca.Linked(b)
}

// Links returns the link partners of c, or nil when c is out of bounds.
func (g *Grid) Links(c Coord) []Coord {
	cell := g.CellAt(c)
	if cell == nil {
		return nil
	}
	return cell.Links()
}

// Neighbors returns the positional neighbors of c in North, South, East, West
// order, or nil when c is out of bounds. Before ConfigureNeighbors it returns
// an empty slice.
func (g *Grid) Neighbors(c Coord) []Coord {
	cell := g.CellAt(c)
	if cell == nil {
		return nil
	}
	return cell.Neighbors()
}

// pair resolves both endpoints of a link operation.
func (g *Grid) pair(a, b Coord) (*Cell, *Cell, error) {
	ca := g.CellAt(a)
	if ca == nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCellNotFound, a)
	}
	cb := g.CellAt(b)
	if cb == nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCellNotFound, b)
	}
	return ca, cb, nil
}

// removeLink deletes other from the link list, preserving order.
func (c *Cell) removeLink(other Coord) {
	i := c.indexOf(other)
	if i < 0 {
		return
	}
	c.links = append(c.links[:i], c.links[i+1:]...)
}
