package grid

// LinkCount returns the number of undirected carved links in the grid.
// Complexity: O(R×C).
func (g *Grid) LinkCount() int {
	total := 0
	for i := range g.cells {
		total += len(g.cells[i].links)
	}
	return total / 2
}

// ConnectedComponents partitions the cells into regions reachable from one
// another through carved links. Each component lists row-major indices in
// BFS discovery order; components are ordered by their lowest index.
//
// To convert an index back to a Coord, use Coordinate(idx).
//
// Time:   O(R×C + L), L = number of links.
// Memory: O(R×C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0 := range g.cells {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, l := range g.cells[u].links {
				if !g.InBounds(l) {
					continue
				}
				vi := g.index(l)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// DeadEnds returns the coords of cells with exactly one link, row-major.
func (g *Grid) DeadEnds() []Coord {
	var out []Coord
	for i := range g.cells {
		if len(g.cells[i].links) == 1 {
			out = append(out, g.cells[i].coord)
		}
	}
	return out
}

// IsPerfect reports whether the carved links form a spanning tree: exactly
// Size()-1 links and a single connected component.
// Complexity: O(R×C + L).
func (g *Grid) IsPerfect() bool {
	if g.LinkCount() != g.Size()-1 {
		return false
	}
	return len(g.ConnectedComponents()) == 1
}
