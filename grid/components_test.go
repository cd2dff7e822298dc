package grid_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/labyrinth/grid"
)

// TestConnectedComponents_Unlinked: with no links, every cell is its own component.
func TestConnectedComponents_Unlinked(t *testing.T) {
	g := newConfigured(t, 2, 3)
	comps := g.ConnectedComponents()
	if len(comps) != 6 {
		t.Fatalf("got %d components; want 6", len(comps))
	}
	if g.IsPerfect() {
		t.Error("unlinked 2x3 grid reported perfect")
	}
}

// TestConnectedComponents_TwoRegions links the grid into two corridors.
//
//	+---+---+---+
//	|           |
//	+---+---+---+
//	|           |
//	+---+---+---+
func TestConnectedComponents_TwoRegions(t *testing.T) {
	g := newConfigured(t, 2, 3)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			_ = g.Link(grid.Coord{Row: r, Column: c}, grid.Coord{Row: r, Column: c + 1})
		}
	}
	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if !reflect.DeepEqual(sizes, []int{3, 3}) {
		t.Errorf("component sizes = %v; want [3 3]", sizes)
	}
	if g.IsPerfect() {
		t.Error("two corridors are not a spanning tree")
	}

	// joining the corridors yields a perfect maze
	_ = g.Link(grid.Coord{Row: 0, Column: 2}, grid.Coord{Row: 1, Column: 2})
	if !g.IsPerfect() {
		t.Error("joined corridors should be perfect")
	}
	wantDead := []grid.Coord{{Row: 0, Column: 0}, {Row: 1, Column: 0}}
	if got := g.DeadEnds(); !reflect.DeepEqual(got, wantDead) {
		t.Errorf("DeadEnds = %v; want %v", got, wantDead)
	}
}

// TestIsPerfect_Cycle: right link count is not enough when a cycle exists.
func TestIsPerfect_Cycle(t *testing.T) {
	g := newConfigured(t, 2, 3)
	// 2x2 block cycle plus a spur to (0,2): Size()-1 = 5 links, (1,2) isolated.
	links := [][2]grid.Coord{
		{{Row: 0, Column: 0}, {Row: 0, Column: 1}},
		{{Row: 0, Column: 1}, {Row: 1, Column: 1}},
		{{Row: 1, Column: 1}, {Row: 1, Column: 0}},
		{{Row: 1, Column: 0}, {Row: 0, Column: 0}},
		{{Row: 0, Column: 1}, {Row: 0, Column: 2}},
	}
	for _, l := range links {
		_ = g.Link(l[0], l[1])
	}
	if g.LinkCount() != 5 {
		t.Fatalf("LinkCount = %d; want 5", g.LinkCount())
	}
	if g.IsPerfect() {
		t.Error("cyclic carving reported perfect")
	}
}

// TestIsPerfect_SingleCell: a 1×1 grid is trivially a spanning tree.
func TestIsPerfect_SingleCell(t *testing.T) {
	g := newConfigured(t, 1, 1)
	if !g.IsPerfect() {
		t.Error("1x1 grid should be perfect with zero links")
	}
	if len(g.DeadEnds()) != 0 {
		t.Error("1x1 grid has no dead ends")
	}
}
