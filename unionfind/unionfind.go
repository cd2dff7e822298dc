// Package unionfind provides a disjoint-set forest over dense integer
// elements 0..n-1, stored as a flat slice of parent indices.
//
// Kruskal-style maze carving uses it to reject passages that would close a
// cycle: two cells already in the same set must not be linked again.
//
// Complexity:
//
//   - New:     O(n) time and memory.
//   - Root:    O(depth); union by size keeps depth within O(log n).
//   - Union:   O(depth).
//
// Errors:
//
//   - ErrMalformedForest: a parent chain never reached a root. This can only
//     come from a construction bug, so Root panics with it instead of
//     returning a wrong representative.
package unionfind

import (
	"errors"
	"fmt"
)

// ErrMalformedForest is the panic value (wrapped) raised when a parent chain
// is cyclic or leaves the element range.
var ErrMalformedForest = errors.New("unionfind: malformed forest")

const noParent = -1

// Forest is a disjoint-set forest. The zero value is an empty forest.
type Forest struct {
	parent     []int // noParent marks a root
	size       []int // valid at roots only
	components int
}

// New returns a forest of n singleton sets.
func New(n int) *Forest {
	f := &Forest{
		parent:     make([]int, n),
		size:       make([]int, n),
		components: n,
	}
	for i := range f.parent {
		f.parent[i] = noParent
		f.size[i] = 1
	}
	return f
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Components returns the number of disjoint sets.
func (f *Forest) Components() int { return f.components }

// Root follows parent links from x to the representative with no parent.
// A node with no parent is its own root. Panics with ErrMalformedForest when
// x is out of range or the chain does not terminate within Len() steps.
func (f *Forest) Root(x int) int {
	n := len(f.parent)
	for steps := 0; steps <= n; steps++ {
		if x < 0 || x >= n {
			panic(fmt.Errorf("%w: element %d out of range [0,%d)", ErrMalformedForest, x, n))
		}
		p := f.parent[x]
		if p == noParent {
			return x
		}
		x = p
	}
	panic(fmt.Errorf("%w: parent chain exceeds %d steps", ErrMalformedForest, n))
}

// Connected reports whether a and b are in the same set.
func (f *Forest) Connected(a, b int) bool {
	return f.Root(a) == f.Root(b)
}

// Union merges the sets of a and b by attaching the smaller root under the
// larger one. Returns false, leaving the forest unchanged, when a and b are
// already connected.
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Root(a), f.Root(b)
	if ra == rb {
		return false
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.components--
	return true
}

// SetSize returns the number of elements in x's set.
func (f *Forest) SetSize(x int) int {
	return f.size[f.Root(x)]
}
