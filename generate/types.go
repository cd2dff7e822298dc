package generate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("generate: grid is nil")

	// ErrUnknownMethod is returned by Apply for an unregistered method name.
	ErrUnknownMethod = errors.New("generate: unknown method")

	// ErrStartNotFound is returned when the start cell lies outside the grid.
	ErrStartNotFound = errors.New("generate: start cell not found")
)

// Method names accepted by Apply.
const (
	MethodBinaryTree           = "binary-tree"
	MethodSidewinder           = "sidewinder"
	MethodRecursiveBacktracker = "recursive-backtracker"
	MethodKruskal              = "kruskal"
)

// Algorithm carves a maze into g.
type Algorithm func(g *grid.Grid, opts ...Option) error

var algorithms = map[string]Algorithm{
	MethodBinaryTree:           BinaryTree,
	MethodSidewinder:           Sidewinder,
	MethodRecursiveBacktracker: RecursiveBacktracker,
	MethodKruskal:              Kruskal,
}

// Methods returns the registered method names in a stable order.
func Methods() []string {
	return []string{MethodBinaryTree, MethodSidewinder, MethodRecursiveBacktracker, MethodKruskal}
}

// Lookup returns the algorithm registered under method.
func Lookup(method string) (Algorithm, error) {
	alg, ok := algorithms[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	return alg, nil
}

// Apply selects an algorithm by name and runs it on g.
//
//	– MethodBinaryTree:           BinaryTree(g, opts...)
//	– MethodSidewinder:           Sidewinder(g, opts...)
//	– MethodRecursiveBacktracker: RecursiveBacktracker(g, opts...)
//	– MethodKruskal:              Kruskal(g, opts...)
//	– anything else:              ErrUnknownMethod
func Apply(g *grid.Grid, method string, opts ...Option) error {
	alg, err := Lookup(method)
	if err != nil {
		return err
	}
	return alg(g, opts...)
}
