// Package labyrinth generates perfect mazes on rectangular grids and
// measures them.
//
// A maze is a grid whose carved passages form a spanning tree: every cell
// reaches every other cell by exactly one simple path.
//
// Packages:
//
//	grid/       cells, positional neighbors, carved links, spanning-tree checks
//	generate/   binary-tree, sidewinder, recursive-backtracker and Kruskal carving
//	unionfind/  disjoint-set forest used by Kruskal
//	distance/   BFS distances, shortest-path breadcrumbs, longest path
//	render/     ASCII, Graphviz DOT/SVG and JSON output
//
// Typical flow:
//
//	g, _ := grid.New(8, 12)
//	g.ConfigureNeighbors()
//	_ = generate.Apply(g, generate.MethodKruskal, generate.WithSeed(42))
//	d, _ := distance.From(g, grid.Coord{})
//	g.SetDistances(d)
//	fmt.Print(render.ASCII(g, render.Options{}))
//
// The labyrinth command (cmd/labyrinth) wraps this flow with TOML, .env and
// flag configuration.
package labyrinth
