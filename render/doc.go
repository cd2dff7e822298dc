// Package render turns a carved grid.Grid into text and image formats.
//
// Formats:
//   - [ASCII]: the classic +---+ wall drawing, one glyph per cell from the
//     attached distances (see [Glyph]), with optional path highlighting.
//   - [ToDOT]: an undirected Graphviz graph of cells and passages, pinned to
//     grid positions for the neato engine. [RenderSVG] lays it out.
//   - [JSON]: a document with per-cell open directions and distances.
//
// Rendering only reads the grid; it never links or unlinks cells.
package render
