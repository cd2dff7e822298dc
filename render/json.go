package render

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/grid"
)

// Meta describes how a maze was produced.
type Meta struct {
	// ID identifies the run. A zero ID is replaced with a fresh random UUID.
	ID        uuid.UUID
	Algorithm string
	Seed      int64
}

// Document is the JSON form of a maze.
type Document struct {
	ID        string         `json:"id"`
	Algorithm string         `json:"algorithm,omitempty"`
	Seed      int64          `json:"seed"`
	Rows      int            `json:"rows"`
	Columns   int            `json:"columns"`
	Links     int            `json:"links"`
	DeadEnds  int            `json:"dead_ends"`
	Perfect   bool           `json:"perfect"`
	Cells     []CellDocument `json:"cells"`
	Path      []grid.Coord   `json:"path,omitempty"`
}

// CellDocument lists one cell's open sides and optional distance.
type CellDocument struct {
	Row      int      `json:"row"`
	Column   int      `json:"column"`
	Open     []string `json:"open"`
	Distance *int     `json:"distance,omitempty"`
}

// Path is implemented by distance views that can list themselves in order,
// such as distance.Distances.
type Path interface {
	grid.DistanceView
	Path() []grid.Coord
}

// NewDocument builds the JSON document for g. When opts.Highlight also
// implements Path, its ordered cells are included.
func NewDocument(g *grid.Grid, meta Meta, opts Options) Document {
	id := meta.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	doc := Document{
		ID:        id.String(),
		Algorithm: meta.Algorithm,
		Seed:      meta.Seed,
		Rows:      g.Rows(),
		Columns:   g.Columns(),
		Links:     g.LinkCount(),
		DeadEnds:  len(g.DeadEnds()),
		Perfect:   g.IsPerfect(),
		Cells:     make([]CellDocument, 0, g.Size()),
	}

	dist := opts.distances(g)
	for _, cell := range g.Cells() {
		cd := CellDocument{Row: cell.Row(), Column: cell.Column(), Open: []string{}}
		for _, d := range grid.Directions {
			if cell.LinkedTo(d) {
				cd.Open = append(cd.Open, d.String())
			}
		}
		if dist != nil {
			if v, ok := dist.Get(cell.Coord()); ok {
				cd.Distance = &v
			}
		}
		doc.Cells = append(doc.Cells, cd)
	}

	if p, ok := opts.Highlight.(Path); ok {
		doc.Path = p.Path()
	}
	return doc
}

// JSON encodes NewDocument(g, meta, opts) with two-space indentation.
func JSON(g *grid.Grid, meta Meta, opts Options) ([]byte, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	return json.MarshalIndent(NewDocument(g, meta, opts), "", "  ")
}
