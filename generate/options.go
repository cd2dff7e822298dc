package generate

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/labyrinth/grid"
)

// Option configures a generation run via functional arguments.
type Option func(*Options)

// Options holds the knobs shared by all algorithms.
type Options struct {
	// Source supplies every random draw.
	Source Source

	// Start is the first cell pushed by RecursiveBacktracker. Ignored by the others.
	Start grid.Coord

	// OnLink is called after each carved passage, in carving order.
	OnLink func(a, b grid.Coord)

	// Logger receives one Debug summary per run.
	Logger *log.Logger
}

// DefaultOptions returns Options with:
//   - a *rand.Rand seeded from the current time
//   - Start = (0,0)
//   - a no-op OnLink hook
//   - a logger writing to io.Discard
func DefaultOptions() Options {
	return Options{
		Source: rand.New(rand.NewSource(time.Now().UnixNano())),
		Start:  grid.Coord{},
		OnLink: func(grid.Coord, grid.Coord) {},
		Logger: log.New(io.Discard),
	}
}

// WithSeed uses a *rand.Rand seeded with seed, for reproducible mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Source = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for all draws. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(o *Options) {
		o.Source = r
	}
}

// WithSource uses an arbitrary Source, such as a scripted Sequence. Panics on nil.
func WithSource(s Source) Option {
	if s == nil {
		panic("generate: WithSource(nil)")
	}
	return func(o *Options) {
		o.Source = s
	}
}

// WithStart sets the RecursiveBacktracker start cell.
func WithStart(c grid.Coord) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// WithOnLink registers a callback invoked after every carved passage.
func WithOnLink(fn func(a, b grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLink = fn
		}
	}
}

// WithLogger routes the per-run Debug summary to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// carver bundles the grid and resolved options for one run.
type carver struct {
	g    *grid.Grid
	opts Options
}

// newCarver validates g and applies opts over the defaults.
func newCarver(g *grid.Grid, opts []Option) (*carver, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &carver{g: g, opts: o}, nil
}

// link carves a-b and notifies OnLink.
func (c *carver) link(a, b grid.Coord) error {
	if err := c.g.Link(a, b); err != nil {
		return err
	}
	c.opts.OnLink(a, b)
	return nil
}

// pick returns a uniformly chosen element of candidates, which must be non-empty.
func (c *carver) pick(candidates []grid.Coord) grid.Coord {
	return candidates[c.opts.Source.Intn(len(candidates))]
}

// report logs a Debug summary of the finished run.
func (c *carver) report(method string, started time.Time) {
	c.opts.Logger.Debug("carved maze",
		"method", method,
		"rows", c.g.Rows(),
		"columns", c.g.Columns(),
		"links", c.g.LinkCount(),
		"dead_ends", len(c.g.DeadEnds()),
		"elapsed", time.Since(started).Round(time.Microsecond),
	)
}
