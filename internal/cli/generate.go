package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/distance"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/render"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	config  string // TOML config file
	envFile string // .env file loaded before LABYRINTH_* lookup
	output  string // output file; stdout when empty
	cfg     Config
}

// newGenerateCmd creates the generate command.
//
// Defaults: 10x10, recursive-backtracker, ASCII, no distances, no path,
// time-based seed.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{cfg: defaultConfig()}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a maze and render it",
		Long: `Carve a perfect maze and print it.

Settings come from defaults, then --config (TOML), then LABYRINTH_*
environment variables (after loading --env-file), then flags.`,
		Example: `  labyrinth generate -r 8 -c 12 -a kruskal --distances
  labyrinth generate --path longest --format svg -o maze.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cmd, cfg, opts.output)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.config, "config", "", "TOML config file")
	f.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with LABYRINTH_* overrides")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	f.IntVarP(&opts.cfg.Maze.Rows, "rows", "r", opts.cfg.Maze.Rows, "grid rows")
	f.IntVarP(&opts.cfg.Maze.Columns, "columns", "c", opts.cfg.Maze.Columns, "grid columns")
	f.StringVarP(&opts.cfg.Maze.Algorithm, "algorithm", "a", opts.cfg.Maze.Algorithm, "generation algorithm (see 'labyrinth algorithms')")
	f.Int64VarP(&opts.cfg.Maze.Seed, "seed", "s", 0, "random seed (0 = time-based)")
	f.StringVarP(&opts.cfg.Render.Format, "format", "f", opts.cfg.Render.Format, "output format: ascii, dot, svg, json")
	f.BoolVar(&opts.cfg.Render.Distances, "distances", false, "label cells with distances from the north-west corner")
	f.StringVar(&opts.cfg.Render.Path, "path", opts.cfg.Render.Path, "highlight a path: none, longest, corners")
	f.BoolVar(&opts.cfg.Render.Color, "color", opts.cfg.Render.Color, "color the highlighted path in ASCII output")

	return cmd
}

// resolveConfig layers defaults, file, environment and changed flags.
func resolveConfig(cmd *cobra.Command, opts generateOpts) (Config, error) {
	logger := loggerFromContext(cmd.Context())
	cfg := defaultConfig()

	if opts.config != "" {
		if err := loadConfigFile(opts.config, &cfg); err != nil {
			return Config{}, err
		}
		logger.Debug("loaded config file", "path", opts.config)
	}
	if err := loadDotEnv(opts.envFile); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	flags := cmd.Flags()
	flag := opts.cfg
	if flags.Changed("rows") {
		cfg.Maze.Rows = flag.Maze.Rows
	}
	if flags.Changed("columns") {
		cfg.Maze.Columns = flag.Maze.Columns
	}
	if flags.Changed("algorithm") {
		cfg.Maze.Algorithm = flag.Maze.Algorithm
	}
	if flags.Changed("seed") {
		cfg.Maze.Seed = flag.Maze.Seed
	}
	if flags.Changed("format") {
		cfg.Render.Format = flag.Render.Format
	}
	if flags.Changed("distances") {
		cfg.Render.Distances = flag.Render.Distances
	}
	if flags.Changed("path") {
		cfg.Render.Path = flag.Render.Path
	}
	if flags.Changed("color") {
		cfg.Render.Color = flag.Render.Color
	}

	if cfg.Maze.Seed == 0 {
		cfg.Maze.Seed = time.Now().UnixNano()
	}
	return cfg, cfg.validate()
}

// runGenerate carves, measures and renders one maze.
func runGenerate(ctx context.Context, cmd *cobra.Command, cfg Config, output string) error {
	runID := uuid.New()
	logger := loggerFromContext(ctx).With("run", runID.String()[:8])
	prog := newProgress(logger)

	g, err := grid.New(cfg.Maze.Rows, cfg.Maze.Columns)
	if err != nil {
		return err
	}
	g.ConfigureNeighbors()

	logger.Debug("carving", "algorithm", cfg.Maze.Algorithm, "rows", cfg.Maze.Rows, "columns", cfg.Maze.Columns, "seed", cfg.Maze.Seed)
	if err := generate.Apply(g, cfg.Maze.Algorithm,
		generate.WithSeed(cfg.Maze.Seed),
		generate.WithLogger(logger),
	); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ropts, err := measure(g, cfg, logger)
	if err != nil {
		return err
	}

	data, err := renderMaze(ctx, g, cfg, runID, ropts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Carved %dx%d %s maze", g.Rows(), g.Columns(), cfg.Maze.Algorithm))

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	w := cmd.OutOrStdout()
	printSuccess(w, "Generated %s", StyleTitle.Render(cfg.Maze.Algorithm))
	printStats(w, g.LinkCount(), len(g.DeadEnds()), g.IsPerfect())
	printFile(w, output)
	return nil
}

// measure computes the requested distances and path and returns the
// matching render options.
func measure(g *grid.Grid, cfg Config, logger *log.Logger) (render.Options, error) {
	var ropts render.Options
	if !cfg.Render.Color {
		plain := lipgloss.NewStyle()
		ropts.HighlightStyle = &plain
	}

	if cfg.Render.Distances {
		d, err := distance.From(g, grid.Coord{})
		if err != nil {
			return ropts, err
		}
		g.SetDistances(d)
		far, longest := d.Max()
		logger.Debug("distances", "root", d.Root(), "farthest", far, "max", longest)
	}

	var path *distance.Distances
	switch cfg.Render.Path {
	case pathLongest:
		p, err := distance.LongestPath(g)
		if err != nil {
			return ropts, fmt.Errorf("longest path: %w", err)
		}
		path = p
	case pathCorners:
		d, err := distance.From(g, grid.Coord{})
		if err != nil {
			return ropts, err
		}
		p, err := d.PathTo(grid.Coord{Row: g.Rows() - 1, Column: g.Columns() - 1})
		if err != nil {
			return ropts, fmt.Errorf("corner path: %w", err)
		}
		path = p
	}

	if path != nil {
		ropts.Highlight = path
		if !cfg.Render.Distances {
			ropts.Distances = path
		}
		_, length := path.Max()
		logger.Debug("path", "mode", cfg.Render.Path, "from", path.Root(), "length", length)
	}
	return ropts, nil
}

// renderMaze encodes g in the configured format.
func renderMaze(ctx context.Context, g *grid.Grid, cfg Config, runID uuid.UUID, ropts render.Options) ([]byte, error) {
	switch cfg.Render.Format {
	case formatDOT:
		return []byte(render.ToDOT(g, ropts)), nil
	case formatSVG:
		svg, err := render.RenderSVG(ctx, render.ToDOT(g, ropts))
		if err != nil {
			return nil, fmt.Errorf("render svg: %w", err)
		}
		return svg, nil
	case formatJSON:
		data, err := render.JSON(g, render.Meta{ID: runID, Algorithm: cfg.Maze.Algorithm, Seed: cfg.Maze.Seed}, ropts)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return []byte(render.ASCII(g, ropts)), nil
	}
}
