package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/labyrinth/generate"
)

// Output formats accepted by the generate command.
const (
	formatASCII = "ascii"
	formatDOT   = "dot"
	formatSVG   = "svg"
	formatJSON  = "json"
)

// Path modes accepted by the generate command.
const (
	pathNone    = "none"
	pathLongest = "longest"
	pathCorners = "corners"
)

// envPrefix prefixes every environment override.
const envPrefix = "LABYRINTH_"

var (
	errInvalidConfig = errors.New("invalid configuration")
)

// Config is the full set of generate settings.
type Config struct {
	Maze   MazeConfig   `toml:"maze"`
	Render RenderConfig `toml:"render"`
}

// MazeConfig selects the grid and algorithm.
type MazeConfig struct {
	Rows      int    `toml:"rows"`
	Columns   int    `toml:"columns"`
	Algorithm string `toml:"algorithm"`
	Seed      int64  `toml:"seed"` // 0 picks a time-based seed
}

// RenderConfig selects the output.
type RenderConfig struct {
	Format    string `toml:"format"`
	Distances bool   `toml:"distances"`
	Path      string `toml:"path"`
	Color     bool   `toml:"color"`
}

// defaultConfig returns the built-in settings.
func defaultConfig() Config {
	return Config{
		Maze: MazeConfig{
			Rows:      10,
			Columns:   10,
			Algorithm: generate.MethodRecursiveBacktracker,
		},
		Render: RenderConfig{
			Format: formatASCII,
			Path:   pathNone,
			Color:  true,
		},
	}
}

// loadConfigFile decodes the TOML file at path over cfg. Keys missing from
// the file keep their current values.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q in %s", errInvalidConfig, undecoded[0].String(), path)
	}
	return nil
}

// loadDotEnv loads a .env file into the process environment when one
// exists. Variables already set are not overwritten.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays LABYRINTH_* variables returned by lookup onto cfg.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"ROWS", &cfg.Maze.Rows},
		{"COLUMNS", &cfg.Maze.Columns},
	}
	for _, e := range ints {
		if v, ok := lookup(envPrefix + e.key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s%s must be an integer: %v", errInvalidConfig, envPrefix, e.key, err)
			}
			*e.dst = n
		}
	}

	if v, ok := lookup(envPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED must be an integer: %v", errInvalidConfig, envPrefix, err)
		}
		cfg.Maze.Seed = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"DISTANCES", &cfg.Render.Distances},
		{"COLOR", &cfg.Render.Color},
	}
	for _, e := range bools {
		if v, ok := lookup(envPrefix + e.key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s%s must be a boolean: %v", errInvalidConfig, envPrefix, e.key, err)
			}
			*e.dst = b
		}
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"ALGORITHM", &cfg.Maze.Algorithm},
		{"FORMAT", &cfg.Render.Format},
		{"PATH", &cfg.Render.Path},
	}
	for _, e := range strs {
		if v, ok := lookup(envPrefix + e.key); ok {
			*e.dst = strings.TrimSpace(v)
		}
	}
	return nil
}

// validate checks cfg before any work is done.
func (c Config) validate() error {
	if c.Maze.Rows < 1 || c.Maze.Columns < 1 {
		return fmt.Errorf("%w: rows and columns must be at least 1 (got %dx%d)", errInvalidConfig, c.Maze.Rows, c.Maze.Columns)
	}
	if _, err := generate.Lookup(c.Maze.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}
	switch c.Render.Format {
	case formatASCII, formatDOT, formatSVG, formatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q (want ascii, dot, svg or json)", errInvalidConfig, c.Render.Format)
	}
	switch c.Render.Path {
	case "", pathNone, pathLongest, pathCorners:
	default:
		return fmt.Errorf("%w: unknown path %q (want none, longest or corners)", errInvalidConfig, c.Render.Path)
	}
	return nil
}
