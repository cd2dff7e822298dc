package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generate"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, 10, cfg.Maze.Rows)
	assert.Equal(t, 10, cfg.Maze.Columns)
	assert.Equal(t, generate.MethodRecursiveBacktracker, cfg.Maze.Algorithm)
	assert.Equal(t, formatASCII, cfg.Render.Format)
	assert.True(t, cfg.Render.Color)
	assert.NoError(t, cfg.validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labyrinth.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[maze]
rows = 4
algorithm = "kruskal"
seed = 9

[render]
format = "json"
distances = true
`), 0o644))

	cfg := defaultConfig()
	require.NoError(t, loadConfigFile(path, &cfg))
	assert.Equal(t, 4, cfg.Maze.Rows)
	assert.Equal(t, 10, cfg.Maze.Columns, "missing keys keep defaults")
	assert.Equal(t, "kruskal", cfg.Maze.Algorithm)
	assert.Equal(t, int64(9), cfg.Maze.Seed)
	assert.Equal(t, formatJSON, cfg.Render.Format)
	assert.True(t, cfg.Render.Distances)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()

	assert.Error(t, loadConfigFile(filepath.Join(dir, "missing.toml"), &cfg))

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[maze\nrows = "), 0o644))
	assert.Error(t, loadConfigFile(bad, &cfg))

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("[maze]\nwidth = 3\n"), 0o644))
	err := loadConfigFile(unknown, &cfg)
	assert.True(t, errors.Is(err, errInvalidConfig), "got %v", err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"LABYRINTH_ROWS":      "3",
		"LABYRINTH_COLUMNS":   " 5 ",
		"LABYRINTH_SEED":      "-12",
		"LABYRINTH_ALGORITHM": "sidewinder",
		"LABYRINTH_FORMAT":    "dot",
		"LABYRINTH_DISTANCES": "true",
		"LABYRINTH_COLOR":     "0",
		"LABYRINTH_PATH":      "longest",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := defaultConfig()
	require.NoError(t, applyEnv(&cfg, lookup))
	assert.Equal(t, Config{
		Maze:   MazeConfig{Rows: 3, Columns: 5, Algorithm: "sidewinder", Seed: -12},
		Render: RenderConfig{Format: "dot", Distances: true, Path: "longest", Color: false},
	}, cfg)
}

func TestApplyEnv_Errors(t *testing.T) {
	for key, value := range map[string]string{
		"LABYRINTH_ROWS":      "many",
		"LABYRINTH_SEED":      "1.5",
		"LABYRINTH_DISTANCES": "perhaps",
	} {
		lookup := func(k string) (string, bool) {
			if k == key {
				return value, true
			}
			return "", false
		}
		cfg := defaultConfig()
		err := applyEnv(&cfg, lookup)
		assert.ErrorIs(t, err, errInvalidConfig, key)
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "LABYRINTH_DOTENV_TEST"
	t.Cleanup(func() { os.Unsetenv(key) })

	dir := t.TempDir()
	assert.NoError(t, loadDotEnv(filepath.Join(dir, ".env")), "missing file is not an error")

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=7\n"), 0o644))
	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "7", os.Getenv(key))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Maze.Rows = 0 }},
		{"negative columns", func(c *Config) { c.Maze.Columns = -2 }},
		{"unknown algorithm", func(c *Config) { c.Maze.Algorithm = "wilson" }},
		{"unknown format", func(c *Config) { c.Render.Format = "png" }},
		{"unknown path", func(c *Config) { c.Render.Path = "shortest" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.validate(), errInvalidConfig)
		})
	}

	cfg := defaultConfig()
	cfg.Maze.Algorithm = "wilson"
	assert.ErrorIs(t, cfg.validate(), generate.ErrUnknownMethod)
}
