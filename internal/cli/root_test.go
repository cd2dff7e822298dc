package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/render"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	t.Cleanup(func() { SetVersion("", "", "") })

	if version != "1.0.0" || commit != "abc123" || date != "2024-01-01" {
		t.Errorf("SetVersion did not store values: %q %q %q", version, commit, date)
	}

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "labyrinth 1.0.0\ncommit: abc123\nbuilt: 2024-01-01\n", out)
}

func TestAlgorithmsCommand(t *testing.T) {
	out, _, err := run(t, "algorithms")
	require.NoError(t, err)
	for _, m := range generate.Methods() {
		assert.Contains(t, out, m)
	}
}

func TestGenerate_ASCII(t *testing.T) {
	out, logs, err := run(t, "generate", "-r", "3", "-c", "4", "-a", "kruskal", "-s", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "+---+---+---+---+", lines[0])
	assert.Equal(t, "+---+---+---+---+", lines[6])
	assert.Contains(t, logs, "Carved 3x4 kruskal maze")
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _, err := run(t, "generate", "-r", "6", "-c", "6", "-s", "77", "--distances")
	require.NoError(t, err)
	b, _, err := run(t, "generate", "-r", "6", "-c", "6", "-s", "77", "--distances")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "| 0")
}

func TestGenerate_JSONWithPath(t *testing.T) {
	out, _, err := run(t, "generate", "-r", "5", "-c", "5", "-a", "sidewinder",
		"-s", "3", "-f", "json", "--path", "corners", "--distances")
	require.NoError(t, err)

	var doc render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "sidewinder", doc.Algorithm)
	assert.Equal(t, int64(3), doc.Seed)
	assert.Equal(t, 24, doc.Links)
	assert.True(t, doc.Perfect)
	require.NotEmpty(t, doc.Path)
	assert.Equal(t, 0, doc.Path[0].Row)
	assert.Equal(t, 4, doc.Path[len(doc.Path)-1].Row)
	require.NotNil(t, doc.Cells[0].Distance)
	assert.Equal(t, 0, *doc.Cells[0].Distance)
}

func TestGenerate_LongestPathPlain(t *testing.T) {
	out, _, err := run(t, "generate", "-r", "1", "-c", "4", "-s", "1", "--path", "longest", "--color=false")
	require.NoError(t, err)
	// the path runs from the far end back to (0,0)
	assert.Equal(t, "+---+---+---+---+\n| 3   2   1   0 |\n+---+---+---+---+\n", out)
}

func TestGenerate_DOTToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.dot")
	out, _, err := run(t, "generate", "-r", "2", "-c", "2", "-f", "dot", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "graph maze {"))
	assert.Equal(t, 3, strings.Count(string(data), " -- "))
}

func TestGenerate_Config(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "labyrinth.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[maze]\nrows = 2\ncolumns = 3\nseed = 4\n"), 0o644))

	out, _, err := run(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 5)

	// flags override the file
	out, _, err = run(t, "generate", "--config", cfgPath, "-r", "1")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 3)
}

func TestGenerate_EnvOverride(t *testing.T) {
	t.Setenv("LABYRINTH_ROWS", "2")
	t.Setenv("LABYRINTH_COLUMNS", "2")
	t.Setenv("LABYRINTH_SEED", "8")

	out, _, err := run(t, "generate")
	require.NoError(t, err)
	assert.Equal(t, "+---+---+", strings.SplitN(out, "\n", 2)[0])
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "-r", "0")
	assert.ErrorIs(t, err, errInvalidConfig)

	_, _, err = run(t, "generate", "-a", "wilson")
	assert.ErrorIs(t, err, generate.ErrUnknownMethod)

	_, _, err = run(t, "generate", "-f", "png")
	assert.ErrorIs(t, err, errInvalidConfig)

	_, _, err = run(t, "generate", "extra")
	assert.Error(t, err)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(&stdout, &stderr)
	root.SetArgs([]string{"generate", "-r", "3", "-c", "3"})
	err := root.ExecuteContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
