package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. The main
// package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the labyrinth command tree. Command output goes to
// stdout and logs go to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "labyrinth",
		Short:         "Labyrinth carves perfect mazes",
		Long:          `Labyrinth generates perfect mazes on rectangular grids with binary-tree, sidewinder, recursive-backtracker or Kruskal carving, and renders them with distances and solution paths.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(stderr, level))
			cmd.SetContext(ctx)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.SetVersionTemplate(fmt.Sprintf("labyrinth %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newAlgorithmsCmd())
	return root
}

// Execute runs the CLI with ctx, which the caller cancels on SIGINT/SIGTERM.
func Execute(ctx context.Context, stdout, stderr io.Writer) error {
	return NewRootCommand(stdout, stderr).ExecuteContext(ctx)
}
