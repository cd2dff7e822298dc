package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/generate"
)

// algorithmSummaries describes each registered method.
var algorithmSummaries = map[string]string{
	generate.MethodBinaryTree:           "link each cell north or east; diagonal bias",
	generate.MethodSidewinder:           "east runs closed upward; open top corridor",
	generate.MethodRecursiveBacktracker: "randomized depth-first search; long corridors",
	generate.MethodKruskal:              "shuffled walls merged with union-find",
}

// newAlgorithmsCmd lists the generation algorithms.
func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List maze generation algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, m := range generate.Methods() {
				printKeyValue(w, m, algorithmSummaries[m])
			}
			return nil
		},
	}
}
