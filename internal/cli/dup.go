package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

var dupDryRun bool

// dupCmd duplicates elements in one batch.
var dupCmd = &cobra.Command{
	Use:     "dup [element]...",
	Aliases: []string{"duplicate"},
	Short:   "Duplicate elements under copy names",
	Long: `Duplicate elements in one batch. Without arguments the current
selection is duplicated, in list order.

Each copy is named after the root of its source key: "Header" and
"Header copy 3" both produce "Header copy N" with N one above the highest
existing copy number. Names handed out earlier in the same batch count as
taken, so a batch never produces the same name twice.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Duplicate(context.Background(), &engine.DuplicateRequest{
			Refs:   args,
			DryRun: dupDryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.DryRun {
			PrintSection("Dry Run: Duplicate")
		} else {
			PrintSuccess(fmt.Sprintf("Duplicated %s", PrintCount(len(result.Copies), "element", "elements")))
		}
		for _, c := range result.Copies {
			PrintLabelValue(c.SourceKey, c.Key)
		}
		if result.DryRun {
			fmt.Println()
			PrintWarning("Run without --dry-run to create the copies")
		}
		return nil
	},
}

func init() {
	dupCmd.Flags().BoolVar(&dupDryRun, "dry-run", false, "Show the copy names without creating copies")
}
