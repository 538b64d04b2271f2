package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

var namePending []string

// nameCmd previews the next copy name of a key.
var nameCmd = &cobra.Command{
	Use:   "name <key>",
	Short: "Show the name the next copy of a key would get",
	Long: `Show the name the next copy of a key would get in this document.

--pending adds names that count as taken without being in the document,
the way earlier copies of the same batch do.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.SuggestName(context.Background(), &engine.SuggestNameRequest{
			Key:     args[0],
			Pending: namePending,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintInfo(result.Suggested)
		return nil
	},
}

func init() {
	nameCmd.Flags().StringArrayVar(&namePending, "pending", nil, "Name already handed out in the same batch (repeatable)")
}
