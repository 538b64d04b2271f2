package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

// renameCmd changes the key of an element.
var renameCmd = &cobra.Command{
	Use:   "rename <element> <new-key>",
	Short: "Change an element's key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Rename(context.Background(), &engine.RenameRequest{
			Ref: args[0],
			Key: args[1],
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Renamed %q to %q", result.OldKey, result.NewKey))
		return nil
	},
}
