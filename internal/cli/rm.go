package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

// rmCmd removes elements from the document.
var rmCmd = &cobra.Command{
	Use:   "rm <element>...",
	Short: "Remove elements",
	Long: `Remove elements from the document. Removed elements also leave the
selection.

Elements are referenced by id, by key when the key is unique, or by an id
prefix of at least four characters.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Remove(context.Background(), &engine.RemoveRequest{Refs: args})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Removed %s", PrintCount(len(result.Removed), "element", "elements")))
		for _, el := range result.Removed {
			PrintLabelValue(shortID(el.ID), el.Key)
		}
		return nil
	},
}
