package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

// lsCmd lists the elements of a document.
var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List elements in order",
	Long: `List the elements of the document in rendered order.

Selected elements are marked with their position in the selection.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.List(context.Background(), &engine.ListRequest{})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection(fmt.Sprintf("%s (%s)", result.Name, PrintCount(len(result.Elements), "element", "elements")))
		if len(result.Elements) == 0 {
			PrintEmptyState("No elements yet. Add one with 'elemlist add <key>'")
		} else {
			PrintElements(result.Elements, result.Selection)
		}

		if result.Drag != nil {
			fmt.Println()
			printDragStatus(result.Drag)
		}
		return nil
	},
}
