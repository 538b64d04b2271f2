package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

var (
	selectExtend bool
	selectClear  bool
)

// selectCmd changes the selection.
var selectCmd = &cobra.Command{
	Use:   "select [element]",
	Short: "Change the selection",
	Long: `Change the selection the way clicks in the element list do.

With --extend (shift-click) the element is toggled: a selected element is
deselected, an unselected one is appended, so the selection keeps click
order. A plain select, or --clear, empties the selection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !selectClear && len(args) == 0 {
			return fmt.Errorf("%w: give an element or --clear", engine.ErrValidation)
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.SelectRequest{Extend: selectExtend, Clear: selectClear}
		if len(args) == 1 {
			req.Ref = args[0]
		}

		result, err := eng.Select(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.Selection) == 0 {
			PrintEmptyState("Selection is empty")
			return nil
		}
		keys := make([]string, 0, len(result.Selection))
		for _, el := range result.Selection {
			keys = append(keys, el.Key)
		}
		PrintOrder("Selected", keys)
		return nil
	},
}

func init() {
	selectCmd.Flags().BoolVarP(&selectExtend, "extend", "x", false, "Toggle the element in the selection (shift-click)")
	selectCmd.Flags().BoolVar(&selectClear, "clear", false, "Clear the selection")
}
