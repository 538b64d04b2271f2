package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

// moveCmd runs a whole drag in one step.
var moveCmd = &cobra.Command{
	Use:   "move <element> <target>",
	Short: "Drag an element onto a target in one step",
	Long: `Drag an element onto a target in one step.

This is 'drag start <element>' followed by 'drag end <target>': a selected
element carries the rest of the selection with it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Move(context.Background(), &engine.MoveRequest{
			Ref:  args[0],
			Over: args[1],
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.Moved {
			PrintSuccess("Order updated")
		} else {
			PrintInfo("Order unchanged")
		}
		PrintOrder("Order", result.Order)
		return nil
	},
}
