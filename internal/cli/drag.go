package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

var dragEndForce bool

// dragCmd groups the drag lifecycle commands.
var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Reorder elements by dragging",
	Long: `Reorder elements with a drag gesture split over several commands.

'drag start' picks up an element. If it is selected, the rest of the
selection travels with it. 'drag end' drops it onto another element and
writes the new order; the carried elements land right after it in the
order they were selected. 'drag cancel' puts everything back.

The document is not written until the drag ends. If it changes on disk in
the meantime, 'drag end' refuses unless --force is given.`,
}

var dragStartCmd = &cobra.Command{
	Use:   "start <element>",
	Short: "Pick up an element",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.DragStart(context.Background(), &engine.DragStartRequest{Ref: args[0]})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Dragging %q", result.ActiveKey))
		if len(result.Carried) > 0 {
			PrintOrder("Carrying", result.Carried)
		}
		PrintOrder("Order", result.Working)
		return nil
	},
}

var dragEndCmd = &cobra.Command{
	Use:   "end [target]",
	Short: "Drop the dragged element onto a target",
	Long: `Drop the dragged element onto a target element and write the new order.

Without a target, or with the dragged element's own companions as target,
the drop changes nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.DragEndRequest{Force: dragEndForce}
		if len(args) == 1 {
			req.Over = args[0]
		}

		result, err := eng.DragEnd(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.Moved {
			PrintSuccess("Order updated")
		} else {
			PrintInfo("Dropped without changes")
		}
		PrintOrder("Order", result.Order)
		return nil
	},
}

var dragCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Abandon the drag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.DragCancel(context.Background(), &engine.DragCancelRequest{})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess("Drag cancelled")
		if result.Drifted {
			PrintWarning("The document changed on disk during the drag; its current order was kept")
		}
		PrintOrder("Order", result.Order)
		return nil
	},
}

var dragStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the drag in progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.DragStatus(context.Background(), &engine.DragStatusRequest{})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if !result.Active {
			PrintEmptyState("No drag in progress")
			return nil
		}
		printDragStatus(result)
		return nil
	},
}

func printDragStatus(s *engine.DragStatusResult) {
	PrintLabelValue("Dragging", s.ActiveKey)
	if len(s.Carried) > 0 {
		PrintOrder("Carrying", s.Carried)
	}
	PrintOrder("Order", s.Working)
	PrintLabelValue("Started", s.StartedAt.Local().Format(time.DateTime))
	if s.Drifted {
		PrintWarning("The document changed on disk since the drag started")
	}
}

func init() {
	dragEndCmd.Flags().BoolVar(&dragEndForce, "force", false, "Write the new order even if the document changed on disk")

	dragCmd.AddCommand(dragStartCmd)
	dragCmd.AddCommand(dragEndCmd)
	dragCmd.AddCommand(dragCancelCmd)
	dragCmd.AddCommand(dragStatusCmd)
}
