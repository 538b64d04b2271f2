package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

var (
	addType    string
	addPayload string
	addAfter   string
)

// addCmd adds an element to the document.
var addCmd = &cobra.Command{
	Use:   "add <key>",
	Short: "Add an element",
	Long: `Add an element to the end of the list, or after another element.

The payload is an optional JSON object holding the element's data, for
example --payload '{"text":"Invoice","size":18}'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Add(context.Background(), &engine.AddRequest{
			Key:     args[0],
			Type:    addType,
			Payload: addPayload,
			After:   addAfter,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Added %q at position %d", result.Element.Key, result.Element.Index+1))
		PrintLabelValue("ID", result.Element.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", "", "Element type (text, image, ...)")
	addCmd.Flags().StringVarP(&addPayload, "payload", "p", "", "Element payload as a JSON object")
	addCmd.Flags().StringVar(&addAfter, "after", "", "Insert after this element instead of at the end")
}
