package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

var exportForce bool

// exportCmd writes the document to another file.
var exportCmd = &cobra.Command{
	Use:   "export <output>",
	Short: "Write the document to another file",
	Long: `Write the document to another file.

The output extension picks the format (.yaml/.yml for YAML, anything else
JSON), so export also converts between the two.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Export(context.Background(), &engine.ExportRequest{
			Output: args[0],
			Force:  exportForce,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Exported %s as %s", PrintCount(result.Elements, "element", "elements"), result.Format))
		PrintLabelValue("Output", result.Output)
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "Overwrite an existing output file")
}
