package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

var (
	initName  string
	initForce bool
)

// initCmd creates a new template document.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty template document",
	Long: `Create an empty template document.

The document path comes from --file, the "document" config setting, or
defaults to template.json. Paths ending in .yaml or .yml are written as YAML.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Init(context.Background(), &engine.InitRequest{
			Name:  initName,
			Force: initForce,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.Replaced {
			PrintWarning(fmt.Sprintf("Replaced existing document %s", result.Document))
		}
		PrintSuccess(fmt.Sprintf("Created template %q", result.Name))
		PrintLabelValue("Document", result.Document)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Template name (default: file name)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing document")
}
