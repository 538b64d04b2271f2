package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/danieljhkim/elemlist/internal/engine"
)

var (
	setRaw    bool
	setDelete bool
)

// getCmd reads a payload field.
var getCmd = &cobra.Command{
	Use:   "get <element> [path]",
	Short: "Read an element's payload",
	Long: `Read an element's payload, or one field of it.

Paths use gjson syntax, e.g. "style.size", "cols.1" or "cols.#".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.GetFieldRequest{Ref: args[0]}
		if len(args) == 2 {
			req.Path = args[1]
		}

		result, err := eng.GetField(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if !result.Exists {
			PrintEmptyState(fmt.Sprintf("%s has no value at %q", result.Key, result.Path))
			return nil
		}
		value := gjson.ParseBytes(result.Value)
		if value.Type == gjson.String {
			PrintInfo(value.String())
			return nil
		}
		PrintInfo(value.Get("@pretty").Raw)
		return nil
	},
}

// setCmd writes a payload field.
var setCmd = &cobra.Command{
	Use:   "set <element> <path> [value]",
	Short: "Write an element's payload field",
	Long: `Write one field of an element's payload.

Paths use sjson syntax. The value is stored as a string unless --raw is
given, in which case it must be valid JSON (numbers, booleans, objects).`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !setDelete && len(args) != 3 {
			return fmt.Errorf("%w: a value is required unless --delete is given", engine.ErrValidation)
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.SetFieldRequest{
			Ref:    args[0],
			Path:   args[1],
			Raw:    setRaw,
			Delete: setDelete,
		}
		if len(args) == 3 {
			req.Value = args[2]
		}

		result, err := eng.SetField(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if setDelete {
			PrintSuccess(fmt.Sprintf("Deleted %s from %q", result.Path, result.Key))
		} else {
			PrintSuccess(fmt.Sprintf("Set %s on %q", result.Path, result.Key))
		}
		return nil
	},
}

func init() {
	setCmd.Flags().BoolVar(&setRaw, "raw", false, "Treat the value as JSON")
	setCmd.Flags().BoolVar(&setDelete, "delete", false, "Remove the field")
}
