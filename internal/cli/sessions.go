package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/elemlist/internal/engine"
)

var pruneDryRun bool

// sessionsCmd lists stored sessions.
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored selection and drag sessions",
	Long: `List the sessions stored under the elemlist root.

A session holds the selection and any drag in progress for one document.
Sessions whose document no longer exists are marked stale; remove them
with 'elemlist sessions prune'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Sessions(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Sessions")
		if len(result.Sessions) == 0 {
			PrintEmptyState("No sessions found")
			return nil
		}

		rows := make([][]string, 0, len(result.Sessions))
		for _, s := range result.Sessions {
			status := "ok"
			if s.Dragging {
				status = "dragging"
			}
			if s.Stale {
				status = "stale: " + s.Reason
			}
			updated := "-"
			if !s.UpdatedAt.IsZero() {
				updated = s.UpdatedAt.Local().Format(time.DateTime)
			}
			rows = append(rows, []string{shortID(s.ID), s.DocumentPath, fmt.Sprint(s.Selected), status, updated})
		}
		PrintTable([]string{"ID", "Document", "Selected", "Status", "Updated"}, rows)
		return nil
	},
}

var sessionsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete sessions whose document is gone",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.PruneSessions(context.Background(), &engine.PruneSessionsRequest{DryRun: pruneDryRun})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.Pruned) == 0 {
			PrintEmptyState("Nothing to prune")
			return nil
		}

		if result.DryRun {
			PrintSection("Dry Run: Prune Sessions")
		} else {
			PrintSuccess(fmt.Sprintf("Pruned %s", PrintCount(len(result.Pruned), "session", "sessions")))
		}
		for _, s := range result.Pruned {
			doc := s.DocumentPath
			if doc == "" {
				doc = "(unknown document)"
			}
			PrintLabelValue(shortID(s.ID), fmt.Sprintf("%s (%s)", doc, s.Reason))
		}
		if result.DryRun {
			fmt.Println()
			PrintWarning("Run without --dry-run to delete")
		}
		return nil
	},
}

func init() {
	sessionsPruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Show what would be deleted without deleting")
	sessionsCmd.AddCommand(sessionsPruneCmd)
}
