package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tempo/internal/app"
)

// newArchiveCommand creates the archive command.
func newArchiveCommand(c *app.Container) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:     "archive",
		Short:   "Move old completed tasks to the archive",
		GroupID: groupReport,
		Long: `Move completed tasks older than the cutoff out of the live store.
Their hours are folded into monthly stats files and the tasks are kept
in cold archive files under the data directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cutoff := days
			if cutoff == 0 && c.AppConfig != nil {
				cutoff = c.AppConfig.ArchiveDays
			}

			count, err := c.ArchiveService().Archive(cutoff)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if count == 0 {
				fmt.Fprintln(out, "Nothing to archive.")
				return nil
			}
			fmt.Fprintf(out, "Archived %d tasks completed more than %d days ago.\n", count, cutoff)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Cutoff age in days (default: from config)")

	return cmd
}
