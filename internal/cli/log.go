package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tempo/internal/app"
	"tempo/internal/domain"
)

// newLogCommand creates the log command for recording meeting hours.
func newLogCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date string
		Name string
	}

	cmd := &cobra.Command{
		Use:     "log <hours>",
		Short:   "Record meeting hours for a day",
		GroupID: groupReport,
		Long: `Record non-task hours (meetings, interruptions) for a day.
Logged hours show up alongside tracked task time in history and stats.

Examples:
  tempo log 1.5
  tempo log 2 --date 2026-08-21 --name standup`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid hours %q: %w", args[0], err)
			}

			date := opts.Date
			if date == "" {
				date = domain.DateKey(c.Clock.Now().Local())
			}

			if err := c.DailyLogService().RecordMeeting(date, opts.Name, hours); err != nil {
				return err
			}

			total, err := c.DailyLogService().TotalHours(date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1fh on %s (day total: %.1fh)\n", hours, date, total)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "Date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Meeting name (default: all)")

	return cmd
}
