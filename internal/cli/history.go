package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tempo/internal/app"
	"tempo/internal/domain"
)

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Output string
		Weeks  int
	}

	cmd := &cobra.Command{
		Use:     "history",
		Short:   "Show completed work grouped by week",
		GroupID: groupReport,
		Long: `Show completed tasks grouped by ISO week and day, with estimated,
actual (tracked) and meeting hours per day.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			weeks, err := c.HistoryService().Weekly()
			if err != nil {
				return err
			}
			if opts.Weeks > 0 && len(weeks) > opts.Weeks {
				weeks = weeks[:opts.Weeks]
			}

			out := cmd.OutOrStdout()
			if opts.Output != "" {
				return renderStructured(out, weeks, opts.Output)
			}
			if len(weeks) == 0 {
				fmt.Fprintln(out, "No completed tasks yet.")
				return nil
			}

			for _, week := range weeks {
				fmt.Fprintf(out, "Week %d-W%02d  (est %.1fh / act %.1fh / mtg %.1fh)\n",
					week.Year, week.Week, week.Est, week.Act, week.Mtg)
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, day := range week.Days {
					fmt.Fprintf(tw, "  %s %s\test %.1fh\tact %.1fh\tmtg %.1fh\n",
						day.Weekday, day.Date, day.Est, day.Act, day.Mtg)
					for _, t := range day.Tasks {
						fmt.Fprintf(tw, "    %s\t%s\t%s\t\n",
							t.ID.String()[:8], domain.FormatDuration(t.TotalTimeSpent), t.Name)
					}
				}
				_ = tw.Flush()
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format: json or yaml")
	cmd.Flags().IntVarP(&opts.Weeks, "weeks", "n", 0, "Limit to the most recent N weeks")

	return cmd
}
