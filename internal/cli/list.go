package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tempo/internal/app"
	"tempo/internal/domain"
	"tempo/internal/service"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Project string
		Sort    string
		Output  string
		All     bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks ordered by score",
		GroupID: groupTask,
		Long: `List tasks ordered by descending score under the chosen sort
strategy (urgency, priority or due). Completed tasks are hidden unless
--all is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategy := c.SortStrategy()
			if opts.Sort != "" {
				var err error
				strategy, err = domain.ParseSortStrategy(opts.Sort)
				if err != nil {
					return err
				}
			}

			tasks, err := c.TaskService().List(service.ListInput{
				Project:          opts.Project,
				Strategy:         strategy,
				IncludeCompleted: opts.All,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.Output != "" {
				return renderStructured(out, tasks, opts.Output)
			}
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks found.")
				return nil
			}
			printTaskTable(out, tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Project, "project", "p", "", "Filter by project")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "", "Sort strategy: urgency, priority, due")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format: json or yaml")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Include completed tasks")

	return cmd
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show one task in detail",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.TaskService()
			id, err := svc.ResolveID(args[0])
			if err != nil {
				return err
			}
			dto, err := svc.Get(id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				return renderStructured(out, dto, output)
			}
			printTaskDetail(out, dto)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: json or yaml")

	return cmd
}
