package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tempo/internal/app"
	"tempo/internal/domain"
	"tempo/internal/service"
)

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name        string
		Project     string
		Description string
		Estimate    string
		Priority    string
		Due         string
		ClearDue    bool
	}

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Edit task fields",
		GroupID: groupTask,
		Long: `Edit task fields. Only the flags you pass are changed.
Completed tasks cannot be edited.

Examples:
  tempo edit 3f2a --name "New name" --priority h
  tempo edit 3f2a --project Work --due fri
  tempo edit 3f2a --clear-due`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.TaskService()
			id, err := svc.ResolveID(args[0])
			if err != nil {
				return err
			}

			var in service.EditInput
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = &opts.Name
			}
			if flags.Changed("project") {
				in.Project = &opts.Project
			}
			if flags.Changed("description") {
				in.Description = &opts.Description
			}
			if flags.Changed("estimate") {
				if _, err := domain.ParseWorkDuration(opts.Estimate); err != nil {
					return err
				}
				in.Estimate = &opts.Estimate
			}
			if flags.Changed("priority") {
				p := domain.ParsePriority(opts.Priority)
				in.Priority = &p
			}
			if flags.Changed("due") {
				due, err := domain.ParseDueDate(opts.Due, c.Clock.Now())
				if err != nil {
					return err
				}
				in.Due = &due
			}
			in.ClearDue = opts.ClearDue

			if err := svc.Edit(id, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", id.String()[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "New name")
	cmd.Flags().StringVar(&opts.Project, "project", "", "New project tag")
	cmd.Flags().StringVar(&opts.Description, "description", "", "New description")
	cmd.Flags().StringVar(&opts.Estimate, "estimate", "", "New estimate, e.g. 2h")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority: low, medium, high")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date, e.g. fri, +2w, 2026-09-01")
	cmd.Flags().BoolVar(&opts.ClearDue, "clear-due", false, "Remove the due date")

	return cmd
}
