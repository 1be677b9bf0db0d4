package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tempo/internal/app"
	"tempo/internal/service"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <name>... [key:value]...",
		Short:   "Add a new task",
		GroupID: groupTask,
		Long: `Add a new task. Positional words form the task name; key:value
tokens set metadata. Keys may be abbreviated to any unambiguous prefix.

Known keys: due, project, priority, description, estimate

Examples:
  tempo add Write weekly report due:fri pro:Work pri:h est:2h
  tempo add Buy milk due:tomorrow
  tempo add Refactor parser est:90m desc:"split the lexer first"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := service.QuickAddInput(args, c.Clock.Now())
			if err != nil {
				return err
			}

			dto, err := c.TaskService().Create(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added task %s: %s\n", dto.ID.String()[:8], dto.Name)
			if dto.Due != nil {
				fmt.Fprintf(out, "  Due: %s\n", formatDue(dto.Due))
			}
			if dto.Project != "" {
				fmt.Fprintf(out, "  Project: %s\n", dto.Project)
			}
			fmt.Fprintf(out, "  Priority: %s\n", dto.Priority)
			return nil
		},
	}

	return cmd
}
