package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tempo/internal/app"
	"tempo/internal/service"
)

// resolveAndRun resolves a task ID prefix, applies op, and prints a confirmation.
func resolveAndRun(cmd *cobra.Command, svc *service.TaskService, prefix, verb string, op func(uuid.UUID) error) error {
	id, err := svc.ResolveID(prefix)
	if err != nil {
		return err
	}
	if err := op(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s task %s\n", verb, id.String()[:8])
	return nil
}

// newStartCommand creates the start command.
func newStartCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "start <id>",
		Short:   "Start tracking time on a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.TaskService()
			return resolveAndRun(cmd, svc, args[0], "Started", svc.StartTracking)
		},
	}
}

// newStopCommand creates the stop command.
func newStopCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "stop <id>",
		Short:   "Stop tracking time on a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.TaskService()
			return resolveAndRun(cmd, svc, args[0], "Stopped", svc.StopTracking)
		},
	}
}

// newDoneCommand creates the done command.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Short:   "Complete a task",
		GroupID: groupTask,
		Long: `Complete a task. If tracking is running, the open interval is
folded into the total first. Completed tasks are frozen: no further
edits or tracking are allowed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.TaskService()
			return resolveAndRun(cmd, svc, args[0], "Completed", svc.Complete)
		},
	}
}

// newRemoveCommand creates the rm command.
func newRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task permanently",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.TaskService()
			return resolveAndRun(cmd, svc, args[0], "Deleted", svc.Delete)
		},
	}
}
