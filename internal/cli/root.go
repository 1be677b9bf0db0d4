// Package cli provides the command-line interface for tempo.
package cli

import (
	"github.com/spf13/cobra"

	"tempo/internal/app"
)

// Command group IDs.
const (
	groupTask   = "task"
	groupReport = "report"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tempo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempo",
		Short: "Personal task time tracker",
		Long: `tempo is a personal task tracker that records how long you
actually spend on each task. Tasks move between pending, tracking and
completed; time accumulates per task while tracking is running.

Run without arguments to open the interactive board.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupReport, Title: "Report Commands:"},
	)

	root.AddCommand(
		newAddCommand(c),
		newListCommand(c),
		newShowCommand(c),
		newStartCommand(c),
		newStopCommand(c),
		newDoneCommand(c),
		newRemoveCommand(c),
		newEditCommand(c),
		newLogCommand(c),
		newHistoryCommand(c),
		newArchiveCommand(c),
		newTUICommand(c),
	)

	return root
}
