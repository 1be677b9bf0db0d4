package tui

import (
	"time"

	"tempo/internal/service"
)

// MsgTasksLoaded carries the result of reloading the task list.
type MsgTasksLoaded struct {
	Err   error
	Tasks []service.TaskDto
}

// MsgActionDone carries the result of a mutating action; the list is
// reloaded afterwards.
type MsgActionDone struct {
	Err    error
	Status string
}

// MsgTick drives the live elapsed-time display while tracking runs.
type MsgTick time.Time
