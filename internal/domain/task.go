// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task represents one trackable unit of work. All state changes go through
// the methods below, which enforce the status state machine; once a task is
// completed every mutation is rejected and its totals are frozen.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time   `json:"createdAt"`             // Creation time
	Due         *time.Time  `json:"due,omitempty"`         // Due date (nil = none)
	CompletedAt *time.Time  `json:"completedAt,omitempty"` // Completion time (nil = not completed)
	Name        string      `json:"name"`                  // Display name (required)
	Project     string      `json:"project,omitempty"`     // Grouping tag (may be empty)
	Description string      `json:"description,omitempty"` // Free-form notes
	Estimate    string      `json:"estimate,omitempty"`    // Estimated effort, e.g. "2h" (may be empty)
	Priority    Priority    `json:"priority"`              // Low / medium / high
	Status      Status      `json:"status"`                // Current status
	Tracker     TimeTracker `json:"tracker"`               // Accumulated work time
	ID          uuid.UUID   `json:"-"`                     // Task ID (stored as map key, not in value)
}

// NewTask creates a pending task with zero accumulated time.
func NewTask(id uuid.UUID, name string, now time.Time) (*Task, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Task{
		ID:        id,
		Name:      name,
		Priority:  DefaultPriority,
		Status:    StatusPending,
		CreatedAt: now,
	}, nil
}

// IsTracking returns true if the task has an open time interval.
func (t *Task) IsTracking() bool {
	return t.Status == StatusTracking
}

// StartTracking opens a time interval at now.
func (t *Task) StartTracking(now time.Time) error {
	if err := t.ensureMutable(); err != nil {
		return err
	}
	if err := t.Tracker.Begin(now); err != nil {
		return err
	}
	t.Status = StatusTracking
	return nil
}

// StopTracking closes the open time interval at now, folding it into the
// accumulated total. On failure the task is unchanged.
func (t *Task) StopTracking(now time.Time) error {
	if err := t.ensureMutable(); err != nil {
		return err
	}
	if err := t.Tracker.End(now); err != nil {
		return err
	}
	t.Status = StatusPending
	return nil
}

// Complete marks the task as done. An open interval is folded in first, so
// completing a tracking task behaves like stop-then-complete at the same
// instant. On failure the task is unchanged.
func (t *Task) Complete(now time.Time) error {
	if err := t.ensureMutable(); err != nil {
		return err
	}
	if t.Tracker.Active() {
		if err := t.Tracker.End(now); err != nil {
			return err
		}
	}
	t.Status = StatusCompleted
	completed := now
	t.CompletedAt = &completed
	return nil
}

// Rename updates the display name.
func (t *Task) Rename(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if err := t.ensureMutable(); err != nil {
		return err
	}
	t.Name = name
	return nil
}

// ReassignProject updates the project tag. An empty project is allowed and
// removes the task from any group.
func (t *Task) ReassignProject(project string) error {
	if err := t.ensureMutable(); err != nil {
		return err
	}
	t.Project = project
	return nil
}

// SetPriority updates the priority.
func (t *Task) SetPriority(p Priority) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: invalid priority %q", ErrInvalidStatus, p)
	}
	if err := t.ensureMutable(); err != nil {
		return err
	}
	t.Priority = p
	return nil
}

// SetDue updates the due date. A nil due clears it.
func (t *Task) SetDue(due *time.Time) error {
	if err := t.ensureMutable(); err != nil {
		return err
	}
	t.Due = due
	return nil
}

// SetEstimate updates the effort estimate.
func (t *Task) SetEstimate(estimate string) error {
	if err := t.ensureMutable(); err != nil {
		return err
	}
	t.Estimate = estimate
	return nil
}

// SetDescription updates the description.
func (t *Task) SetDescription(description string) error {
	if err := t.ensureMutable(); err != nil {
		return err
	}
	t.Description = description
	return nil
}

// TimeSpent returns the total work time as of now, including any open
// interval. For completed tasks this is constant.
func (t *Task) TimeSpent(now time.Time) (time.Duration, error) {
	return t.Tracker.ElapsedAsOf(now)
}

// ensureMutable rejects mutation of completed tasks.
func (t *Task) ensureMutable() error {
	if t.Status == StatusCompleted {
		return fmt.Errorf("%w: task already completed", ErrInvalidTransition)
	}
	return nil
}
