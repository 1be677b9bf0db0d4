// Package service exposes the application's only boundary for task access.
// Callers hand in primitive values and get back immutable snapshots; live
// Task entities never leave this package.
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tempo/internal/domain"
)

// TaskDto is a flattened, read-only snapshot of a task for display. It has
// no ownership semantics and is safe to copy or discard freely.
type TaskDto struct {
	CreatedAt         time.Time     `json:"createdAt" yaml:"createdAt"`
	Due               *time.Time    `json:"due,omitempty" yaml:"due,omitempty"`
	CompletedAt       *time.Time    `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	Name              string        `json:"name" yaml:"name"`
	Project           string        `json:"project,omitempty" yaml:"project,omitempty"`
	Description       string        `json:"description,omitempty" yaml:"description,omitempty"`
	Estimate          string        `json:"estimate,omitempty" yaml:"estimate,omitempty"`
	StatusLabel       string        `json:"status" yaml:"status"`
	Priority          string        `json:"priority" yaml:"priority"`
	TotalTimeSpent    time.Duration `json:"totalTimeSpent" yaml:"totalTimeSpent"`
	RemainingEstimate float64       `json:"remainingEstimate" yaml:"remainingEstimate"` // Hours
	Score             float64       `json:"score" yaml:"score"`
	ID                uuid.UUID     `json:"id" yaml:"id"`
	IsTracking        bool          `json:"isTracking" yaml:"isTracking"`
}

// newTaskDto maps a task to its snapshot. The open interval, if any, is
// valued at read time against now; the task itself is never touched.
func newTaskDto(t *domain.Task, now time.Time, score float64) (TaskDto, error) {
	spent, err := t.TimeSpent(now)
	if err != nil {
		return TaskDto{}, fmt.Errorf("compute time spent: %w", err)
	}

	remaining := domain.EstimateHours(t.Estimate) - spent.Hours()
	if remaining < 0 {
		remaining = 0
	}

	return TaskDto{
		ID:                t.ID,
		Name:              t.Name,
		Project:           t.Project,
		Description:       t.Description,
		Estimate:          t.Estimate,
		StatusLabel:       t.Status.Display(),
		Priority:          t.Priority.Display(),
		IsTracking:        t.IsTracking(),
		TotalTimeSpent:    spent,
		RemainingEstimate: remaining,
		Due:               t.Due,
		CreatedAt:         t.CreatedAt,
		CompletedAt:       t.CompletedAt,
		Score:             score,
	}, nil
}
