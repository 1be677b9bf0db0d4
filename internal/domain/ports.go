package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// TaskRepository manages task persistence.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id uuid.UUID) (*Task, error)

	// List retrieves tasks matching the filter.
	List(filter TaskFilter) ([]*Task, error)

	// Save creates or updates a task.
	Save(task *Task) error

	// Delete removes a task by ID.
	Delete(id uuid.UUID) error
}

// TaskFilter specifies criteria for listing tasks.
type TaskFilter struct {
	Project  string   // Filter by project tag ("" = all projects)
	Statuses []Status // Filter by status (empty = all statuses)
}

// DailyLogStore manages daily meeting logs, keyed by "YYYY-MM-DD" date.
type DailyLogStore interface {
	// Get retrieves the log for a date. Returns nil if none exists.
	Get(date string) (*DailyLog, error)

	// Upsert creates or replaces the log for its date.
	Upsert(log DailyLog) error

	// List retrieves all daily logs.
	List() ([]DailyLog, error)
}

// StatsStore manages archived monthly statistics.
type StatsStore interface {
	// Get retrieves stats for a month, or an empty record if none exists.
	Get(year int, month time.Month) (*MonthlyStats, error)

	// Save writes stats for a month.
	Save(stats *MonthlyStats) error

	// List retrieves all stored monthly stats.
	List() ([]*MonthlyStats, error)
}

// ArchiveStore appends tasks to the cold archive.
type ArchiveStore interface {
	// Append adds tasks to the archive file for the given month.
	Append(year int, month time.Month, tasks []*Task) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration, with defaults for missing values.
	Load() (*Config, error)
}

// Logger records application events by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
