// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"tempo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockTaskRepository is a test double for domain.TaskRepository.
type MockTaskRepository struct {
	Tasks     map[uuid.UUID]*domain.Task
	SaveErr   error
	GetErr    error
	DeleteErr error
	SaveCount int
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id uuid.UUID) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	return task, nil
}

// List returns tasks matching the filter, ordered by creation time.
func (m *MockTaskRepository) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		if filter.Project != "" && t.Project != filter.Project {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, t.Status) {
			continue
		}
		tasks = append(tasks, t)
	}
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return tasks, nil
}

// Save saves a task.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCount++
	m.Tasks[task.ID] = task
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id uuid.UUID) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Tasks, id)
	return nil
}

// MockDailyLogStore is a test double for domain.DailyLogStore.
type MockDailyLogStore struct {
	Logs map[string]domain.DailyLog
}

// NewMockDailyLogStore creates a new MockDailyLogStore.
func NewMockDailyLogStore() *MockDailyLogStore {
	return &MockDailyLogStore{Logs: make(map[string]domain.DailyLog)}
}

// Get retrieves the log for a date.
func (m *MockDailyLogStore) Get(date string) (*domain.DailyLog, error) {
	log, ok := m.Logs[date]
	if !ok {
		return nil, nil
	}
	return &log, nil
}

// Upsert creates or replaces the log for its date.
func (m *MockDailyLogStore) Upsert(log domain.DailyLog) error {
	m.Logs[log.Date] = log
	return nil
}

// List retrieves all daily logs.
func (m *MockDailyLogStore) List() ([]domain.DailyLog, error) {
	logs := make([]domain.DailyLog, 0, len(m.Logs))
	for _, l := range m.Logs {
		logs = append(logs, l)
	}
	slices.SortFunc(logs, func(a, b domain.DailyLog) int {
		return strings.Compare(a.Date, b.Date)
	})
	return logs, nil
}

// MockStatsStore is a test double for domain.StatsStore.
type MockStatsStore struct {
	Stats map[string]*domain.MonthlyStats
}

// NewMockStatsStore creates a new MockStatsStore.
func NewMockStatsStore() *MockStatsStore {
	return &MockStatsStore{Stats: make(map[string]*domain.MonthlyStats)}
}

func statsKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Get retrieves stats for a month, or an empty record if none exists.
func (m *MockStatsStore) Get(year int, month time.Month) (*domain.MonthlyStats, error) {
	if s, ok := m.Stats[statsKey(year, month)]; ok {
		return s, nil
	}
	return domain.NewMonthlyStats(year, month), nil
}

// Save writes stats for a month.
func (m *MockStatsStore) Save(stats *domain.MonthlyStats) error {
	m.Stats[statsKey(stats.Year, stats.Month)] = stats
	return nil
}

// List retrieves all stored monthly stats.
func (m *MockStatsStore) List() ([]*domain.MonthlyStats, error) {
	out := make([]*domain.MonthlyStats, 0, len(m.Stats))
	for _, s := range m.Stats {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *domain.MonthlyStats) int {
		return strings.Compare(statsKey(a.Year, a.Month), statsKey(b.Year, b.Month))
	})
	return out, nil
}

// MockArchiveStore is a test double for domain.ArchiveStore.
type MockArchiveStore struct {
	Archived map[string][]*domain.Task
}

// NewMockArchiveStore creates a new MockArchiveStore.
func NewMockArchiveStore() *MockArchiveStore {
	return &MockArchiveStore{Archived: make(map[string][]*domain.Task)}
}

// Append adds tasks to the archive for the given month.
func (m *MockArchiveStore) Append(year int, month time.Month, tasks []*domain.Task) error {
	key := statsKey(year, month)
	m.Archived[key] = append(m.Archived[key], tasks...)
	return nil
}

// MockLogger is a test double for domain.Logger that records messages.
type MockLogger struct {
	Messages []string
}

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

func (m *MockLogger) record(level, category, msg string) {
	m.Messages = append(m.Messages, level+" ["+category+"] "+msg)
}

var (
	_ domain.Clock          = (*MockClock)(nil)
	_ domain.TaskRepository = (*MockTaskRepository)(nil)
	_ domain.DailyLogStore  = (*MockDailyLogStore)(nil)
	_ domain.StatsStore     = (*MockStatsStore)(nil)
	_ domain.ArchiveStore   = (*MockArchiveStore)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
)
