// Package logbook persists daily meeting logs, monthly stats, and the task
// archive as JSON files under the data directory.
package logbook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tempo/internal/domain"
)

// writeJSON marshals v and writes it atomically via a temp file rename.
func writeJSON(path string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// === Daily logs ===

// DailyLogStore implements domain.DailyLogStore with a single JSON file.
type DailyLogStore struct {
	path string
}

// NewDailyLogStore creates a store backed by the given file path.
func NewDailyLogStore(path string) *DailyLogStore {
	return &DailyLogStore{path: path}
}

// Get retrieves the log for a date. Returns nil if none exists.
func (s *DailyLogStore) Get(date string) (*domain.DailyLog, error) {
	logs, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if logs[i].Date == date {
			return &logs[i], nil
		}
	}
	return nil, nil
}

// Upsert creates or replaces the log for its date.
func (s *DailyLogStore) Upsert(log domain.DailyLog) error {
	logs, err := s.List()
	if err != nil {
		return err
	}

	replaced := false
	for i := range logs {
		if logs[i].Date == log.Date {
			logs[i] = log
			replaced = true
			break
		}
	}
	if !replaced {
		logs = append(logs, log)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return writeJSON(s.path, logs)
}

// List retrieves all daily logs.
func (s *DailyLogStore) List() ([]domain.DailyLog, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read daily logs: %w", err)
	}

	var logs []domain.DailyLog
	if err := json.Unmarshal(content, &logs); err != nil {
		return nil, fmt.Errorf("parse daily logs: %w", err)
	}
	return logs, nil
}

var _ domain.DailyLogStore = (*DailyLogStore)(nil)

// === Monthly stats ===

// StatsStore implements domain.StatsStore with one JSON file per month.
type StatsStore struct {
	dir string
}

// NewStatsStore creates a store backed by the given directory.
func NewStatsStore(dir string) *StatsStore {
	return &StatsStore{dir: dir}
}

func (s *StatsStore) statsPath(year int, month time.Month) string {
	return filepath.Join(s.dir, fmt.Sprintf("stats_%04d_%02d.json", year, int(month)))
}

// Get retrieves stats for a month, or an empty record if none exists.
func (s *StatsStore) Get(year int, month time.Month) (*domain.MonthlyStats, error) {
	content, err := os.ReadFile(s.statsPath(year, month))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewMonthlyStats(year, month), nil
		}
		return nil, fmt.Errorf("read stats: %w", err)
	}

	var stats domain.MonthlyStats
	if err := json.Unmarshal(content, &stats); err != nil {
		return nil, fmt.Errorf("parse stats: %w", err)
	}
	return &stats, nil
}

// Save writes stats for a month.
func (s *StatsStore) Save(stats *domain.MonthlyStats) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create stats directory: %w", err)
	}
	return writeJSON(s.statsPath(stats.Year, stats.Month), stats)
}

// List retrieves all stored monthly stats.
func (s *StatsStore) List() ([]*domain.MonthlyStats, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read stats directory: %w", err)
	}

	var all []*domain.MonthlyStats
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read stats file %s: %w", entry.Name(), err)
		}
		var stats domain.MonthlyStats
		if err := json.Unmarshal(content, &stats); err != nil {
			continue // Skip unreadable files rather than failing the listing
		}
		all = append(all, &stats)
	}
	return all, nil
}

var _ domain.StatsStore = (*StatsStore)(nil)

// === Archive ===

// ArchiveStore implements domain.ArchiveStore with one JSON file per month.
type ArchiveStore struct {
	dir string
}

// NewArchiveStore creates a store backed by the given directory.
func NewArchiveStore(dir string) *ArchiveStore {
	return &ArchiveStore{dir: dir}
}

// archivedTask carries the ID explicitly since archive files are flat arrays.
type archivedTask struct {
	domain.Task
	ID string `json:"id"`
}

// Append adds tasks to the archive file for the given month.
func (s *ArchiveStore) Append(year int, month time.Month, tasks []*domain.Task) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create archive directory: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("archive_%04d_%02d.json", year, int(month)))

	var existing []archivedTask
	if content, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(content, &existing); err != nil {
			return fmt.Errorf("parse archive file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read archive file: %w", err)
	}

	for _, t := range tasks {
		existing = append(existing, archivedTask{Task: *t, ID: t.ID.String()})
	}

	return writeJSON(path, existing)
}

var _ domain.ArchiveStore = (*ArchiveStore)(nil)
