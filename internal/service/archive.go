package service

import (
	"fmt"
	"time"

	"tempo/internal/domain"
)

// ArchiveService moves old completed tasks out of the live store. Their
// estimate and actual hours are folded into monthly stats, and the tasks
// themselves are appended to cold archive files before removal.
type ArchiveService struct {
	tasks   domain.TaskRepository
	stats   domain.StatsStore
	archive domain.ArchiveStore
	logs    domain.DailyLogStore
	clock   domain.Clock
	logger  domain.Logger
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(
	tasks domain.TaskRepository,
	stats domain.StatsStore,
	archive domain.ArchiveStore,
	logs domain.DailyLogStore,
	clock domain.Clock,
	logger domain.Logger,
) *ArchiveService {
	return &ArchiveService{
		tasks:   tasks,
		stats:   stats,
		archive: archive,
		logs:    logs,
		clock:   clock,
		logger:  logger,
	}
}

// Archive removes completed tasks whose completion is older than cutoffDays,
// returning how many were archived. Stats and archive files are written
// before the live store is touched, so a failure never loses task data.
func (s *ArchiveService) Archive(cutoffDays int) (int, error) {
	all, err := s.tasks.List(domain.TaskFilter{})
	if err != nil {
		return 0, fmt.Errorf("list tasks: %w", err)
	}

	cutoff := s.clock.Now().AddDate(0, 0, -cutoffDays)
	var old []*domain.Task
	for _, t := range all {
		if t.Status == domain.StatusCompleted && t.CompletedAt != nil && t.CompletedAt.Before(cutoff) {
			old = append(old, t)
		}
	}
	if len(old) == 0 {
		return 0, nil
	}

	byMonth := make(map[monthKey][]*domain.Task)
	for _, t := range old {
		completed := t.CompletedAt.Local()
		key := monthKey{year: completed.Year(), month: completed.Month()}
		byMonth[key] = append(byMonth[key], t)
	}

	for key, group := range byMonth {
		if err := s.updateStats(key, group); err != nil {
			return 0, err
		}
		if err := s.archive.Append(key.year, key.month, group); err != nil {
			return 0, fmt.Errorf("append archive %04d-%02d: %w", key.year, key.month, err)
		}
	}

	for _, t := range old {
		if err := s.tasks.Delete(t.ID); err != nil {
			return 0, fmt.Errorf("delete archived task: %w", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("archive", fmt.Sprintf("archived %d tasks older than %d days", len(old), cutoffDays))
	}
	return len(old), nil
}

// updateStats credits each task's hours to its completion date, together
// with any meeting hours logged that day.
func (s *ArchiveService) updateStats(key monthKey, group []*domain.Task) error {
	stats, err := s.stats.Get(key.year, key.month)
	if err != nil {
		return fmt.Errorf("get stats %04d-%02d: %w", key.year, key.month, err)
	}

	for _, t := range group {
		date := domain.DateKey(t.CompletedAt.Local())
		mtg := 0.0
		// Count meeting hours only once per day, however many tasks land there.
		if _, seen := stats.Days[date]; !seen {
			if log, logErr := s.logs.Get(date); logErr == nil && log != nil {
				mtg = log.TotalHours()
			}
		}
		stats.Add(date, domain.EstimateHours(t.Estimate), t.Tracker.Accumulated.Hours(), mtg)
	}

	if err := s.stats.Save(stats); err != nil {
		return fmt.Errorf("save stats %04d-%02d: %w", key.year, key.month, err)
	}
	return nil
}

type monthKey struct {
	month time.Month
	year  int
}
