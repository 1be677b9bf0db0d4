package service

import (
	"fmt"
	"slices"
	"strings"

	"tempo/internal/domain"
)

// DayHistory lists the tasks completed on one day plus its hour totals.
type DayHistory struct {
	Date    string    `json:"date" yaml:"date"`       // "YYYY-MM-DD"
	Weekday string    `json:"weekday" yaml:"weekday"` // "Mon", "Tue", ...
	Tasks   []TaskDto `json:"tasks" yaml:"tasks"`
	Est     float64   `json:"est" yaml:"est"` // Estimated hours completed
	Act     float64   `json:"act" yaml:"act"` // Actual tracked hours
	Mtg     float64   `json:"mtg" yaml:"mtg"` // Meeting hours logged
}

// WeekHistory groups completed days by ISO week, most recent week first.
type WeekHistory struct {
	Days []DayHistory `json:"days" yaml:"days"`
	Est  float64      `json:"est" yaml:"est"`
	Act  float64      `json:"act" yaml:"act"`
	Mtg  float64      `json:"mtg" yaml:"mtg"`
	Year int          `json:"year" yaml:"year"`
	Week int          `json:"week" yaml:"week"`
}

// HistoryService builds the completed-work timesheet. Tracked hours are
// credited to the day a task was completed.
type HistoryService struct {
	tasks domain.TaskRepository
	logs  domain.DailyLogStore
	clock domain.Clock
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(tasks domain.TaskRepository, logs domain.DailyLogStore, clock domain.Clock) *HistoryService {
	return &HistoryService{tasks: tasks, logs: logs, clock: clock}
}

// Weekly returns completed tasks grouped by ISO week and day, with daily and
// weekly estimate/actual/meeting hour totals.
func (s *HistoryService) Weekly() ([]WeekHistory, error) {
	completed, err := s.tasks.List(domain.TaskFilter{Statuses: []domain.Status{domain.StatusCompleted}})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	now := s.clock.Now()
	type weekKey struct {
		year int
		week int
	}
	days := make(map[weekKey]map[string]*DayHistory)

	for _, t := range completed {
		if t.CompletedAt == nil {
			continue
		}
		dto, err := newTaskDto(t, now, 0)
		if err != nil {
			return nil, err
		}

		local := t.CompletedAt.Local()
		date := domain.DateKey(local)
		year, week := local.ISOWeek()
		key := weekKey{year: year, week: week}

		if days[key] == nil {
			days[key] = make(map[string]*DayHistory)
		}
		day := days[key][date]
		if day == nil {
			day = &DayHistory{Date: date, Weekday: local.Format("Mon")}
			days[key][date] = day
		}
		day.Tasks = append(day.Tasks, dto)
		day.Est += domain.EstimateHours(t.Estimate)
		day.Act += t.Tracker.Accumulated.Hours()
	}

	var weeks []WeekHistory
	for key, dayMap := range days {
		week := WeekHistory{Year: key.year, Week: key.week}
		for _, day := range dayMap {
			if log, err := s.logs.Get(day.Date); err == nil && log != nil {
				day.Mtg = log.TotalHours()
			}
			week.Days = append(week.Days, *day)
		}
		slices.SortFunc(week.Days, func(a, b DayHistory) int {
			return strings.Compare(a.Date, b.Date)
		})
		for _, day := range week.Days {
			week.Est += day.Est
			week.Act += day.Act
			week.Mtg += day.Mtg
		}
		weeks = append(weeks, week)
	}

	slices.SortFunc(weeks, func(a, b WeekHistory) int {
		if a.Year != b.Year {
			return b.Year - a.Year
		}
		return b.Week - a.Week
	})
	return weeks, nil
}
