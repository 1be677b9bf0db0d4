package service

import (
	"fmt"

	"tempo/internal/domain"
)

// DailyLogService records non-task hours (meetings) per day.
type DailyLogService struct {
	logs domain.DailyLogStore
}

// NewDailyLogService creates a new DailyLogService.
func NewDailyLogService(logs domain.DailyLogStore) *DailyLogService {
	return &DailyLogService{logs: logs}
}

// RecordMeeting adds a named block of meeting hours to the given date.
// A meeting with the same name on the same date is replaced.
func (s *DailyLogService) RecordMeeting(date, name string, hours float64) error {
	if hours < 0 {
		return fmt.Errorf("meeting hours must not be negative: %v", hours)
	}
	if name == "" {
		name = "all"
	}

	log, err := s.logs.Get(date)
	if err != nil {
		return fmt.Errorf("get daily log: %w", err)
	}
	if log == nil {
		fresh := domain.DailyLog{Date: date, Meetings: []domain.Meeting{{Name: name, Hours: hours}}}
		if err := s.logs.Upsert(fresh); err != nil {
			return fmt.Errorf("save daily log: %w", err)
		}
		return nil
	}

	replaced := false
	for i, m := range log.Meetings {
		if m.Name == name {
			log.Meetings[i].Hours = hours
			replaced = true
			break
		}
	}
	if !replaced {
		log.Meetings = append(log.Meetings, domain.Meeting{Name: name, Hours: hours})
	}

	if err := s.logs.Upsert(*log); err != nil {
		return fmt.Errorf("save daily log: %w", err)
	}
	return nil
}

// TotalHours returns the total meeting hours recorded for a date.
func (s *DailyLogService) TotalHours(date string) (float64, error) {
	log, err := s.logs.Get(date)
	if err != nil {
		return 0, fmt.Errorf("get daily log: %w", err)
	}
	if log == nil {
		return 0, nil
	}
	return log.TotalHours(), nil
}
