package domain

import "time"

// Meeting is one named block of non-task hours in a day.
type Meeting struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// DailyLog records meeting hours for one day, keyed by "YYYY-MM-DD".
type DailyLog struct {
	Date     string    `json:"date"`
	Meetings []Meeting `json:"meetings"`
}

// NewDailyLog creates a log for date with a single catch-all meeting entry.
func NewDailyLog(date string, hours float64) DailyLog {
	return DailyLog{
		Date:     date,
		Meetings: []Meeting{{Name: "all", Hours: hours}},
	}
}

// TotalHours sums all meeting hours for the day.
func (l *DailyLog) TotalHours() float64 {
	total := 0.0
	for _, m := range l.Meetings {
		total += m.Hours
	}
	return total
}

// DailyStats aggregates one day's estimated, actual and meeting hours.
type DailyStats struct {
	Est float64 `json:"est"`
	Act float64 `json:"act"`
	Mtg float64 `json:"mtg"`
}

// MonthlyStats aggregates archived work per day of one month.
type MonthlyStats struct {
	Days  map[string]DailyStats `json:"days"` // Key: "YYYY-MM-DD"
	Year  int                   `json:"year"`
	Month time.Month            `json:"month"`
}

// NewMonthlyStats creates an empty stats record for a month.
func NewMonthlyStats(year int, month time.Month) *MonthlyStats {
	return &MonthlyStats{
		Year:  year,
		Month: month,
		Days:  make(map[string]DailyStats),
	}
}

// Add folds hours into the given day.
func (s *MonthlyStats) Add(date string, est, act, mtg float64) {
	if s.Days == nil {
		s.Days = make(map[string]DailyStats)
	}
	entry := s.Days[date]
	entry.Est += est
	entry.Act += act
	entry.Mtg += mtg
	s.Days[date] = entry
}
