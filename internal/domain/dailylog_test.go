package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyLog_TotalHours(t *testing.T) {
	log := NewDailyLog("2026-03-04", 1.5)
	assert.Equal(t, 1.5, log.TotalHours())

	log.Meetings = append(log.Meetings, Meeting{Name: "standup", Hours: 0.25})
	assert.Equal(t, 1.75, log.TotalHours())

	empty := DailyLog{Date: "2026-03-05"}
	assert.Zero(t, empty.TotalHours())
}

func TestMonthlyStats_Add(t *testing.T) {
	stats := NewMonthlyStats(2026, time.March)

	stats.Add("2026-03-04", 2.0, 1.5, 0.5)
	stats.Add("2026-03-04", 1.0, 0.5, 0)
	stats.Add("2026-03-05", 0, 3.0, 1.0)

	assert.Equal(t, DailyStats{Est: 3.0, Act: 2.0, Mtg: 0.5}, stats.Days["2026-03-04"])
	assert.Equal(t, DailyStats{Est: 0, Act: 3.0, Mtg: 1.0}, stats.Days["2026-03-05"])
	assert.Len(t, stats.Days, 2)
}

func TestMonthlyStats_AddNilMap(t *testing.T) {
	var stats MonthlyStats
	stats.Add("2026-03-04", 1, 1, 1)
	assert.Equal(t, DailyStats{Est: 1, Act: 1, Mtg: 1}, stats.Days["2026-03-04"])
}
