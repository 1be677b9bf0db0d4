package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"minutes", "30m", 30 * time.Minute, false},
		{"hours", "2h", 2 * time.Hour, false},
		{"days", "1d", 24 * time.Hour, false},
		{"weeks", "1w", 7 * 24 * time.Hour, false},
		{"uppercase unit", "2H", 2 * time.Hour, false},
		{"whitespace", " 45m ", 45 * time.Minute, false},
		{"empty", "", 0, true},
		{"no unit", "90", 0, true},
		{"unknown unit", "3x", 0, true},
		{"not a number", "abch", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorkDuration(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEstimateHours(t *testing.T) {
	assert.Equal(t, 2.0, EstimateHours("2h"))
	assert.Equal(t, 0.5, EstimateHours("30m"))
	assert.Equal(t, 24.0, EstimateHours("1d"))
	assert.Equal(t, 1.5, EstimateHours("1.5"))
	assert.Zero(t, EstimateHours(""))
	assert.Zero(t, EstimateHours("garbage"))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"seconds", 45 * time.Second, "45s"},
		{"minutes", 12 * time.Minute, "12m"},
		{"hours with minutes", 3*time.Hour + 5*time.Minute, "3h05m"},
		{"exact hour", time.Hour, "1h00m"},
		{"zero", 0, "0s"},
		{"negative clamps to zero", -time.Minute, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

func TestParseDueDate(t *testing.T) {
	// A Wednesday.
	now := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
	}

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"today", "today", day(2026, 3, 4)},
		{"tod", "tod", day(2026, 3, 4)},
		{"tomorrow", "tomorrow", day(2026, 3, 5)},
		{"eow is sunday", "eow", day(2026, 3, 8)},
		{"eom", "eom", day(2026, 3, 31)},
		{"relative days", "+3d", day(2026, 3, 7)},
		{"relative weeks", "+2w", day(2026, 3, 18)},
		{"relative months", "+1m", day(2026, 4, 4)},
		{"next friday", "fri", day(2026, 3, 6)},
		{"friday after next", "2:fri", day(2026, 3, 13)},
		{"same weekday goes to next week", "wed", day(2026, 3, 11)},
		{"iso date", "2026-04-01", day(2026, 4, 1)},
		{"iso datetime", "2026-04-01 09:30:00", time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDueDate(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDueDate_Invalid(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)

	for _, input := range []string{"", "yesterday", "+d", "+3x", "0:fri", "13th"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDueDate(input, now)
			require.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2026-03-04", DateKey(time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC)))
}
