package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseWorkDuration parses a compact duration like "30m", "2h", "1d" or "1w".
// Days and weeks are calendar-style (24h / 7d), matching how estimates are
// written, not work-day lengths.
func ParseWorkDuration(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	if len(input) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
	}

	numStr, unit := input[:len(input)-1], input[len(input)-1:]
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
	}

	switch strings.ToLower(unit) {
	case "m":
		return time.Duration(num) * time.Minute, nil
	case "h":
		return time.Duration(num) * time.Hour, nil
	case "d":
		return time.Duration(num) * 24 * time.Hour, nil
	case "w":
		return time.Duration(num) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidDuration, unit)
	}
}

// EstimateHours converts an estimate string to hours. Plain numbers are read
// as hours. Unparseable estimates count as zero.
func EstimateHours(estimate string) float64 {
	if estimate == "" {
		return 0
	}
	if d, err := ParseWorkDuration(estimate); err == nil {
		return d.Hours()
	}
	if h, err := strconv.ParseFloat(strings.TrimSpace(estimate), 64); err == nil {
		return h
	}
	return 0
}

// FormatDuration renders a duration for display: "45s", "12m", "3h05m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) - hours*60
	return fmt.Sprintf("%dh%02dm", hours, minutes)
}

// ParseDueDate parses a human date relative to now: reserved keywords
// (today, tomorrow, eow, eom), relative offsets (+3d, +2w), weekday names
// (fri, 2:fri = the Friday after next), and finally "2006-01-02 15:04:05" or
// "2006-01-02". Date-only results land at the end of the day in now's
// location.
func ParseDueDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	today := truncateToDay(now)

	switch strings.ToLower(input) {
	case "today", "tod":
		return endOfDay(today), nil
	case "tomorrow", "tom":
		return endOfDay(today.AddDate(0, 0, 1)), nil
	case "eow":
		// End of week (Sunday)
		days := int(time.Sunday) - int(today.Weekday())
		if days < 0 {
			days += 7
		}
		return endOfDay(today.AddDate(0, 0, days)), nil
	case "eom":
		firstOfNext := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, 1, 0)
		return endOfDay(firstOfNext.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(input, "+") {
		return parseRelativeDue(input, today)
	}

	if count, dayStr, ok := splitWeekdayToken(input); ok {
		if target, found := parseWeekday(dayStr); found {
			days := int(target) - int(today.Weekday())
			if days <= 0 {
				days += 7
			}
			days += (count - 1) * 7
			return endOfDay(today.AddDate(0, 0, days)), nil
		}
	}

	if dt, err := time.ParseInLocation("2006-01-02 15:04:05", input, now.Location()); err == nil {
		return dt, nil
	}
	if d, err := time.ParseInLocation("2006-01-02", input, now.Location()); err == nil {
		return endOfDay(d), nil
	}

	return time.Time{}, fmt.Errorf("%w: could not parse %q", ErrInvalidDate, input)
}

// parseRelativeDue handles "+Nd", "+Nw" and "+Nm" (months).
func parseRelativeDue(input string, today time.Time) (time.Time, error) {
	body := input[1:]
	if len(body) < 2 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}
	numStr, unit := body[:len(body)-1], body[len(body)-1:]
	count, err := strconv.Atoi(numStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}
	switch unit {
	case "d":
		return endOfDay(today.AddDate(0, 0, count)), nil
	case "w":
		return endOfDay(today.AddDate(0, 0, count*7)), nil
	case "m":
		return endOfDay(today.AddDate(0, count, 0)), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidDate, unit)
	}
}

// splitWeekdayToken splits "2:fri" into (2, "fri"); a bare weekday means 1.
func splitWeekdayToken(input string) (count int, day string, ok bool) {
	if before, after, found := strings.Cut(input, ":"); found {
		n, err := strconv.Atoi(before)
		if err != nil || n < 1 {
			return 0, "", false
		}
		return n, after, true
	}
	return 1, input, true
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(s) {
	case "mon", "monday":
		return time.Monday, true
	case "tue", "tuesday":
		return time.Tuesday, true
	case "wed", "wednesday":
		return time.Wednesday, true
	case "thu", "thursday":
		return time.Thursday, true
	case "fri", "friday":
		return time.Friday, true
	case "sat", "saturday":
		return time.Saturday, true
	case "sun", "sunday":
		return time.Sunday, true
	default:
		return time.Sunday, false
	}
}

// DateKey formats a time as the "YYYY-MM-DD" key used by daily logs and stats.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
}
