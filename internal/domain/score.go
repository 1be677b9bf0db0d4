package domain

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// SortStrategy selects how tasks are scored for ordering.
type SortStrategy string

const (
	SortUrgency  SortStrategy = "urgency"
	SortPriority SortStrategy = "priority"
	SortDueDate  SortStrategy = "due"
)

// DefaultSortStrategy is used when no strategy is configured.
const DefaultSortStrategy = SortUrgency

// ParseSortStrategy parses a sort strategy string.
func ParseSortStrategy(s string) (SortStrategy, error) {
	switch SortStrategy(s) {
	case SortUrgency, SortPriority, SortDueDate:
		return SortStrategy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
}

// Urgency scoring coefficients.
const (
	coefficientDue      = 12.0
	coefficientPriority = 6.0
	coefficientAge      = 2.0
	coefficientEstimate = 5.0
)

// Score rates the task for ordering under the given strategy. Higher scores
// sort first. now is injected so scores are deterministic in tests.
func (t *Task) Score(strategy SortStrategy, now time.Time) float64 {
	switch strategy {
	case SortPriority:
		return t.priorityScore()
	case SortDueDate:
		return t.dueScore()
	default:
		return t.urgencyScore(now)
	}
}

// urgencyScore combines due proximity, priority, age and estimate size.
// Completed tasks always sink to the bottom.
func (t *Task) urgencyScore(now time.Time) float64 {
	if t.Status == StatusCompleted {
		return -100.0
	}

	score := 0.0

	if t.Due != nil {
		if t.Due.Before(now) {
			score += coefficientDue * 2.0
		} else {
			days := int64(t.Due.Sub(now).Hours() / 24)
			switch {
			case days < 7:
				score += coefficientDue
				score += (7.0 - float64(days)) * 0.5
			case days < 14:
				score += coefficientDue * 0.5
			default:
				score += coefficientDue * 0.2
			}
		}
	}

	switch t.Priority {
	case PriorityHigh:
		score += coefficientPriority
	case PriorityMedium:
		score += coefficientPriority * 0.5
	case PriorityLow:
		score += coefficientPriority * 0.1
	}

	daysOld := int64(now.Sub(t.CreatedAt).Hours() / 24)
	if daysOld > 0 {
		ageScore := float64(daysOld) / 100.0 * coefficientAge
		score += math.Min(ageScore, coefficientAge)
	}

	// Small tasks float up: quick wins are worth surfacing.
	if t.Estimate != "" {
		if d, err := ParseWorkDuration(t.Estimate); err == nil {
			minutes := int64(d.Minutes())
			switch {
			case minutes > 0 && minutes <= 30:
				score += coefficientEstimate
			case minutes <= 60:
				score += coefficientEstimate * 0.5
			case minutes <= 120:
				score += coefficientEstimate * 0.2
			}
		}
	}

	return score
}

func (t *Task) priorityScore() float64 {
	switch t.Priority {
	case PriorityHigh:
		return 3.0
	case PriorityMedium:
		return 2.0
	default:
		return 1.0
	}
}

// dueScore ranks earlier due dates higher; tasks without one sort last.
func (t *Task) dueScore() float64 {
	if t.Due == nil {
		return -math.MaxFloat64
	}
	return -float64(t.Due.Unix())
}

// SortTasks orders tasks by descending score under the given strategy.
func SortTasks(tasks []*Task, strategy SortStrategy, now time.Time) {
	slices.SortStableFunc(tasks, func(a, b *Task) int {
		sa, sb := a.Score(strategy, now), b.Score(strategy, now)
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		default:
			return 0
		}
	})
}
