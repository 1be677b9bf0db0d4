package domain

import "strings"

// Priority represents how important a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is assigned when no priority is given.
const DefaultPriority = PriorityMedium

// ParsePriority parses a priority string, accepting the short forms used by
// quick-add input (h/m/l). Unknown values fall back to the default.
func ParsePriority(s string) Priority {
	switch strings.ToLower(s) {
	case "h", "high":
		return PriorityHigh
	case "m", "med", "medium":
		return PriorityMedium
	case "l", "low":
		return PriorityLow
	default:
		return DefaultPriority
	}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return string(p)
	}
}
