package domain

import "fmt"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"   // On the list, not being worked on
	StatusTracking  Status = "tracking"  // An open time interval is running
	StatusCompleted Status = "completed" // Done; totals are frozen
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusTracking, StatusCompleted}
}

// transitions defines the allowed status transitions.
// Flow: pending ⇄ tracking, and either may complete. Completed is terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusTracking, StatusCompleted},
	StatusTracking:  {StatusPending, StatusCompleted},
	StatusCompleted: {},
}

// CanTransitionTo returns true if the status can transition to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusTracking:
		return "Tracking"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusTracking, StatusCompleted:
		return true
	default:
		return false
	}
}

// ParseStatus parses a status string.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}
