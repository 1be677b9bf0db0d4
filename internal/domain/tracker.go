package domain

import (
	"fmt"
	"time"
)

// TimeTracker accumulates elapsed work time for a task. It holds the total of
// all closed intervals plus the start of the currently open interval, if any.
// It is a pure value: no I/O, no identity.
type TimeTracker struct {
	ActiveStart *time.Time    `json:"activeStart,omitempty"` // Start of the open interval (nil = inactive)
	Accumulated time.Duration `json:"accumulated"`           // Total of closed intervals
}

// Active returns true if an interval is currently open.
func (tr *TimeTracker) Active() bool {
	return tr.ActiveStart != nil
}

// Begin opens a new interval at now. Fails if one is already open.
func (tr *TimeTracker) Begin(now time.Time) error {
	if tr.Active() {
		return fmt.Errorf("%w: already tracking", ErrInvalidTransition)
	}
	start := now
	tr.ActiveStart = &start
	return nil
}

// End closes the open interval at now, folding its length into the
// accumulated total. A now earlier than the interval start is a clock skew
// error and leaves the tracker unchanged.
func (tr *TimeTracker) End(now time.Time) error {
	if !tr.Active() {
		return fmt.Errorf("%w: not tracking", ErrInvalidTransition)
	}
	if now.Before(*tr.ActiveStart) {
		return fmt.Errorf("%w: end %s is before start %s",
			ErrClockSkew, now.Format(time.RFC3339), tr.ActiveStart.Format(time.RFC3339))
	}
	tr.Accumulated += now.Sub(*tr.ActiveStart)
	tr.ActiveStart = nil
	return nil
}

// ElapsedAsOf returns the total time spent as of now: the accumulated total
// plus the open interval so far, if one is running.
func (tr *TimeTracker) ElapsedAsOf(now time.Time) (time.Duration, error) {
	if !tr.Active() {
		return tr.Accumulated, nil
	}
	if now.Before(*tr.ActiveStart) {
		return 0, fmt.Errorf("%w: now %s is before start %s",
			ErrClockSkew, now.Format(time.RFC3339), tr.ActiveStart.Format(time.RFC3339))
	}
	return tr.Accumulated + now.Sub(*tr.ActiveStart), nil
}
