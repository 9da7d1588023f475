package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrLogAlreadyActive is returned when a time log is started while another
// interval for the same activity is still open.
var ErrLogAlreadyActive = errors.New("a time log is already active for this activity")

// TimeLog is one contiguous logged interval. A nil EndedAt means the
// interval is still open.
type TimeLog struct {
	ID         string     `json:"id"`
	ActivityID string     `json:"activity_id"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
}

// Duration returns the elapsed time of the interval, measuring open
// intervals up to the given instant.
func (t *TimeLog) Duration(now time.Time) time.Duration {
	end := now
	if t.EndedAt != nil {
		end = *t.EndedAt
	}
	return end.Sub(t.StartedAt)
}

// ActivityLog is the ordered record of time-tracking intervals for one
// activity. At most one entry is open at any time.
type ActivityLog struct {
	ActivityID string    `json:"activity_id"`
	Entries    []TimeLog `json:"entries"`
}

// ActiveLog returns the open interval, or nil when the log is idle.
func (l *ActivityLog) ActiveLog() *TimeLog {
	for i := range l.Entries {
		if l.Entries[i].EndedAt == nil {
			return &l.Entries[i]
		}
	}
	return nil
}

// StartLog opens a new interval starting at the given instant. Starting
// while an interval is already open is a logic error and is surfaced rather
// than silently opening a second interval.
func (l *ActivityLog) StartLog(now time.Time) (*TimeLog, error) {
	if l.ActiveLog() != nil {
		return nil, ErrLogAlreadyActive
	}
	l.Entries = append(l.Entries, TimeLog{
		ID:         uuid.New().String(),
		ActivityID: l.ActivityID,
		StartedAt:  now,
	})
	return &l.Entries[len(l.Entries)-1], nil
}

// StopActiveLog closes the open interval at the given instant and returns
// it. Stopping an idle log is a no-op returning nil.
func (l *ActivityLog) StopActiveLog(now time.Time) *TimeLog {
	active := l.ActiveLog()
	if active == nil {
		return nil
	}
	end := now
	active.EndedAt = &end
	return active
}

// TotalDuration sums all intervals, measuring the open one up to the given
// instant so callers can display a running total.
func (l *ActivityLog) TotalDuration(now time.Time) time.Duration {
	var total time.Duration
	for i := range l.Entries {
		total += l.Entries[i].Duration(now)
	}
	return total
}
