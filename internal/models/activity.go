package models

import (
	"fmt"
	"time"
)

// ActivityStatus is the derived display state of an activity
type ActivityStatus string

const (
	StatusDone  ActivityStatus = "done"
	StatusAlert ActivityStatus = "alert"
	StatusTodo  ActivityStatus = "todo"
)

// Activity is a node in the activity tree. The parent owns its children
// through SubActivities; ParentID is a lookup key back up the tree, not an
// ownership pointer.
type Activity struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Priority         int           `json:"priority"`
	Location         string        `json:"location,omitempty"`
	Tags             []string      `json:"tags,omitempty"`
	Projects         []string      `json:"projects,omitempty"`
	Deadline         *time.Time    `json:"deadline,omitempty"`
	WarningTimeFrame time.Duration `json:"warning_time_frame"`
	Completed        bool          `json:"completed"`
	ParentID         string        `json:"parent_id,omitempty"`
	SubActivities    []*Activity   `json:"sub_activities,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

func (a *Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("activity name cannot be empty")
	}
	if a.WarningTimeFrame < 0 {
		return fmt.Errorf("warning time frame cannot be negative")
	}
	if a.Deadline != nil && a.Deadline.IsZero() {
		return fmt.Errorf("deadline cannot be the zero time")
	}
	return nil
}

// IsAllSubActivitiesCompleted reports whether every direct and transitive
// child is completed. An activity without children vacuously qualifies.
func (a *Activity) IsAllSubActivitiesCompleted() bool {
	for _, sub := range a.SubActivities {
		if !sub.Completed || !sub.IsAllSubActivitiesCompleted() {
			return false
		}
	}
	return true
}

// IsAlertActiveAt reports whether the deadline warning window is open at the
// given instant: a deadline is set, has not passed, and now falls within the
// warning time frame before it.
func (a *Activity) IsAlertActiveAt(now time.Time) bool {
	if a.Deadline == nil {
		return false
	}
	deadline := *a.Deadline
	if now.After(deadline) {
		return false
	}
	return !now.Before(deadline.Add(-a.WarningTimeFrame))
}

// IsAlertActive evaluates the warning window against the wall clock, so
// alert state tracks the passage of time without explicit invalidation.
func (a *Activity) IsAlertActive() bool {
	return a.IsAlertActiveAt(time.Now())
}

// StatusAt classifies the activity for display. Done takes precedence over
// an active alert.
func (a *Activity) StatusAt(now time.Time) ActivityStatus {
	if a.Completed && a.IsAllSubActivitiesCompleted() {
		return StatusDone
	}
	if a.IsAlertActiveAt(now) {
		return StatusAlert
	}
	return StatusTodo
}

// Status classifies the activity against the wall clock.
func (a *Activity) Status() ActivityStatus {
	return a.StatusAt(time.Now())
}

// FindSubActivity returns the descendant with the given id, or nil.
func (a *Activity) FindSubActivity(id string) *Activity {
	for _, sub := range a.SubActivities {
		if sub.ID == id {
			return sub
		}
		if found := sub.FindSubActivity(id); found != nil {
			return found
		}
	}
	return nil
}

// HasDescendant reports whether the given id occurs anywhere below this node.
func (a *Activity) HasDescendant(id string) bool {
	return a.FindSubActivity(id) != nil
}

// RemoveSubActivity detaches the direct child with the given id and reports
// whether one was removed. The detached child keeps its own subtree.
func (a *Activity) RemoveSubActivity(id string) bool {
	for i, sub := range a.SubActivities {
		if sub.ID == id {
			a.SubActivities = append(a.SubActivities[:i], a.SubActivities[i+1:]...)
			return true
		}
	}
	return false
}
