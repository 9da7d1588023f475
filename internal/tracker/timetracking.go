package tracker

import (
	"time"

	"github.com/svandewiele/tally/internal/models"
	"github.com/svandewiele/tally/internal/storage"
)

// TimeTrackingManager owns the activity logs, keyed by activity id.
type TimeTrackingManager struct {
	store storage.Provider
}

func NewTimeTrackingManager(store storage.Provider) *TimeTrackingManager {
	return &TimeTrackingManager{store: store}
}

// GetLogForActivityID returns the activity's time log, creating an empty
// one on first access.
func (m *TimeTrackingManager) GetLogForActivityID(activityID string) (*models.ActivityLog, error) {
	return m.store.GetActivityLog(activityID)
}

// Save persists an activity log.
func (m *TimeTrackingManager) Save(log *models.ActivityLog) error {
	return m.store.SaveActivityLog(log)
}

// StartLog opens a new interval for the activity and persists the log.
// Returns models.ErrLogAlreadyActive when an interval is already open; the
// stored log is left untouched in that case.
func (m *TimeTrackingManager) StartLog(activityID string) (*models.TimeLog, error) {
	log, err := m.GetLogForActivityID(activityID)
	if err != nil {
		return nil, err
	}

	entry, err := log.StartLog(time.Now())
	if err != nil {
		return nil, err
	}

	if err := m.Save(log); err != nil {
		return nil, err
	}
	return entry, nil
}

// StopLog closes the open interval, if any, and persists the log. Stopping
// an idle log is a no-op returning nil without persisting anything.
func (m *TimeTrackingManager) StopLog(activityID string) (*models.TimeLog, error) {
	log, err := m.GetLogForActivityID(activityID)
	if err != nil {
		return nil, err
	}

	entry := log.StopActiveLog(time.Now())
	if entry == nil {
		return nil, nil
	}

	if err := m.Save(log); err != nil {
		return nil, err
	}
	return entry, nil
}
