package storage

import "github.com/svandewiele/tally/internal/models"

// Provider is the persistence contract the trackers depend on. Lookups for
// entities that do not exist return (nil, nil); errors are reserved for the
// store itself failing.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Activities. SaveActivity persists the node together with its whole
	// subtree in one operation; GetAllActivities returns top-level trees.
	FindActivityByID(id string) (*models.Activity, error)
	FindActivityByName(name string) (*models.Activity, error)
	TopLevelNameExists(name string) (bool, error)
	GetAllActivities() ([]*models.Activity, error)
	SaveActivity(*models.Activity) error
	DeleteActivity(id string) error

	// Time logs. GetActivityLog returns an empty log on first access.
	GetActivityLog(activityID string) (*models.ActivityLog, error)
	SaveActivityLog(*models.ActivityLog) error

	// Notes
	FindNote(activityID string) (*models.Note, error)
	SaveNote(*models.Note) error

	// Utils
	GetConfigPath() string
}
