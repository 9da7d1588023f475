package constants

import "time"

const (
	AppName            = "tally"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/tally/tally.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DeadlineFormat is the format accepted for deadlines with a time component
	DeadlineFormat = "2006-01-02 15:04"

	// DefaultWarningPeriod is the alert window applied to activities that do
	// not set a warning time frame of their own
	DefaultWarningPeriod = 24 * time.Hour

	// Settings keys
	SettingDefaultWarningHours = "default_warning_hours"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "tally-"
	BackupFileSuffix = ".db"
)
