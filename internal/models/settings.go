package models

// Settings represents application-wide settings
type Settings struct {
	DefaultWarningHours int `json:"default_warning_hours"` // alert window in hours for activities without one of their own
}
