package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/svandewiele/tally/internal/backup"
	"github.com/svandewiele/tally/internal/constants"
	"github.com/svandewiele/tally/internal/logger"
	"github.com/svandewiele/tally/internal/models"
	"github.com/svandewiele/tally/internal/storage"
	"github.com/svandewiele/tally/internal/tracker"
)

type Context struct {
	Store        storage.Provider
	Activities   *tracker.ActivityManager
	TimeTracking *tracker.TimeTrackingManager
	Notes        *tracker.NoteManager

	// ConfigIsFile is false when the store is backed by a connection
	// string instead of a local database file.
	ConfigIsFile bool
}

func NewContext(store storage.Provider, configIsFile bool) *Context {
	return &Context{
		Store:        store,
		Activities:   tracker.NewActivityManager(store),
		TimeTracking: tracker.NewTimeTrackingManager(store),
		Notes:        tracker.NewNoteManager(store),
		ConfigIsFile: configIsFile,
	}
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.ConfigIsFile {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveActivity finds an activity by id first, then by name.
func (c *Context) ResolveActivity(ref string) (*models.Activity, error) {
	activity, err := c.Activities.GetSavedActivityByID(ref)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		activity, err = c.Activities.GetSavedActivityByName(ref)
		if err != nil {
			return nil, err
		}
	}
	if activity == nil {
		return nil, fmt.Errorf("no activity found for %q", ref)
	}
	return activity, nil
}

// DefaultWarningPeriod reads the configured alert window, falling back to
// the built-in default when settings are unavailable.
func (c *Context) DefaultWarningPeriod() time.Duration {
	settings, err := c.Store.GetSettings()
	if err != nil || settings.DefaultWarningHours <= 0 {
		return constants.DefaultWarningPeriod
	}
	return time.Duration(settings.DefaultWarningHours) * time.Hour
}

// ParseWarningPeriod parses an alert window given either as a Go duration
// ("36h30m") or as a plain number of hours ("48").
func ParseWarningPeriod(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("warning period cannot be empty")
	}
	if hours, err := strconv.Atoi(s); err == nil {
		if hours < 0 {
			return 0, fmt.Errorf("warning period cannot be negative")
		}
		return time.Duration(hours) * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid warning period %q (expected hours or a duration like 36h): %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("warning period cannot be negative")
	}
	return d, nil
}

// ParseDeadline parses a deadline as either a date or a date with time.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(constants.DeadlineFormat, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q (expected %s or %s)", s, constants.DateFormat, constants.DeadlineFormat)
	}
	return t, nil
}

// ParseStringSet splits a comma-separated list into trimmed, de-duplicated
// values, preserving first-seen order.
func ParseStringSet(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var values []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		values = append(values, part)
	}
	return values
}

// FormatDuration renders a duration as compact hours and minutes.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

var (
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	todoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// StatusBadge renders a colored marker for the derived activity status.
func StatusBadge(status models.ActivityStatus) string {
	switch status {
	case models.StatusDone:
		return doneStyle.Render("DONE")
	case models.StatusAlert:
		return alertStyle.Render("ALERT")
	default:
		return todoStyle.Render("TODO")
	}
}
