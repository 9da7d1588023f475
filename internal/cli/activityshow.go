package cli

import (
	"fmt"
	"strings"
	"time"
)

type ActivityShowCmd struct {
	Activity string `arg:"" help:"Name or id of the activity to show."`
}

func (c *ActivityShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}

	now := time.Now()
	fmt.Printf("%s  %s\n", StatusBadge(activity.StatusAt(now)), activity.Name)
	fmt.Printf("  ID:       %s\n", activity.ID)
	fmt.Printf("  Priority: %d\n", activity.Priority)
	if activity.Location != "" {
		fmt.Printf("  Location: %s\n", activity.Location)
	}
	if len(activity.Tags) > 0 {
		fmt.Printf("  Tags:     %s\n", strings.Join(activity.Tags, ", "))
	}
	if len(activity.Projects) > 0 {
		fmt.Printf("  Projects: %s\n", strings.Join(activity.Projects, ", "))
	}
	if activity.Deadline != nil {
		fmt.Printf("  Deadline: %s (warn %s before)\n",
			activity.Deadline.Format("2006-01-02 15:04"), FormatDuration(activity.WarningTimeFrame))
	}
	if activity.ParentID != "" {
		parent, err := ctx.Activities.GetSavedActivityByID(activity.ParentID)
		if err == nil && parent != nil {
			fmt.Printf("  Parent:   %s\n", parent.Name)
		}
	}

	log, err := ctx.TimeTracking.GetLogForActivityID(activity.ID)
	if err != nil {
		return err
	}
	if len(log.Entries) > 0 {
		fmt.Printf("  Tracked:  %s over %d session(s)\n", FormatDuration(log.TotalDuration(now)), len(log.Entries))
		if active := log.ActiveLog(); active != nil {
			fmt.Printf("  Running since %s\n", active.StartedAt.Format("15:04"))
		}
	}

	note, err := ctx.Notes.FindNoteForActivity(activity.ID)
	if err != nil {
		return err
	}
	if note != nil && len(note.Content) > 0 {
		fmt.Println("  Note:")
		for _, line := range note.Content {
			fmt.Printf("    %s\n", line)
		}
	}

	if len(activity.SubActivities) > 0 {
		fmt.Printf("  Sub-activities (%d):\n", len(activity.SubActivities))
		for _, sub := range activity.SubActivities {
			fmt.Printf("    %s  %s\n", StatusBadge(sub.StatusAt(now)), sub.Name)
		}
	}

	return nil
}
