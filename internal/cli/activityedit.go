package cli

import (
	"fmt"
)

type ActivityEditCmd struct {
	Activity string `arg:"" help:"Name or id of the activity to edit."`

	Name          string `help:"New name."`
	Priority      *int   `short:"p" help:"New priority."`
	Location      string `short:"l" help:"New location."`
	Tags          string `short:"t" help:"Replacement comma-separated tags."`
	Projects      string `short:"P" help:"Replacement comma-separated projects."`
	Deadline      string `short:"d" help:"New deadline (YYYY-MM-DD or 'YYYY-MM-DD HH:MM')."`
	Warning       string `short:"w" help:"New alert window before the deadline (hours or a duration like 36h)."`
	ClearDeadline bool   `help:"Remove the deadline and its alert window."`
}

func (c *ActivityEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}

	if c.Name != "" {
		activity.Name = c.Name
	}
	if c.Priority != nil {
		activity.Priority = *c.Priority
	}
	if c.Location != "" {
		activity.Location = c.Location
	}
	if c.Tags != "" {
		activity.Tags = ParseStringSet(c.Tags)
	}
	if c.Projects != "" {
		activity.Projects = ParseStringSet(c.Projects)
	}

	if c.ClearDeadline {
		if c.Deadline != "" || c.Warning != "" {
			return fmt.Errorf("--clear-deadline cannot be combined with --deadline or --warning")
		}
		activity.Deadline = nil
		activity.WarningTimeFrame = 0
	}
	if c.Deadline != "" {
		deadline, err := ParseDeadline(c.Deadline)
		if err != nil {
			return err
		}
		activity.Deadline = &deadline
		if activity.WarningTimeFrame == 0 {
			activity.WarningTimeFrame = ctx.DefaultWarningPeriod()
		}
	}
	if c.Warning != "" {
		if activity.Deadline == nil {
			return fmt.Errorf("--warning requires a deadline")
		}
		warning, err := ParseWarningPeriod(c.Warning)
		if err != nil {
			return err
		}
		activity.WarningTimeFrame = warning
	}

	if err := activity.Validate(); err != nil {
		return err
	}
	if err := ctx.Activities.Save(activity); err != nil {
		return err
	}

	fmt.Printf("Updated activity: %s\n", activity.Name)
	return nil
}
