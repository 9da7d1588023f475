package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/svandewiele/tally/internal/models"
)

type ActivityAddCmd struct {
	Name     string `arg:"" help:"Activity name."`
	Priority int    `short:"p" help:"Priority (lower is more important)." default:"0"`
	Location string `short:"l" help:"Location the activity happens at."`
	Tags     string `short:"t" help:"Comma-separated tags."`
	Projects string `short:"P" help:"Comma-separated projects."`
	Deadline string `short:"d" help:"Deadline (YYYY-MM-DD or 'YYYY-MM-DD HH:MM')."`
	Warning  string `short:"w" help:"Alert window before the deadline (hours or a duration like 36h)."`
	Parent   string `help:"Name or id of the parent activity."`
}

func (c *ActivityAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	activity := &models.Activity{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Priority:  c.Priority,
		Location:  c.Location,
		Tags:      ParseStringSet(c.Tags),
		Projects:  ParseStringSet(c.Projects),
		CreatedAt: time.Now(),
	}

	if c.Deadline != "" {
		deadline, err := ParseDeadline(c.Deadline)
		if err != nil {
			return err
		}
		activity.Deadline = &deadline

		warning := ctx.DefaultWarningPeriod()
		if c.Warning != "" {
			warning, err = ParseWarningPeriod(c.Warning)
			if err != nil {
				return err
			}
		}
		activity.WarningTimeFrame = warning
	} else if c.Warning != "" {
		return fmt.Errorf("--warning requires --deadline")
	}

	if err := ctx.Activities.Create(activity); err != nil {
		return err
	}

	if c.Parent != "" {
		parent, err := ctx.ResolveActivity(c.Parent)
		if err != nil {
			return err
		}
		if err := ctx.Activities.AddActivityAsSub(activity, parent); err != nil {
			return err
		}
	}

	fmt.Printf("Added activity: %s (ID: %s)\n", activity.Name, activity.ID)
	return nil
}
