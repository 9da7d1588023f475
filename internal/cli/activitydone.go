package cli

import (
	"fmt"
)

type ActivityDoneCmd struct {
	Activity string `arg:"" help:"Name or id of the activity."`
	Undo     bool   `help:"Mark the activity as not completed instead."`
}

func (c *ActivityDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}

	completed := !c.Undo
	if err := ctx.Activities.SetCompleted(activity, completed); err != nil {
		return err
	}

	if completed {
		if !activity.IsAllSubActivitiesCompleted() {
			fmt.Printf("Completed %q, but it still has unfinished sub-activities.\n", activity.Name)
		} else {
			fmt.Printf("Completed: %s\n", activity.Name)
		}
	} else {
		fmt.Printf("Reopened: %s\n", activity.Name)
	}
	return nil
}
