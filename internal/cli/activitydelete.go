package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ActivityDeleteCmd struct {
	Activity string `arg:"" help:"Name or id of the activity to delete."`
	Force    bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ActivityDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}

	if !c.Force {
		title := fmt.Sprintf("Delete %q?", activity.Name)
		if n := len(activity.SubActivities); n > 0 {
			title = fmt.Sprintf("Delete %q? Its %d sub-activities will move to the top level.", activity.Name, n)
		}

		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(title).
					Description("Time logs and the note attached to this activity are removed too.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Activities.Delete(activity); err != nil {
		return err
	}

	fmt.Printf("Deleted activity: %s\n", activity.Name)
	return nil
}
