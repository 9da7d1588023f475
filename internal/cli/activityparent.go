package cli

import (
	"errors"
	"fmt"

	"github.com/svandewiele/tally/internal/tracker"
)

type ActivityParentCmd struct {
	Activity string `arg:"" help:"Name or id of the activity to move."`
	Parent   string `arg:"" optional:"" help:"Name or id of the new parent. Omit to list candidates."`
}

func (c *ActivityParentCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}

	if c.Parent == "" {
		return c.listCandidates(ctx, activity.Name)
	}

	parent, err := ctx.ResolveActivity(c.Parent)
	if err != nil {
		return err
	}

	if err := ctx.Activities.AddActivityAsSub(activity, parent); err != nil {
		if errors.Is(err, tracker.ErrCycle) {
			return fmt.Errorf("cannot move %q under %q: that would create a cycle", activity.Name, parent.Name)
		}
		return err
	}

	fmt.Printf("Moved %q under %q\n", activity.Name, parent.Name)
	return nil
}

func (c *ActivityParentCmd) listCandidates(ctx *Context, ownName string) error {
	names, err := ctx.Activities.GetAllActivityNames()
	if err != nil {
		return err
	}

	var candidates []string
	for _, name := range names {
		if name != ownName {
			candidates = append(candidates, name)
		}
	}

	if len(candidates) == 0 {
		fmt.Println("No other activities available as parent")
		return nil
	}
	fmt.Println("Possible parents:")
	for _, name := range candidates {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
