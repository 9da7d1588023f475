package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/svandewiele/tally/internal/models"
)

type LogStartCmd struct {
	Activity string `arg:"" help:"Name or id of the activity to track."`
}

func (c *LogStartCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}

	entry, err := ctx.TimeTracking.StartLog(activity.ID)
	if err != nil {
		if errors.Is(err, models.ErrLogAlreadyActive) {
			return fmt.Errorf("a time log is already running for %q; stop it first", activity.Name)
		}
		return err
	}

	fmt.Printf("Started tracking %q at %s\n", activity.Name, entry.StartedAt.Format("15:04"))
	return nil
}

type LogStopCmd struct {
	Activity string `arg:"" help:"Name or id of the activity."`
}

func (c *LogStopCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}

	entry, err := ctx.TimeTracking.StopLog(activity.ID)
	if err != nil {
		return err
	}
	if entry == nil {
		fmt.Printf("No time log running for %q\n", activity.Name)
		return nil
	}

	fmt.Printf("Stopped tracking %q (%s this session)\n",
		activity.Name, FormatDuration(entry.Duration(time.Now())))
	return nil
}

type LogReportCmd struct {
	Activity string `arg:"" optional:"" help:"Name or id of one activity. Omit for all tracked activities."`
}

func (c *LogReportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := time.Now()

	if c.Activity != "" {
		activity, err := ctx.ResolveActivity(c.Activity)
		if err != nil {
			return err
		}
		log, err := ctx.TimeTracking.GetLogForActivityID(activity.ID)
		if err != nil {
			return err
		}
		if len(log.Entries) == 0 {
			fmt.Printf("No time logged for %q\n", activity.Name)
			return nil
		}
		fmt.Printf("%s: %s total\n", activity.Name, FormatDuration(log.TotalDuration(now)))
		for _, entry := range log.Entries {
			end := "running"
			if entry.EndedAt != nil {
				end = entry.EndedAt.Format("15:04")
			}
			fmt.Printf("  %s  %s - %s  (%s)\n",
				entry.StartedAt.Format("2006-01-02"),
				entry.StartedAt.Format("15:04"), end,
				FormatDuration(entry.Duration(now)))
		}
		return nil
	}

	roots, err := ctx.Store.GetAllActivities()
	if err != nil {
		return err
	}

	var total time.Duration
	reported := 0
	var report func(a *models.Activity) error
	report = func(a *models.Activity) error {
		log, err := ctx.TimeTracking.GetLogForActivityID(a.ID)
		if err != nil {
			return err
		}
		if len(log.Entries) > 0 {
			d := log.TotalDuration(now)
			total += d
			reported++
			marker := ""
			if log.ActiveLog() != nil {
				marker = "  (running)"
			}
			fmt.Printf("  %-30s %s%s\n", a.Name, FormatDuration(d), marker)
		}
		for _, sub := range a.SubActivities {
			if err := report(sub); err != nil {
				return err
			}
		}
		return nil
	}
	for _, root := range roots {
		if err := report(root); err != nil {
			return err
		}
	}

	if reported == 0 {
		fmt.Println("No time logged yet")
		return nil
	}
	fmt.Printf("\nTotal: %s across %d activities\n", FormatDuration(total), reported)
	return nil
}
