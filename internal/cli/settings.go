package cli

import (
	"fmt"

	"github.com/svandewiele/tally/internal/constants"
)

type SettingsGetCmd struct{}

func (c *SettingsGetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Println("Settings:")
	fmt.Printf("  %s: %d\n", constants.SettingDefaultWarningHours, settings.DefaultWarningHours)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case constants.SettingDefaultWarningHours:
		var hours int
		if _, err := fmt.Sscanf(c.Value, "%d", &hours); err != nil || hours <= 0 {
			return fmt.Errorf("%s must be a positive number of hours, got %q", c.Key, c.Value)
		}
		settings.DefaultWarningHours = hours
	default:
		return fmt.Errorf("unknown setting: %s", c.Key)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
