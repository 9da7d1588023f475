package cli

import (
	"fmt"
	"io/fs"

	"github.com/svandewiele/tally/internal/migration"
	"github.com/svandewiele/tally/internal/storage/postgres"
	"github.com/svandewiele/tally/internal/storage/sqlite"
	"github.com/svandewiele/tally/migrations"
)

type MigrateCmd struct {
	DryRun bool `help:"Show pending migrations without applying them."`
}

func (c *MigrateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	runner, err := migrationRunner(ctx)
	if err != nil {
		return err
	}

	if c.DryRun {
		pending, err := runner.PendingCount()
		if err != nil {
			return err
		}
		if pending == 0 {
			fmt.Println("Schema is up to date.")
			return nil
		}
		fmt.Printf("%d migration(s) pending.\n", pending)
		return nil
	}

	ctx.PerformAutomaticBackup()

	applied, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return err
	}

	if applied == 0 {
		fmt.Println("Schema is up to date.")
		return nil
	}
	fmt.Printf("Applied %d migration(s).\n", applied)
	return nil
}

// migrationRunner builds a runner for the store's backend, using the
// migration set embedded for that driver.
func migrationRunner(ctx *Context) (*migration.Runner, error) {
	switch store := ctx.Store.(type) {
	case *sqlite.Store:
		subFS, err := fs.Sub(migrations.FS, "sqlite")
		if err != nil {
			return nil, err
		}
		return migration.NewRunner(store.GetDB(), subFS), nil
	case *postgres.Store:
		subFS, err := fs.Sub(migrations.FS, "postgres")
		if err != nil {
			return nil, err
		}
		return migration.NewRunner(store.GetDB(), subFS), nil
	default:
		return nil, fmt.Errorf("store does not support migrations")
	}
}
