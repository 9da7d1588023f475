package storage

import (
	"errors"
	"strings"

	"github.com/svandewiele/tally/internal/storage/postgres"
	"github.com/svandewiele/tally/internal/storage/sqlite"
)

// NewSQLiteStore creates the default local-file store.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a store backed by a PostgreSQL database.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// IsPostgresConnString reports whether the config value selects the
// PostgreSQL store.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries an
// embedded password, which is rejected in favor of the keyring or
// environment.
func HasEmbeddedCredentials(connStr string) bool {
	_, err := postgres.ValidateConnString(connStr)
	return errors.Is(err, postgres.ErrEmbeddedCredentials)
}
