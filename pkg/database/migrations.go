package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/tarsy-ai/tarsy/pkg/config"
)

//go:embed migrations
var migrationsFS embed.FS

// runMigrations applies pending migrations using golang-migrate with
// dialect-specific SQL files embedded in the binary.
//
// Migration files live under pkg/database/migrations/{postgres,sqlite} and
// are reviewed and committed alongside schema changes in ent/schema.
func runMigrations(ctx context.Context, db *stdsql.DB, cfg Config) error {
	var (
		driver migratedb.Driver
		subdir string
		err    error
	)
	switch cfg.Backend {
	case config.DatabaseBackendSQLite:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
		subdir = "migrations/sqlite"
	default:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
		subdir = "migrations/postgres"
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, subdir)
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, cfg.Database, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the source driver. m.Close() would also close the database
	// driver, which closes the shared *sql.DB the Ent client uses.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}

	if cfg.Backend == config.DatabaseBackendPostgres {
		if err := CreateGINIndexes(ctx, db); err != nil {
			return fmt.Errorf("failed to create GIN indexes: %w", err)
		}
	}
	return nil
}

// CreateGINIndexes creates full-text search indexes that plain SQL
// migrations keep out of the portable schema (PostgreSQL only). Exported for
// test database setup, which migrates via the Ent schema instead.
func CreateGINIndexes(ctx context.Context, db *stdsql.DB) error {
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_sessions_final_analysis_gin
		ON sessions USING gin(to_tsvector('english', COALESCE(final_analysis, '')))`)
	if err != nil {
		return fmt.Errorf("final_analysis GIN index: %w", err)
	}
	return nil
}
