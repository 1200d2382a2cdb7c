// Package database provides the database client (PostgreSQL or SQLite) and
// migration utilities.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	_ "modernc.org/sqlite"             // cgo-free sqlite driver

	"github.com/tarsy-ai/tarsy/ent"
	"github.com/tarsy-ai/tarsy/pkg/config"
)

// Client wraps the Ent client and exposes the underlying *sql.DB for health
// checks, the event publisher, and direct queries.
type Client struct {
	*ent.Client
	db      *stdsql.DB
	backend config.DatabaseBackend
}

// DB returns the underlying database connection.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// Backend returns the active database backend.
func (c *Client) Backend() config.DatabaseBackend {
	return c.backend
}

// NewClientFromEnt wraps an existing Ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB, backend config.DatabaseBackend) *Client {
	return &Client{Client: entClient, db: db, backend: backend}
}

// NewClient opens a connection for the configured backend, applies pending
// migrations, and returns a ready client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	driverName := "pgx"
	entDialect := dialect.Postgres
	if cfg.Backend == config.DatabaseBackendSQLite {
		driverName = "sqlite"
		entDialect = dialect.SQLite
	}

	db, err := stdsql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Backend == config.DatabaseBackendSQLite {
		// SQLite allows one writer; the busy timeout handles contention.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	drv := entsql.OpenDB(entDialect, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := runMigrations(ctx, db, cfg); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{Client: entClient, db: db, backend: cfg.Backend}, nil
}
