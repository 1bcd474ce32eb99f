package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dailyepiphany/epiphany/internal/client/migrations"
	"github.com/dailyepiphany/epiphany/internal/client/repositories/blobs"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the persistence handles used by the services layer.
type Repositories struct {
	Blobs blobs.Repository
	DB    *sql.DB
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite database at dsn, runs
// migrations, and returns the repository set.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		Blobs: blobs.NewSQLiteRepository(db),
		DB:    db,
	}, nil
}
