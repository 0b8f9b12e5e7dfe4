package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mlevko/storefront/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded client schema. Goose tracks applied
// versions, so calling it on every startup is safe.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitStore opens (creating if needed) the local client database at dsn and
// brings its schema up to date. The caller owns the returned handle.
func InitStore(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
