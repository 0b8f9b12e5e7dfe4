package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	serveraccounts "github.com/mlevko/storefront/internal/server/accounts"
	serversessions "github.com/mlevko/storefront/internal/server/sessions"

	"github.com/mlevko/storefront/internal/server/migrations"
	accountsrepo "github.com/mlevko/storefront/internal/server/repositories/accounts"
	sessionsrepo "github.com/mlevko/storefront/internal/server/repositories/sessions"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and runs the
// embedded schema migrations on startup.
type PostgresRepositoryManager struct {
	db       *sql.DB
	accounts serveraccounts.Repository
	sessions serversessions.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// NewPostgresRepositoryManager opens the database, applies migrations, and
// builds the repositories.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &PostgresRepositoryManager{
		db:       db,
		accounts: accountsrepo.NewPostgresRepository(db),
		sessions: sessionsrepo.NewPostgresRepository(db),
	}, nil
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Accounts() serveraccounts.Repository {
	return m.accounts
}

func (m *PostgresRepositoryManager) Sessions() serversessions.Repository {
	return m.sessions
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
