// Package repomanager wires together repository implementations for the
// server: in-memory stores for development and PostgreSQL-backed stores
// (with goose migrations) for deployment.
package repomanager

import (
	"database/sql"

	serveraccounts "github.com/mlevko/storefront/internal/server/accounts"
	serversessions "github.com/mlevko/storefront/internal/server/sessions"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Accounts() serveraccounts.Repository
	Sessions() serversessions.Repository
	Close() error
}
