package repomanager

import (
	"database/sql"

	serveraccounts "github.com/mlevko/storefront/internal/server/accounts"
	serversessions "github.com/mlevko/storefront/internal/server/sessions"

	accountsrepo "github.com/mlevko/storefront/internal/server/repositories/accounts"
	sessionsrepo "github.com/mlevko/storefront/internal/server/repositories/sessions"
)

// InMemoryRepositoryManager keeps all state in process memory; records live
// exactly as long as the process does.
type InMemoryRepositoryManager struct {
	accounts serveraccounts.Repository
	sessions serversessions.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		accounts: accountsrepo.NewMemoryRepository(),
		sessions: sessionsrepo.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) Accounts() serveraccounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) Sessions() serversessions.Repository {
	return m.sessions
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
