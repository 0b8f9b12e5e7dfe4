package sessions

import (
	"context"
	"sync"

	"github.com/mlevko/storefront/internal/common"
	"github.com/mlevko/storefront/internal/server/sessions"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	byToken map[string]*sessions.Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byToken: make(map[string]*sessions.Session)}
}

func (r *MemoryRepository) Create(_ context.Context, session *sessions.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	r.byToken[stored.Token] = &stored
	return nil
}

func (r *MemoryRepository) GetByToken(_ context.Context, token string) (*sessions.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.byToken[token]
	if !ok {
		return nil, common.ErrorNotFound
	}

	found := *session
	return &found, nil
}
