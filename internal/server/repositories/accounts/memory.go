package accounts

import (
	"context"
	"sync"

	"github.com/mlevko/storefront/internal/common"
	"github.com/mlevko/storefront/internal/server/accounts"
)

// MemoryRepository is the default store for local development. It keeps two
// indexes so lookups by email and by ID are both O(1), and copies records on
// the way in and out so callers cannot mutate stored state.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*accounts.Account
	byID    map[string]*accounts.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail: make(map[string]*accounts.Account),
		byID:    make(map[string]*accounts.Account),
	}
}

func clone(a *accounts.Account) *accounts.Account {
	c := *a
	return &c
}

func (r *MemoryRepository) Create(_ context.Context, account *accounts.Account) (*accounts.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := clone(account)
	r.byEmail[stored.Email] = stored
	r.byID[stored.ID] = stored

	return clone(stored), nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(account), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(account), nil
}

func (r *MemoryRepository) UpdateProfile(_ context.Context, email string, dob string, gender string) (*accounts.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	account.DOB = dob
	account.Gender = gender

	return clone(account), nil
}
