package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevko/storefront/internal/common"
	"github.com/mlevko/storefront/internal/server/accounts"
)

func newAccount(id, email, password string) *accounts.Account {
	return &accounts.Account{
		ID:        id,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newAccount("id-1", "a@x.com", "pw123456"))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", created.Email)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "id-1", byEmail.ID)

	byID, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestMemoryRepository_CreateDuplicateRejected(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newAccount("id-1", "a@x.com", "pw123456"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newAccount("id-2", "a@x.com", "other"))
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	// original record must keep its password
	stored, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "pw123456", stored.Password)
	assert.Equal(t, "id-1", stored.ID)
}

func TestMemoryRepository_GetUnknown(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_UpdateProfileWritesThrough(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newAccount("id-1", "a@x.com", "pw123456"))
	require.NoError(t, err)

	updated, err := repo.UpdateProfile(ctx, "a@x.com", "1990-01-01", "female")
	require.NoError(t, err)
	assert.Equal(t, "1990-01-01", updated.DOB)
	assert.Equal(t, "female", updated.Gender)

	stored, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "1990-01-01", stored.DOB)
	assert.Equal(t, "female", stored.Gender)
	assert.Equal(t, "pw123456", stored.Password, "password must be untouched")
}

func TestMemoryRepository_UpdateProfileUnknown(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.UpdateProfile(context.Background(), "missing@x.com", "1990-01-01", "female")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newAccount("id-1", "a@x.com", "pw123456"))
	require.NoError(t, err)

	created.Password = "mutated"

	stored, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "pw123456", stored.Password)
}
