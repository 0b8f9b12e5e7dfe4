package accounts

import (
	"context"
)

// Repository stores accounts keyed by email. Create must fail with
// common.ErrorAlreadyExists when the email is taken; lookups return
// common.ErrorNotFound for unknown keys. Accounts are never deleted.
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	UpdateProfile(ctx context.Context, email string, dob string, gender string) (*Account, error)
}
