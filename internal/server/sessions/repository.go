package sessions

import (
	"context"
)

// Repository maps tokens to the account they were issued for. GetByToken
// returns common.ErrorNotFound for tokens this server never issued.
type Repository interface {
	Create(ctx context.Context, session *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
}
