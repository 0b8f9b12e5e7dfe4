package session

import (
	"context"
)

// Keys under which the persisted session lives. The store is a small kv
// table, so adding a field later is a new key, not a schema change.
const (
	KeyToken = "token"
	KeyEmail = "email"
)

// Repository is the local key-value store that survives client restarts.
// A missing key is reported as an empty string, not an error.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
