package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlevko/storefront/internal/common"
	"github.com/mlevko/storefront/internal/dbx"
	"github.com/mlevko/storefront/internal/server/sessions"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, session *sessions.Session) error {

	query :=
		`INSERT INTO sessions (token, account_id, issued_at)
         VALUES ($1, $2, $3)
		 ON CONFLICT (token) DO UPDATE SET account_id = excluded.account_id, issued_at = excluded.issued_at
		 `

	_, err := r.db.ExecContext(ctx, query, session.Token, session.AccountID, session.IssuedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*sessions.Session, error) {
	query :=
		`SELECT token, account_id, issued_at FROM sessions
		 WHERE token = $1
		 `

	session := &sessions.Session{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(&session.Token, &session.AccountID, &session.IssuedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}
