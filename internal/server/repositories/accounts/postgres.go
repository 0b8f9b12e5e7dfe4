package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mlevko/storefront/internal/common"
	"github.com/mlevko/storefront/internal/dbx"
	"github.com/mlevko/storefront/internal/server/accounts"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *accounts.Account) (*accounts.Account, error) {

	query :=
		`INSERT INTO accounts (id, email, password, dob, gender)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Email, account.Password, account.DOB, account.Gender).Scan(&account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	query :=
		`SELECT id, email, password, dob, gender, created_at FROM accounts
		 WHERE email = $1
		 `

	account := &accounts.Account{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.Password, &account.DOB, &account.Gender, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*accounts.Account, error) {
	query :=
		`SELECT id, email, password, dob, gender, created_at FROM accounts
		 WHERE id = $1
		 `

	account := &accounts.Account{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.Email, &account.Password, &account.DOB, &account.Gender, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, email string, dob string, gender string) (*accounts.Account, error) {
	query :=
		`UPDATE accounts SET dob = $2, gender = $3
		 WHERE email = $1
		 RETURNING id, email, password, dob, gender, created_at
		 `

	account := &accounts.Account{}
	err := r.db.QueryRowContext(ctx, query, email, dob, gender).Scan(
		&account.ID, &account.Email, &account.Password, &account.DOB, &account.Gender, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}
