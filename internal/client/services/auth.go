// Package services contains application services for the storefront client.
// This file defines the authentication service: signup, login, restore of a
// persisted session, logout, and a server liveness probe.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mlevko/storefront/internal/client/api"
	"github.com/mlevko/storefront/internal/client/session"
	"github.com/mlevko/storefront/internal/dbx"
)

// Session is the client's view of an authenticated user: the access token
// the backend issued and the email it belongs to. It is passed explicitly
// to operations that need it; nothing in the client reads it ambiently.
type Session struct {
	Token string
	Email string
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Signup: create a new account on the backend; does not log in.
//   - Login: authenticate and persist the session locally.
//   - Restore: load a previously persisted session without contacting
//     the backend.
//   - Logout: drop the in-memory session and wipe the persisted one.
//   - Ping: check backend liveness.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Signup(ctx context.Context, email string, password string) error
	Login(ctx context.Context, email string, password string) (*Session, error)
	Restore(ctx context.Context) (*Session, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Session() *Session
	IsAuthenticated() bool
}

// authService is the concrete AuthService backed by an API client and a
// local SQL database for the persisted session.
type authService struct {
	client  api.Client
	db      *sql.DB
	current *Session
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client api.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getSessionRepo() session.Repository {
	return session.NewSQLiteRepository(a.db)
}

// Signup creates the account. The caller must log in afterwards; the backend
// does not issue a token on signup.
func (a *authService) Signup(ctx context.Context, email string, password string) error {
	return a.client.Signup(ctx, email, password)
}

// Login authenticates against the backend and persists the issued token
// together with the email, so the next client start picks the session up
// without asking for credentials again.
func (a *authService) Login(ctx context.Context, email string, password string) (*Session, error) {
	result, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.saveSession(ctx, result.AccessToken, email); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.current = &Session{Token: result.AccessToken, Email: email}
	return a.current, nil
}

// saveSession persists token and email in a single transaction, so a crash
// between the two writes cannot leave a token without its email.
func (a *authService) saveSession(ctx context.Context, token string, email string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, session.KeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyEmail, email)
	})
}

// Restore loads the persisted session, if any. It never contacts the
// backend: a stale token surfaces later as an unauthorized error on the
// first protected call, and the caller handles it then.
func (a *authService) Restore(ctx context.Context) (*Session, error) {
	repo := a.getSessionRepo()

	token, err := repo.Get(ctx, session.KeyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	email, err := repo.Get(ctx, session.KeyEmail)
	if err != nil {
		return nil, err
	}

	a.current = &Session{Token: token, Email: email}
	return a.current, nil
}

// Logout wipes the persisted session and forgets the in-memory one. The
// backend keeps no logout endpoint; the token simply stops being used.
func (a *authService) Logout(ctx context.Context) error {
	a.current = nil
	return a.getSessionRepo().Clear(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// Session returns the current in-memory session or nil when logged out.
func (a *authService) Session() *Session {
	return a.current
}

// IsAuthenticated reports whether a session is currently held.
func (a *authService) IsAuthenticated() bool {
	return a.current != nil
}
