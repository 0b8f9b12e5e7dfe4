package accounts

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mlevko/storefront/internal/common"
	"github.com/mlevko/storefront/internal/server/authtoken"
	"github.com/mlevko/storefront/internal/server/config"
	"github.com/mlevko/storefront/internal/server/sessions"
)

type TokenResult struct {
	AccessToken string
	TokenType   string
}

type Service struct {
	repo          Repository
	sessionRepo   sessions.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, sessionRepo sessions.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		sessionRepo:   sessionRepo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Signup creates a new account with empty profile fields. Email uniqueness is
// the only check performed at this layer; presence validation belongs to the
// transport handler.
func (s *Service) Signup(ctx context.Context, email string, password string) (*Account, error) {

	account := &Account{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}

	account, err := s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return account, nil
}

func (s *Service) checkPassword(stored string, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Login authenticates by exact password match and issues an access token.
// A session record is created for the token so later profile calls resolve
// to this account and this account only.
func (s *Service) Login(ctx context.Context, username string, password string) (*TokenResult, error) {

	account, err := s.repo.GetByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !s.checkPassword(account.Password, password) {
		return nil, common.ErrorUnauthorized
	}

	accessToken, err := authtoken.GenerateToken(account.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	session := &sessions.Session{Token: accessToken, AccountID: account.ID, IssuedAt: time.Now()}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenResult{AccessToken: accessToken, TokenType: common.BearerTokenType}, nil
}

// ResolveToken maps a bearer token to an account ID. Signed tokens are
// verified directly; anything else falls back to the session table, which
// also covers opaque tokens minted by older clients.
func (s *Service) ResolveToken(ctx context.Context, token string) (string, error) {

	if accountID, err := authtoken.GetAccountIDFromToken(token, s.jwtSecret); err == nil {
		return accountID, nil
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return "", common.ErrorUnauthorized
	}

	return session.AccountID, nil
}

// GetProfile returns the account behind an ID, for rendering profile views.
func (s *Service) GetProfile(ctx context.Context, accountID string) (*Account, error) {

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// UpdateProfile replaces the dob/gender fields of the account in place.
// Email and password are never touched here.
func (s *Service) UpdateProfile(ctx context.Context, accountID string, dob string, gender string) (*Account, error) {

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	account, err = s.repo.UpdateProfile(ctx, account.Email, dob, gender)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return account, nil
}
