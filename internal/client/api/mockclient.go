package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mlevko/storefront/internal/common"
)

type mockAccount struct {
	email     string
	password  string
	dob       string
	gender    string
	createdAt time.Time
}

// MockClient simulates the backend inside the client process. Demo
// installations run against it so the storefront works with no server at
// all. State lives for the lifetime of the process and is never persisted.
//
// Unlike the backend, signup here checks only email uniqueness; field
// validation stays with the forms that call it. Tokens are opaque strings
// mapped to the account through a session table, so two logins from the
// same process cannot overwrite each other.
type MockClient struct {
	mu       sync.RWMutex
	accounts map[string]*mockAccount
	sessions map[string]string // token -> email
}

func NewMockClient() *MockClient {
	return &MockClient{
		accounts: make(map[string]*mockAccount),
		sessions: make(map[string]string),
	}
}

func (c *MockClient) Signup(_ context.Context, email string, password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.accounts[email]; ok {
		return ErrAlreadyExists
	}

	c.accounts[email] = &mockAccount{
		email:     email,
		password:  password,
		createdAt: time.Now(),
	}

	return nil
}

func (c *MockClient) Login(_ context.Context, username string, password string) (*LoginResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	account, ok := c.accounts[username]
	if !ok || account.password != password {
		return nil, ErrUnauthorized
	}

	suffix, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, fmt.Errorf("error minting token: %w", err)
	}
	token := "mock-token-" + suffix

	c.sessions[token] = username

	return &LoginResult{AccessToken: token, TokenType: common.BearerTokenType}, nil
}

func (c *MockClient) GetProfile(_ context.Context, token string) (*Profile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	email, ok := c.sessions[token]
	if !ok {
		return nil, ErrUnauthorized
	}

	account, ok := c.accounts[email]
	if !ok {
		return nil, ErrNotFound
	}

	return &Profile{Email: account.email, DOB: account.dob, Gender: account.gender}, nil
}

func (c *MockClient) UpdateProfile(_ context.Context, token string, dob string, gender string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	email, ok := c.sessions[token]
	if !ok {
		return ErrUnauthorized
	}

	account, ok := c.accounts[email]
	if !ok {
		return ErrNotFound
	}

	account.dob = dob
	account.gender = gender

	return nil
}

func (c *MockClient) Ping(_ context.Context) error {
	return nil
}

func (c *MockClient) Close() error {
	return nil
}
