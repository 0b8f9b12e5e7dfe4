package api

import (
	"context"
)

// LoginResult mirrors the backend's login payload.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Profile is the account view returned by the profile endpoint.
type Profile struct {
	Email  string `json:"email"`
	DOB    string `json:"dob"`
	Gender string `json:"gender"`
}

// Client is the transport-agnostic contract for talking to the storefront
// backend. Protected operations take the access token explicitly; there is
// no ambient "current user" anywhere in the client.
type Client interface {
	Close() error
	Signup(ctx context.Context, email string, password string) error
	Login(ctx context.Context, username string, password string) (*LoginResult, error)
	GetProfile(ctx context.Context, token string) (*Profile, error)
	UpdateProfile(ctx context.Context, token string, dob string, gender string) error
	Ping(ctx context.Context) error
}
