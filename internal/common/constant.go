// Package common contains shared constants and sentinel errors used across
// storefront components.
package common

// AuthorizationHeaderName is the HTTP header carrying the access token on
// protected requests.
const AuthorizationHeaderName = "Authorization"

// BearerTokenType is the token_type value returned by a successful login.
const BearerTokenType = "bearer"
