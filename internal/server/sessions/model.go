// Package sessions tracks issued access tokens on the server. Each login
// creates one record keyed by the token itself, so concurrent clients never
// share auth state.
package sessions

import "time"

type Session struct {
	Token     string
	AccountID string
	IssuedAt  time.Time
}
