package accounts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevko/storefront/internal/common"
	"github.com/mlevko/storefront/internal/server/accounts"
	"github.com/mlevko/storefront/internal/server/config"
	serversessions "github.com/mlevko/storefront/internal/server/sessions"

	accountsrepo "github.com/mlevko/storefront/internal/server/repositories/accounts"
	sessionsrepo "github.com/mlevko/storefront/internal/server/repositories/sessions"
)

func newService(t *testing.T) (*accounts.Service, serversessions.Repository) {
	t.Helper()
	cfg := &config.Config{SecretKey: "test-secret", TokenValidityDuration: time.Minute}
	sessions := sessionsrepo.NewMemoryRepository()
	return accounts.NewService(accountsrepo.NewMemoryRepository(), sessions, cfg), sessions
}

func TestSignup_CreatesAccountWithEmptyProfile(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	account, err := svc.Signup(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "a@x.com", account.Email)
	assert.Equal(t, "pw123456", account.Password)
	assert.Empty(t, account.DOB)
	assert.Empty(t, account.Gender)
	assert.WithinDuration(t, time.Now(), account.CreatedAt, time.Minute)
}

func TestSignup_DuplicateEmailRejected(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "a@x.com", "other")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	// the original credentials still win
	tokens, err := svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestLogin_ExactMatchOnly(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, common.BearerTokenType, tokens.TokenType)

	_, err = svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = svc.Login(ctx, "a@x.com", "pw12345")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = svc.Login(ctx, "unknown@x.com", "pw123456")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_RecordsSession(t *testing.T) {
	svc, sessions := newService(t)
	ctx := context.Background()

	account, err := svc.Signup(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	session, err := sessions.GetByToken(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, session.AccountID)
}

func TestResolveToken_SignedToken(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	account, err := svc.Signup(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	accountID, err := svc.ResolveToken(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, accountID)
}

func TestResolveToken_OpaqueTokenFallsBackToSessionTable(t *testing.T) {
	svc, sessions := newService(t)
	ctx := context.Background()

	require.NoError(t, sessions.Create(ctx, &serversessions.Session{
		Token:     "opaque-token",
		AccountID: "acc-legacy",
		IssuedAt:  time.Now(),
	}))

	accountID, err := svc.ResolveToken(ctx, "opaque-token")
	require.NoError(t, err)
	assert.Equal(t, "acc-legacy", accountID)
}

func TestResolveToken_Unknown(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ResolveToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestConcurrentSessionsDoNotClobberEachOther(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Signup(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	second, err := svc.Signup(ctx, "b@x.com", "pw7890")
	require.NoError(t, err)

	tokensA, err := svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	tokensB, err := svc.Login(ctx, "b@x.com", "pw7890")
	require.NoError(t, err)

	idA, err := svc.ResolveToken(ctx, tokensA.AccessToken)
	require.NoError(t, err)
	idB, err := svc.ResolveToken(ctx, tokensB.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, first.ID, idA, "the second login must not redirect the first token")
	assert.Equal(t, second.ID, idB)
}

func TestProfile_WriteThrough(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	account, err := svc.Signup(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, account.ID, "1990-01-01", "female")
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "1990-01-01", profile.DOB)
	assert.Equal(t, "female", profile.Gender)
	assert.Equal(t, "pw123456", profile.Password, "profile update must not touch the password")
}

func TestProfile_UnknownAccount(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = svc.UpdateProfile(context.Background(), "missing", "1990-01-01", "female")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
