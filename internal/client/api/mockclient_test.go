package api

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClient_SignupDuplicateRejected(t *testing.T) {
	c := NewMockClient()
	ctx := context.Background()

	require.NoError(t, c.Signup(ctx, "a@x.com", "pw123456"))
	require.ErrorIs(t, c.Signup(ctx, "a@x.com", "other"), ErrAlreadyExists)

	// the original password still wins
	_, err := c.Login(ctx, "a@x.com", "other")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = c.Login(ctx, "a@x.com", "pw123456")
	assert.NoError(t, err)
}

func TestMockClient_SignupSkipsFieldValidation(t *testing.T) {
	c := NewMockClient()

	// the mock path intentionally accepts empty fields; forms validate
	assert.NoError(t, c.Signup(context.Background(), "", ""))
}

func TestMockClient_LoginExactMatchOnly(t *testing.T) {
	c := NewMockClient()
	ctx := context.Background()

	require.NoError(t, c.Signup(ctx, "a@x.com", "pw123456"))

	result, err := c.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.AccessToken, "mock-token-"))
	assert.Equal(t, "bearer", result.TokenType)

	_, err = c.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Login(ctx, "unknown@x.com", "pw123456")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMockClient_ProfileRequiresLogin(t *testing.T) {
	c := NewMockClient()
	ctx := context.Background()

	_, err := c.GetProfile(ctx, "never-issued")
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = c.UpdateProfile(ctx, "never-issued", "1990-01-01", "female")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMockClient_ProfileWriteThrough(t *testing.T) {
	c := NewMockClient()
	ctx := context.Background()

	require.NoError(t, c.Signup(ctx, "a@x.com", "pw123456"))
	result, err := c.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	profile, err := c.GetProfile(ctx, result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Empty(t, profile.DOB)
	assert.Empty(t, profile.Gender)

	require.NoError(t, c.UpdateProfile(ctx, result.AccessToken, "1990-01-01", "female"))

	profile, err = c.GetProfile(ctx, result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "1990-01-01", profile.DOB)
	assert.Equal(t, "female", profile.Gender)
}

func TestMockClient_SessionsAreIndependent(t *testing.T) {
	c := NewMockClient()
	ctx := context.Background()

	require.NoError(t, c.Signup(ctx, "a@x.com", "pw-a"))
	require.NoError(t, c.Signup(ctx, "b@x.com", "pw-b"))

	resultA, err := c.Login(ctx, "a@x.com", "pw-a")
	require.NoError(t, err)
	resultB, err := c.Login(ctx, "b@x.com", "pw-b")
	require.NoError(t, err)

	profileA, err := c.GetProfile(ctx, resultA.AccessToken)
	require.NoError(t, err)
	profileB, err := c.GetProfile(ctx, resultB.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", profileA.Email, "the second login must not redirect the first token")
	assert.Equal(t, "b@x.com", profileB.Email)
}

func TestMockClient_Ping(t *testing.T) {
	assert.NoError(t, NewMockClient().Ping(context.Background()))
}
