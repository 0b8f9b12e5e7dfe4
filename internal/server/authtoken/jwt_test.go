package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("acc-123", secret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := GetAccountIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "acc-123", id)
}

func TestGetAccountIDFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("acc-123", secret, time.Minute)
	require.NoError(t, err)

	_, err = GetAccountIDFromToken(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestGetAccountIDFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("acc-123", secret, -time.Minute)
	require.NoError(t, err)

	_, err = GetAccountIDFromToken(token, secret)
	assert.Error(t, err)
}

func TestGetAccountIDFromToken_Garbage(t *testing.T) {
	_, err := GetAccountIDFromToken("not-a-token", secret)
	assert.Error(t, err)
}
