package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	token, err := GenerateAccessToken("lokesh")
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "lokesh", claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	token, err := GenerateRefreshToken("lokesh")
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "lokesh", claims.Subject)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestTokenTypeIsEnforced(t *testing.T) {
	access, err := GenerateAccessToken("lokesh")
	require.NoError(t, err)
	refresh, err := GenerateRefreshToken("lokesh")
	require.NoError(t, err)

	_, err = ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := generateToken("lokesh", TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token")
	assert.Error(t, err)

	_, err = ValidateAccessToken("")
	assert.Error(t, err)
}
