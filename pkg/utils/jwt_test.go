package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManagerGenerateAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", "senai-coach")

	pair, err := m.GenerateTokenPair("user-1", "user@example.com", 15*time.Minute, 168*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "senai-coach", claims.Issuer)

	refreshClaims, err := m.ParseToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTManagerExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", "senai-coach")

	token, err := m.GenerateToken("user-1", "user@example.com", "access", -time.Minute)
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTManagerWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", "senai-coach")
	other := NewJWTManager("other-secret", "senai-coach")

	token, err := m.GenerateToken("user-1", "user@example.com", "access", time.Minute)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManagerMalformedToken(t *testing.T) {
	m := NewJWTManager("test-secret", "senai-coach")

	_, err := m.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
