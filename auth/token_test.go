package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	got, ok := TokenExpiry(token)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	assert.False(t, TokenExpired(token, exp.Add(-time.Minute)))
	assert.True(t, TokenExpired(token, exp))
	assert.True(t, TokenExpired(token, exp.Add(time.Hour)))
}

func TestTokenWithoutExpiry(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "42"})

	_, ok := TokenExpiry(token)
	assert.False(t, ok)
	assert.False(t, TokenExpired(token, time.Now()))
}

func TestOpaqueTokenIsLeftToBackend(t *testing.T) {
	_, ok := TokenExpiry("tok")
	assert.False(t, ok)
	assert.False(t, TokenExpired("tok", time.Now()))
}
