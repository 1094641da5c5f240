package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "24h")

	token, expiresAt, err := svc.GenerateAccessToken("admin-1", "admin@attendo.app", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims["user_id"])
	assert.Equal(t, "admin@attendo.app", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])

	wantExpiry := time.Now().Add(24 * time.Hour).Unix()
	assert.InDelta(t, wantExpiry, expiresAt, 5)
}

func TestGenerateAccessTokenBadDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "never")

	_, _, err := svc.GenerateAccessToken("admin-1", "admin@attendo.app", "admin")
	assert.Error(t, err)
}

func TestGenerateResetToken(t *testing.T) {
	svc := NewJWTService("test-secret", "24h")

	token, expiresAt, err := svc.GenerateResetToken("admin-1")
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims["user_id"])
	assert.Equal(t, "reset", claims["type"])

	wantExpiry := time.Now().Add(15 * time.Minute).Unix()
	assert.InDelta(t, wantExpiry, expiresAt, 5)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("issuer-secret", "24h")
	verifier := NewJWTService("other-secret", "24h")

	token, _, err := issuer.GenerateAccessToken("admin-1", "admin@attendo.app", "admin")
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	// Negative duration puts exp in the past, beyond the 30s skew.
	svc := NewJWTService("test-secret", "-5m")

	token, _, err := svc.GenerateAccessToken("admin-1", "admin@attendo.app", "admin")
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(svc.JWTAuth(), token)
	assert.Error(t, err)
}
