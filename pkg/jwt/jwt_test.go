package jwt

import (
	"testing"
	"time"

	"go-prescription-portal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute})
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "doctor@example.com", "doctor")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "doctor@example.com", claims.Email)
	assert.Equal(t, "doctor", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "one", AccessExpiry: time.Minute})
	verifier := NewJWTService(config.JWTConfig{Secret: "two", AccessExpiry: time.Minute})

	token, _, err := issuer.GenerateAccessToken(uuid.New(), "p@example.com", "patient")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "s", AccessExpiry: time.Minute})
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := svc.GenerateAccessToken(uuid.New(), "p@example.com", "patient")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
