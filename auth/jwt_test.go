package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateToken(t *testing.T) {
	service := NewTokenService("test-secret-key")

	token, err := service.GenerateToken("user-123", "access_as_user")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	service := NewTokenService("test-secret-key")

	token, err := service.GenerateToken("user-123", "access_as_user")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "access_as_user", claims.Scope)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := NewTokenService("test-secret-key")

	_, err := service.ValidateToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := NewTokenService("test-secret-key")
	other := NewTokenService("different-secret")

	token, err := service.GenerateToken("user-123", "access_as_user")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
