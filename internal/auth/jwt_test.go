package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAdminToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin", claims.Subject)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).GenerateAdminToken()
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).ParseAndValidate(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := NewJWTManager("test-secret", -time.Minute).GenerateAdminToken()
	require.NoError(t, err)

	_, err = NewJWTManager("test-secret", -time.Minute).ParseAndValidate(token)
	assert.Error(t, err)
}

func TestBcryptHashRoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasherWithCost(4)

	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)

	assert.NoError(t, hasher.Compare(hash, "hunter2"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
}
