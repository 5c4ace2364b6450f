package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credistore/credistore_backend/internal/utils"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := utils.GenerateJWT("operator", "secret", time.Hour, "credistore")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
	assert.Equal(t, "credistore", claims.Issuer)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("operator", "secret", time.Hour, "credistore")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateExpiredJWT(t *testing.T) {
	token, err := utils.GenerateJWT("operator", "secret", -time.Hour, "credistore")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("correct-horse", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}
