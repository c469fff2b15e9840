// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	SetJWTSecret("test-secret")
	artistID := uuid.New()

	token, err := GenerateJWT(artistID, "ada@example.com", 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, artistID.String(), claims.ArtistID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	SetJWTSecret("test-secret")
	artistID := uuid.New()

	token, err := GenerateRefreshToken(artistID, 1)
	require.NoError(t, err)

	subject, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, artistID.String(), subject)
}

func TestRefreshValidationRejectsAccessToken(t *testing.T) {
	SetJWTSecret("test-secret")

	access, err := GenerateJWT(uuid.New(), "ada@example.com", 1)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	token, err := GenerateJWT(uuid.New(), "ada@example.com", 1)
	require.NoError(t, err)

	SetJWTSecret("second-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}
