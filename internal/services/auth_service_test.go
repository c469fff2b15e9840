// internal/services/auth_service_test.go
package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/artmint/artmint-backend/internal/config"
	"github.com/artmint/artmint-backend/internal/models"
	"github.com/artmint/artmint-backend/internal/repository"
	"github.com/artmint/artmint-backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *repository.MemoryStore
	service *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = repository.NewMemoryStore()

	utils.SetJWTSecret("test-secret")
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
	suite.service = NewAuthService(suite.store, cfg)
}

func validRegistration(email string) *RegisterArtistRequest {
	return &RegisterArtistRequest{
		Name:          "Ada",
		Email:         email,
		WalletAddress: strings.Repeat("ab", 32),
		Password:      "TestPass123!",
	}
}

func (suite *AuthServiceTestSuite) TestRegisterArtist() {
	resp, err := suite.service.RegisterArtist(suite.ctx, validRegistration("ada@example.com"))
	require.NoError(suite.T(), err)

	assert.NotEmpty(suite.T(), resp.AccessToken)
	assert.NotEmpty(suite.T(), resp.RefreshToken)
	assert.Equal(suite.T(), "Bearer", resp.TokenType)
	assert.Equal(suite.T(), 3600, resp.ExpiresIn)

	require.NotNil(suite.T(), resp.Artist)
	assert.NotEqual(suite.T(), uuid.Nil, resp.Artist.ID)
	assert.Equal(suite.T(), resp.Artist.ID, resp.Artist.OwnerID)

	stored, err := suite.store.Artists().GetByEmail(suite.ctx, "ada@example.com")
	require.NoError(suite.T(), err)
	assert.NoError(suite.T(), stored.CheckPassword("TestPass123!"))
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsDuplicateEmail() {
	_, err := suite.service.RegisterArtist(suite.ctx, validRegistration("ada@example.com"))
	require.NoError(suite.T(), err)

	_, err = suite.service.RegisterArtist(suite.ctx, validRegistration("ada@example.com"))
	appErr, ok := models.AsAppError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), models.CodeInvalidPayload, appErr.Code)
}

func (suite *AuthServiceTestSuite) TestRegisterValidation() {
	tests := []struct {
		name   string
		mutate func(*RegisterArtistRequest)
	}{
		{"bad email", func(r *RegisterArtistRequest) { r.Email = "not-an-email" }},
		{"short wallet", func(r *RegisterArtistRequest) { r.WalletAddress = "abc123" }},
		{"non-hex wallet", func(r *RegisterArtistRequest) { r.WalletAddress = strings.Repeat("zz", 32) }},
		{"weak password", func(r *RegisterArtistRequest) { r.Password = "password" }},
		{"empty name", func(r *RegisterArtistRequest) { r.Name = "" }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := validRegistration("new@example.com")
			tt.mutate(req)

			_, err := suite.service.RegisterArtist(suite.ctx, req)
			appErr, ok := models.AsAppError(err)
			require.True(suite.T(), ok)
			assert.Equal(suite.T(), models.CodeInvalidPayload, appErr.Code)
		})
	}
}

func (suite *AuthServiceTestSuite) TestLogin() {
	_, err := suite.service.RegisterArtist(suite.ctx, validRegistration("ada@example.com"))
	require.NoError(suite.T(), err)

	resp, err := suite.service.Login(suite.ctx, &LoginRequest{Email: "ada@example.com", Password: "TestPass123!"})
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.AccessToken)
	assert.Equal(suite.T(), "ada@example.com", resp.Artist.Email)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	_, err := suite.service.RegisterArtist(suite.ctx, validRegistration("ada@example.com"))
	require.NoError(suite.T(), err)

	_, err = suite.service.Login(suite.ctx, &LoginRequest{Email: "ada@example.com", Password: "WrongPass123!"})
	appErr, ok := models.AsAppError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), models.CodeUnauthorized, appErr.Code)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, err := suite.service.Login(suite.ctx, &LoginRequest{Email: "ghost@example.com", Password: "TestPass123!"})
	appErr, ok := models.AsAppError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), models.CodeUnauthorized, appErr.Code)
}

func (suite *AuthServiceTestSuite) TestGetArtistNotFound() {
	_, err := suite.service.GetArtist(suite.ctx, uuid.New())
	appErr, ok := models.AsAppError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), models.CodeNotFound, appErr.Code)
}

func (suite *AuthServiceTestSuite) TestRefreshAccessToken() {
	registered, err := suite.service.RegisterArtist(suite.ctx, validRegistration("ada@example.com"))
	require.NoError(suite.T(), err)

	refreshed, err := suite.service.RefreshAccessToken(suite.ctx, registered.RefreshToken)
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), refreshed.AccessToken)
	assert.Equal(suite.T(), registered.Artist.ID, refreshed.Artist.ID)
}

func (suite *AuthServiceTestSuite) TestRefreshRejectsAccessToken() {
	registered, err := suite.service.RegisterArtist(suite.ctx, validRegistration("ada@example.com"))
	require.NoError(suite.T(), err)

	_, err = suite.service.RefreshAccessToken(suite.ctx, registered.AccessToken)
	appErr, ok := models.AsAppError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), models.CodeUnauthorized, appErr.Code)
}

func (suite *AuthServiceTestSuite) TestRefreshRejectsGarbage() {
	_, err := suite.service.RefreshAccessToken(suite.ctx, "not-a-token")
	appErr, ok := models.AsAppError(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), models.CodeUnauthorized, appErr.Code)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
