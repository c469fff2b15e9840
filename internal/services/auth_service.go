// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artmint/artmint-backend/internal/config"
	"github.com/artmint/artmint-backend/internal/models"
	"github.com/artmint/artmint-backend/internal/repository"
	"github.com/artmint/artmint-backend/internal/utils"
)

// AuthService owns artist registration and login. The artist id doubles
// as the caller identity compared against Auction.CreatorID.
type AuthService struct {
	store repository.Store
	cfg   *config.Config
}

type RegisterArtistRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=255"`
	Email         string `json:"email" validate:"required,email"`
	WalletAddress string `json:"wallet_address" validate:"required,wallet_address"`
	Password      string `json:"password" validate:"required,strong_password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Artist       *models.Artist `json:"artist"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	TokenType    string         `json:"token_type"`
	ExpiresIn    int            `json:"expires_in"` // in seconds
}

func NewAuthService(store repository.Store, cfg *config.Config) *AuthService {
	return &AuthService{
		store: store,
		cfg:   cfg,
	}
}

func (s *AuthService) RegisterArtist(ctx context.Context, req *RegisterArtistRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, models.NewInvalidPayload(fmt.Sprintf("validation failed: %v", err))
	}

	// Email must be globally unique among artists
	if _, err := s.store.Artists().GetByEmail(ctx, req.Email); err == nil {
		return nil, models.NewInvalidPayload("artist with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	artist := &models.Artist{
		BaseModel:     models.NewBase(),
		Name:          req.Name,
		Email:         req.Email,
		WalletAddress: req.WalletAddress,
	}
	// The registering principal owns the profile; self-registration
	// makes that the artist itself. Immutable once set.
	artist.OwnerID = artist.ID

	if err := artist.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.store.Artists().Put(ctx, artist); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	return s.issueTokens(artist)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, models.NewInvalidPayload(fmt.Sprintf("validation failed: %v", err))
	}

	artist, err := s.store.Artists().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewUnauthorized("invalid email or password")
		}
		return nil, fmt.Errorf("failed to look up artist: %w", err)
	}

	if err := artist.CheckPassword(req.Password); err != nil {
		return nil, models.NewUnauthorized("invalid email or password")
	}

	return s.issueTokens(artist)
}

func (s *AuthService) GetArtist(ctx context.Context, id uuid.UUID) (*models.Artist, error) {
	artist, err := s.store.Artists().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewNotFound("artist not found")
		}
		return nil, fmt.Errorf("failed to fetch artist: %w", err)
	}
	return artist, nil
}

func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	subject, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, models.NewUnauthorized("invalid refresh token")
	}

	artistID, err := uuid.Parse(subject)
	if err != nil {
		return nil, models.NewUnauthorized("invalid refresh token")
	}

	artist, err := s.GetArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(artist)
}

func (s *AuthService) issueTokens(artist *models.Artist) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(artist.ID, artist.Email, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(artist.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		Artist:       artist,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * int(time.Hour/time.Second),
	}, nil
}
