// internal/services/token_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/artmint/artmint-backend/internal/models"
	"github.com/artmint/artmint-backend/internal/repository"
	"github.com/artmint/artmint-backend/internal/utils"
)

type TokenService struct {
	store repository.Store
}

type MintTokenRequest struct {
	ArtworkID uuid.UUID `json:"artwork_id" validate:"required"`
	Price     float64   `json:"price" validate:"required,gt=0"`
}

func NewTokenService(store repository.Store) *TokenService {
	return &TokenService{store: store}
}

// MintToken creates the ownership token for an artwork. The initial
// owner is derived from the artwork's stored artist id, not from the
// request.
func (s *TokenService) MintToken(ctx context.Context, req *MintTokenRequest) (*models.Token, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, models.NewInvalidPayload(fmt.Sprintf("validation failed: %v", err))
	}

	artwork, err := s.store.Artworks().Get(ctx, req.ArtworkID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewInvalidPayload("artwork not found")
		}
		return nil, fmt.Errorf("failed to fetch artwork: %w", err)
	}

	token := &models.Token{
		BaseModel: models.NewBase(),
		ArtworkID: artwork.ID,
		OwnerIDs:  pq.StringArray{artwork.ArtistID.String()},
		Price:     req.Price,
		Status:    models.TokenStatusPending,
	}

	if err := s.store.Tokens().Put(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return token, nil
}

func (s *TokenService) GetToken(ctx context.Context, id uuid.UUID) (*models.Token, error) {
	token, err := s.store.Tokens().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewNotFound("token not found")
		}
		return nil, fmt.Errorf("failed to fetch token: %w", err)
	}
	return token, nil
}

func (s *TokenService) ListArtistTokens(ctx context.Context, artistID uuid.UUID) ([]models.Token, error) {
	tokens, err := s.store.Tokens().ListByOwner(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artist tokens: %w", err)
	}
	if len(tokens) == 0 {
		return nil, models.NewNotFound("no tokens found for artist")
	}
	return tokens, nil
}
