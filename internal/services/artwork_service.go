// internal/services/artwork_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/artmint/artmint-backend/internal/models"
	"github.com/artmint/artmint-backend/internal/repository"
	"github.com/artmint/artmint-backend/internal/utils"
)

type ArtworkService struct {
	store repository.Store
}

type MintArtworkRequest struct {
	ArtistID    uuid.UUID `json:"artist_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=1,max=255"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
}

func NewArtworkService(store repository.Store) *ArtworkService {
	return &ArtworkService{store: store}
}

func (s *ArtworkService) MintArtwork(ctx context.Context, req *MintArtworkRequest) (*models.Artwork, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, models.NewInvalidPayload(fmt.Sprintf("validation failed: %v", err))
	}

	// The referenced artist must exist.
	if _, err := s.store.Artists().Get(ctx, req.ArtistID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewInvalidPayload("artist not found")
		}
		return nil, fmt.Errorf("failed to fetch artist: %w", err)
	}

	artwork := &models.Artwork{
		BaseModel:   models.NewBase(),
		ArtistID:    req.ArtistID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := s.store.Artworks().Put(ctx, artwork); err != nil {
		return nil, fmt.Errorf("failed to create artwork: %w", err)
	}

	return artwork, nil
}

func (s *ArtworkService) GetArtwork(ctx context.Context, id uuid.UUID) (*models.Artwork, error) {
	artwork, err := s.store.Artworks().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewNotFound("artwork not found")
		}
		return nil, fmt.Errorf("failed to fetch artwork: %w", err)
	}
	return artwork, nil
}
