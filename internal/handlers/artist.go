// internal/handlers/artist.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artmint/artmint-backend/internal/services"
	"github.com/artmint/artmint-backend/internal/utils"
)

type ArtistHandler struct {
	authService  *services.AuthService
	tokenService *services.TokenService
}

func NewArtistHandler(authService *services.AuthService, tokenService *services.TokenService) *ArtistHandler {
	return &ArtistHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

// GET /artists/:id
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artist ID", nil)
		return
	}

	artist, err := h.authService.GetArtist(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"artist": artist})
}

// GET /artists/:id/tokens
func (h *ArtistHandler) GetArtistTokens(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artist ID", nil)
		return
	}

	tokens, err := h.tokenService.ListArtistTokens(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"tokens": tokens})
}
