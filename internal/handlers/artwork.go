// internal/handlers/artwork.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artmint/artmint-backend/internal/services"
	"github.com/artmint/artmint-backend/internal/utils"
)

type ArtworkHandler struct {
	artworkService *services.ArtworkService
	storageService *services.StorageService
}

func NewArtworkHandler(artworkService *services.ArtworkService, storageService *services.StorageService) *ArtworkHandler {
	return &ArtworkHandler{
		artworkService: artworkService,
		storageService: storageService,
	}
}

// POST /artworks
func (h *ArtworkHandler) MintArtwork(c *gin.Context) {
	if _, ok := callerIDFromContext(c); !ok {
		return
	}

	var req services.MintArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	artwork, err := h.artworkService.MintArtwork(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"artwork": artwork})
}

// GET /artworks/:id
func (h *ArtworkHandler) GetArtwork(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid artwork ID", nil)
		return
	}

	artwork, err := h.artworkService.GetArtwork(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"artwork": artwork})
}

// POST /artworks/upload-image
func (h *ArtworkHandler) UploadImage(c *gin.Context) {
	if _, ok := callerIDFromContext(c); !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "no image uploaded", err.Error())
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadArtworkImage(file, header)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{"upload": result})
}
