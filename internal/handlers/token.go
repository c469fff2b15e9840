// internal/handlers/token.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artmint/artmint-backend/internal/services"
	"github.com/artmint/artmint-backend/internal/utils"
)

type TokenHandler struct {
	tokenService   *services.TokenService
	auctionService *services.AuctionService
}

func NewTokenHandler(tokenService *services.TokenService, auctionService *services.AuctionService) *TokenHandler {
	return &TokenHandler{
		tokenService:   tokenService,
		auctionService: auctionService,
	}
}

// POST /tokens
func (h *TokenHandler) MintToken(c *gin.Context) {
	if _, ok := callerIDFromContext(c); !ok {
		return
	}

	var req services.MintTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	token, err := h.tokenService.MintToken(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"token": token})
}

// GET /tokens/:id
func (h *TokenHandler) GetToken(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid token ID", nil)
		return
	}

	token, err := h.tokenService.GetToken(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"token": token})
}

// GET /tokens/:id/transactions
func (h *TokenHandler) GetTokenTransactions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid token ID", nil)
		return
	}

	txns, err := h.auctionService.ListTokenTransactions(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"transactions": txns})
}
