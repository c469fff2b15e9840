// internal/handlers/transaction.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artmint/artmint-backend/internal/services"
	"github.com/artmint/artmint-backend/internal/utils"
)

type TransactionHandler struct {
	auctionService *services.AuctionService
}

func NewTransactionHandler(auctionService *services.AuctionService) *TransactionHandler {
	return &TransactionHandler{auctionService: auctionService}
}

// GET /transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid transaction ID", nil)
		return
	}

	txn, err := h.auctionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"transaction": txn})
}
