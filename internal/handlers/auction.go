// internal/handlers/auction.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artmint/artmint-backend/internal/services"
	"github.com/artmint/artmint-backend/internal/utils"
)

type AuctionHandler struct {
	auctionService *services.AuctionService
}

func NewAuctionHandler(auctionService *services.AuctionService) *AuctionHandler {
	return &AuctionHandler{auctionService: auctionService}
}

// POST /auctions
func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	callerID, ok := callerIDFromContext(c)
	if !ok {
		return
	}

	var req services.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	auction, err := h.auctionService.CreateAuction(c.Request.Context(), callerID, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"auction": auction})
}

// GET /auctions
func (h *AuctionHandler) GetActiveAuctions(c *gin.Context) {
	auctions, err := h.auctionService.ListActiveAuctions(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"auctions": auctions})
}

// GET /auctions/completed
func (h *AuctionHandler) GetCompletedAuctions(c *gin.Context) {
	auctions, err := h.auctionService.ListCompletedAuctions(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"auctions": auctions})
}

// GET /auctions/:id
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid auction ID", nil)
		return
	}

	auction, err := h.auctionService.GetAuction(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"auction": auction})
}

// POST /auctions/:id/bids
func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	callerID, ok := callerIDFromContext(c)
	if !ok {
		return
	}

	auctionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid auction ID", nil)
		return
	}

	var req services.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	auction, err := h.auctionService.PlaceBid(c.Request.Context(), callerID, auctionID, req.Amount)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"auction": auction})
}

// POST /auctions/:id/cancel
func (h *AuctionHandler) CancelAuction(c *gin.Context) {
	callerID, ok := callerIDFromContext(c)
	if !ok {
		return
	}

	auctionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid auction ID", nil)
		return
	}

	auction, err := h.auctionService.CancelAuction(c.Request.Context(), callerID, auctionID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"auction": auction})
}

// POST /auctions/:id/finalize
func (h *AuctionHandler) FinalizeAuction(c *gin.Context) {
	callerID, ok := callerIDFromContext(c)
	if !ok {
		return
	}

	auctionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid auction ID", nil)
		return
	}

	txn, err := h.auctionService.FinalizeAuction(c.Request.Context(), callerID, auctionID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"transaction": txn})
}
