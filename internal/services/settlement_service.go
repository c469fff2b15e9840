// internal/services/settlement_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/artmint/artmint-backend/internal/models"
	"github.com/artmint/artmint-backend/internal/repository"
)

// SettlementService transfers token ownership and records the sale. It
// runs only from the finalize path, inside the same atomic section as
// the auction transition; every precondition has already been checked,
// so there is no partial-failure surface of its own.
type SettlementService struct {
	logger *logrus.Logger
}

func NewSettlementService(logger *logrus.Logger) *SettlementService {
	return &SettlementService{logger: logger}
}

// Settle replaces the token's owner set with the single winning bidder,
// marks the token completed, and appends the immutable transaction
// record. The store must be the Atomic view the finalize transition
// runs in.
func (s *SettlementService) Settle(ctx context.Context, store repository.Store, auction *models.Auction, token *models.Token) (*models.Transaction, error) {
	buyerID := *auction.HighestBidderID

	token.OwnerIDs = pq.StringArray{buyerID.String()}
	token.Status = models.TokenStatusCompleted
	token.UpdatedAt = time.Now().UTC()
	if err := store.Tokens().Put(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to transfer token ownership: %w", err)
	}

	txn := &models.Transaction{
		BaseModel: models.NewBase(),
		TokenID:   token.ID,
		BuyerID:   buyerID,
		SellerID:  auction.CreatorID,
		Price:     auction.HighestBid,
	}
	if err := store.Transactions().Put(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"auction_id": auction.ID,
		"token_id":   token.ID,
		"buyer_id":   buyerID,
		"seller_id":  auction.CreatorID,
		"price":      auction.HighestBid,
	}).Info("Auction settled")

	return txn, nil
}
