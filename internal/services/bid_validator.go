// internal/services/bid_validator.go
package services

import (
	"github.com/artmint/artmint-backend/internal/models"
)

// ValidateBid is the pure admission predicate for a proposed bid. A nil
// bidder or auction stands for an unknown reference. Checks run in a
// fixed order so the rejection reason is deterministic: bidder unknown,
// auction unknown, auction not pending, amount not strictly greater
// than the current highest bid.
func ValidateBid(auction *models.Auction, bidder *models.Artist, amount float64) *models.AppError {
	if bidder == nil {
		return models.NewInvalidPayload("bidder not found")
	}
	if auction == nil {
		return models.NewInvalidPayload("auction not found")
	}
	if !auction.Open() {
		return models.NewInvalidPayload("auction is not open for bidding")
	}
	// Strictly monotonic: equal bids are rejected, so there is never a
	// tie to break.
	if amount <= auction.HighestBid {
		return models.NewInvalidPayload("bid must be strictly greater than the current highest bid")
	}
	return nil
}
