// internal/models/auction.go
package models

import (
	"github.com/google/uuid"
)

// Auction is a time-unbounded, strictly-ascending open-bid sale for one
// token. HighestBid of 0 means no bids yet. CreatorID is authoritative
// for cancel/finalize authorization.
type Auction struct {
	BaseModel
	TokenID         uuid.UUID     `json:"token_id" gorm:"type:uuid;not null;index"`
	HighestBid      float64       `json:"highest_bid" gorm:"type:decimal(12,2);default:0"`
	HighestBidderID *uuid.UUID    `json:"highest_bidder_id" gorm:"type:uuid"`
	CreatorID       uuid.UUID     `json:"creator_id" gorm:"type:uuid;not null;index"`
	Status          AuctionStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	IsActive        bool          `json:"is_active" gorm:"default:true"`
}

// Open reports whether the auction still admits bids and transitions.
func (a *Auction) Open() bool {
	return a.Status == AuctionStatusPending
}
