// internal/services/bid_validator_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artmint/artmint-backend/internal/models"
)

func openAuction(highestBid float64) *models.Auction {
	return &models.Auction{
		BaseModel:  models.NewBase(),
		TokenID:    uuid.New(),
		CreatorID:  uuid.New(),
		HighestBid: highestBid,
		Status:     models.AuctionStatusPending,
		IsActive:   true,
	}
}

func testArtist() *models.Artist {
	artist := &models.Artist{
		BaseModel: models.NewBase(),
		Name:      "bidder",
		Email:     "bidder@example.com",
	}
	artist.OwnerID = artist.ID
	return artist
}

func TestValidateBidAdmitsStrictlyGreater(t *testing.T) {
	auction := openAuction(100)

	verr := ValidateBid(auction, testArtist(), 150)
	assert.Nil(t, verr)
}

func TestValidateBidRejectionReasons(t *testing.T) {
	cancelled := openAuction(0)
	cancelled.Status = models.AuctionStatusCancelled

	tests := []struct {
		name    string
		auction *models.Auction
		bidder  *models.Artist
		amount  float64
		detail  string
	}{
		{
			name:    "unknown bidder checked first",
			auction: nil,
			bidder:  nil,
			amount:  100,
			detail:  "bidder not found",
		},
		{
			name:    "unknown auction",
			auction: nil,
			bidder:  testArtist(),
			amount:  100,
			detail:  "auction not found",
		},
		{
			name:    "auction not pending",
			auction: cancelled,
			bidder:  testArtist(),
			amount:  100,
			detail:  "auction is not open for bidding",
		},
		{
			name:    "equal bid rejected",
			auction: openAuction(100),
			bidder:  testArtist(),
			amount:  100,
			detail:  "bid must be strictly greater than the current highest bid",
		},
		{
			name:    "lower bid rejected",
			auction: openAuction(100),
			bidder:  testArtist(),
			amount:  50,
			detail:  "bid must be strictly greater than the current highest bid",
		},
		{
			name:    "zero opening bid rejected",
			auction: openAuction(0),
			bidder:  testArtist(),
			amount:  0,
			detail:  "bid must be strictly greater than the current highest bid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateBid(tt.auction, tt.bidder, tt.amount)
			require.NotNil(t, verr)
			assert.Equal(t, models.CodeInvalidPayload, verr.Code)
			assert.Equal(t, tt.detail, verr.Detail)
		})
	}
}
