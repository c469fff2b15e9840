// internal/services/auction_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artmint/artmint-backend/internal/models"
	"github.com/artmint/artmint-backend/internal/repository"
	"github.com/artmint/artmint-backend/internal/utils"
)

// AuctionService owns the auction state machine and is the sole writer
// of auction transitions. Every mutating operation reloads the current
// state inside Store.Atomic and commits before returning; nothing is
// cached across calls.
type AuctionService struct {
	store      repository.Store
	settlement *SettlementService
	logger     *logrus.Logger
}

type CreateAuctionRequest struct {
	TokenID uuid.UUID `json:"token_id" validate:"required"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func NewAuctionService(store repository.Store, settlement *SettlementService, logger *logrus.Logger) *AuctionService {
	return &AuctionService{
		store:      store,
		settlement: settlement,
		logger:     logger,
	}
}

// CreateAuction opens a pending auction for a token that has not been
// sold yet. A token carries at most one pending auction at a time.
func (s *AuctionService) CreateAuction(ctx context.Context, creatorID uuid.UUID, req *CreateAuctionRequest) (*models.Auction, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, models.NewInvalidPayload(fmt.Sprintf("validation failed: %v", err))
	}

	var auction *models.Auction
	err := s.store.Atomic(ctx, func(store repository.Store) error {
		token, err := store.Tokens().Get(ctx, req.TokenID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return models.NewInvalidPayload("token not found")
			}
			return fmt.Errorf("failed to fetch token: %w", err)
		}

		if token.Status != models.TokenStatusPending {
			return models.NewInvalidPayload("token is not eligible for auction")
		}

		pending, err := store.Auctions().ListPendingByToken(ctx, token.ID)
		if err != nil {
			return fmt.Errorf("failed to check pending auctions: %w", err)
		}
		if len(pending) > 0 {
			return models.NewInvalidPayload("token already has a pending auction")
		}

		auction = &models.Auction{
			BaseModel:  models.NewBase(),
			TokenID:    token.ID,
			CreatorID:  creatorID,
			HighestBid: 0,
			Status:     models.AuctionStatusPending,
			IsActive:   true,
		}
		return store.Auctions().Put(ctx, auction)
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"auction_id": auction.ID,
		"token_id":   auction.TokenID,
		"creator_id": creatorID,
	}).Info("Auction created")

	return auction, nil
}

// PlaceBid admits a bid when the validator accepts it and atomically
// replaces the leading bid. Bids are recorded intent only: nothing is
// escrowed, so a superseded leader needs no refund.
func (s *AuctionService) PlaceBid(ctx context.Context, bidderID uuid.UUID, auctionID uuid.UUID, amount float64) (*models.Auction, error) {
	var auction *models.Auction
	err := s.store.Atomic(ctx, func(store repository.Store) error {
		bidder, err := store.Artists().Get(ctx, bidderID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("failed to fetch bidder: %w", err)
		}

		auction, err = store.Auctions().Get(ctx, auctionID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("failed to fetch auction: %w", err)
			}
			auction = nil
		}

		if verr := ValidateBid(auction, bidder, amount); verr != nil {
			return verr
		}

		auction.HighestBid = amount
		auction.HighestBidderID = &bidderID
		auction.UpdatedAt = time.Now().UTC()
		return store.Auctions().Put(ctx, auction)
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
		"amount":     amount,
	}).Info("Bid admitted")

	return auction, nil
}

// CancelAuction moves a pending auction to the cancelled terminal
// state. The token is left untouched, so a fresh auction may be created
// for it.
func (s *AuctionService) CancelAuction(ctx context.Context, callerID uuid.UUID, auctionID uuid.UUID) (*models.Auction, error) {
	var auction *models.Auction
	err := s.store.Atomic(ctx, func(store repository.Store) error {
		var err error
		auction, err = store.Auctions().Get(ctx, auctionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return models.NewInvalidPayload("auction not found")
			}
			return fmt.Errorf("failed to fetch auction: %w", err)
		}

		if !auction.Open() {
			return models.NewInvalidPayload("auction is not pending")
		}

		if auction.CreatorID != callerID {
			return models.NewUnauthorized("only the auction creator may cancel it")
		}

		auction.Status = models.AuctionStatusCancelled
		auction.IsActive = false
		auction.UpdatedAt = time.Now().UTC()
		return store.Auctions().Put(ctx, auction)
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"auction_id": auctionID,
		"creator_id": callerID,
	}).Info("Auction cancelled")

	return auction, nil
}

// FinalizeAuction closes a pending auction on its highest bid and
// settles it: ownership transfer, transaction record, and the auction's
// terminal transition commit together. A second finalize observes the
// non-pending status and is rejected.
func (s *AuctionService) FinalizeAuction(ctx context.Context, callerID uuid.UUID, auctionID uuid.UUID) (*models.Transaction, error) {
	var txn *models.Transaction
	err := s.store.Atomic(ctx, func(store repository.Store) error {
		auction, err := store.Auctions().Get(ctx, auctionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return models.NewInvalidPayload("auction not found")
			}
			return fmt.Errorf("failed to fetch auction: %w", err)
		}

		if !auction.Open() {
			return models.NewInvalidPayload("auction is not pending")
		}

		if auction.CreatorID != callerID {
			return models.NewUnauthorized("only the auction creator may finalize it")
		}

		if !auction.IsActive {
			return models.NewInvalidPayload("auction is not active")
		}

		if auction.HighestBid <= 0 || auction.HighestBidderID == nil {
			return models.NewInvalidPayload("auction has no bids")
		}

		token, err := store.Tokens().Get(ctx, auction.TokenID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return models.NewInvalidPayload("token not found")
			}
			return fmt.Errorf("failed to fetch token: %w", err)
		}

		if _, err := store.Artists().Get(ctx, *auction.HighestBidderID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return models.NewInvalidPayload("highest bidder not found")
			}
			return fmt.Errorf("failed to fetch highest bidder: %w", err)
		}

		txn, err = s.settlement.Settle(ctx, store, auction, token)
		if err != nil {
			return err
		}

		auction.Status = models.AuctionStatusCompleted
		auction.IsActive = false
		auction.UpdatedAt = time.Now().UTC()
		return store.Auctions().Put(ctx, auction)
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}

func (s *AuctionService) GetAuction(ctx context.Context, id uuid.UUID) (*models.Auction, error) {
	auction, err := s.store.Auctions().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewNotFound("auction not found")
		}
		return nil, fmt.Errorf("failed to fetch auction: %w", err)
	}
	return auction, nil
}

func (s *AuctionService) ListActiveAuctions(ctx context.Context) ([]models.Auction, error) {
	auctions, err := s.store.Auctions().ListByStatus(ctx, models.AuctionStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list active auctions: %w", err)
	}
	if len(auctions) == 0 {
		return nil, models.NewNotFound("no active auctions")
	}
	return auctions, nil
}

func (s *AuctionService) ListCompletedAuctions(ctx context.Context) ([]models.Auction, error) {
	auctions, err := s.store.Auctions().ListByStatus(ctx, models.AuctionStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed auctions: %w", err)
	}
	if len(auctions) == 0 {
		return nil, models.NewNotFound("no completed auctions")
	}
	return auctions, nil
}

func (s *AuctionService) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	txn, err := s.store.Transactions().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewNotFound("transaction not found")
		}
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return txn, nil
}

// ListTokenTransactions returns a token's sale history.
func (s *AuctionService) ListTokenTransactions(ctx context.Context, tokenID uuid.UUID) ([]models.Transaction, error) {
	txns, err := s.store.Transactions().ListByToken(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list token transactions: %w", err)
	}
	if len(txns) == 0 {
		return nil, models.NewNotFound("no transactions found for token")
	}
	return txns, nil
}
