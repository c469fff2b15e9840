// internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/artmint/artmint-backend/internal/models"
)

// ErrNotFound is returned by every repository on a read miss, for both
// backends. Services translate it into the tagged error set.
var ErrNotFound = errors.New("record not found")

type ArtistRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Artist, error)
	GetByEmail(ctx context.Context, email string) (*models.Artist, error)
	Put(ctx context.Context, artist *models.Artist) error
	List(ctx context.Context) ([]models.Artist, error)
}

type ArtworkRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Artwork, error)
	Put(ctx context.Context, artwork *models.Artwork) error
	List(ctx context.Context) ([]models.Artwork, error)
}

type TokenRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Token, error)
	Put(ctx context.Context, token *models.Token) error
	List(ctx context.Context) ([]models.Token, error)
	ListByOwner(ctx context.Context, artistID uuid.UUID) ([]models.Token, error)
}

type AuctionRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Auction, error)
	Put(ctx context.Context, auction *models.Auction) error
	List(ctx context.Context) ([]models.Auction, error)
	ListByStatus(ctx context.Context, status models.AuctionStatus) ([]models.Auction, error)
	ListPendingByToken(ctx context.Context, tokenID uuid.UUID) ([]models.Auction, error)
}

type TransactionRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Put(ctx context.Context, txn *models.Transaction) error
	ListByToken(ctx context.Context, tokenID uuid.UUID) ([]models.Transaction, error)
}

// Store aggregates the per-entity repositories and owns all entity
// persistence. Atomic runs fn against a store view whose writes commit
// together; the engine performs every state transition inside Atomic so
// each operation reads the latest persisted state and commits before
// the next operation observes it.
type Store interface {
	Artists() ArtistRepository
	Artworks() ArtworkRepository
	Tokens() TokenRepository
	Auctions() AuctionRepository
	Transactions() TransactionRepository
	Atomic(ctx context.Context, fn func(Store) error) error
}
