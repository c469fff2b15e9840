// internal/repository/gorm.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artmint/artmint-backend/internal/models"
)

// GormStore backs the repositories with a Postgres database through
// GORM. Atomic maps to a database transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Artists() ArtistRepository           { return &gormArtists{db: s.db} }
func (s *GormStore) Artworks() ArtworkRepository         { return &gormArtworks{db: s.db} }
func (s *GormStore) Tokens() TokenRepository             { return &gormTokens{db: s.db} }
func (s *GormStore) Auctions() AuctionRepository         { return &gormAuctions{db: s.db} }
func (s *GormStore) Transactions() TransactionRepository { return &gormTransactions{db: s.db} }

func (s *GormStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func translateGormErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("database error: %w", err)
}

type gormArtists struct {
	db *gorm.DB
}

func (r *gormArtists) Get(ctx context.Context, id uuid.UUID) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, "id = ?", id).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return &artist, nil
}

func (r *gormArtists) GetByEmail(ctx context.Context, email string) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, "email = ?", email).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return &artist, nil
}

func (r *gormArtists) Put(ctx context.Context, artist *models.Artist) error {
	if err := r.db.WithContext(ctx).Save(artist).Error; err != nil {
		return fmt.Errorf("failed to save artist: %w", err)
	}
	return nil
}

func (r *gormArtists) List(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).Order("created_at").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch artists: %w", err)
	}
	return artists, nil
}

type gormArtworks struct {
	db *gorm.DB
}

func (r *gormArtworks) Get(ctx context.Context, id uuid.UUID) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := r.db.WithContext(ctx).First(&artwork, "id = ?", id).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return &artwork, nil
}

func (r *gormArtworks) Put(ctx context.Context, artwork *models.Artwork) error {
	if err := r.db.WithContext(ctx).Save(artwork).Error; err != nil {
		return fmt.Errorf("failed to save artwork: %w", err)
	}
	return nil
}

func (r *gormArtworks) List(ctx context.Context) ([]models.Artwork, error) {
	var artworks []models.Artwork
	if err := r.db.WithContext(ctx).Order("created_at").Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch artworks: %w", err)
	}
	return artworks, nil
}

type gormTokens struct {
	db *gorm.DB
}

func (r *gormTokens) Get(ctx context.Context, id uuid.UUID) (*models.Token, error) {
	var token models.Token
	if err := r.db.WithContext(ctx).First(&token, "id = ?", id).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return &token, nil
}

func (r *gormTokens) Put(ctx context.Context, token *models.Token) error {
	if err := r.db.WithContext(ctx).Save(token).Error; err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (r *gormTokens) List(ctx context.Context) ([]models.Token, error) {
	var tokens []models.Token
	if err := r.db.WithContext(ctx).Order("created_at").Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tokens: %w", err)
	}
	return tokens, nil
}

func (r *gormTokens) ListByOwner(ctx context.Context, artistID uuid.UUID) ([]models.Token, error) {
	var tokens []models.Token
	if err := r.db.WithContext(ctx).
		Where("? = ANY(owner_ids)", artistID.String()).
		Order("created_at").
		Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch owner tokens: %w", err)
	}
	return tokens, nil
}

type gormAuctions struct {
	db *gorm.DB
}

func (r *gormAuctions) Get(ctx context.Context, id uuid.UUID) (*models.Auction, error) {
	var auction models.Auction
	if err := r.db.WithContext(ctx).First(&auction, "id = ?", id).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return &auction, nil
}

func (r *gormAuctions) Put(ctx context.Context, auction *models.Auction) error {
	if err := r.db.WithContext(ctx).Save(auction).Error; err != nil {
		return fmt.Errorf("failed to save auction: %w", err)
	}
	return nil
}

func (r *gormAuctions) List(ctx context.Context) ([]models.Auction, error) {
	var auctions []models.Auction
	if err := r.db.WithContext(ctx).Order("created_at").Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch auctions: %w", err)
	}
	return auctions, nil
}

func (r *gormAuctions) ListByStatus(ctx context.Context, status models.AuctionStatus) ([]models.Auction, error) {
	var auctions []models.Auction
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at").
		Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch auctions by status: %w", err)
	}
	return auctions, nil
}

func (r *gormAuctions) ListPendingByToken(ctx context.Context, tokenID uuid.UUID) ([]models.Auction, error) {
	var auctions []models.Auction
	if err := r.db.WithContext(ctx).
		Where("token_id = ? AND status = ?", tokenID, models.AuctionStatusPending).
		Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch pending auctions: %w", err)
	}
	return auctions, nil
}

type gormTransactions struct {
	db *gorm.DB
}

func (r *gormTransactions) Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error; err != nil {
		return nil, translateGormErr(err)
	}
	return &txn, nil
}

func (r *gormTransactions) Put(ctx context.Context, txn *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *gormTransactions) ListByToken(ctx context.Context, tokenID uuid.UUID) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		Order("created_at").
		Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch token transactions: %w", err)
	}
	return txns, nil
}
