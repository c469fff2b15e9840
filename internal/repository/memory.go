// internal/repository/memory.go
package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/artmint/artmint-backend/internal/models"
)

// MemoryStore keeps all entities in process memory. It backs the test
// suites and mirrors the execution model the engine relies on: one
// mutating operation completes before the next observes shared state.
// Atomic holds the store lock for the whole section; there is no
// rollback because every precondition is checked before any write.
type MemoryStore struct {
	mu           sync.Mutex
	artists      map[uuid.UUID]models.Artist
	artworks     map[uuid.UUID]models.Artwork
	tokens       map[uuid.UUID]models.Token
	auctions     map[uuid.UUID]models.Auction
	transactions map[uuid.UUID]models.Transaction

	// insertion order, so List results are deterministic
	artistOrder  []uuid.UUID
	artworkOrder []uuid.UUID
	tokenOrder   []uuid.UUID
	auctionOrder []uuid.UUID
	txnOrder     []uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		artists:      make(map[uuid.UUID]models.Artist),
		artworks:     make(map[uuid.UUID]models.Artwork),
		tokens:       make(map[uuid.UUID]models.Token),
		auctions:     make(map[uuid.UUID]models.Auction),
		transactions: make(map[uuid.UUID]models.Transaction),
	}
}

func (s *MemoryStore) Artists() ArtistRepository           { return &memArtists{s: s, lock: true} }
func (s *MemoryStore) Artworks() ArtworkRepository         { return &memArtworks{s: s, lock: true} }
func (s *MemoryStore) Tokens() TokenRepository             { return &memTokens{s: s, lock: true} }
func (s *MemoryStore) Auctions() AuctionRepository         { return &memAuctions{s: s, lock: true} }
func (s *MemoryStore) Transactions() TransactionRepository { return &memTransactions{s: s, lock: true} }

func (s *MemoryStore) Atomic(ctx context.Context, fn func(Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&memoryTx{s: s})
}

// memoryTx is the view handed to Atomic callbacks: the lock is already
// held, so its repositories skip locking. Nested Atomic reuses the view.
type memoryTx struct {
	s *MemoryStore
}

func (t *memoryTx) Artists() ArtistRepository           { return &memArtists{s: t.s} }
func (t *memoryTx) Artworks() ArtworkRepository         { return &memArtworks{s: t.s} }
func (t *memoryTx) Tokens() TokenRepository             { return &memTokens{s: t.s} }
func (t *memoryTx) Auctions() AuctionRepository         { return &memAuctions{s: t.s} }
func (t *memoryTx) Transactions() TransactionRepository { return &memTransactions{s: t.s} }

func (t *memoryTx) Atomic(ctx context.Context, fn func(Store) error) error {
	return fn(t)
}

func copyToken(token models.Token) models.Token {
	owners := make(pq.StringArray, len(token.OwnerIDs))
	copy(owners, token.OwnerIDs)
	token.OwnerIDs = owners
	return token
}

func copyAuction(auction models.Auction) models.Auction {
	if auction.HighestBidderID != nil {
		bidder := *auction.HighestBidderID
		auction.HighestBidderID = &bidder
	}
	return auction
}

type memArtists struct {
	s    *MemoryStore
	lock bool
}

func (r *memArtists) Get(ctx context.Context, id uuid.UUID) (*models.Artist, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	artist, ok := r.s.artists[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &artist, nil
}

func (r *memArtists) GetByEmail(ctx context.Context, email string) (*models.Artist, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	for _, id := range r.s.artistOrder {
		if artist := r.s.artists[id]; artist.Email == email {
			return &artist, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memArtists) Put(ctx context.Context, artist *models.Artist) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.artists[artist.ID]; !ok {
		r.s.artistOrder = append(r.s.artistOrder, artist.ID)
	}
	r.s.artists[artist.ID] = *artist
	return nil
}

func (r *memArtists) List(ctx context.Context) ([]models.Artist, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	artists := make([]models.Artist, 0, len(r.s.artistOrder))
	for _, id := range r.s.artistOrder {
		artists = append(artists, r.s.artists[id])
	}
	return artists, nil
}

type memArtworks struct {
	s    *MemoryStore
	lock bool
}

func (r *memArtworks) Get(ctx context.Context, id uuid.UUID) (*models.Artwork, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	artwork, ok := r.s.artworks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &artwork, nil
}

func (r *memArtworks) Put(ctx context.Context, artwork *models.Artwork) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.artworks[artwork.ID]; !ok {
		r.s.artworkOrder = append(r.s.artworkOrder, artwork.ID)
	}
	r.s.artworks[artwork.ID] = *artwork
	return nil
}

func (r *memArtworks) List(ctx context.Context) ([]models.Artwork, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	artworks := make([]models.Artwork, 0, len(r.s.artworkOrder))
	for _, id := range r.s.artworkOrder {
		artworks = append(artworks, r.s.artworks[id])
	}
	return artworks, nil
}

type memTokens struct {
	s    *MemoryStore
	lock bool
}

func (r *memTokens) Get(ctx context.Context, id uuid.UUID) (*models.Token, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	token, ok := r.s.tokens[id]
	if !ok {
		return nil, ErrNotFound
	}
	token = copyToken(token)
	return &token, nil
}

func (r *memTokens) Put(ctx context.Context, token *models.Token) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.tokens[token.ID]; !ok {
		r.s.tokenOrder = append(r.s.tokenOrder, token.ID)
	}
	r.s.tokens[token.ID] = copyToken(*token)
	return nil
}

func (r *memTokens) List(ctx context.Context) ([]models.Token, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	tokens := make([]models.Token, 0, len(r.s.tokenOrder))
	for _, id := range r.s.tokenOrder {
		tokens = append(tokens, copyToken(r.s.tokens[id]))
	}
	return tokens, nil
}

func (r *memTokens) ListByOwner(ctx context.Context, artistID uuid.UUID) ([]models.Token, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	var tokens []models.Token
	for _, id := range r.s.tokenOrder {
		token := r.s.tokens[id]
		if token.OwnedBy(artistID) {
			tokens = append(tokens, copyToken(token))
		}
	}
	return tokens, nil
}

type memAuctions struct {
	s    *MemoryStore
	lock bool
}

func (r *memAuctions) Get(ctx context.Context, id uuid.UUID) (*models.Auction, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	auction, ok := r.s.auctions[id]
	if !ok {
		return nil, ErrNotFound
	}
	auction = copyAuction(auction)
	return &auction, nil
}

func (r *memAuctions) Put(ctx context.Context, auction *models.Auction) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.auctions[auction.ID]; !ok {
		r.s.auctionOrder = append(r.s.auctionOrder, auction.ID)
	}
	r.s.auctions[auction.ID] = copyAuction(*auction)
	return nil
}

func (r *memAuctions) List(ctx context.Context) ([]models.Auction, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	auctions := make([]models.Auction, 0, len(r.s.auctionOrder))
	for _, id := range r.s.auctionOrder {
		auctions = append(auctions, copyAuction(r.s.auctions[id]))
	}
	return auctions, nil
}

func (r *memAuctions) ListByStatus(ctx context.Context, status models.AuctionStatus) ([]models.Auction, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	var auctions []models.Auction
	for _, id := range r.s.auctionOrder {
		if auction := r.s.auctions[id]; auction.Status == status {
			auctions = append(auctions, copyAuction(auction))
		}
	}
	return auctions, nil
}

func (r *memAuctions) ListPendingByToken(ctx context.Context, tokenID uuid.UUID) ([]models.Auction, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	var auctions []models.Auction
	for _, id := range r.s.auctionOrder {
		auction := r.s.auctions[id]
		if auction.TokenID == tokenID && auction.Status == models.AuctionStatusPending {
			auctions = append(auctions, copyAuction(auction))
		}
	}
	return auctions, nil
}

type memTransactions struct {
	s    *MemoryStore
	lock bool
}

func (r *memTransactions) Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	txn, ok := r.s.transactions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &txn, nil
}

func (r *memTransactions) Put(ctx context.Context, txn *models.Transaction) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.transactions[txn.ID]; !ok {
		r.s.txnOrder = append(r.s.txnOrder, txn.ID)
	}
	r.s.transactions[txn.ID] = *txn
	return nil
}

func (r *memTransactions) ListByToken(ctx context.Context, tokenID uuid.UUID) ([]models.Transaction, error) {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	var txns []models.Transaction
	for _, id := range r.s.txnOrder {
		if txn := r.s.transactions[id]; txn.TokenID == tokenID {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}
