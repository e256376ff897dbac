package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ecobid/internal/ledgererrors"
	model "ecobid/internal/models"
	"ecobid/utils"
)

// MemoryStore is a concurrency-safe in-memory implementation of LedgerStore
type MemoryStore struct {
	mu            sync.RWMutex
	auctions      map[string]model.Auction      // key: auctionID
	auctionOrder  []string                      // auctionIDs in creation order
	wallets       map[string]model.Wallet       // key: userID
	bids          map[string][]model.Bid        // key: auctionID -> bids in creation order
	bidsByBidder  map[string][]model.Bid        // key: bidderID -> bids in creation order
	transactions  map[string][]model.Transaction // key: userID
	notifications map[string][]model.Notification // key: userID
}

// NewMemoryStore creates a new in-memory ledger instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions:      make(map[string]model.Auction),
		wallets:       make(map[string]model.Wallet),
		bids:          make(map[string][]model.Bid),
		bidsByBidder:  make(map[string][]model.Bid),
		transactions:  make(map[string][]model.Transaction),
		notifications: make(map[string][]model.Notification),
	}
}

// GetAuction returns the auction with the given ID
func (s *MemoryStore) GetAuction(_ context.Context, auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, ledgererrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// ListAuctions returns all auctions, newest first
func (s *MemoryStore) ListAuctions(_ context.Context) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(s.auctionOrder))
	for i := len(s.auctionOrder) - 1; i >= 0; i-- {
		auctions = append(auctions, s.auctions[s.auctionOrder[i]])
	}
	return auctions, nil
}

// CreateAuction stores a new auction, assigning ID, creation time and defaults
func (s *MemoryStore) CreateAuction(_ context.Context, auction model.Auction) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applyAuctionDefaults(&auction)

	s.auctions[auction.AuctionID] = auction
	s.auctionOrder = append(s.auctionOrder, auction.AuctionID)
	return auction, nil
}

// UpdateAuctionCurrentBid conditionally raises the auction's current bid
func (s *MemoryStore) UpdateAuctionCurrentBid(_ context.Context, auctionID string, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("update current bid for auction %s: %w", auctionID, ledgererrors.ErrAuctionNotFound)
	}
	if amount <= auction.CurrentBid {
		return fmt.Errorf("update current bid for auction %s to %.2f: %w", auctionID, amount, ledgererrors.ErrBidSuperseded)
	}

	auction.CurrentBid = amount
	s.auctions[auctionID] = auction
	return nil
}

// GetWallet returns the wallet for the given user
func (s *MemoryStore) GetWallet(_ context.Context, userID string) (model.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wallet, ok := s.wallets[userID]
	if !ok {
		return model.Wallet{}, fmt.Errorf("get wallet for user %s: %w", userID, ledgererrors.ErrWalletNotFound)
	}
	return wallet, nil
}

// CreateWallet stores a wallet record for a user
func (s *MemoryStore) CreateWallet(_ context.Context, wallet model.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wallets[wallet.UserID] = wallet
	return nil
}

// AdjustWalletBalance applies a delta to the user's wallet balance
func (s *MemoryStore) AdjustWalletBalance(_ context.Context, userID string, delta float64) (model.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, ok := s.wallets[userID]
	if !ok {
		return model.Wallet{}, fmt.Errorf("adjust balance for user %s: %w", userID, ledgererrors.ErrWalletNotFound)
	}

	wallet.WalletBalance += delta
	s.wallets[userID] = wallet
	return wallet, nil
}

// AdjustWalletEMDBlocked applies a delta to the user's blocked EMD
func (s *MemoryStore) AdjustWalletEMDBlocked(_ context.Context, userID string, delta float64) (model.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, ok := s.wallets[userID]
	if !ok {
		return model.Wallet{}, fmt.Errorf("adjust blocked EMD for user %s: %w", userID, ledgererrors.ErrWalletNotFound)
	}

	wallet.EMDBlocked += delta
	s.wallets[userID] = wallet
	return wallet, nil
}

// InsertBid records a bid against an existing auction, assigning ID and time
func (s *MemoryStore) InsertBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[bid.AuctionID]; !ok {
		return model.Bid{}, fmt.Errorf("insert bid for auction %s: %w", bid.AuctionID, ledgererrors.ErrAuctionNotFound)
	}

	bid.BidID = utils.GenerateID()
	bid.CreatedAt = time.Now().UTC()

	s.bids[bid.AuctionID] = append(s.bids[bid.AuctionID], bid)
	s.bidsByBidder[bid.BidderID] = append(s.bidsByBidder[bid.BidderID], bid)
	return bid, nil
}

// BidsByAuction returns all bids on an auction, newest first
func (s *MemoryStore) BidsByAuction(_ context.Context, auctionID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reversed(s.bids[auctionID]), nil
}

// BidsByBidder returns all bids placed by a user, newest first
func (s *MemoryStore) BidsByBidder(_ context.Context, bidderID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reversed(s.bidsByBidder[bidderID]), nil
}

// MarkAuctionBidsOutbid flips every Leading bid on the auction to Outbid
func (s *MemoryStore) MarkAuctionBidsOutbid(_ context.Context, auctionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, bid := range s.bids[auctionID] {
		if bid.Status != model.BidLeading {
			continue
		}
		bid.Status = model.BidOutbid
		s.bids[auctionID][i] = bid

		for j, userBid := range s.bidsByBidder[bid.BidderID] {
			if userBid.BidID == bid.BidID {
				s.bidsByBidder[bid.BidderID][j] = bid
			}
		}
	}
	return nil
}

// InsertTransaction records a wallet movement for an existing user
func (s *MemoryStore) InsertTransaction(_ context.Context, txn model.Transaction) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if txn.Amount <= 0 {
		return model.Transaction{}, fmt.Errorf("insert transaction for user %s: %w", txn.UserID, ledgererrors.ErrInvalidAmount)
	}
	if _, ok := s.wallets[txn.UserID]; !ok {
		return model.Transaction{}, fmt.Errorf("insert transaction for user %s: %w", txn.UserID, ledgererrors.ErrWalletNotFound)
	}

	txn.TransactionID = utils.GenerateID()
	txn.CreatedAt = time.Now().UTC()

	s.transactions[txn.UserID] = append(s.transactions[txn.UserID], txn)
	return txn, nil
}

// TransactionsByUser returns a user's transactions, newest first
func (s *MemoryStore) TransactionsByUser(_ context.Context, userID string) ([]model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reversed(s.transactions[userID]), nil
}

// InsertNotification records a notification for an existing user
func (s *MemoryStore) InsertNotification(_ context.Context, notif model.Notification) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wallets[notif.UserID]; !ok {
		return model.Notification{}, fmt.Errorf("insert notification for user %s: %w", notif.UserID, ledgererrors.ErrWalletNotFound)
	}

	notif.NotificationID = utils.GenerateID()
	notif.CreatedAt = time.Now().UTC()

	s.notifications[notif.UserID] = append(s.notifications[notif.UserID], notif)
	return notif, nil
}

// NotificationsByUser returns a user's notifications, newest first
func (s *MemoryStore) NotificationsByUser(_ context.Context, userID string) ([]model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reversed(s.notifications[userID]), nil
}

// MarkNotificationsRead marks every notification for the user as read
func (s *MemoryStore) MarkNotificationsRead(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications[userID] {
		s.notifications[userID][i].Read = true
	}
	return nil
}

// applyAuctionDefaults fills in store-assigned fields on a new auction
func applyAuctionDefaults(auction *model.Auction) {
	if auction.AuctionID == "" {
		auction.AuctionID = utils.GenerateID()
	}
	if auction.CreatedAt.IsZero() {
		auction.CreatedAt = time.Now().UTC()
	}
	if auction.CurrentBid < auction.BasePrice {
		auction.CurrentBid = auction.BasePrice
	}
	if auction.Status == "" {
		auction.Status = model.AuctionActive
	}
}

// reversed returns a newest-first copy of a creation-ordered slice
func reversed[T any](in []T) []T {
	out := make([]T, 0, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		out = append(out, in[i])
	}
	return out
}
