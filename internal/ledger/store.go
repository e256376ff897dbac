package ledger

import (
	"context"

	model "ecobid/internal/models"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=ledger

// LedgerStore defines keyed access to the exchange's durable entities:
// auctions, wallets, bids, transactions and notifications. Implementations
// enforce referential existence and basic field constraints only; business
// invariants (monotonic price, balance non-negativity) belong to the
// services composing these operations.
type LedgerStore interface {
	// Auctions
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error)
	// UpdateAuctionCurrentBid raises the auction's current bid to amount.
	// The update is conditional: it fails with ErrBidSuperseded unless
	// amount is still strictly greater than the stored current bid.
	UpdateAuctionCurrentBid(ctx context.Context, auctionID string, amount float64) error

	// Wallets
	GetWallet(ctx context.Context, userID string) (model.Wallet, error)
	CreateWallet(ctx context.Context, wallet model.Wallet) error
	AdjustWalletBalance(ctx context.Context, userID string, delta float64) (model.Wallet, error)
	AdjustWalletEMDBlocked(ctx context.Context, userID string, delta float64) (model.Wallet, error)

	// Bids
	InsertBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	BidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
	BidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error)
	MarkAuctionBidsOutbid(ctx context.Context, auctionID string) error

	// Transactions
	InsertTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error)
	TransactionsByUser(ctx context.Context, userID string) ([]model.Transaction, error)

	// Notifications
	InsertNotification(ctx context.Context, notif model.Notification) (model.Notification, error)
	NotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID string) error
}
