package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecobid/internal/ledgererrors"
	model "ecobid/internal/models"
	"ecobid/utils"
)

// GormStore implements LedgerStore on a relational database through gorm.
// Production deployments use the postgres driver; tests run it on sqlite.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the ledger tables and returns a gorm-backed instance
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	err := db.AutoMigrate(
		&model.Auction{},
		&model.Wallet{},
		&model.Bid{},
		&model.Transaction{},
		&model.Notification{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate ledger tables: %w", err)
	}
	return &GormStore{db: db}, nil
}

// GetAuction returns the auction with the given ID
func (s *GormStore) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	var auction model.Auction
	result := s.db.WithContext(ctx).First(&auction, "auction_id = ?", auctionID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, ledgererrors.ErrAuctionNotFound)
		}
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, result.Error)
	}
	return auction, nil
}

// ListAuctions returns all auctions, newest first
func (s *GormStore) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	var auctions []model.Auction
	result := s.db.WithContext(ctx).Order("created_at DESC").Find(&auctions)
	if result.Error != nil {
		return nil, fmt.Errorf("list auctions: %w", result.Error)
	}
	return auctions, nil
}

// CreateAuction stores a new auction, assigning ID, creation time and defaults
func (s *GormStore) CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error) {
	applyAuctionDefaults(&auction)

	result := s.db.WithContext(ctx).Create(&auction)
	if result.Error != nil {
		return model.Auction{}, fmt.Errorf("create auction %s: %w", auction.AuctionID, result.Error)
	}
	return auction, nil
}

// UpdateAuctionCurrentBid conditionally raises the auction's current bid.
// The guard lives in the WHERE clause, so two racing bidders cannot replace
// a higher amount with a lower one.
func (s *GormStore) UpdateAuctionCurrentBid(ctx context.Context, auctionID string, amount float64) error {
	result := s.db.WithContext(ctx).
		Model(&model.Auction{}).
		Where("auction_id = ? AND current_bid < ?", auctionID, amount).
		Update("current_bid", amount)
	if result.Error != nil {
		return fmt.Errorf("update current bid for auction %s: %w", auctionID, result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing updated: either the auction is gone or the bid lost the race.
	if _, err := s.GetAuction(ctx, auctionID); err != nil {
		return fmt.Errorf("update current bid for auction %s: %w", auctionID, ledgererrors.ErrAuctionNotFound)
	}
	return fmt.Errorf("update current bid for auction %s to %.2f: %w", auctionID, amount, ledgererrors.ErrBidSuperseded)
}

// GetWallet returns the wallet for the given user
func (s *GormStore) GetWallet(ctx context.Context, userID string) (model.Wallet, error) {
	var wallet model.Wallet
	result := s.db.WithContext(ctx).First(&wallet, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Wallet{}, fmt.Errorf("get wallet for user %s: %w", userID, ledgererrors.ErrWalletNotFound)
		}
		return model.Wallet{}, fmt.Errorf("get wallet for user %s: %w", userID, result.Error)
	}
	return wallet, nil
}

// CreateWallet stores a wallet record for a user
func (s *GormStore) CreateWallet(ctx context.Context, wallet model.Wallet) error {
	if result := s.db.WithContext(ctx).Create(&wallet); result.Error != nil {
		return fmt.Errorf("create wallet for user %s: %w", wallet.UserID, result.Error)
	}
	return nil
}

// AdjustWalletBalance applies a delta to the user's wallet balance
func (s *GormStore) AdjustWalletBalance(ctx context.Context, userID string, delta float64) (model.Wallet, error) {
	return s.adjustWalletColumn(ctx, userID, "wallet_balance", delta)
}

// AdjustWalletEMDBlocked applies a delta to the user's blocked EMD
func (s *GormStore) AdjustWalletEMDBlocked(ctx context.Context, userID string, delta float64) (model.Wallet, error) {
	return s.adjustWalletColumn(ctx, userID, "emd_blocked", delta)
}

func (s *GormStore) adjustWalletColumn(ctx context.Context, userID, column string, delta float64) (model.Wallet, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Wallet{}).
		Where("user_id = ?", userID).
		Update(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return model.Wallet{}, fmt.Errorf("adjust %s for user %s: %w", column, userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return model.Wallet{}, fmt.Errorf("adjust %s for user %s: %w", column, userID, ledgererrors.ErrWalletNotFound)
	}
	return s.GetWallet(ctx, userID)
}

// InsertBid records a bid against an existing auction, assigning ID and time
func (s *GormStore) InsertBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	if _, err := s.GetAuction(ctx, bid.AuctionID); err != nil {
		return model.Bid{}, fmt.Errorf("insert bid for auction %s: %w", bid.AuctionID, ledgererrors.ErrAuctionNotFound)
	}

	bid.BidID = utils.GenerateID()
	bid.CreatedAt = time.Now().UTC()

	if result := s.db.WithContext(ctx).Create(&bid); result.Error != nil {
		return model.Bid{}, fmt.Errorf("insert bid for auction %s: %w", bid.AuctionID, result.Error)
	}
	return bid, nil
}

// BidsByAuction returns all bids on an auction, newest first
func (s *GormStore) BidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	var bids []model.Bid
	result := s.db.WithContext(ctx).Where("auction_id = ?", auctionID).Order("created_at DESC").Find(&bids)
	if result.Error != nil {
		return nil, fmt.Errorf("list bids for auction %s: %w", auctionID, result.Error)
	}
	return bids, nil
}

// BidsByBidder returns all bids placed by a user, newest first
func (s *GormStore) BidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error) {
	var bids []model.Bid
	result := s.db.WithContext(ctx).Where("bidder_id = ?", bidderID).Order("created_at DESC").Find(&bids)
	if result.Error != nil {
		return nil, fmt.Errorf("list bids for user %s: %w", bidderID, result.Error)
	}
	return bids, nil
}

// MarkAuctionBidsOutbid flips every Leading bid on the auction to Outbid
func (s *GormStore) MarkAuctionBidsOutbid(ctx context.Context, auctionID string) error {
	result := s.db.WithContext(ctx).
		Model(&model.Bid{}).
		Where("auction_id = ? AND status = ?", auctionID, model.BidLeading).
		Update("status", model.BidOutbid)
	if result.Error != nil {
		return fmt.Errorf("mark bids outbid for auction %s: %w", auctionID, result.Error)
	}
	return nil
}

// InsertTransaction records a wallet movement for an existing user
func (s *GormStore) InsertTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	if txn.Amount <= 0 {
		return model.Transaction{}, fmt.Errorf("insert transaction for user %s: %w", txn.UserID, ledgererrors.ErrInvalidAmount)
	}
	if _, err := s.GetWallet(ctx, txn.UserID); err != nil {
		return model.Transaction{}, fmt.Errorf("insert transaction for user %s: %w", txn.UserID, ledgererrors.ErrWalletNotFound)
	}

	txn.TransactionID = utils.GenerateID()
	txn.CreatedAt = time.Now().UTC()

	if result := s.db.WithContext(ctx).Create(&txn); result.Error != nil {
		return model.Transaction{}, fmt.Errorf("insert transaction for user %s: %w", txn.UserID, result.Error)
	}
	return txn, nil
}

// TransactionsByUser returns a user's transactions, newest first
func (s *GormStore) TransactionsByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	var txns []model.Transaction
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&txns)
	if result.Error != nil {
		return nil, fmt.Errorf("list transactions for user %s: %w", userID, result.Error)
	}
	return txns, nil
}

// InsertNotification records a notification for an existing user
func (s *GormStore) InsertNotification(ctx context.Context, notif model.Notification) (model.Notification, error) {
	if _, err := s.GetWallet(ctx, notif.UserID); err != nil {
		return model.Notification{}, fmt.Errorf("insert notification for user %s: %w", notif.UserID, ledgererrors.ErrWalletNotFound)
	}

	notif.NotificationID = utils.GenerateID()
	notif.CreatedAt = time.Now().UTC()

	if result := s.db.WithContext(ctx).Create(&notif); result.Error != nil {
		return model.Notification{}, fmt.Errorf("insert notification for user %s: %w", notif.UserID, result.Error)
	}
	return notif, nil
}

// NotificationsByUser returns a user's notifications, newest first
func (s *GormStore) NotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	var notifs []model.Notification
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&notifs)
	if result.Error != nil {
		return nil, fmt.Errorf("list notifications for user %s: %w", userID, result.Error)
	}
	return notifs, nil
}

// MarkNotificationsRead marks every notification for the user as read
func (s *GormStore) MarkNotificationsRead(ctx context.Context, userID string) error {
	result := s.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("mark notifications read for user %s: %w", userID, result.Error)
	}
	return nil
}
