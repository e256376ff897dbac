package wallet

import (
	"context"
	"fmt"

	"ecobid/internal/ledger"
	"ecobid/internal/ledgererrors"
	"ecobid/internal/models"
)

// WalletService manages wallet balances, transactions and notifications
type WalletService struct {
	store ledger.LedgerStore
}

// NewWalletService creates a new WalletService instance
func NewWalletService(store ledger.LedgerStore) *WalletService {
	return &WalletService{
		store: store,
	}
}

// AddFunds credits the user's wallet and records a Credit transaction.
// The blocked EMD is untouched. Returns the new total balance.
func (s *WalletService) AddFunds(ctx context.Context, userID string, amount float64) (float64, error) {
	if userID == "" {
		return 0, fmt.Errorf("service: %w - empty user ID", ledgererrors.ErrInvalidAmount)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("service: %w - deposit must be positive", ledgererrors.ErrInvalidAmount)
	}

	// Existence check before the credit so a typo'd user fails cleanly.
	if _, err := s.store.GetWallet(ctx, userID); err != nil {
		return 0, fmt.Errorf("service: failed to load wallet for user %s: %w", userID, err)
	}

	updated, err := s.store.AdjustWalletBalance(ctx, userID, amount)
	if err != nil {
		return 0, fmt.Errorf("service: failed to credit wallet for user %s: %w", userID, err)
	}

	_, err = s.store.InsertTransaction(ctx, models.Transaction{
		UserID:      userID,
		Type:        models.TransactionCredit,
		Amount:      amount,
		Description: "Wallet Top-up",
		Status:      models.TransactionSuccess,
	})
	if err != nil {
		return 0, fmt.Errorf("service: failed to record top-up transaction for user %s: %w", userID, err)
	}

	return updated.WalletBalance, nil
}

// GetWallet returns the user's wallet record
func (s *WalletService) GetWallet(ctx context.Context, userID string) (models.Wallet, error) {
	if userID == "" {
		return models.Wallet{}, fmt.Errorf("service: %w - empty user ID", ledgererrors.ErrWalletNotFound)
	}

	wallet, err := s.store.GetWallet(ctx, userID)
	if err != nil {
		return models.Wallet{}, fmt.Errorf("service: failed to get wallet for user %s: %w", userID, err)
	}
	return wallet, nil
}

// GetTransactions returns the user's wallet transactions, newest first
func (s *WalletService) GetTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	txns, err := s.store.TransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get transactions for user %s: %w", userID, err)
	}
	return txns, nil
}

// GetNotifications returns the user's notifications, newest first
func (s *WalletService) GetNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	notifs, err := s.store.NotificationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get notifications for user %s: %w", userID, err)
	}
	return notifs, nil
}

// MarkNotificationsRead marks all of the user's notifications as read
func (s *WalletService) MarkNotificationsRead(ctx context.Context, userID string) error {
	if err := s.store.MarkNotificationsRead(ctx, userID); err != nil {
		return fmt.Errorf("service: failed to mark notifications read for user %s: %w", userID, err)
	}
	return nil
}
