package helpers

import (
	"time"

	model "ecobid/internal/models"
)

// Request/Response DTOs
type AddFundsRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type WalletResponse struct {
	UserID           string  `json:"user_id"`
	WalletBalance    float64 `json:"wallet_balance"`
	EMDBlocked       float64 `json:"emd_blocked"`
	AvailableBalance float64 `json:"available_balance"`
}

type TransactionResponse struct {
	TransactionID string  `json:"transaction_id"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type NotificationResponse struct {
	NotificationID string `json:"notification_id"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"created_at"`
}

// NewWalletResponse maps a wallet record to its response shape, deriving the
// available balance for display
func NewWalletResponse(wallet model.Wallet) WalletResponse {
	return WalletResponse{
		UserID:           wallet.UserID,
		WalletBalance:    wallet.WalletBalance,
		EMDBlocked:       wallet.EMDBlocked,
		AvailableBalance: wallet.WalletBalance - wallet.EMDBlocked,
	}
}

// NewTransactionResponse maps a transaction record to its response shape
func NewTransactionResponse(txn model.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Description:   txn.Description,
		Status:        string(txn.Status),
		CreatedAt:     txn.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewNotificationResponse maps a notification record to its response shape
func NewNotificationResponse(notif model.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: notif.NotificationID,
		Type:           string(notif.Type),
		Title:          notif.Title,
		Message:        notif.Message,
		Read:           notif.Read,
		CreatedAt:      notif.CreatedAt.UTC().Format(time.RFC3339),
	}
}
