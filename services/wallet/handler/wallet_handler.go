package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	model "ecobid/internal/models"
	"ecobid/services/wallet/helpers"
	"ecobid/utils"
)

//go:generate mockgen -source=wallet_handler.go -destination=mock_service.go -package=handler

type WalletServiceInterface interface {
	AddFunds(ctx context.Context, userID string, amount float64) (float64, error)
	GetWallet(ctx context.Context, userID string) (model.Wallet, error)
	GetTransactions(ctx context.Context, userID string) ([]model.Transaction, error)
	GetNotifications(ctx context.Context, userID string) ([]model.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID string) error
}

type WalletHandler struct {
	service WalletServiceInterface
}

func NewWalletHandler(service WalletServiceInterface) *WalletHandler {
	return &WalletHandler{service: service}
}

// AddFundsHandler handles POST /users/:user_id/wallet/deposits
func (h *WalletHandler) AddFundsHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var req helpers.AddFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "AddFundsHandler", err)
		return
	}

	newBalance, err := h.service.AddFunds(c.Request.Context(), userID, req.Amount)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddFundsHandler: failed to add funds", map[string]any{
			"handler": "AddFundsHandler",
			"user_id": userID,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"wallet_balance": newBalance}, "funds added successfully")
	utils.LogSuccess("AddFundsHandler", "funds added successfully", map[string]any{
		"user_id":     userID,
		"amount":      req.Amount,
		"new_balance": newBalance,
	})
}

// GetWalletHandler handles GET /users/:user_id/wallet
func (h *WalletHandler) GetWalletHandler(c *gin.Context) {
	userID := c.Param("user_id")
	wallet, err := h.service.GetWallet(c.Request.Context(), userID)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWalletHandler: error retrieving wallet", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewWalletResponse(wallet), "wallet retrieved successfully")
	utils.LogSuccess("GetWalletHandler", "wallet retrieved successfully", map[string]any{
		"user_id": userID,
	})
}

// GetTransactionsHandler handles GET /users/:user_id/transactions
func (h *WalletHandler) GetTransactionsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	txns, err := h.service.GetTransactions(c.Request.Context(), userID)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetTransactionsHandler: error retrieving transactions", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := lo.Map(txns, func(t model.Transaction, _ int) helpers.TransactionResponse {
		return helpers.NewTransactionResponse(t)
	})

	utils.JSONResponse(c, http.StatusOK, resp, "transactions retrieved successfully")
	utils.LogSuccess("GetTransactionsHandler", "transactions retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}

// GetNotificationsHandler handles GET /users/:user_id/notifications
func (h *WalletHandler) GetNotificationsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	notifs, err := h.service.GetNotifications(c.Request.Context(), userID)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetNotificationsHandler: error retrieving notifications", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := lo.Map(notifs, func(n model.Notification, _ int) helpers.NotificationResponse {
		return helpers.NewNotificationResponse(n)
	})

	utils.JSONResponse(c, http.StatusOK, resp, "notifications retrieved successfully")
	utils.LogSuccess("GetNotificationsHandler", "notifications retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}

// MarkNotificationsReadHandler handles POST /users/:user_id/notifications/read
func (h *WalletHandler) MarkNotificationsReadHandler(c *gin.Context) {
	userID := c.Param("user_id")
	if err := h.service.MarkNotificationsRead(c.Request.Context(), userID); err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MarkNotificationsReadHandler: error marking notifications read", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "notifications marked read")
	utils.LogSuccess("MarkNotificationsReadHandler", "notifications marked read", map[string]any{
		"user_id": userID,
	})
}
