package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecobid/internal/ledgererrors"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, ledgererrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, ledgererrors.ErrWalletNotFound):
		return http.StatusNotFound, "wallet not found"
	case errors.Is(err, ledgererrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, ledgererrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid amount"
	case errors.Is(err, ledgererrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, ledgererrors.ErrBidSuperseded):
		return http.StatusConflict, "bid superseded by a higher bid"
	case errors.Is(err, ledgererrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient available balance for EMD"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ErrorDetails extracts machine-readable figures from domain errors so
// clients can render the current price or the exact shortfall
func ErrorDetails(err error) map[string]any {
	var tooLow *ledgererrors.BidTooLowError
	if errors.As(err, &tooLow) {
		return map[string]any{"current_bid": tooLow.CurrentBid}
	}

	var insufficient *ledgererrors.InsufficientFundsError
	if errors.As(err, &insufficient) {
		return map[string]any{
			"required_emd":      insufficient.Required,
			"available_balance": insufficient.Available,
			"shortfall":         insufficient.Shortfall(),
		}
	}

	return nil
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	Info(handlerName+": "+message, ctx)
}
