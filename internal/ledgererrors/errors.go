package ledgererrors

import (
	"errors"
	"fmt"
)

// Ledger-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrWalletNotFound  = errors.New("wallet not found")
	ErrBidSuperseded   = errors.New("bid superseded by a higher bid")
)

// business logic errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient available balance")
)

// BidTooLowError rejects a bid at or below the auction's current price.
// Carries the current bid so callers can suggest a higher amount.
type BidTooLowError struct {
	CurrentBid float64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid amount too low: current bid is %.2f", e.CurrentBid)
}

func (e *BidTooLowError) Unwrap() error { return ErrBidTooLow }

// InsufficientFundsError rejects a bid whose EMD exceeds the bidder's
// available balance. Carries the required and available amounts so callers
// can report the exact shortfall.
type InsufficientFundsError struct {
	Required  float64
	Available float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient available balance for EMD: need %.2f, have %.2f", e.Required, e.Available)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }

// Shortfall returns the amount the user must add before the bid can succeed.
func (e *InsufficientFundsError) Shortfall() float64 {
	return e.Required - e.Available
}
