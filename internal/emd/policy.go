package emd

import (
	"math"

	"ecobid/internal/models"
)

// DepositRate is the fixed Earnest Money Deposit fraction of a bid amount.
const DepositRate = 0.05

// RequiredDeposit returns the EMD that must be held to place a bid of the
// given amount. The figure is truncated, not rounded, to match displayed
// deposit amounts.
func RequiredDeposit(bidAmount float64) float64 {
	return math.Floor(bidAmount * DepositRate)
}

// AvailableBalance returns the portion of a wallet usable for new EMD holds.
// The result is not clamped: callers compare against the required deposit so
// an exact shortfall can be reported.
func AvailableBalance(w models.Wallet) float64 {
	return w.WalletBalance - w.EMDBlocked
}
