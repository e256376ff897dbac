package bidding

import (
	"context"
	"fmt"

	"ecobid/internal/emd"
	"ecobid/internal/ledger"
	"ecobid/internal/ledgererrors"
	"ecobid/internal/models"
)

// descriptionTitleLen is how much of the auction title the EMD transaction
// description keeps. Display convention only; stored titles are not limited.
const descriptionTitleLen = 15

// BiddingService runs the bid placement workflow against the ledger
type BiddingService struct {
	store ledger.LedgerStore
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(store ledger.LedgerStore) *BiddingService {
	return &BiddingService{
		store: store,
	}
}

// PlaceBid validates a bid against the auction's current price and the
// bidder's available balance, then commits it: the auction's current bid is
// raised first (conditionally, so a concurrent higher bid cannot be
// overwritten), the 5% EMD is blocked on the wallet, and the transaction,
// notification and bid records are written. The bid record lands last so a
// partial failure never claims a bid that did not fully happen. Auction and
// wallet are re-read on every call; nothing is cached between invocations.
func (s *BiddingService) PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (models.Bid, error) {
	if auctionID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or bidderID", ledgererrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", ledgererrors.ErrInvalidBid)
	}

	auction, err := s.store.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	wallet, err := s.store.GetWallet(ctx, bidderID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load wallet for user %s: %w", bidderID, err)
	}

	// Equal to the current bid is rejected; strictly greater is required.
	if amount <= auction.CurrentBid {
		return models.Bid{}, fmt.Errorf("service: %w", &ledgererrors.BidTooLowError{CurrentBid: auction.CurrentBid})
	}

	emdAmount := emd.RequiredDeposit(amount)
	available := emd.AvailableBalance(wallet)
	if available < emdAmount {
		return models.Bid{}, fmt.Errorf("service: %w", &ledgererrors.InsufficientFundsError{
			Required:  emdAmount,
			Available: available,
		})
	}

	// Commit. The current bid must be durable before success is reported;
	// a concurrent higher bid surfaces here as ErrBidSuperseded.
	if err := s.store.UpdateAuctionCurrentBid(ctx, auctionID, amount); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to raise current bid on auction %s: %w", auctionID, err)
	}

	if err := s.store.MarkAuctionBidsOutbid(ctx, auctionID); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to outbid previous bids on auction %s: %w", auctionID, err)
	}

	if _, err := s.store.AdjustWalletEMDBlocked(ctx, bidderID, emdAmount); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to block EMD for user %s: %w", bidderID, err)
	}

	_, err = s.store.InsertTransaction(ctx, models.Transaction{
		UserID:      bidderID,
		Type:        models.TransactionDebit,
		Amount:      emdAmount,
		Description: fmt.Sprintf("EMD Block - %s...", truncate(auction.Title, descriptionTitleLen)),
		Status:      models.TransactionPending,
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record EMD transaction for user %s: %w", bidderID, err)
	}

	_, err = s.store.InsertNotification(ctx, models.Notification{
		UserID:  bidderID,
		Type:    models.NotificationSuccess,
		Title:   "Bid Placed Successfully",
		Message: fmt.Sprintf("You are now leading for %q with ₹%.0f.", auction.Title, amount),
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record notification for user %s: %w", bidderID, err)
	}

	bid, err := s.store.InsertBid(ctx, models.Bid{
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		Status:    models.BidLeading,
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", auctionID, bidderID, err)
	}

	return bid, nil
}

// GetAuctions returns all auction listings, newest first
func (s *BiddingService) GetAuctions(ctx context.Context) ([]models.Auction, error) {
	auctions, err := s.store.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// GetBidsForAuction returns all bids on a specific auction
func (s *BiddingService) GetBidsForAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", ledgererrors.ErrInvalidBid)
	}

	bids, err := s.store.BidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetBidsByBidder returns all bids a user has placed
func (s *BiddingService) GetBidsByBidder(ctx context.Context, bidderID string) ([]models.Bid, error) {
	if bidderID == "" {
		return nil, fmt.Errorf("service: %w - empty bidder ID", ledgererrors.ErrInvalidBid)
	}

	bids, err := s.store.BidsByBidder(ctx, bidderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", bidderID, err)
	}
	return bids, nil
}

// truncate keeps the first n characters of a title for display strings
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
