package bidding

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecobid/internal/ledger"
	"ecobid/internal/ledgererrors"
	model "ecobid/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func activeAuction() model.Auction {
	return model.Auction{
		AuctionID:  "auction1",
		Title:      "Mixed Office Paper Bales",
		Category:   "Paper & Cardboard",
		BasePrice:  10000,
		CurrentBid: 10000,
		Quantity:   "2 Tons",
		Status:     model.AuctionActive,
	}
}

// Tests PlaceBid
func TestBiddingService_PlaceBid(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	// Table-driven test cases
	tests := []struct {
		name          string
		auctionID     string
		bidderID      string
		amount        float64
		mockSetup     func(store *ledger.MockLedgerStore)
		expectError   bool
		expectedError error
	}{
		{
			name:      "valid_first_bid",
			auctionID: "auction1",
			bidderID:  "user1",
			amount:    10500,
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().GetAuction(ctx, "auction1").Return(activeAuction(), nil)
				store.EXPECT().GetWallet(ctx, "user1").Return(model.Wallet{UserID: "user1", WalletBalance: 50000}, nil)
				store.EXPECT().UpdateAuctionCurrentBid(ctx, "auction1", 10500.0).Return(nil)
				store.EXPECT().MarkAuctionBidsOutbid(ctx, "auction1").Return(nil)
				store.EXPECT().AdjustWalletEMDBlocked(ctx, "user1", 525.0).
					Return(model.Wallet{UserID: "user1", WalletBalance: 50000, EMDBlocked: 525}, nil)
				store.EXPECT().InsertTransaction(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, txn model.Transaction) (model.Transaction, error) {
						require.Equal(t, "user1", txn.UserID)
						require.Equal(t, model.TransactionDebit, txn.Type)
						require.Equal(t, 525.0, txn.Amount)
						require.Equal(t, "EMD Block - Mixed Office Pa...", txn.Description)
						require.Equal(t, model.TransactionPending, txn.Status)
						return txn, nil
					})
				store.EXPECT().InsertNotification(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, notif model.Notification) (model.Notification, error) {
						require.Equal(t, "user1", notif.UserID)
						require.Equal(t, model.NotificationSuccess, notif.Type)
						require.Equal(t, "Bid Placed Successfully", notif.Title)
						return notif, nil
					})
				store.EXPECT().InsertBid(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, bid model.Bid) (model.Bid, error) {
						bid.BidID = uuid.NewString()
						bid.CreatedAt = time.Now().UTC()
						return bid, nil
					})
			},
			expectError: false,
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			bidderID:      "user1",
			amount:        10500,
			mockSetup:     func(*ledger.MockLedgerStore) {},
			expectError:   true,
			expectedError: ledgererrors.ErrInvalidBid,
		},
		{
			name:          "empty_bidderID",
			auctionID:     "auction1",
			bidderID:      "",
			amount:        10500,
			mockSetup:     func(*ledger.MockLedgerStore) {},
			expectError:   true,
			expectedError: ledgererrors.ErrInvalidBid,
		},
		{
			name:          "zero_amount",
			auctionID:     "auction1",
			bidderID:      "user1",
			amount:        0,
			mockSetup:     func(*ledger.MockLedgerStore) {},
			expectError:   true,
			expectedError: ledgererrors.ErrInvalidBid,
		},
		{
			name:      "auction_missing",
			auctionID: "ghost",
			bidderID:  "user1",
			amount:    10500,
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().GetAuction(ctx, "ghost").Return(model.Auction{}, ledgererrors.ErrAuctionNotFound)
			},
			expectError:   true,
			expectedError: ledgererrors.ErrAuctionNotFound,
		},
		{
			name:      "wallet_missing",
			auctionID: "auction1",
			bidderID:  "ghost",
			amount:    10500,
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().GetAuction(ctx, "auction1").Return(activeAuction(), nil)
				store.EXPECT().GetWallet(ctx, "ghost").Return(model.Wallet{}, ledgererrors.ErrWalletNotFound)
			},
			expectError:   true,
			expectedError: ledgererrors.ErrWalletNotFound,
		},
		{
			// No commit calls expected: a rejected bid leaves no trace.
			name:      "bid_below_current",
			auctionID: "auction1",
			bidderID:  "user1",
			amount:    9800,
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().GetAuction(ctx, "auction1").Return(activeAuction(), nil)
				store.EXPECT().GetWallet(ctx, "user1").Return(model.Wallet{UserID: "user1", WalletBalance: 50000}, nil)
			},
			expectError:   true,
			expectedError: ledgererrors.ErrBidTooLow,
		},
		{
			name:      "bid_equal_to_current",
			auctionID: "auction1",
			bidderID:  "user1",
			amount:    10000,
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().GetAuction(ctx, "auction1").Return(activeAuction(), nil)
				store.EXPECT().GetWallet(ctx, "user1").Return(model.Wallet{UserID: "user1", WalletBalance: 50000}, nil)
			},
			expectError:   true,
			expectedError: ledgererrors.ErrBidTooLow,
		},
		{
			// 525 EMD needed, only 400 free after the existing hold.
			name:      "insufficient_available_balance",
			auctionID: "auction1",
			bidderID:  "user2",
			amount:    10500,
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().GetAuction(ctx, "auction1").Return(activeAuction(), nil)
				store.EXPECT().GetWallet(ctx, "user2").
					Return(model.Wallet{UserID: "user2", WalletBalance: 1000, EMDBlocked: 600}, nil)
			},
			expectError:   true,
			expectedError: ledgererrors.ErrInsufficientFunds,
		},
		{
			name:      "concurrent_bid_superseded",
			auctionID: "auction1",
			bidderID:  "user1",
			amount:    10500,
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().GetAuction(ctx, "auction1").Return(activeAuction(), nil)
				store.EXPECT().GetWallet(ctx, "user1").Return(model.Wallet{UserID: "user1", WalletBalance: 50000}, nil)
				store.EXPECT().UpdateAuctionCurrentBid(ctx, "auction1", 10500.0).Return(ledgererrors.ErrBidSuperseded)
			},
			expectError:   true,
			expectedError: ledgererrors.ErrBidSuperseded,
		},
		{
			name:      "store_fails_mid_commit",
			auctionID: "auction1",
			bidderID:  "user1",
			amount:    10500,
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().GetAuction(ctx, "auction1").Return(activeAuction(), nil)
				store.EXPECT().GetWallet(ctx, "user1").Return(model.Wallet{UserID: "user1", WalletBalance: 50000}, nil)
				store.EXPECT().UpdateAuctionCurrentBid(ctx, "auction1", 10500.0).Return(nil)
				store.EXPECT().MarkAuctionBidsOutbid(ctx, "auction1").Return(nil)
				store.EXPECT().AdjustWalletEMDBlocked(ctx, "user1", 525.0).
					Return(model.Wallet{}, errors.New("store write failed"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps store error, we don't match specific error here
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := ledger.NewMockLedgerStore(ctrl)
			service := NewBiddingService(mockStore)

			tc.mockSetup(mockStore)

			bid, err := service.PlaceBid(ctx, tc.auctionID, tc.bidderID, tc.amount)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)

				// Validate generated BidID
				require.NotEmpty(t, bid.BidID)
				_, parseErr := uuid.Parse(bid.BidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")

				// Validate bid fields
				require.Equal(t, tc.auctionID, bid.AuctionID)
				require.Equal(t, tc.bidderID, bid.BidderID)
				require.Equal(t, tc.amount, bid.Amount)
				require.Equal(t, model.BidLeading, bid.Status)
				require.WithinDuration(t, now, bid.CreatedAt, 2*time.Second)
			}
		})
	}
}

// Tests that BidTooLow and InsufficientFunds carry the figures the API reports
func TestBiddingService_PlaceBid_ErrorDetails(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := ledger.NewMockLedgerStore(ctrl)
	service := NewBiddingService(mockStore)

	mockStore.EXPECT().GetAuction(ctx, "auction1").Return(activeAuction(), nil)
	mockStore.EXPECT().GetWallet(ctx, "user1").Return(model.Wallet{UserID: "user1", WalletBalance: 50000}, nil)

	_, err := service.PlaceBid(ctx, "auction1", "user1", 9800)
	var tooLow *ledgererrors.BidTooLowError
	require.ErrorAs(t, err, &tooLow)
	require.Equal(t, 10000.0, tooLow.CurrentBid)

	mockStore.EXPECT().GetAuction(ctx, "auction1").Return(activeAuction(), nil)
	mockStore.EXPECT().GetWallet(ctx, "user2").
		Return(model.Wallet{UserID: "user2", WalletBalance: 1000, EMDBlocked: 600}, nil)

	_, err = service.PlaceBid(ctx, "auction1", "user2", 10500)
	var short *ledgererrors.InsufficientFundsError
	require.ErrorAs(t, err, &short)
	require.Equal(t, 525.0, short.Required)
	require.Equal(t, 400.0, short.Available)
	require.Equal(t, 125.0, short.Shortfall())
}

// Tests GetAuctions
func TestBiddingService_GetAuctions(t *testing.T) {
	ctx := context.Background()

	listings := []model.Auction{activeAuction()}

	// Table-driven test cases
	tests := []struct {
		name        string
		mockSetup   func(store *ledger.MockLedgerStore)
		expectError bool
		expected    []model.Auction
	}{
		{
			name: "listings_present",
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().ListAuctions(ctx).Return(listings, nil)
			},
			expected: listings,
		},
		{
			name: "no_listings",
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().ListAuctions(ctx).Return([]model.Auction{}, nil)
			},
			expected: []model.Auction{},
		},
		{
			name: "store_error",
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().ListAuctions(ctx).Return(nil, errors.New("db failure"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := ledger.NewMockLedgerStore(ctrl)
			service := NewBiddingService(mockStore)

			tc.mockSetup(mockStore)

			auctions, err := service.GetAuctions(ctx)

			if tc.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expected, auctions)
			}
		})
	}
}

// Tests GetBidsForAuction
func TestBiddingService_GetBidsForAuction(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	bidsExample := []model.Bid{
		{BidID: "bid2", AuctionID: "auction1", BidderID: "user2", Amount: 11200, Status: model.BidLeading, CreatedAt: now.Add(time.Second)},
		{BidID: "bid1", AuctionID: "auction1", BidderID: "user1", Amount: 10500, Status: model.BidOutbid, CreatedAt: now},
	}

	// Table-driven test cases
	tests := []struct {
		name          string
		auctionID     string
		mockSetup     func(store *ledger.MockLedgerStore)
		expectError   bool
		expectedError error
		expectedBids  []model.Bid
	}{
		{
			name:      "auction_with_bids",
			auctionID: "auction1",
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().BidsByAuction(ctx, "auction1").Return(bidsExample, nil)
			},
			expectedBids: bidsExample,
		},
		{
			name:      "auction_without_bids",
			auctionID: "auction2",
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().BidsByAuction(ctx, "auction2").Return([]model.Bid{}, nil)
			},
			expectedBids: []model.Bid{},
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			mockSetup:     func(*ledger.MockLedgerStore) {},
			expectError:   true,
			expectedError: ledgererrors.ErrInvalidBid,
		},
		{
			name:      "store_error",
			auctionID: "auction3",
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().BidsByAuction(ctx, "auction3").Return(nil, errors.New("db failure"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := ledger.NewMockLedgerStore(ctrl)
			service := NewBiddingService(mockStore)

			tc.mockSetup(mockStore)

			bids, err := service.GetBidsForAuction(ctx, tc.auctionID)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expectedBids, bids)
			}
		})
	}
}

// Tests GetBidsByBidder
func TestBiddingService_GetBidsByBidder(t *testing.T) {
	ctx := context.Background()

	bidsExample := []model.Bid{
		{BidID: "bid1", AuctionID: "auction1", BidderID: "user1", Amount: 10500, Status: model.BidLeading},
	}

	// Table-driven test cases
	tests := []struct {
		name          string
		bidderID      string
		mockSetup     func(store *ledger.MockLedgerStore)
		expectError   bool
		expectedError error
		expectedBids  []model.Bid
	}{
		{
			name:     "bidder_with_bids",
			bidderID: "user1",
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().BidsByBidder(ctx, "user1").Return(bidsExample, nil)
			},
			expectedBids: bidsExample,
		},
		{
			name:          "empty_bidderID",
			bidderID:      "",
			mockSetup:     func(*ledger.MockLedgerStore) {},
			expectError:   true,
			expectedError: ledgererrors.ErrInvalidBid,
		},
		{
			name:     "store_error",
			bidderID: "user3",
			mockSetup: func(store *ledger.MockLedgerStore) {
				store.EXPECT().BidsByBidder(ctx, "user3").Return(nil, errors.New("db failure"))
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := ledger.NewMockLedgerStore(ctrl)
			service := NewBiddingService(mockStore)

			tc.mockSetup(mockStore)

			bids, err := service.GetBidsByBidder(ctx, tc.bidderID)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expectedBids, bids)
			}
		})
	}
}
