package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecobid/internal/ledgererrors"
	model "ecobid/internal/models"
	"ecobid/services/auctions/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids", handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name            string
		requestBody     any
		mockSetup       func()
		expectedStatus  int
		expectedMsg     string
		validateData    func(t *testing.T, data map[string]any)
		validateDetails func(t *testing.T, details map[string]any)
	}{
		{
			name: "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    10500,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", 10500.0).
					Return(model.Bid{
						BidID:     uuid.NewString(),
						AuctionID: "auction1",
						BidderID:  "user1",
						Amount:    10500.0,
						Status:    model.BidLeading,
						CreatedAt: now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				bidID := data["bid_id"].(string)
				require.NotEmpty(t, bidID)
				_, parseErr := uuid.Parse(bidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, "auction1", data["auction_id"])
				require.Equal(t, "user1", data["bidder_id"])
				require.Equal(t, 10500.0, data["amount"])
				require.Equal(t, "Leading", data["status"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_auction_id",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "",
				BidderID:  "user1",
				Amount:    10500,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_bidder_id",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "",
				Amount:    10500,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "invalid_amount_zero",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    0,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "negative_amount",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    -10,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_auction_not_found",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "ghost",
				BidderID:  "user1",
				Amount:    10500,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "ghost", "user1", 10500.0).
					Return(model.Bid{}, ledgererrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
		{
			name: "service_bid_too_low",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    9800,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", 9800.0).
					Return(model.Bid{}, fmt.Errorf("service: %w", &ledgererrors.BidTooLowError{CurrentBid: 10000}))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
			validateDetails: func(t *testing.T, details map[string]any) {
				require.Equal(t, 10000.0, details["current_bid"])
			},
		},
		{
			name: "service_bid_superseded",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    10500,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", 10500.0).
					Return(model.Bid{}, ledgererrors.ErrBidSuperseded)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid superseded by a higher bid",
		},
		{
			name: "service_insufficient_funds",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user2",
				Amount:    10500,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user2", 10500.0).
					Return(model.Bid{}, fmt.Errorf("service: %w", &ledgererrors.InsufficientFundsError{
						Required:  525,
						Available: 400,
					}))
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedMsg:    "insufficient available balance for EMD",
			validateDetails: func(t *testing.T, details map[string]any) {
				require.Equal(t, 525.0, details["required_emd"])
				require.Equal(t, 400.0, details["available_balance"])
				require.Equal(t, 125.0, details["shortfall"])
			},
		},
		{
			name: "service_generic_error",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction1",
				BidderID:  "user1",
				Amount:    10500,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "auction1", "user1", 10500.0).
					Return(model.Bid{}, errors.New("something went wrong"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			var body []byte
			switch v := tc.requestBody.(type) {
			case string:
				body = []byte(v)
			default:
				var err error
				body, err = json.Marshal(v)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/bids", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, tc.expectedMsg, resp["message"])

			if tc.validateData != nil {
				data, ok := resp["data"].(map[string]any)
				require.True(t, ok, "response should carry a data object")
				tc.validateData(t, data)
			}
			if tc.validateDetails != nil {
				details, ok := resp["details"].(map[string]any)
				require.True(t, ok, "response should carry a details object")
				tc.validateDetails(t, details)
			}
		})
	}
}

// Test ListAuctionsHandler
func TestListAuctionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions", handler.ListAuctionsHandler)

	auctions := []model.Auction{
		{
			AuctionID:  "auction1",
			Title:      "Mixed Office Paper Bales",
			Category:   "Paper & Cardboard",
			BasePrice:  10000,
			CurrentBid: 10500,
			Quantity:   "2 Tons",
			EndsAt:     time.Now().UTC().Add(90 * time.Minute),
			Status:     model.AuctionActive,
		},
	}

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "auctions_present",
			mockSetup: func() {
				mockService.EXPECT().GetAuctions(gomock.Any()).Return(auctions, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name: "no_auctions",
			mockSetup: func() {
				mockService.EXPECT().GetAuctions(gomock.Any()).Return([]model.Auction{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name: "service_error",
			mockSetup: func() {
				mockService.EXPECT().GetAuctions(gomock.Any()).Return(nil, errors.New("db failure"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedStatus != http.StatusOK {
				return
			}

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			data, ok := resp["data"].([]any)
			require.True(t, ok, "response should carry a data array")
			require.Len(t, data, tc.expectedCount)

			if tc.expectedCount > 0 {
				first := data[0].(map[string]any)
				require.Equal(t, "auction1", first["auction_id"])
				require.Equal(t, 10500.0, first["current_bid"])
				require.InDelta(t, 89, first["ends_in_minutes"], 1)
			}
		})
	}
}

// Test GetBidsByAuctionHandler
func TestGetBidsByAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions/:auction_id/bids", handler.GetBidsByAuctionHandler)

	now := time.Now().UTC()
	bids := []model.Bid{
		{BidID: "bid2", AuctionID: "auction1", BidderID: "user2", Amount: 11200, Status: model.BidLeading, CreatedAt: now},
		{BidID: "bid1", AuctionID: "auction1", BidderID: "user1", Amount: 10500, Status: model.BidOutbid, CreatedAt: now.Add(-time.Minute)},
	}

	tests := []struct {
		name           string
		auctionID      string
		mockSetup      func()
		expectedStatus int
		expectedCount  int
	}{
		{
			name:      "auction_with_bids",
			auctionID: "auction1",
			mockSetup: func() {
				mockService.EXPECT().GetBidsForAuction(gomock.Any(), "auction1").Return(bids, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:      "service_error",
			auctionID: "auction2",
			mockSetup: func() {
				mockService.EXPECT().GetBidsForAuction(gomock.Any(), "auction2").Return(nil, errors.New("db failure"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/auctions/"+tc.auctionID+"/bids", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedStatus != http.StatusOK {
				return
			}

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			data, ok := resp["data"].([]any)
			require.True(t, ok)
			require.Len(t, data, tc.expectedCount)

			first := data[0].(map[string]any)
			require.Equal(t, "bid2", first["bid_id"])
			require.Equal(t, "Leading", first["status"])
		})
	}
}

// Test GetBidsByBidderHandler
func TestGetBidsByBidderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/:user_id/bids", handler.GetBidsByBidderHandler)

	bids := []model.Bid{
		{BidID: "bid1", AuctionID: "auction1", BidderID: "user1", Amount: 10500, Status: model.BidLeading, CreatedAt: time.Now().UTC()},
	}

	mockService.EXPECT().GetBidsByBidder(gomock.Any(), "user1").Return(bids, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/user1/bids", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data, ok := resp["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	first := data[0].(map[string]any)
	require.Equal(t, "bid1", first["bid_id"])
	require.Equal(t, "user1", first["bidder_id"])
}
