package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	model "ecobid/internal/models"
	"ecobid/services/auctions/helpers"
	"ecobid/utils"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_service.go -package=handler

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (model.Bid, error)
	GetAuctions(ctx context.Context) ([]model.Auction, error)
	GetBidsForAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
	GetBidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error)
}

type AuctionHandler struct {
	service BiddingServiceInterface
}

func NewAuctionHandler(service BiddingServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), req.AuctionID, req.BidderID, req.Amount)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONErrorWithDetails(c, status, fmt.Errorf("%s: %w", message, err), message, utils.ErrorDetails(err))
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": req.AuctionID,
			"bidder_id":  req.BidderID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid placed successfully")
	utils.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.GetAuctions(c.Request.Context())
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error retrieving auctions", map[string]any{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	resp := lo.Map(auctions, func(a model.Auction, _ int) helpers.AuctionResponse {
		return helpers.NewAuctionResponse(a, now)
	})

	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
	utils.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetBidsForAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByAuctionHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := lo.Map(bids, func(b model.Bid, _ int) helpers.BidResponse {
		return helpers.NewBidResponse(b)
	})

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	utils.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetBidsByBidderHandler handles GET /users/:user_id/bids
func (h *AuctionHandler) GetBidsByBidderHandler(c *gin.Context) {
	bidderID := c.Param("user_id")
	bids, err := h.service.GetBidsByBidder(c.Request.Context(), bidderID)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByBidderHandler: error retrieving bids", map[string]any{"user_id": bidderID, "error": err.Error()})
		return
	}

	resp := lo.Map(bids, func(b model.Bid, _ int) helpers.BidResponse {
		return helpers.NewBidResponse(b)
	})

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	utils.LogSuccess("GetBidsByBidderHandler", "bids retrieved successfully", map[string]any{
		"user_id": bidderID,
		"count":   len(resp),
	})
}
