package helpers

import (
	"time"

	model "ecobid/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string  `json:"auction_id" binding:"required"`
	BidderID  string  `json:"bidder_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID     string  `json:"auction_id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	BasePrice     float64 `json:"base_price"`
	CurrentBid    float64 `json:"current_bid"`
	Quantity      string  `json:"quantity"`
	Location      string  `json:"location"`
	ImageURL      string  `json:"image_url"`
	EndsAt        string  `json:"ends_at"`
	EndsInMinutes int     `json:"ends_in_minutes"`
	Status        string  `json:"status"`
	SellerID      string  `json:"seller_id"`
}

// NewBidResponse maps a bid record to its response shape
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		Status:    string(bid.Status),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewAuctionResponse maps an auction record to its response shape, deriving
// the minutes remaining at render time
func NewAuctionResponse(auction model.Auction, now time.Time) AuctionResponse {
	return AuctionResponse{
		AuctionID:     auction.AuctionID,
		Title:         auction.Title,
		Category:      auction.Category,
		Description:   auction.Description,
		BasePrice:     auction.BasePrice,
		CurrentBid:    auction.CurrentBid,
		Quantity:      auction.Quantity,
		Location:      auction.Location,
		ImageURL:      auction.ImageURL,
		EndsAt:        auction.EndsAt.UTC().Format(time.RFC3339),
		EndsInMinutes: auction.EndsInMinutes(now),
		Status:        string(auction.Status),
		SellerID:      auction.SellerID,
	}
}
