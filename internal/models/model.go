package models

import "time"

// AuctionStatus is the lifecycle state of an auction listing
type AuctionStatus string

const (
	AuctionActive AuctionStatus = "active"
	AuctionEnded  AuctionStatus = "ended"
)

// BidStatus tracks a bid relative to competing bids on the same auction
type BidStatus string

const (
	BidLeading BidStatus = "Leading"
	BidOutbid  BidStatus = "Outbid"
	BidWon     BidStatus = "Won"
)

// TransactionType distinguishes wallet credits from debits
type TransactionType string

const (
	TransactionCredit TransactionType = "Credit"
	TransactionDebit  TransactionType = "Debit"
)

// TransactionStatus is the settlement state of a wallet transaction
type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "Success"
	TransactionPending TransactionStatus = "Pending"
	TransactionHold    TransactionStatus = "Hold"
)

// NotificationType is the display category of a user notification
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// Auction represents a waste-material lot open for bidding
type Auction struct {
	AuctionID   string        `json:"auction_id" gorm:"column:auction_id;primaryKey"`
	Title       string        `json:"title" gorm:"type:varchar(255);not null"`
	Category    string        `json:"category" gorm:"type:varchar(64)"`
	Description string        `json:"description" gorm:"type:text"`
	BasePrice   float64       `json:"base_price" gorm:"not null"`
	CurrentBid  float64       `json:"current_bid" gorm:"not null"`
	Quantity    string        `json:"quantity" gorm:"type:varchar(64)"`
	Location    string        `json:"location" gorm:"type:varchar(255)"`
	ImageURL    string        `json:"image_url" gorm:"type:text"`
	EndsAt      time.Time     `json:"ends_at"`
	Status      AuctionStatus `json:"status" gorm:"type:varchar(16);not null"`
	SellerID    string        `json:"seller_id" gorm:"type:varchar(64);index"`
	CreatedAt   time.Time     `json:"created_at"`
}

// EndsInMinutes returns the whole minutes remaining until the auction closes,
// clamped at zero. Display-only; durable state keeps EndsAt.
func (a Auction) EndsInMinutes(now time.Time) int {
	if a.EndsAt.IsZero() || !now.Before(a.EndsAt) {
		return 0
	}
	return int(a.EndsAt.Sub(now).Minutes())
}

// Wallet is the funds ledger for one user. EMDBlocked is a hold, not a
// withdrawal: WalletBalance still includes the blocked portion.
type Wallet struct {
	UserID        string  `json:"user_id" gorm:"column:user_id;primaryKey"`
	WalletBalance float64 `json:"wallet_balance" gorm:"not null"`
	EMDBlocked    float64 `json:"emd_blocked" gorm:"column:emd_blocked;not null"`
}

// Bid represents a user's bid on an auction
type Bid struct {
	BidID     string    `json:"bid_id" gorm:"column:bid_id;primaryKey"`
	AuctionID string    `json:"auction_id" gorm:"type:varchar(64);index;not null"`
	BidderID  string    `json:"bidder_id" gorm:"type:varchar(64);index;not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Status    BidStatus `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Transaction records a wallet movement (top-up credit or EMD debit hold)
type Transaction struct {
	TransactionID string            `json:"transaction_id" gorm:"column:transaction_id;primaryKey"`
	UserID        string            `json:"user_id" gorm:"type:varchar(64);index;not null"`
	Type          TransactionType   `json:"type" gorm:"type:varchar(16);not null"`
	Amount        float64           `json:"amount" gorm:"not null"`
	Description   string            `json:"description" gorm:"type:text"`
	Status        TransactionStatus `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Notification is a user-facing event raised by the exchange
type Notification struct {
	NotificationID string           `json:"notification_id" gorm:"column:notification_id;primaryKey"`
	UserID         string           `json:"user_id" gorm:"type:varchar(64);index;not null"`
	Type           NotificationType `json:"type" gorm:"type:varchar(16);not null"`
	Title          string           `json:"title" gorm:"type:varchar(255)"`
	Message        string           `json:"message" gorm:"type:text"`
	Read           bool             `json:"read" gorm:"not null;default:false"`
	CreatedAt      time.Time        `json:"created_at"`
}
