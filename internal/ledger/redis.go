package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"ecobid/internal/ledgererrors"
	model "ecobid/internal/models"
	"ecobid/utils"
)

// currentBidScript conditionally raises an auction's current bid.
//
//	KEYS[1] - auction hash key
//	ARGV[1] - new bid amount
//
// Returns 1 on success, 0 when the stored current bid is already at or above
// the new amount, -1 when the auction key does not exist.
var currentBidScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
    return -1
end

local current = tonumber(redis.call('HGET', KEYS[1], 'current_bid')) or 0
local amount = tonumber(ARGV[1])

if amount <= current then
    return 0
end

redis.call('HSET', KEYS[1], 'current_bid', ARGV[1])
return 1
`)

// RedisStore implements LedgerStore on Redis: auctions and wallets as hashes,
// bids/transactions/notifications as JSON records indexed by LPUSHed lists
// (newest first).
type RedisStore struct {
	client *redis.Client
	prefix string
}

type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces every key written by the store
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore creates a Redis-backed ledger instance
func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "ecobid:",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) auctionKey(id string) string    { return s.prefix + "auction:" + id }
func (s *RedisStore) auctionsKey() string            { return s.prefix + "auctions" }
func (s *RedisStore) auctionBidsKey(id string) string { return s.prefix + "auction:" + id + ":bids" }
func (s *RedisStore) walletKey(userID string) string { return s.prefix + "wallet:" + userID }
func (s *RedisStore) bidKey(id string) string        { return s.prefix + "bid:" + id }
func (s *RedisStore) userBidsKey(userID string) string { return s.prefix + "user:" + userID + ":bids" }
func (s *RedisStore) txnKey(id string) string        { return s.prefix + "txn:" + id }
func (s *RedisStore) userTxnsKey(userID string) string { return s.prefix + "user:" + userID + ":txns" }
func (s *RedisStore) notifKey(id string) string      { return s.prefix + "notif:" + id }
func (s *RedisStore) userNotifsKey(userID string) string {
	return s.prefix + "user:" + userID + ":notifs"
}

// GetAuction returns the auction with the given ID
func (s *RedisStore) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	fields, err := s.client.HGetAll(ctx, s.auctionKey(auctionID)).Result()
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, err)
	}
	if len(fields) == 0 {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, ledgererrors.ErrAuctionNotFound)
	}
	return auctionFromHash(auctionID, fields), nil
}

// ListAuctions returns all auctions, newest first
func (s *RedisStore) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	ids, err := s.client.LRange(ctx, s.auctionsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}

	auctions := make([]model.Auction, 0, len(ids))
	for _, id := range ids {
		auction, err := s.GetAuction(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("list auctions: %w", err)
		}
		auctions = append(auctions, auction)
	}
	return auctions, nil
}

// CreateAuction stores a new auction, assigning ID, creation time and defaults
func (s *RedisStore) CreateAuction(ctx context.Context, auction model.Auction) (model.Auction, error) {
	applyAuctionDefaults(&auction)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.auctionKey(auction.AuctionID), auctionToHash(auction))
		pipe.LPush(ctx, s.auctionsKey(), auction.AuctionID)
		return nil
	})
	if err != nil {
		return model.Auction{}, fmt.Errorf("create auction %s: %w", auction.AuctionID, err)
	}
	return auction, nil
}

// UpdateAuctionCurrentBid conditionally raises the auction's current bid.
// The comparison and write run as one Lua script so concurrent bidders
// cannot overwrite a higher amount with a lower one.
func (s *RedisStore) UpdateAuctionCurrentBid(ctx context.Context, auctionID string, amount float64) error {
	status, err := currentBidScript.Run(ctx, s.client, []string{s.auctionKey(auctionID)}, formatAmount(amount)).Int()
	if err != nil {
		return fmt.Errorf("update current bid for auction %s: %w", auctionID, err)
	}

	switch status {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("update current bid for auction %s to %.2f: %w", auctionID, amount, ledgererrors.ErrBidSuperseded)
	default:
		return fmt.Errorf("update current bid for auction %s: %w", auctionID, ledgererrors.ErrAuctionNotFound)
	}
}

// GetWallet returns the wallet for the given user
func (s *RedisStore) GetWallet(ctx context.Context, userID string) (model.Wallet, error) {
	fields, err := s.client.HGetAll(ctx, s.walletKey(userID)).Result()
	if err != nil {
		return model.Wallet{}, fmt.Errorf("get wallet for user %s: %w", userID, err)
	}
	if len(fields) == 0 {
		return model.Wallet{}, fmt.Errorf("get wallet for user %s: %w", userID, ledgererrors.ErrWalletNotFound)
	}

	return model.Wallet{
		UserID:        userID,
		WalletBalance: parseAmount(fields["wallet_balance"]),
		EMDBlocked:    parseAmount(fields["emd_blocked"]),
	}, nil
}

// CreateWallet stores a wallet record for a user
func (s *RedisStore) CreateWallet(ctx context.Context, wallet model.Wallet) error {
	err := s.client.HSet(ctx, s.walletKey(wallet.UserID), map[string]string{
		"wallet_balance": formatAmount(wallet.WalletBalance),
		"emd_blocked":    formatAmount(wallet.EMDBlocked),
	}).Err()
	if err != nil {
		return fmt.Errorf("create wallet for user %s: %w", wallet.UserID, err)
	}
	return nil
}

// AdjustWalletBalance applies a delta to the user's wallet balance
func (s *RedisStore) AdjustWalletBalance(ctx context.Context, userID string, delta float64) (model.Wallet, error) {
	return s.adjustWalletField(ctx, userID, "wallet_balance", delta)
}

// AdjustWalletEMDBlocked applies a delta to the user's blocked EMD
func (s *RedisStore) AdjustWalletEMDBlocked(ctx context.Context, userID string, delta float64) (model.Wallet, error) {
	return s.adjustWalletField(ctx, userID, "emd_blocked", delta)
}

func (s *RedisStore) adjustWalletField(ctx context.Context, userID, field string, delta float64) (model.Wallet, error) {
	key := s.walletKey(userID)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return model.Wallet{}, fmt.Errorf("adjust %s for user %s: %w", field, userID, err)
	}
	if exists == 0 {
		return model.Wallet{}, fmt.Errorf("adjust %s for user %s: %w", field, userID, ledgererrors.ErrWalletNotFound)
	}

	if err := s.client.HIncrByFloat(ctx, key, field, delta).Err(); err != nil {
		return model.Wallet{}, fmt.Errorf("adjust %s for user %s: %w", field, userID, err)
	}
	return s.GetWallet(ctx, userID)
}

// InsertBid records a bid against an existing auction, assigning ID and time
func (s *RedisStore) InsertBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	exists, err := s.client.Exists(ctx, s.auctionKey(bid.AuctionID)).Result()
	if err != nil {
		return model.Bid{}, fmt.Errorf("insert bid for auction %s: %w", bid.AuctionID, err)
	}
	if exists == 0 {
		return model.Bid{}, fmt.Errorf("insert bid for auction %s: %w", bid.AuctionID, ledgererrors.ErrAuctionNotFound)
	}

	bid.BidID = utils.GenerateID()
	bid.CreatedAt = time.Now().UTC()

	payload, err := json.Marshal(bid)
	if err != nil {
		return model.Bid{}, fmt.Errorf("insert bid for auction %s: %w", bid.AuctionID, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.bidKey(bid.BidID), payload, 0)
		pipe.LPush(ctx, s.auctionBidsKey(bid.AuctionID), bid.BidID)
		pipe.LPush(ctx, s.userBidsKey(bid.BidderID), bid.BidID)
		return nil
	})
	if err != nil {
		return model.Bid{}, fmt.Errorf("insert bid for auction %s: %w", bid.AuctionID, err)
	}
	return bid, nil
}

// BidsByAuction returns all bids on an auction, newest first
func (s *RedisStore) BidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	return s.bidsByIndex(ctx, s.auctionBidsKey(auctionID))
}

// BidsByBidder returns all bids placed by a user, newest first
func (s *RedisStore) BidsByBidder(ctx context.Context, bidderID string) ([]model.Bid, error) {
	return s.bidsByIndex(ctx, s.userBidsKey(bidderID))
}

func (s *RedisStore) bidsByIndex(ctx context.Context, indexKey string) ([]model.Bid, error) {
	ids, err := s.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read bid index %s: %w", indexKey, err)
	}

	bids := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		var bid model.Bid
		if err := s.getJSON(ctx, s.bidKey(id), &bid); err != nil {
			return nil, fmt.Errorf("read bid %s: %w", id, err)
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

// MarkAuctionBidsOutbid flips every Leading bid on the auction to Outbid
func (s *RedisStore) MarkAuctionBidsOutbid(ctx context.Context, auctionID string) error {
	bids, err := s.BidsByAuction(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("mark bids outbid for auction %s: %w", auctionID, err)
	}

	for _, bid := range bids {
		if bid.Status != model.BidLeading {
			continue
		}
		bid.Status = model.BidOutbid
		payload, err := json.Marshal(bid)
		if err != nil {
			return fmt.Errorf("mark bids outbid for auction %s: %w", auctionID, err)
		}
		if err := s.client.Set(ctx, s.bidKey(bid.BidID), payload, 0).Err(); err != nil {
			return fmt.Errorf("mark bids outbid for auction %s: %w", auctionID, err)
		}
	}
	return nil
}

// InsertTransaction records a wallet movement for an existing user
func (s *RedisStore) InsertTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	if txn.Amount <= 0 {
		return model.Transaction{}, fmt.Errorf("insert transaction for user %s: %w", txn.UserID, ledgererrors.ErrInvalidAmount)
	}
	if err := s.requireWallet(ctx, txn.UserID); err != nil {
		return model.Transaction{}, fmt.Errorf("insert transaction for user %s: %w", txn.UserID, err)
	}

	txn.TransactionID = utils.GenerateID()
	txn.CreatedAt = time.Now().UTC()

	payload, err := json.Marshal(txn)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("insert transaction for user %s: %w", txn.UserID, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.txnKey(txn.TransactionID), payload, 0)
		pipe.LPush(ctx, s.userTxnsKey(txn.UserID), txn.TransactionID)
		return nil
	})
	if err != nil {
		return model.Transaction{}, fmt.Errorf("insert transaction for user %s: %w", txn.UserID, err)
	}
	return txn, nil
}

// TransactionsByUser returns a user's transactions, newest first
func (s *RedisStore) TransactionsByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	ids, err := s.client.LRange(ctx, s.userTxnsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list transactions for user %s: %w", userID, err)
	}

	txns := make([]model.Transaction, 0, len(ids))
	for _, id := range ids {
		var txn model.Transaction
		if err := s.getJSON(ctx, s.txnKey(id), &txn); err != nil {
			return nil, fmt.Errorf("read transaction %s: %w", id, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// InsertNotification records a notification for an existing user
func (s *RedisStore) InsertNotification(ctx context.Context, notif model.Notification) (model.Notification, error) {
	if err := s.requireWallet(ctx, notif.UserID); err != nil {
		return model.Notification{}, fmt.Errorf("insert notification for user %s: %w", notif.UserID, err)
	}

	notif.NotificationID = utils.GenerateID()
	notif.CreatedAt = time.Now().UTC()

	payload, err := json.Marshal(notif)
	if err != nil {
		return model.Notification{}, fmt.Errorf("insert notification for user %s: %w", notif.UserID, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.notifKey(notif.NotificationID), payload, 0)
		pipe.LPush(ctx, s.userNotifsKey(notif.UserID), notif.NotificationID)
		return nil
	})
	if err != nil {
		return model.Notification{}, fmt.Errorf("insert notification for user %s: %w", notif.UserID, err)
	}
	return notif, nil
}

// NotificationsByUser returns a user's notifications, newest first
func (s *RedisStore) NotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	ids, err := s.client.LRange(ctx, s.userNotifsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list notifications for user %s: %w", userID, err)
	}

	notifs := make([]model.Notification, 0, len(ids))
	for _, id := range ids {
		var notif model.Notification
		if err := s.getJSON(ctx, s.notifKey(id), &notif); err != nil {
			return nil, fmt.Errorf("read notification %s: %w", id, err)
		}
		notifs = append(notifs, notif)
	}
	return notifs, nil
}

// MarkNotificationsRead marks every notification for the user as read
func (s *RedisStore) MarkNotificationsRead(ctx context.Context, userID string) error {
	notifs, err := s.NotificationsByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("mark notifications read for user %s: %w", userID, err)
	}

	for _, notif := range notifs {
		if notif.Read {
			continue
		}
		notif.Read = true
		payload, err := json.Marshal(notif)
		if err != nil {
			return fmt.Errorf("mark notifications read for user %s: %w", userID, err)
		}
		if err := s.client.Set(ctx, s.notifKey(notif.NotificationID), payload, 0).Err(); err != nil {
			return fmt.Errorf("mark notifications read for user %s: %w", userID, err)
		}
	}
	return nil
}

func (s *RedisStore) requireWallet(ctx context.Context, userID string) error {
	exists, err := s.client.Exists(ctx, s.walletKey(userID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ledgererrors.ErrWalletNotFound
	}
	return nil
}

func (s *RedisStore) getJSON(ctx context.Context, key string, dest any) error {
	payload, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(payload), dest)
}

func auctionToHash(a model.Auction) map[string]string {
	return map[string]string{
		"title":       a.Title,
		"category":    a.Category,
		"description": a.Description,
		"base_price":  formatAmount(a.BasePrice),
		"current_bid": formatAmount(a.CurrentBid),
		"quantity":    a.Quantity,
		"location":    a.Location,
		"image_url":   a.ImageURL,
		"ends_at":     a.EndsAt.UTC().Format(time.RFC3339Nano),
		"status":      string(a.Status),
		"seller_id":   a.SellerID,
		"created_at":  a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func auctionFromHash(auctionID string, fields map[string]string) model.Auction {
	endsAt, _ := time.Parse(time.RFC3339Nano, fields["ends_at"])
	createdAt, _ := time.Parse(time.RFC3339Nano, fields["created_at"])

	return model.Auction{
		AuctionID:   auctionID,
		Title:       fields["title"],
		Category:    fields["category"],
		Description: fields["description"],
		BasePrice:   parseAmount(fields["base_price"]),
		CurrentBid:  parseAmount(fields["current_bid"]),
		Quantity:    fields["quantity"],
		Location:    fields["location"],
		ImageURL:    fields["image_url"],
		EndsAt:      endsAt,
		Status:      model.AuctionStatus(fields["status"]),
		SellerID:    fields["seller_id"],
		CreatedAt:   createdAt,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseAmount(v string) float64 {
	f, _ := strconv.ParseFloat(v, 64)
	return f
}
