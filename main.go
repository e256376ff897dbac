package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	bidding "ecobid/internal/biddingService"
	"ecobid/internal/config"
	"ecobid/internal/ledger"
	model "ecobid/internal/models"
	"ecobid/internal/server"
	wallet "ecobid/internal/walletService"
	"ecobid/utils"
)

func main() {
	cfg := config.Load()

	store, err := buildStore(cfg.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize ledger store: %v\n", err)
		os.Exit(1)
	}

	biddingSvc := bidding.NewBiddingService(store)
	walletSvc := wallet.NewWalletService(store)

	router := server.SetupRouter(biddingSvc, walletSvc)

	fmt.Printf("Starting EcoBid exchange server on %s (store: %s)...\n", cfg.ServerAddr, cfg.Store.Backend)
	if err := router.Run(cfg.ServerAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildStore constructs the configured ledger backend
func buildStore(cfg config.StoreConfig) (ledger.LedgerStore, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		store := ledger.NewMemoryStore()
		prepopulate(store)
		return store, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		utils.Info("redis ledger initialized", map[string]any{
			"addr":   cfg.Redis.Addr,
			"db":     cfg.Redis.DB,
			"prefix": cfg.Redis.KeyPrefix,
		})
		return ledger.NewRedisStore(client, ledger.WithKeyPrefix(cfg.Redis.KeyPrefix)), nil

	case config.BackendPostgres:
		db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("postgres connection failed: %w", err)
		}

		utils.Info("postgres ledger initialized", map[string]any{
			"host":     cfg.Postgres.Host,
			"database": cfg.Postgres.Database,
		})
		return ledger.NewGormStore(db)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// prepopulate adds sample auctions and wallets to the in-memory store
func prepopulate(store *ledger.MemoryStore) {
	ctx := context.Background()

	auctions := []model.Auction{
		{
			AuctionID: "auction1",
			Title:     "Mixed Office Paper Bales",
			Category:  "Paper & Cardboard",
			BasePrice: 10000,
			Quantity:  "2 Tons",
			Location:  "Pune, MH",
			EndsAt:    time.Now().UTC().Add(24 * time.Hour),
			SellerID:  "seller1",
		},
		{
			AuctionID: "auction2",
			Title:     "HDPE Drum Regrind",
			Category:  "Plastic Scrap",
			BasePrice: 18500,
			Quantity:  "500 Kg",
			Location:  "Nashik, MH",
			EndsAt:    time.Now().UTC().Add(48 * time.Hour),
			SellerID:  "seller1",
		},
		{
			AuctionID: "auction3",
			Title:     "Decommissioned Server Lot",
			Category:  "E-Waste",
			BasePrice: 42000,
			Quantity:  "1.2 Tons",
			Location:  "Bengaluru, KA",
			EndsAt:    time.Now().UTC().Add(72 * time.Hour),
			SellerID:  "seller2",
		},
	}

	for _, auction := range auctions {
		store.CreateAuction(ctx, auction)
	}

	store.CreateWallet(ctx, model.Wallet{UserID: "user1", WalletBalance: 50000})
	store.CreateWallet(ctx, model.Wallet{UserID: "user2", WalletBalance: 20000})
}
