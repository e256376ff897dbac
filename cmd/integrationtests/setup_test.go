package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	bidding "ecobid/internal/biddingService"
	"ecobid/internal/ledger"
	model "ecobid/internal/models"
	"ecobid/internal/server"
	wallet "ecobid/internal/walletService"

	"github.com/gin-gonic/gin"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// SetupTestRouter initializes the router with an in-memory ledger seeded with
// the given auctions and wallets, and returns the store for direct assertions.
func SetupTestRouter(t *testing.T, auctions []model.Auction, wallets []model.Wallet) (*gin.Engine, *ledger.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	store := ledger.NewMemoryStore()

	for _, auction := range auctions {
		if _, err := store.CreateAuction(ctx, auction); err != nil {
			t.Fatalf("failed to seed auction: %v", err)
		}
	}

	for _, w := range wallets {
		if err := store.CreateWallet(ctx, w); err != nil {
			t.Fatalf("failed to seed wallet: %v", err)
		}
	}

	biddingService := bidding.NewBiddingService(store)
	walletService := wallet.NewWalletService(store)
	router := server.SetupRouter(biddingService, walletService)
	return router, store
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
