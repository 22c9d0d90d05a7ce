package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-settlement/internal/escrow"
	"marketplace-settlement/internal/events"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/server"
	"marketplace-settlement/internal/settlement"
	"marketplace-settlement/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	startTime uint64 = 1_700_000_000
	adminAddr        = "admin"
	treasury         = "treasury"
	custody          = "escrow"
)

var usdc = models.Asset{Contract: "usdc-contract", Symbol: "USDC"}

// TestEnv is a full settlement stack behind the HTTP router
type TestEnv struct {
	Router *gin.Engine
	Clock  *utils.FixedClock
	Ledger *escrow.Ledger
	Log    *events.Recorder
}

// SetupTestEnv initializes the router over an in-memory store, ledger and fixed clock.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &TestEnv{
		Clock:  utils.NewFixedClock(startTime),
		Ledger: escrow.NewLedger(),
		Log:    events.NewRecorder(),
	}
	market := settlement.New(settlement.Options{
		Store:         repository.NewMemoryStore(),
		Clock:         env.Clock,
		Events:        env.Log,
		Assets:        env.Ledger,
		Items:         env.Ledger,
		EscrowAccount: custody,
	})
	require.NoError(t, market.Initialize(settlement.Seeds{
		Admin:   adminAddr,
		Auction: models.DefaultAuctionConfig(),
		Fee:     models.DefaultFeeConfig(treasury),
		Dispute: models.DefaultDisputeConfig(),
	}))

	env.Router = server.SetupRouter(server.Options{
		Service:         market,
		Log:             env.Log,
		RateLimitLimit:  100_000,
		RateLimitPeriod: time.Minute,
	})
	return env
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

// Data returns the data object of a successful response
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return data
}
