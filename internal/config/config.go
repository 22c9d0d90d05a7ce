package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"marketplace-settlement/internal/escrow"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/utils"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds the process settings and the configuration seeds stored on first start
type Config struct {
	Env             string
	Port            string
	LogLevel        string
	StoreDriver     string
	DatabaseURL     string
	AdminAddress    string
	FeeRecipient    string
	EscrowAccount   string
	RateLimitLimit  int64
	RateLimitPeriod time.Duration

	Auction models.AuctionConfig
	Fee     models.FeeConfig
	Dispute models.DisputeConfig

	// DevHoldings and DevItems seed the in-process custody ledger outside production
	DevHoldings []escrow.Holding
	DevItems    []escrow.ItemHolding
}

// Load reads .env when present and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		utils.Debug("config: no .env file, using process environment", map[string]any{"error": err.Error()})
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (*Config, error) {
	env := getEnv("APP_ENV", "development")
	cfg := &Config{
		Env:           env,
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", DriverMemory)),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		AdminAddress:  getEnv("ADMIN_ADDRESS", ""),
		EscrowAccount: getEnv("ESCROW_ACCOUNT", "escrow"),
	}

	if cfg.AdminAddress == "" {
		if env == "production" {
			return nil, fmt.Errorf("config: ADMIN_ADDRESS is required in production")
		}
		cfg.AdminAddress = "admin"
		utils.Warn("config: using development admin address", map[string]any{"admin": cfg.AdminAddress})
	}
	cfg.FeeRecipient = getEnv("FEE_RECIPIENT", cfg.AdminAddress)

	switch cfg.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("config: DATABASE_URL is required for the postgres store")
		}
	default:
		return nil, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	var err error
	if cfg.RateLimitLimit, err = parseInt64("RATE_LIMIT_LIMIT", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimitPeriod, err = parseDuration("RATE_LIMIT_PERIOD", time.Minute); err != nil {
		return nil, err
	}

	cfg.Auction = models.DefaultAuctionConfig()
	cfg.Fee = models.DefaultFeeConfig(cfg.FeeRecipient)
	cfg.Dispute = models.DefaultDisputeConfig()

	if cfg.Auction.MinBidIncrementBps, err = parseUint64("AUCTION_MIN_BID_INCREMENT_BPS", cfg.Auction.MinBidIncrementBps); err != nil {
		return nil, err
	}
	if cfg.Auction.MaxAuctionDuration, err = parseUint64("AUCTION_MAX_DURATION", cfg.Auction.MaxAuctionDuration); err != nil {
		return nil, err
	}
	if cfg.Auction.ExtensionWindow, err = parseUint64("AUCTION_EXTENSION_WINDOW", cfg.Auction.ExtensionWindow); err != nil {
		return nil, err
	}
	if cfg.Auction.CommitRevealEnabled, err = parseBool("AUCTION_COMMIT_REVEAL", cfg.Auction.CommitRevealEnabled); err != nil {
		return nil, err
	}
	if cfg.Auction.RevealPeriod, err = parseUint64("AUCTION_REVEAL_PERIOD", cfg.Auction.RevealPeriod); err != nil {
		return nil, err
	}
	if cfg.Fee.PlatformFeeBps, err = parseUint64("FEE_PLATFORM_BPS", cfg.Fee.PlatformFeeBps); err != nil {
		return nil, err
	}
	if cfg.Fee.MinimumFee, err = parseInt64("FEE_MINIMUM", cfg.Fee.MinimumFee); err != nil {
		return nil, err
	}
	if cfg.Fee.MaximumFee, err = parseInt64("FEE_MAXIMUM", cfg.Fee.MaximumFee); err != nil {
		return nil, err
	}
	if cfg.Fee.DynamicFeeEnabled, err = parseBool("FEE_DYNAMIC", cfg.Fee.DynamicFeeEnabled); err != nil {
		return nil, err
	}
	if cfg.Dispute.ArbitrationQuorum, err = parseUint64("DISPUTE_QUORUM", cfg.Dispute.ArbitrationQuorum); err != nil {
		return nil, err
	}
	if cfg.Dispute.MaxArbitratorsPerDispute, err = parseUint64("DISPUTE_MAX_ARBITRATORS", cfg.Dispute.MaxArbitratorsPerDispute); err != nil {
		return nil, err
	}
	if cfg.Dispute.MinArbitratorReputation, err = parseUint64("DISPUTE_MIN_REPUTATION", cfg.Dispute.MinArbitratorReputation); err != nil {
		return nil, err
	}

	if cfg.DevHoldings, err = parseHoldings(getEnv("DEV_LEDGER_DEPOSITS", "")); err != nil {
		return nil, err
	}
	if cfg.DevItems, err = parseItems(getEnv("DEV_LEDGER_ITEMS", "")); err != nil {
		return nil, err
	}
	if env == "production" && (len(cfg.DevHoldings) > 0 || len(cfg.DevItems) > 0) {
		return nil, fmt.Errorf("config: DEV_LEDGER_* seeds are not allowed in production")
	}
	return cfg, nil
}

// parseHoldings reads comma-separated contract:symbol:account:amount entries
func parseHoldings(v string) ([]escrow.Holding, error) {
	var out []escrow.Holding
	for _, entry := range splitList(v) {
		parts := strings.Split(entry, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("config: invalid DEV_LEDGER_DEPOSITS entry %q", entry)
		}
		amount, err := strconv.ParseInt(parts[3], 10, 64)
		if err != nil || amount <= 0 {
			return nil, fmt.Errorf("config: invalid DEV_LEDGER_DEPOSITS amount %q", parts[3])
		}
		out = append(out, escrow.Holding{
			Currency: models.Asset{Contract: parts[0], Symbol: parts[1]},
			Account:  parts[2],
			Amount:   amount,
		})
	}
	return out, nil
}

// parseItems reads comma-separated nft:token:owner entries
func parseItems(v string) ([]escrow.ItemHolding, error) {
	var out []escrow.ItemHolding
	for _, entry := range splitList(v) {
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("config: invalid DEV_LEDGER_ITEMS entry %q", entry)
		}
		tokenID, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: invalid DEV_LEDGER_ITEMS token %q", parts[1])
		}
		out = append(out, escrow.ItemHolding{NFTAddress: parts[0], TokenID: tokenID, Owner: parts[2]})
	}
	return out, nil
}

func splitList(v string) []string {
	var out []string
	for _, entry := range strings.Split(v, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

// getEnv returns the variable value or fallback when unset or empty
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func parseInt64(key string, fallback int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func parseUint64(key string, fallback uint64) (uint64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func parseBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
