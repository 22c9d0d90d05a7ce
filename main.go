package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-settlement/internal/config"
	"marketplace-settlement/internal/escrow"
	"marketplace-settlement/internal/events"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/server"
	"marketplace-settlement/internal/settlement"
	"marketplace-settlement/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"driver": cfg.StoreDriver, "error": err.Error()})
	}
	defer closeStore()

	recorder := events.NewRecorder()
	hub := events.NewHub()
	go hub.Run(ctx)

	// local custody for assets and items; settlement only sees the collaborator contracts.
	// Outside production DEV_LEDGER_DEPOSITS and DEV_LEDGER_ITEMS fund it so the payout
	// routes can be exercised over HTTP.
	ledger := escrow.NewLedger()
	if err := ledger.Seed(cfg.DevHoldings, cfg.DevItems); err != nil {
		utils.Fatal("failed to seed ledger", map[string]any{"error": err.Error()})
	}
	if len(cfg.DevHoldings) > 0 || len(cfg.DevItems) > 0 {
		utils.Warn("custody ledger seeded from environment", map[string]any{"deposits": len(cfg.DevHoldings), "items": len(cfg.DevItems)})
	}

	market := settlement.New(settlement.Options{
		Store:         store,
		Clock:         utils.SystemClock{},
		Events:        events.NewBus(recorder, hub),
		Assets:        ledger,
		Items:         ledger,
		EscrowAccount: cfg.EscrowAccount,
	})
	if err := market.Initialize(settlement.Seeds{
		Admin:   cfg.AdminAddress,
		Auction: cfg.Auction,
		Fee:     cfg.Fee,
		Dispute: cfg.Dispute,
	}); err != nil {
		utils.Fatal("failed to initialize marketplace", map[string]any{"error": err.Error()})
	}

	router := server.SetupRouter(server.Options{
		Service:         market,
		Log:             recorder,
		Hub:             hub,
		RateLimitLimit:  cfg.RateLimitLimit,
		RateLimitPeriod: cfg.RateLimitPeriod,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
		}
	}()

	utils.Info("starting settlement server", map[string]any{"addr": cfg.Addr(), "env": cfg.Env, "store": cfg.StoreDriver})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.Fatal("server failed", map[string]any{"error": err.Error()})
	}
	utils.Info("server stopped", nil)
}

// openStore returns the configured settlement store and its close func
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, func(), error) {
	if cfg.StoreDriver != config.DriverPostgres {
		return repository.NewMemoryStore(), func() {}, nil
	}
	pg, err := repository.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return pg, func() {
		if err := pg.Close(); err != nil {
			utils.Warn("failed to close store", map[string]any{"error": err.Error()})
		}
	}, nil
}
