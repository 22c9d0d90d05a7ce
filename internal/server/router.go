package server

import (
	"time"

	"marketplace-settlement/internal/events"
	handler "marketplace-settlement/services/settlement/handler"

	"github.com/gin-gonic/gin"
)

// Options configures the HTTP surface
type Options struct {
	Service         handler.MarketplaceService
	Log             handler.EventLog
	Hub             *events.Hub
	RateLimitLimit  int64
	RateLimitPeriod time.Duration
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(RateLimitMiddleware(opts.RateLimitLimit, opts.RateLimitPeriod))

	h := handler.NewSettlementHandler(opts.Service)
	serialize := SerializeInvocations()

	eventsHandler := handler.NewEventsHandler(opts.Log, opts.Hub)
	if opts.Log != nil {
		router.GET("/events", serialize, eventsHandler.RecentEventsHandler)
	}
	// the websocket stream is long-lived and never touches the marketplace
	if opts.Hub != nil {
		router.GET("/events/ws", eventsHandler.StreamEventsHandler)
	}

	api := router.Group("")
	api.Use(serialize)

	auctions := api.Group("/auctions")
	{
		auctions.POST("", h.CreateAuctionHandler)
		auctions.GET("", h.ListAuctionsHandler)
		auctions.GET("/:id", h.GetAuctionHandler)
		auctions.GET("/:id/bids", h.GetBidsHandler)
		auctions.GET("/:id/stats", h.GetAuctionStatsHandler)
		auctions.GET("/:id/price", h.GetDutchPriceHandler)
		auctions.POST("/:id/bids", h.PlaceBidHandler)
		auctions.POST("/:id/reveal", h.RevealBidHandler)
		auctions.POST("/:id/end", h.EndAuctionHandler)
		auctions.POST("/:id/cancel", h.CancelAuctionHandler)
		auctions.POST("/:id/settle", h.SettleAuctionHandler)
	}

	api.POST("/commitments/cleanup", h.CleanupCommitmentsHandler)

	disputes := api.Group("/disputes")
	{
		disputes.POST("", h.InitiateDisputeHandler)
		disputes.GET("", h.ListDisputesHandler)
		disputes.GET("/:id", h.GetDisputeHandler)
		disputes.POST("/:id/votes", h.VoteHandler)
		disputes.POST("/:id/evidence", h.SubmitEvidenceHandler)
		disputes.POST("/:id/force-resolve", h.ForceResolveHandler)
		disputes.POST("/:id/execute", h.ExecuteResolutionHandler)
	}

	arbitrators := api.Group("/arbitrators")
	{
		arbitrators.POST("", h.RegisterArbitratorHandler)
		arbitrators.GET("", h.ListArbitratorsHandler)
		arbitrators.POST("/:address/reputation", h.UpdateReputationHandler)
		arbitrators.POST("/:address/active", h.SetArbitratorActiveHandler)
	}

	fees := api.Group("/fees")
	{
		fees.GET("/quote", h.QuoteFeeHandler)
		fees.GET("/accumulated", h.AccumulatedFeesHandler)
		fees.GET("/stats", h.FeeStatisticsHandler)
		fees.GET("/volume/:user", h.UserVolumeHandler)
		fees.POST("/collect", h.CollectFeeHandler)
		fees.POST("/withdraw", h.WithdrawFeesHandler)
		fees.POST("/vip", h.AddVIPHandler)
		fees.DELETE("/vip/:user", h.RemoveVIPHandler)
		fees.DELETE("/volume/:user", h.ResetVolumeHandler)
	}

	config := api.Group("/config")
	{
		config.GET("/auction", h.GetAuctionConfigHandler)
		config.PUT("/auction", h.UpdateAuctionConfigHandler)
		config.GET("/fees", h.GetFeeConfigHandler)
		config.PUT("/fees", h.UpdateFeeConfigHandler)
		config.GET("/disputes", h.GetDisputeConfigHandler)
		config.PUT("/disputes", h.UpdateDisputeConfigHandler)
	}

	return router
}
