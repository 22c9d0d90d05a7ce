package handler

import (
	"encoding/hex"
	"net/http"

	auction "marketplace-settlement/internal/auctionEngine"
	dispute "marketplace-settlement/internal/disputeService"
	fee "marketplace-settlement/internal/feeService"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/settlement"
	"marketplace-settlement/services/settlement/helpers"
	"marketplace-settlement/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=settlement_handler.go -destination=mock_settlement_handler.go -package=handler

type MarketplaceService interface {
	CreateAuction(p auction.CreateParams) (uint64, error)
	PlaceBid(auctionID uint64, bidder string, amount int64, commitment []byte) error
	RevealBid(auctionID uint64, bidder string, amount int64, salt []byte) error
	EndAuction(auctionID uint64, caller string) (models.Auction, error)
	CancelAuction(auctionID uint64, canceller string) error
	SettleAuction(auctionID uint64, caller string) (settlement.Settlement, error)
	GetDutchAuctionPrice(auctionID uint64) (int64, error)
	CleanupExpiredCommitments(caller string) (int, error)
	GetAuction(auctionID uint64) (models.Auction, error)
	GetBids(auctionID uint64) ([]models.Bid, error)
	AuctionStats(auctionID uint64) (models.AuctionStats, error)
	ActiveAuctions() ([]models.Auction, error)
	AuctionsBySeller(seller string) ([]models.Auction, error)
	GetAuctionConfig() (models.AuctionConfig, error)
	UpdateAuctionConfig(cfg models.AuctionConfig, admin string) error

	InitiateDispute(p dispute.InitiateParams) (uint64, error)
	VoteOnDispute(disputeID uint64, arbitrator string, favorInitiator bool) (models.Dispute, error)
	SubmitEvidence(disputeID uint64, submitter, evidenceURI string) error
	ForceResolveDispute(disputeID uint64, resolution models.Resolution, admin string) error
	ExecuteDisputeResolution(disputeID uint64, executor string) error
	GetDispute(disputeID uint64) (models.Dispute, error)
	ActiveDisputes() ([]models.Dispute, error)
	ResolvedDisputes() ([]models.Dispute, error)
	DisputesByInitiator(initiator string) ([]models.Dispute, error)
	RegisterArbitrator(addr string, initialReputation uint64) error
	UpdateArbitratorReputation(addr string, delta int64, admin string) error
	SetArbitratorActive(addr string, active bool, admin string) error
	Arbitrators() ([]models.Arbitrator, error)
	GetDisputeConfig() (models.DisputeConfig, error)
	UpdateDisputeConfig(cfg models.DisputeConfig, admin string) error

	QuoteFee(amount int64, user string) (fee.Quote, error)
	CollectPlatformFee(amount int64, currency models.Asset, payer, admin string) error
	WithdrawPlatformFees(currency models.Asset, recipient, admin string) (int64, error)
	AccumulatedFees(currency models.Asset) (int64, error)
	UserVolume(user string) (int64, error)
	FeeStatistics() (models.FeeStatistics, error)
	GetFeeConfig() (models.FeeConfig, error)
	UpdateFeeConfig(cfg models.FeeConfig, admin string) error
	AddVIPExemption(user, admin string) error
	RemoveVIPExemption(user, admin string) error
	ResetUserVolume(user, admin string) error
}

type SettlementHandler struct {
	service MarketplaceService
}

func NewSettlementHandler(service MarketplaceService) *SettlementHandler {
	return &SettlementHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *SettlementHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auctionType := models.English
	if req.AuctionType == models.Dutch.String() {
		auctionType = models.Dutch
	}
	id, err := h.service.CreateAuction(auction.CreateParams{
		AuctionType:   auctionType,
		Seller:        req.Seller,
		NFTAddress:    req.NFTAddress,
		TokenID:       req.TokenID,
		StartingPrice: req.StartingPrice,
		ReservePrice:  req.ReservePrice,
		Duration:      req.Duration,
		BidIncrement:  req.BidIncrement,
		Currency:      req.Currency,
	})
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"seller": req.Seller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.IDResponse{ID: id}, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": id,
		"seller":     req.Seller,
	})
}

// ListAuctionsHandler handles GET /auctions, optionally filtered by ?seller=
func (h *SettlementHandler) ListAuctionsHandler(c *gin.Context) {
	var (
		auctions []models.Auction
		err      error
	)
	seller := c.Query("seller")
	if seller != "" {
		auctions, err = h.service.AuctionsBySeller(seller)
	} else {
		auctions, err = h.service.ActiveAuctions()
	}
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, map[string]any{"seller": seller})
		return
	}
	if auctions == nil {
		auctions = []models.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:id
func (h *SettlementHandler) GetAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetAuctionHandler", "id")
	if !ok {
		return
	}
	a, err := h.service.GetAuction(id)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, a, "auction retrieved successfully")
}

// GetBidsHandler handles GET /auctions/:id/bids
func (h *SettlementHandler) GetBidsHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetBidsHandler", "id")
	if !ok {
		return
	}
	bids, err := h.service.GetBids(id)
	if err != nil {
		helpers.RespondError(c, "GetBidsHandler", err, map[string]any{"auction_id": id})
		return
	}
	if bids == nil {
		bids = []models.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": id,
		"count":      len(bids),
	})
}

// GetAuctionStatsHandler handles GET /auctions/:id/stats
func (h *SettlementHandler) GetAuctionStatsHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetAuctionStatsHandler", "id")
	if !ok {
		return
	}
	stats, err := h.service.AuctionStats(id)
	if err != nil {
		helpers.RespondError(c, "GetAuctionStatsHandler", err, map[string]any{"auction_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, stats, "auction stats retrieved successfully")
}

// PlaceBidHandler handles POST /auctions/:id/bids
func (h *SettlementHandler) PlaceBidHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "PlaceBidHandler", "id")
	if !ok {
		return
	}
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}
	var commitment []byte
	if req.Commitment != "" {
		var err error
		if commitment, err = hex.DecodeString(req.Commitment); err != nil {
			helpers.HandleBindError(c, "PlaceBidHandler", err)
			return
		}
	}

	if err := h.service.PlaceBid(id, req.Bidder, req.Amount, commitment); err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": id,
			"bidder":     req.Bidder,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"auction_id": id, "bidder": req.Bidder, "amount": req.Amount}, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"auction_id": id,
		"bidder":     req.Bidder,
		"amount":     req.Amount,
		"committed":  commitment != nil,
	})
}

// RevealBidHandler handles POST /auctions/:id/reveal
func (h *SettlementHandler) RevealBidHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "RevealBidHandler", "id")
	if !ok {
		return
	}
	var req helpers.RevealBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RevealBidHandler", err)
		return
	}
	salt, err := hex.DecodeString(req.Salt)
	if err != nil {
		helpers.HandleBindError(c, "RevealBidHandler", err)
		return
	}

	if err := h.service.RevealBid(id, req.Bidder, req.Amount, salt); err != nil {
		helpers.RespondError(c, "RevealBidHandler", err, map[string]any{"auction_id": id, "bidder": req.Bidder})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": id, "bidder": req.Bidder, "amount": req.Amount}, "bid revealed successfully")
}

// EndAuctionHandler handles POST /auctions/:id/end
func (h *SettlementHandler) EndAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "EndAuctionHandler", "id")
	if !ok {
		return
	}
	var req helpers.CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EndAuctionHandler", err)
		return
	}

	a, err := h.service.EndAuction(id, req.Caller)
	if err != nil {
		helpers.RespondError(c, "EndAuctionHandler", err, map[string]any{"auction_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "auction ended successfully")
	helpers.LogSuccess("EndAuctionHandler", "auction ended successfully", map[string]any{
		"auction_id":  id,
		"winner":      a.Winner,
		"final_price": a.FinalPrice,
	})
}

// CancelAuctionHandler handles POST /auctions/:id/cancel
func (h *SettlementHandler) CancelAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "CancelAuctionHandler", "id")
	if !ok {
		return
	}
	var req helpers.CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelAuctionHandler", err)
		return
	}

	if err := h.service.CancelAuction(id, req.Caller); err != nil {
		helpers.RespondError(c, "CancelAuctionHandler", err, map[string]any{"auction_id": id, "caller": req.Caller})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.IDResponse{ID: id}, "auction cancelled successfully")
}

// SettleAuctionHandler handles POST /auctions/:id/settle
func (h *SettlementHandler) SettleAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "SettleAuctionHandler", "id")
	if !ok {
		return
	}
	var req helpers.CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SettleAuctionHandler", err)
		return
	}

	s, err := h.service.SettleAuction(id, req.Caller)
	if err != nil {
		helpers.RespondError(c, "SettleAuctionHandler", err, map[string]any{"auction_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, s, "auction settled successfully")
	helpers.LogSuccess("SettleAuctionHandler", "auction settled successfully", map[string]any{
		"auction_id":   id,
		"platform_fee": s.PlatformFee,
	})
}

// GetDutchPriceHandler handles GET /auctions/:id/price
func (h *SettlementHandler) GetDutchPriceHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetDutchPriceHandler", "id")
	if !ok {
		return
	}
	price, err := h.service.GetDutchAuctionPrice(id)
	if err != nil {
		helpers.RespondError(c, "GetDutchPriceHandler", err, map[string]any{"auction_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.PriceResponse{AuctionID: id, Price: price}, "price retrieved successfully")
}

// CleanupCommitmentsHandler handles POST /commitments/cleanup
func (h *SettlementHandler) CleanupCommitmentsHandler(c *gin.Context) {
	var req helpers.CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CleanupCommitmentsHandler", err)
		return
	}
	removed, err := h.service.CleanupExpiredCommitments(req.Caller)
	if err != nil {
		helpers.RespondError(c, "CleanupCommitmentsHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.CleanupResponse{Removed: removed}, "expired commitments removed")
}

// GetAuctionConfigHandler handles GET /config/auction
func (h *SettlementHandler) GetAuctionConfigHandler(c *gin.Context) {
	cfg, err := h.service.GetAuctionConfig()
	if err != nil {
		helpers.RespondError(c, "GetAuctionConfigHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, cfg, "auction config retrieved successfully")
}

// UpdateAuctionConfigHandler handles PUT /config/auction
func (h *SettlementHandler) UpdateAuctionConfigHandler(c *gin.Context) {
	var req helpers.AuctionConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionConfigHandler", err)
		return
	}
	if err := h.service.UpdateAuctionConfig(req.Config, req.Admin); err != nil {
		helpers.RespondError(c, "UpdateAuctionConfigHandler", err, map[string]any{"admin": req.Admin})
		return
	}
	utils.JSONResponse(c, http.StatusOK, req.Config, "auction config updated successfully")
}
