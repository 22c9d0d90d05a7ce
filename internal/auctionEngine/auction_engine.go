package auction

import (
	"fmt"

	"marketplace-settlement/internal/events"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/security"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"
)

const (
	configKey          = "auction_config"
	auctionCounter     = "auction"
	maxExtensionWindow = 7 * 24 * 3600
	minIncrementBps    = 100
	dutchTimeUnit      = 3600
	// placeholder royalty split until royalties are sourced from item metadata
	creatorRoyaltyBps = 500
	sellerRoyaltyBps  = 9500
)

// CreateParams are the seller-supplied attributes of a new auction
type CreateParams struct {
	AuctionType   models.AuctionType
	Seller        string
	NFTAddress    string
	TokenID       uint64
	StartingPrice int64
	ReservePrice  int64
	Duration      uint64
	BidIncrement  int64 // basis points
	Currency      models.Asset
}

// Engine owns the auction lifecycle
type Engine struct {
	store    repository.Store
	clock    utils.Clock
	events   events.Emitter
	commits  *security.CommitRevealScheme
	detector *security.FrontRunningDetector
}

// NewEngine creates an engine over store. events receives lifecycle records and alerts
// receives detection records, which must outlive a rejected call.
func NewEngine(store repository.Store, clock utils.Clock, emitter, alerts events.Emitter) *Engine {
	return &Engine{
		store:    store,
		clock:    clock,
		events:   emitter,
		commits:  security.NewCommitRevealScheme(store, clock),
		detector: security.NewFrontRunningDetector(alerts, clock),
	}
}

// GetConfig returns the stored auction configuration
func (e *Engine) GetConfig() (models.AuctionConfig, error) {
	cfg, ok, err := repository.Load[models.AuctionConfig](e.store, repository.GroupConfig, configKey)
	if err != nil {
		return models.AuctionConfig{}, fmt.Errorf("auction: failed to load config: %w", err)
	}
	if !ok {
		return models.AuctionConfig{}, fmt.Errorf("auction: %w - auction config not initialized", settlementerrors.ErrNotFound)
	}
	return cfg, nil
}

// SetConfig validates and stores cfg
func (e *Engine) SetConfig(cfg models.AuctionConfig) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}
	return repository.Save(e.store, repository.GroupConfig, configKey, cfg)
}

// ValidateConfig checks the tunables an administrator may set
func ValidateConfig(cfg models.AuctionConfig) error {
	switch {
	case cfg.MinBidIncrementBps > utils.BasisPointsDenominator:
		return fmt.Errorf("auction: %w - min bid increment %d bps", settlementerrors.ErrInvalidBidIncrement, cfg.MinBidIncrementBps)
	case cfg.MaxAuctionDuration == 0:
		return fmt.Errorf("auction: %w - max auction duration must be positive", settlementerrors.ErrInvalidAmount)
	case cfg.ExtensionWindow > maxExtensionWindow:
		return fmt.Errorf("auction: %w - extension window %d exceeds 7 days", settlementerrors.ErrInvalidAmount, cfg.ExtensionWindow)
	case cfg.CommitRevealEnabled && cfg.RevealPeriod == 0:
		return fmt.Errorf("auction: %w - reveal period must be positive", settlementerrors.ErrInvalidAmount)
	}
	return nil
}

// CreateAuction validates p and stores a new pending auction
func (e *Engine) CreateAuction(p CreateParams) (uint64, error) {
	cfg, err := e.GetConfig()
	if err != nil {
		return 0, err
	}
	if err := validateParams(p, cfg); err != nil {
		return 0, err
	}

	now := e.clock.Now()
	if p.Duration > ^uint64(0)-now {
		return 0, fmt.Errorf("auction: %w - duration %d", settlementerrors.ErrOverflow, p.Duration)
	}
	start, end := now, now+p.Duration
	if err := validateTiming(start, end, now, cfg.ExtensionWindow); err != nil {
		return 0, err
	}

	id, err := repository.NextID(e.store, auctionCounter)
	if err != nil {
		return 0, fmt.Errorf("auction: failed to allocate id: %w", err)
	}

	a := models.Auction{
		AuctionID:       id,
		AuctionType:     p.AuctionType,
		Seller:          p.Seller,
		NFTAddress:      p.NFTAddress,
		TokenID:         p.TokenID,
		StartingPrice:   p.StartingPrice,
		ReservePrice:    p.ReservePrice,
		BidIncrement:    p.BidIncrement,
		StartTime:       start,
		EndTime:         end,
		State:           models.Pending,
		ExtensionWindow: cfg.ExtensionWindow,
		Currency:        p.Currency,
		RoyaltyInfo: models.RoyaltyDistribution{
			CreatorAddress:     p.Seller,
			CreatorPercentage:  creatorRoyaltyBps,
			SellerPercentage:   sellerRoyaltyBps,
			PlatformPercentage: 0,
		},
	}
	if err := e.saveAuction(a); err != nil {
		return 0, err
	}
	if err := e.saveBids(id, []models.Bid{}); err != nil {
		return 0, err
	}

	if p.AuctionType == models.Dutch {
		dutch := models.DutchAuctionData{
			StartingPrice:   p.StartingPrice,
			EndingPrice:     p.ReservePrice,
			PriceDecrement:  cfg.DutchPriceDecrement,
			TimeUnit:        dutchTimeUnit,
			CurrentPrice:    p.StartingPrice,
			LastPriceUpdate: now,
		}
		if err := repository.Save(e.store, repository.GroupDutchAuctions, repository.IDKey(id), dutch); err != nil {
			return 0, fmt.Errorf("auction: failed to store dutch data: %w", err)
		}
	}

	e.events.Emit(events.New(events.AuctionCreated, now, map[string]any{
		"auction_id":     id,
		"seller":         p.Seller,
		"nft_address":    p.NFTAddress,
		"token_id":       p.TokenID,
		"auction_type":   p.AuctionType.String(),
		"starting_price": p.StartingPrice,
		"reserve_price":  p.ReservePrice,
		"end_time":       end,
	}))
	utils.Info("auction created", map[string]any{"auction_id": id, "seller": p.Seller, "type": p.AuctionType.String()})
	return id, nil
}

func validateParams(p CreateParams, cfg models.AuctionConfig) error {
	switch {
	case p.Seller == "" || p.NFTAddress == "":
		return fmt.Errorf("auction: %w - missing seller or item", settlementerrors.ErrInvalidAmount)
	case p.AuctionType != models.English && p.AuctionType != models.Dutch:
		return fmt.Errorf("auction: %w - unknown auction type %d", settlementerrors.ErrInvalidState, p.AuctionType)
	case p.StartingPrice <= 0:
		return fmt.Errorf("auction: %w - starting price must be positive", settlementerrors.ErrInvalidAmount)
	case p.ReservePrice < 0 || p.ReservePrice > p.StartingPrice:
		return fmt.Errorf("auction: %w - reserve price must be within [0, starting price]", settlementerrors.ErrInvalidAmount)
	case p.Duration == 0 || p.Duration > cfg.MaxAuctionDuration:
		return fmt.Errorf("auction: %w - duration must be within (0, %d]", settlementerrors.ErrInvalidAmount, cfg.MaxAuctionDuration)
	case p.BidIncrement <= 0 || p.BidIncrement > utils.BasisPointsDenominator:
		return fmt.Errorf("auction: %w - bid increment %d bps", settlementerrors.ErrInvalidBidIncrement, p.BidIncrement)
	case uint64(p.BidIncrement) < cfg.MinBidIncrementBps:
		return fmt.Errorf("auction: %w - bid increment %d bps below the configured minimum %d", settlementerrors.ErrInvalidBidIncrement, p.BidIncrement, cfg.MinBidIncrementBps)
	case p.Currency.Contract == "":
		return fmt.Errorf("auction: %w - missing currency", settlementerrors.ErrInvalidCurrency)
	}
	return nil
}

func validateTiming(start, end, now, extensionWindow uint64) error {
	switch {
	case start < now:
		return fmt.Errorf("auction: %w - start time in the past", settlementerrors.ErrInvalidAmount)
	case end <= start:
		return fmt.Errorf("auction: %w - end time must follow start time", settlementerrors.ErrInvalidAmount)
	case extensionWindow > maxExtensionWindow:
		return fmt.Errorf("auction: %w - extension window exceeds 7 days", settlementerrors.ErrInvalidAmount)
	}
	return nil
}

// PlaceBid validates and records a bid. A non-empty commitment records a hidden bid
// when commit-reveal is enabled.
func (e *Engine) PlaceBid(auctionID uint64, bidder string, amount int64, commitment []byte) error {
	if bidder == "" {
		return fmt.Errorf("auction: %w - missing bidder", settlementerrors.ErrInvalidAmount)
	}
	a, err := e.loadAuction(auctionID)
	if err != nil {
		return err
	}
	cfg, err := e.GetConfig()
	if err != nil {
		return err
	}

	now := e.clock.Now()
	if a.State != models.Pending || now > a.EndTime {
		return fmt.Errorf("auction %d: %w", auctionID, settlementerrors.ErrAuctionAlreadyEnded)
	}
	if now < a.StartTime {
		return fmt.Errorf("auction %d: %w", auctionID, settlementerrors.ErrAuctionNotStarted)
	}
	if err := validateBidAmount(a, amount); err != nil {
		return err
	}

	bids, err := e.loadBids(auctionID)
	if err != nil {
		return err
	}

	candidate := models.Bid{Bidder: bidder, Amount: amount, PlacedAt: now}
	committed := cfg.CommitRevealEnabled && len(commitment) > 0
	if committed {
		open, ok, err := e.commits.GetCommitment(bidder, auctionID)
		if err != nil {
			return fmt.Errorf("auction %d: %w", auctionID, err)
		}
		if ok && now <= open.RevealDeadline {
			return fmt.Errorf("auction %d: %w - %s already holds an unrevealed commitment", auctionID, settlementerrors.ErrAlreadyExists, bidder)
		}
		candidate.IsCommitted = true
		candidate.CommitmentHash = append([]byte(nil), commitment...)
		if err := e.commits.StoreCommitment(bidder, auctionID, commitment, now+cfg.RevealPeriod); err != nil {
			return fmt.Errorf("auction %d: %w", auctionID, err)
		}
	}

	if err := e.detector.AnalyzeBiddingPattern(auctionID, candidate, bids); err != nil {
		return err
	}

	bids = append(bids, candidate)
	if err := e.saveBids(auctionID, bids); err != nil {
		return err
	}
	if !committed {
		a.HighestBid = amount
		a.HighestBidder = bidder
	}

	e.applyExtension(&a, now, now)

	if err := e.saveAuction(a); err != nil {
		return err
	}

	e.events.Emit(events.New(events.BidPlaced, now, map[string]any{
		"auction_id":   auctionID,
		"bidder":       bidder,
		"amount":       amount,
		"is_committed": committed,
	}))
	utils.Info("bid placed", map[string]any{"auction_id": auctionID, "bidder": bidder, "amount": amount, "committed": committed})
	return nil
}

// MinimumNextBid returns the lowest amount the next bid on a may carry
func MinimumNextBid(a models.Auction) (int64, error) {
	if a.HighestBid == 0 {
		return a.StartingPrice, nil
	}

	bps := uint64(a.BidIncrement)
	if bps < minIncrementBps {
		bps = minIncrementBps
	}

	step, err := utils.CalculatePercentage(a.HighestBid, bps)
	if err != nil {
		return 0, err
	}
	minimum, err := utils.SafeAdd(a.HighestBid, step)
	if err != nil {
		return 0, err
	}
	if minimum <= a.HighestBid {
		minimum = a.HighestBid + 1
	}
	return minimum, nil
}

func validateBidAmount(a models.Auction, amount int64) error {
	if amount <= a.HighestBid {
		return fmt.Errorf("auction %d: %w - current highest bid is %d", a.AuctionID, settlementerrors.ErrBidTooLow, a.HighestBid)
	}
	minimum, err := MinimumNextBid(a)
	if err != nil {
		return err
	}
	if amount < minimum {
		return fmt.Errorf("auction %d: %w - minimum bid is %d", a.AuctionID, settlementerrors.ErrBidTooLow, minimum)
	}
	return nil
}

// ShouldExtend reports whether a bid at now falls inside the anti-sniping window
func ShouldExtend(endTime, window, now, lastBidTime uint64) bool {
	if endTime > now {
		return endTime-now <= window
	}
	return now-lastBidTime <= window
}

// applyExtension pushes the end of a out to now+window when the bid falls inside the window.
// The end time is never shortened.
func (e *Engine) applyExtension(a *models.Auction, now, lastBidTime uint64) {
	if !ShouldExtend(a.EndTime, a.ExtensionWindow, now, lastBidTime) {
		return
	}
	newEnd := now + a.ExtensionWindow
	if newEnd < a.EndTime {
		newEnd = a.EndTime
	}
	oldEnd := a.EndTime
	a.EndTime = newEnd

	e.events.Emit(events.New(events.AuctionExtended, now, map[string]any{
		"auction_id":   a.AuctionID,
		"old_end_time": oldEnd,
		"new_end_time": newEnd,
	}))
	utils.Debug("auction extended", map[string]any{"auction_id": a.AuctionID, "new_end_time": newEnd})
}

// RevealBid opens a committed bid and applies it as a direct bid
func (e *Engine) RevealBid(auctionID uint64, bidder string, amount int64, salt []byte) error {
	cfg, err := e.GetConfig()
	if err != nil {
		return err
	}
	if !cfg.CommitRevealEnabled {
		return fmt.Errorf("auction %d: %w - commit-reveal is disabled", auctionID, settlementerrors.ErrInvalidState)
	}

	a, err := e.loadAuction(auctionID)
	if err != nil {
		return err
	}
	if a.State != models.Pending {
		return fmt.Errorf("auction %d: %w", auctionID, settlementerrors.ErrAuctionAlreadyEnded)
	}

	if err := e.commits.RevealCommitment(bidder, auctionID, amount, salt); err != nil {
		return fmt.Errorf("auction %d: %w", auctionID, err)
	}

	bids, err := e.loadBids(auctionID)
	if err != nil {
		return err
	}
	// the stored commitment belongs to the bidder's latest committed entry
	idx := -1
	for i := len(bids) - 1; i >= 0; i-- {
		if bids[i].Bidder == bidder && bids[i].IsCommitted {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("auction %d: %w - no committed bid for %s", auctionID, settlementerrors.ErrBidRevealFailed, bidder)
	}

	if err := validateBidAmount(a, amount); err != nil {
		return err
	}

	bids[idx].Amount = amount
	bids[idx].IsCommitted = false
	bids[idx].CommitmentHash = nil
	if err := e.saveBids(auctionID, bids); err != nil {
		return err
	}

	a.HighestBid = amount
	a.HighestBidder = bidder
	if err := e.saveAuction(a); err != nil {
		return err
	}

	now := e.clock.Now()
	e.events.Emit(events.New(events.BidRevealed, now, map[string]any{
		"auction_id": auctionID,
		"bidder":     bidder,
		"amount":     amount,
	}))
	utils.Info("bid revealed", map[string]any{"auction_id": auctionID, "bidder": bidder, "amount": amount})
	return nil
}

// EndAuction closes an auction whose end time has passed
func (e *Engine) EndAuction(auctionID uint64, caller string) (models.Auction, error) {
	a, err := e.loadAuction(auctionID)
	if err != nil {
		return models.Auction{}, err
	}
	now := e.clock.Now()
	if a.State != models.Pending {
		return models.Auction{}, fmt.Errorf("auction %d: %w - state is %s", auctionID, settlementerrors.ErrInvalidState, a.State)
	}
	if now <= a.EndTime {
		return models.Auction{}, fmt.Errorf("auction %d: %w - auction still running until %d", auctionID, settlementerrors.ErrInvalidState, a.EndTime)
	}

	reason := "reserve not met"
	if a.HighestBidder != "" && a.HighestBid >= a.ReservePrice {
		a.Winner = a.HighestBidder
		a.FinalPrice = a.HighestBid
		reason = "winning bid"
	}
	a.State = models.Executed
	if err := e.saveAuction(a); err != nil {
		return models.Auction{}, err
	}

	e.events.Emit(events.New(events.AuctionEnded, now, map[string]any{
		"auction_id":  auctionID,
		"winner":      a.Winner,
		"final_price": a.FinalPrice,
		"reason":      reason,
		"ended_by":    caller,
	}))
	utils.Info("auction ended", map[string]any{"auction_id": auctionID, "winner": a.Winner, "final_price": a.FinalPrice, "reason": reason})
	return a, nil
}

// CancelAuction lets the seller withdraw an auction that has no bids
func (e *Engine) CancelAuction(auctionID uint64, canceller string) error {
	a, err := e.loadAuction(auctionID)
	if err != nil {
		return err
	}
	if a.Seller != canceller {
		return fmt.Errorf("auction %d: %w - only the seller may cancel", auctionID, settlementerrors.ErrUnauthorized)
	}
	if a.State != models.Pending || a.HighestBid != 0 {
		return fmt.Errorf("auction %d: %w - auction has bids or is closed", auctionID, settlementerrors.ErrInvalidState)
	}

	a.State = models.Cancelled
	if err := e.saveAuction(a); err != nil {
		return err
	}

	e.events.Emit(events.New(events.AuctionCancelled, e.clock.Now(), map[string]any{
		"auction_id": auctionID,
		"seller":     canceller,
	}))
	utils.Info("auction cancelled", map[string]any{"auction_id": auctionID})
	return nil
}

// GetDutchAuctionPrice recomputes and caches the current price of a Dutch auction
func (e *Engine) GetDutchAuctionPrice(auctionID uint64) (int64, error) {
	a, err := e.loadAuction(auctionID)
	if err != nil {
		return 0, err
	}
	dutch, ok, err := repository.Load[models.DutchAuctionData](e.store, repository.GroupDutchAuctions, repository.IDKey(auctionID))
	if err != nil {
		return 0, fmt.Errorf("auction %d: %w", auctionID, err)
	}
	if !ok {
		return 0, fmt.Errorf("auction %d: %w - not a dutch auction", auctionID, settlementerrors.ErrAuctionNotFound)
	}

	now := e.clock.Now()
	price, err := utils.TimeWeightedPrice(a.StartTime, a.EndTime, now, dutch.StartingPrice, dutch.EndingPrice)
	if err != nil {
		return 0, fmt.Errorf("auction %d: %w", auctionID, err)
	}

	dutch.CurrentPrice = price
	dutch.LastPriceUpdate = now
	if err := repository.Save(e.store, repository.GroupDutchAuctions, repository.IDKey(auctionID), dutch); err != nil {
		return 0, fmt.Errorf("auction %d: %w", auctionID, err)
	}
	return price, nil
}

// CleanupExpiredCommitments removes commitments whose reveal deadline passed
func (e *Engine) CleanupExpiredCommitments() (int, error) {
	return e.commits.CleanupExpiredCommitments()
}

// MarkSettled records the payout of an ended auction
func (e *Engine) MarkSettled(auctionID uint64, platformFee int64, royalty models.RoyaltyDistribution) error {
	a, err := e.loadAuction(auctionID)
	if err != nil {
		return err
	}
	a.Settled = true
	a.PlatformFee = platformFee
	a.RoyaltyInfo = royalty
	return e.saveAuction(a)
}

// GetAuction returns the auction with its bids attached
func (e *Engine) GetAuction(auctionID uint64) (models.Auction, error) {
	a, err := e.loadAuction(auctionID)
	if err != nil {
		return models.Auction{}, err
	}
	a.Bids, err = e.loadBids(auctionID)
	if err != nil {
		return models.Auction{}, err
	}
	return a, nil
}

// GetBids returns the bid list of an auction in placement order
func (e *Engine) GetBids(auctionID uint64) ([]models.Bid, error) {
	if _, err := e.loadAuction(auctionID); err != nil {
		return nil, err
	}
	return e.loadBids(auctionID)
}

// ActiveAuctions returns pending auctions whose end time has not passed
func (e *Engine) ActiveAuctions() ([]models.Auction, error) {
	now := e.clock.Now()
	return e.filter(func(a models.Auction) bool {
		return a.State == models.Pending && now >= a.StartTime && now <= a.EndTime
	})
}

// AuctionsBySeller returns every auction created by seller
func (e *Engine) AuctionsBySeller(seller string) ([]models.Auction, error) {
	return e.filter(func(a models.Auction) bool { return a.Seller == seller })
}

func (e *Engine) filter(keep func(models.Auction) bool) ([]models.Auction, error) {
	keys, err := e.store.Keys(repository.GroupAuctions)
	if err != nil {
		return nil, fmt.Errorf("auction: failed to list auctions: %w", err)
	}
	out := []models.Auction{}
	for _, key := range keys {
		a, ok, err := repository.Load[models.Auction](e.store, repository.GroupAuctions, key)
		if err != nil {
			return nil, err
		}
		if ok && keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (e *Engine) loadAuction(auctionID uint64) (models.Auction, error) {
	a, ok, err := repository.Load[models.Auction](e.store, repository.GroupAuctions, repository.IDKey(auctionID))
	if err != nil {
		return models.Auction{}, fmt.Errorf("auction %d: %w", auctionID, err)
	}
	if !ok {
		return models.Auction{}, fmt.Errorf("auction %d: %w", auctionID, settlementerrors.ErrAuctionNotFound)
	}
	return a, nil
}

func (e *Engine) saveAuction(a models.Auction) error {
	a.Bids = nil
	if err := repository.Save(e.store, repository.GroupAuctions, repository.IDKey(a.AuctionID), a); err != nil {
		return fmt.Errorf("auction %d: %w", a.AuctionID, err)
	}
	return nil
}

func (e *Engine) loadBids(auctionID uint64) ([]models.Bid, error) {
	bids, _, err := repository.Load[[]models.Bid](e.store, repository.GroupAuctionBids, repository.IDKey(auctionID))
	if err != nil {
		return nil, fmt.Errorf("auction %d: %w", auctionID, err)
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	return bids, nil
}

func (e *Engine) saveBids(auctionID uint64, bids []models.Bid) error {
	if err := repository.Save(e.store, repository.GroupAuctionBids, repository.IDKey(auctionID), bids); err != nil {
		return fmt.Errorf("auction %d: %w", auctionID, err)
	}
	return nil
}
