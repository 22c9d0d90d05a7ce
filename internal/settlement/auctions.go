package settlement

import (
	"fmt"

	auction "marketplace-settlement/internal/auctionEngine"
	"marketplace-settlement/internal/escrow"
	"marketplace-settlement/internal/events"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"
)

const settleLock = "settle_auction"

// Settlement is the payout made for an ended auction
type Settlement struct {
	AuctionID      uint64 `json:"auction_id"`
	Winner         string `json:"winner"`
	Seller         string `json:"seller"`
	FinalPrice     int64  `json:"final_price"`
	PlatformFee    int64  `json:"platform_fee"`
	CreatorRoyalty int64  `json:"creator_royalty"`
	SellerProceeds int64  `json:"seller_proceeds"`
}

// CreateAuction opens a new auction for p.Seller
func (m *Marketplace) CreateAuction(p auction.CreateParams) (uint64, error) {
	var id uint64
	err := m.invoke(p.Seller, "create_auction", func(s *session) error {
		var err error
		id, err = s.auctions.CreateAuction(p)
		return err
	})
	return id, err
}

// PlaceBid submits a direct bid, or a hidden one when commitment is set
func (m *Marketplace) PlaceBid(auctionID uint64, bidder string, amount int64, commitment []byte) error {
	return m.invoke(bidder, "place_bid", func(s *session) error {
		return s.auctions.PlaceBid(auctionID, bidder, amount, commitment)
	})
}

// RevealBid opens a committed bid
func (m *Marketplace) RevealBid(auctionID uint64, bidder string, amount int64, salt []byte) error {
	return m.invoke(bidder, "reveal_bid", func(s *session) error {
		return s.auctions.RevealBid(auctionID, bidder, amount, salt)
	})
}

// EndAuction closes an auction past its end time
func (m *Marketplace) EndAuction(auctionID uint64, caller string) (models.Auction, error) {
	var a models.Auction
	err := m.invoke(caller, "end_auction", func(s *session) error {
		var err error
		a, err = s.auctions.EndAuction(auctionID, caller)
		return err
	})
	return a, err
}

// CancelAuction withdraws an auction without bids
func (m *Marketplace) CancelAuction(auctionID uint64, canceller string) error {
	return m.invoke(canceller, "cancel_auction", func(s *session) error {
		return s.auctions.CancelAuction(auctionID, canceller)
	})
}

// GetDutchAuctionPrice returns the current Dutch price and refreshes its cache
func (m *Marketplace) GetDutchAuctionPrice(auctionID uint64) (int64, error) {
	var price int64
	err := m.invoke("", "get_dutch_auction_price", func(s *session) error {
		var err error
		price, err = s.auctions.GetDutchAuctionPrice(auctionID)
		return err
	})
	return price, err
}

// CleanupExpiredCommitments sweeps commitments past their reveal deadline
func (m *Marketplace) CleanupExpiredCommitments(caller string) (int, error) {
	var removed int
	err := m.invoke(caller, "cleanup_expired_commitments", func(s *session) error {
		var err error
		removed, err = s.auctions.CleanupExpiredCommitments()
		return err
	})
	return removed, err
}

// GetAuctionConfig returns the auction tunables
func (m *Marketplace) GetAuctionConfig() (models.AuctionConfig, error) {
	var cfg models.AuctionConfig
	err := m.view(func(s *session) error {
		var err error
		cfg, err = s.auctions.GetConfig()
		return err
	})
	return cfg, err
}

// UpdateAuctionConfig replaces the auction tunables
func (m *Marketplace) UpdateAuctionConfig(cfg models.AuctionConfig, admin string) error {
	return m.invoke(admin, "update_auction_config", func(s *session) error {
		if err := requireAdmin(s, admin); err != nil {
			return err
		}
		return s.auctions.SetConfig(cfg)
	})
}

// GetAuction returns an auction with its bids
func (m *Marketplace) GetAuction(auctionID uint64) (models.Auction, error) {
	var a models.Auction
	err := m.view(func(s *session) error {
		var err error
		a, err = s.auctions.GetAuction(auctionID)
		return err
	})
	return a, err
}

// GetBids returns the bids of an auction
func (m *Marketplace) GetBids(auctionID uint64) ([]models.Bid, error) {
	var bids []models.Bid
	err := m.view(func(s *session) error {
		var err error
		bids, err = s.auctions.GetBids(auctionID)
		return err
	})
	return bids, err
}

// AuctionStats summarizes the bidding on an auction
func (m *Marketplace) AuctionStats(auctionID uint64) (models.AuctionStats, error) {
	var stats models.AuctionStats
	err := m.view(func(s *session) error {
		var err error
		stats, err = s.auctions.Stats(auctionID)
		return err
	})
	return stats, err
}

// ActiveAuctions lists auctions open for bids
func (m *Marketplace) ActiveAuctions() ([]models.Auction, error) {
	var out []models.Auction
	err := m.view(func(s *session) error {
		var err error
		out, err = s.auctions.ActiveAuctions()
		return err
	})
	return out, err
}

// AuctionsBySeller lists the auctions of seller
func (m *Marketplace) AuctionsBySeller(seller string) ([]models.Auction, error) {
	var out []models.Auction
	err := m.view(func(s *session) error {
		var err error
		out, err = s.auctions.AuctionsBySeller(seller)
		return err
	})
	return out, err
}

// SettleAuction pays out an auction that ended with a winner: the platform fee is collected,
// net proceeds are split by the royalty distribution and the item moves to the winner.
func (m *Marketplace) SettleAuction(auctionID uint64, caller string) (Settlement, error) {
	release, err := m.locks.Lock(settleLock, caller)
	if err != nil {
		return Settlement{}, err
	}
	defer release()

	var out Settlement
	err = m.invoke(caller, settleLock, func(s *session) error {
		var err error
		out, err = m.settle(s, auctionID)
		return err
	})
	return out, err
}

func (m *Marketplace) settle(s *session, auctionID uint64) (Settlement, error) {
	a, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return Settlement{}, err
	}
	switch {
	case a.State != models.Executed:
		return Settlement{}, fmt.Errorf("auction %d: %w - auction has not ended", auctionID, settlementerrors.ErrInvalidState)
	case a.Winner == "":
		return Settlement{}, fmt.Errorf("auction %d: %w", auctionID, settlementerrors.ErrAuctionReserveNotMet)
	case a.Settled:
		return Settlement{}, fmt.Errorf("auction %d: %w - already settled", auctionID, settlementerrors.ErrInvalidState)
	}
	if _, disputed, err := s.disputes.DisputeForAuction(auctionID); err != nil {
		return Settlement{}, err
	} else if disputed {
		return Settlement{}, fmt.Errorf("auction %d: %w - auction is under dispute", auctionID, settlementerrors.ErrInvalidState)
	}

	platformFee, err := s.fees.CalculateFee(a.FinalPrice, a.Winner)
	if err != nil {
		return Settlement{}, err
	}
	if platformFee > a.FinalPrice {
		platformFee = a.FinalPrice
	}
	net, err := utils.SafeSub(a.FinalPrice, platformFee)
	if err != nil {
		return Settlement{}, err
	}
	creatorCut, err := utils.CalculatePercentage(net, a.RoyaltyInfo.CreatorPercentage)
	if err != nil {
		return Settlement{}, err
	}
	sellerCut := net - creatorCut

	owned, err := m.items.CheckOwnership(a.NFTAddress, a.TokenID, a.Seller)
	if err != nil {
		return Settlement{}, fmt.Errorf("auction %d: ownership check failed: %w", auctionID, err)
	}
	if !owned {
		return Settlement{}, fmt.Errorf("auction %d: %w - seller no longer owns the item", auctionID, settlementerrors.ErrUnauthorized)
	}

	if err := s.fees.CollectPlatformFee(platformFee, a.Currency, a.Winner); err != nil {
		return Settlement{}, err
	}

	royalty := a.RoyaltyInfo
	royalty.TotalAmount = net
	royalty.Amounts = map[string]int64{}
	royalty.Amounts[royalty.CreatorAddress] += creatorCut
	royalty.Amounts[a.Seller] += sellerCut
	if err := s.auctions.MarkSettled(auctionID, platformFee, royalty); err != nil {
		return Settlement{}, err
	}

	// outbound calls last, after every state change is staged. A failed step reverses the
	// movements already made so the rolled-back state matches the ledger.
	j := escrow.NewJournal(m.assets, m.items)
	payees := []string{royalty.CreatorAddress}
	if a.Seller != royalty.CreatorAddress {
		payees = append(payees, a.Seller)
	}
	for _, to := range payees {
		amount := royalty.Amounts[to]
		if amount <= 0 {
			continue
		}
		if err := j.Pay(a.Currency, m.account, to, amount); err != nil {
			return Settlement{}, j.Abort(fmt.Errorf("auction %d: %w - %v", auctionID, settlementerrors.ErrPaymentFailed, err))
		}
	}
	if err := j.MoveItem(a.NFTAddress, a.TokenID, a.Seller, a.Winner); err != nil {
		return Settlement{}, j.Abort(fmt.Errorf("auction %d: item transfer failed: %w", auctionID, err))
	}

	out := Settlement{
		AuctionID:      auctionID,
		Winner:         a.Winner,
		Seller:         a.Seller,
		FinalPrice:     a.FinalPrice,
		PlatformFee:    platformFee,
		CreatorRoyalty: creatorCut,
		SellerProceeds: sellerCut,
	}
	s.events.Emit(events.New(events.AuctionSettled, m.clock.Now(), map[string]any{
		"auction_id":   auctionID,
		"winner":       a.Winner,
		"final_price":  a.FinalPrice,
		"platform_fee": platformFee,
	}))
	utils.Info("auction settled", map[string]any{"auction_id": auctionID, "winner": a.Winner, "platform_fee": platformFee})
	return out, nil
}
