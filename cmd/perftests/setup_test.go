package perftests

import (
	"fmt"
	"testing"

	auction "marketplace-settlement/internal/auctionEngine"
	"marketplace-settlement/internal/escrow"
	"marketplace-settlement/internal/events"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/security"
	"marketplace-settlement/internal/settlement"
	"marketplace-settlement/utils"
)

const (
	startTime uint64 = 1_700_000_000
	custody          = "escrow"
)

var usdc = models.Asset{Contract: "usdc-contract", Symbol: "USDC"}

type bench struct {
	market *settlement.Marketplace
	clock  *utils.FixedClock
	ledger *escrow.Ledger
}

func setupMarket(tb testing.TB) *bench {
	tb.Helper()
	utils.SetLevel("error")

	b := &bench{
		clock:  utils.NewFixedClock(startTime),
		ledger: escrow.NewLedger(),
	}
	b.market = settlement.New(settlement.Options{
		Store:         repository.NewMemoryStore(),
		Clock:         b.clock,
		Events:        events.NewRecorder(),
		Assets:        b.ledger,
		Items:         b.ledger,
		EscrowAccount: custody,
	})
	err := b.market.Initialize(settlement.Seeds{
		Admin:   "admin",
		Auction: models.DefaultAuctionConfig(),
		Fee:     models.DefaultFeeConfig("treasury"),
		Dispute: models.DefaultDisputeConfig(),
	})
	if err != nil {
		tb.Fatalf("initialize: %v", err)
	}
	return b
}

func (b *bench) createAuction(tb testing.TB, tokenID uint64) uint64 {
	tb.Helper()
	id, err := b.market.CreateAuction(auction.CreateParams{
		AuctionType:   models.English,
		Seller:        "seller",
		NFTAddress:    "nft",
		TokenID:       tokenID,
		StartingPrice: 10_000,
		ReservePrice:  5_000,
		Duration:      86_400,
		BidIncrement:  500,
		Currency:      usdc,
	})
	if err != nil {
		tb.Fatalf("create auction %d: %v", tokenID, err)
	}
	return id
}

// nextBid returns an amount above the 5% increment that avoids the fixed +1000 step
// of the increment-gaming heuristic against the last three bids.
func nextBid(a models.Auction, recent []models.Bid) int64 {
	if a.HighestBid == 0 {
		return a.StartingPrice
	}
	amount := a.HighestBid + a.HighestBid/20 + 7
	from := len(recent) - 3
	if from < 0 {
		from = 0
	}
	for {
		clash := false
		for _, bid := range recent[from:] {
			if bid.Amount+1000 == amount {
				clash = true
			}
		}
		if !clash {
			return amount
		}
		amount++
	}
}

// placeBid bids the next acceptable amount on auctionID, first moving the clock off
// any cadence the timed-bidding heuristic would match.
func (b *bench) placeBid(auctionID uint64, bidder string) error {
	a, err := b.market.GetAuction(auctionID)
	if err != nil {
		return err
	}
	bids, err := b.market.GetBids(auctionID)
	if err != nil {
		return err
	}
	b.clock.Advance(1)
	for security.DetectTimedBidding(models.Bid{Bidder: bidder, PlacedAt: b.clock.Now()}, bids) {
		b.clock.Advance(1)
	}
	return b.market.PlaceBid(auctionID, bidder, nextBid(a, bids), nil)
}

func bidder(i int) string {
	return fmt.Sprintf("bidder_%d", i)
}
