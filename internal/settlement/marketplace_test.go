package settlement

import (
	"errors"
	"testing"

	auction "marketplace-settlement/internal/auctionEngine"
	dispute "marketplace-settlement/internal/disputeService"
	"marketplace-settlement/internal/escrow"
	"marketplace-settlement/internal/events"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const (
	t0       uint64 = 1_700_000_000
	admin           = "admin"
	treasury        = "treasury"
	custody         = "escrow"
)

var usdc = models.Asset{Contract: "usdc-contract", Symbol: "USDC"}

type fixture struct {
	market *Marketplace
	clock  *utils.FixedClock
	log    *events.Recorder
	store  *repository.MemoryStore
	ledger *escrow.Ledger
}

func seeds() Seeds {
	return Seeds{
		Admin:   admin,
		Auction: models.DefaultAuctionConfig(),
		Fee:     models.DefaultFeeConfig(treasury),
		Dispute: models.DefaultDisputeConfig(),
	}
}

func newFixture(t *testing.T, assets escrow.AssetTransfer, items escrow.ItemOwnership) *fixture {
	t.Helper()
	f := &fixture{
		clock:  utils.NewFixedClock(t0),
		log:    events.NewRecorder(),
		store:  repository.NewMemoryStore(),
		ledger: escrow.NewLedger(),
	}
	if assets == nil {
		assets = f.ledger
	}
	if items == nil {
		items = f.ledger
	}
	f.market = New(Options{
		Store:         f.store,
		Clock:         f.clock,
		Events:        f.log,
		Assets:        assets,
		Items:         items,
		EscrowAccount: custody,
	})
	require.NoError(t, f.market.Initialize(seeds()))
	return f
}

func params() auction.CreateParams {
	return auction.CreateParams{
		AuctionType:   models.English,
		Seller:        "seller",
		NFTAddress:    "nft",
		TokenID:       1,
		StartingPrice: 10_000,
		ReservePrice:  5_000,
		Duration:      3600,
		BidIncrement:  500,
		Currency:      usdc,
	}
}

// endedAuction creates an auction won by alice at 10,000
func (f *fixture) endedAuction(t *testing.T) uint64 {
	t.Helper()
	id, err := f.market.CreateAuction(params())
	require.NoError(t, err)

	f.clock.Set(t0 + 10)
	require.NoError(t, f.market.PlaceBid(id, "alice", 10_000, nil))

	f.clock.Set(t0 + 3601)
	a, err := f.market.EndAuction(id, "anyone")
	require.NoError(t, err)
	require.Equal(t, "alice", a.Winner)
	return id
}

func requireUnlocked(t *testing.T, m *Marketplace) {
	t.Helper()
	locked, err := m.guard.IsLocked()
	require.NoError(t, err)
	require.False(t, locked)
}

func TestMarketplace_Initialize(t *testing.T) {
	f := newFixture(t, nil, nil)

	other := seeds()
	other.Admin = "someone-else"
	other.Fee.PlatformFeeBps = 900
	require.NoError(t, f.market.Initialize(other))

	got, err := f.market.Admin()
	require.NoError(t, err)
	require.Equal(t, admin, got)

	cfg, err := f.market.GetFeeConfig()
	require.NoError(t, err)
	require.Equal(t, uint64(250), cfg.PlatformFeeBps)

	empty := New(Options{Store: repository.NewMemoryStore(), Clock: f.clock})
	require.ErrorIs(t, empty.Initialize(Seeds{}), settlementerrors.ErrInvalidState)
}

func TestMarketplace_RestartAfterCrashMidInvocation(t *testing.T) {
	f := newFixture(t, nil, nil)

	// the process dies while holding both flags
	_, err := f.market.locks.Lock(settleLock, "seller")
	require.NoError(t, err)
	_, err = f.market.guard.Enter("seller", settleLock)
	require.NoError(t, err)

	restarted := New(Options{
		Store:         f.store,
		Clock:         f.clock,
		Events:        f.log,
		Assets:        f.ledger,
		Items:         f.ledger,
		EscrowAccount: custody,
	})
	_, err = restarted.CreateAuction(params())
	require.ErrorIs(t, err, settlementerrors.ErrReentrancyDetected)

	require.NoError(t, restarted.Initialize(seeds()))
	requireUnlocked(t, restarted)
	held, err := restarted.locks.IsLocked(settleLock)
	require.NoError(t, err)
	require.False(t, held)

	id, err := restarted.CreateAuction(params())
	require.NoError(t, err)
	got, err := restarted.GetAuction(id)
	require.NoError(t, err)
	require.Equal(t, "seller", got.Seller)
}

func TestMarketplace_SettleAuction(t *testing.T) {
	f := newFixture(t, nil, nil)
	require.NoError(t, f.ledger.Mint("nft", 1, "seller"))
	require.NoError(t, f.ledger.Deposit(usdc, custody, 10_000))

	id := f.endedAuction(t)

	s, err := f.market.SettleAuction(id, "seller")
	require.NoError(t, err)
	// 250 bps of 10,000 is 250, raised to the 1,000 minimum
	require.Equal(t, int64(1_000), s.PlatformFee)
	require.Equal(t, int64(450), s.CreatorRoyalty)
	require.Equal(t, int64(8_550), s.SellerProceeds)

	require.Equal(t, int64(9_000), f.ledger.Balance(usdc, "seller"))
	require.Equal(t, int64(1_000), f.ledger.Balance(usdc, custody))
	owned, err := f.ledger.CheckOwnership("nft", 1, "alice")
	require.NoError(t, err)
	require.True(t, owned)

	a, err := f.market.GetAuction(id)
	require.NoError(t, err)
	require.True(t, a.Settled)
	require.Equal(t, int64(1_000), a.PlatformFee)
	require.Equal(t, int64(9_000), a.RoyaltyInfo.Amounts["seller"])

	acc, err := f.market.AccumulatedFees(usdc)
	require.NoError(t, err)
	require.Equal(t, int64(1_000), acc)
	require.Len(t, f.log.ByKind(events.AuctionSettled), 1)

	_, err = f.market.SettleAuction(id, "seller")
	require.ErrorIs(t, err, settlementerrors.ErrInvalidState)

	// fees leave custody only through the fee recipient
	_, err = f.market.WithdrawPlatformFees(usdc, treasury, admin)
	require.ErrorIs(t, err, settlementerrors.ErrUnauthorized)
	amount, err := f.market.WithdrawPlatformFees(usdc, treasury, treasury)
	require.NoError(t, err)
	require.Equal(t, int64(1_000), amount)
	require.Equal(t, int64(1_000), f.ledger.Balance(usdc, treasury))

	requireUnlocked(t, f.market)
}

func TestMarketplace_SettleRejections(t *testing.T) {
	f := newFixture(t, nil, nil)

	running, err := f.market.CreateAuction(params())
	require.NoError(t, err)
	_, err = f.market.SettleAuction(running, "seller")
	require.ErrorIs(t, err, settlementerrors.ErrInvalidState)

	f.clock.Set(t0 + 4000)
	_, err = f.market.EndAuction(running, "anyone")
	require.NoError(t, err)
	_, err = f.market.SettleAuction(running, "seller")
	require.ErrorIs(t, err, settlementerrors.ErrAuctionReserveNotMet)

	_, err = f.market.SettleAuction(404, "seller")
	require.ErrorIs(t, err, settlementerrors.ErrAuctionNotFound)
}

func TestMarketplace_SettleRollsBackOnTransferFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assets := escrow.NewMockAssetTransfer(ctrl)
	items := escrow.NewMockItemOwnership(ctrl)
	f := newFixture(t, assets, items)
	id := f.endedAuction(t)

	items.EXPECT().CheckOwnership("nft", uint64(1), "seller").Return(true, nil)
	assets.EXPECT().Transfer(usdc, custody, "seller", int64(9_000)).Return(errors.New("custody offline"))

	_, err := f.market.SettleAuction(id, "seller")
	require.ErrorIs(t, err, settlementerrors.ErrPaymentFailed)

	a, err := f.market.GetAuction(id)
	require.NoError(t, err)
	require.False(t, a.Settled)
	acc, err := f.market.AccumulatedFees(usdc)
	require.NoError(t, err)
	require.Zero(t, acc)
	require.Empty(t, f.log.ByKind(events.AuctionSettled))
	require.Empty(t, f.log.ByKind(events.FeeCollected))

	requireUnlocked(t, f.market)
	held, err := f.market.locks.IsLocked(settleLock)
	require.NoError(t, err)
	require.False(t, held)
}

// flakyItems fails the first failures item transfers
type flakyItems struct {
	*escrow.Ledger
	failures int
}

func (f *flakyItems) TransferItem(nftAddress string, tokenID uint64, from, to string) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("item contract paused")
	}
	return f.Ledger.TransferItem(nftAddress, tokenID, from, to)
}

func TestMarketplace_SettleReversesPayoutsWhenItemTransferFails(t *testing.T) {
	ledger := escrow.NewLedger()
	items := &flakyItems{Ledger: ledger, failures: 1}
	f := newFixture(t, ledger, items)
	f.ledger = ledger
	require.NoError(t, ledger.Mint("nft", 1, "seller"))
	require.NoError(t, ledger.Deposit(usdc, custody, 20_000))
	id := f.endedAuction(t)

	_, err := f.market.SettleAuction(id, "seller")
	require.Error(t, err)
	require.Equal(t, int64(0), ledger.Balance(usdc, "seller"))
	require.Equal(t, int64(20_000), ledger.Balance(usdc, custody))
	a, err := f.market.GetAuction(id)
	require.NoError(t, err)
	require.False(t, a.Settled)
	requireUnlocked(t, f.market)

	// the retry pays out exactly once
	s, err := f.market.SettleAuction(id, "seller")
	require.NoError(t, err)
	require.Equal(t, int64(9_000), s.CreatorRoyalty+s.SellerProceeds)
	require.Equal(t, int64(9_000), ledger.Balance(usdc, "seller"))
	require.Equal(t, int64(11_000), ledger.Balance(usdc, custody))
	owned, err := ledger.CheckOwnership("nft", 1, "alice")
	require.NoError(t, err)
	require.True(t, owned)

	_, err = f.market.SettleAuction(id, "seller")
	require.ErrorIs(t, err, settlementerrors.ErrInvalidState)
	require.Equal(t, int64(9_000), ledger.Balance(usdc, "seller"))
}

func TestMarketplace_SettleCompensationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assets := escrow.NewMockAssetTransfer(ctrl)
	items := escrow.NewMockItemOwnership(ctrl)
	f := newFixture(t, assets, items)
	id := f.endedAuction(t)

	gomock.InOrder(
		items.EXPECT().CheckOwnership("nft", uint64(1), "seller").Return(true, nil),
		assets.EXPECT().Transfer(usdc, custody, "seller", int64(9_000)).Return(nil),
		items.EXPECT().TransferItem("nft", uint64(1), "seller", "alice").Return(errors.New("item contract paused")),
		assets.EXPECT().Transfer(usdc, "seller", custody, int64(9_000)).Return(nil),
	)

	_, err := f.market.SettleAuction(id, "seller")
	require.Error(t, err)
	require.NotContains(t, err.Error(), "compensation incomplete")
	require.Empty(t, f.log.ByKind(events.AuctionSettled))
}

func TestMarketplace_ReentrantCallbackRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assets := escrow.NewMockAssetTransfer(ctrl)
	items := escrow.NewMockItemOwnership(ctrl)
	f := newFixture(t, assets, items)
	id := f.endedAuction(t)

	other, err := f.market.CreateAuction(params())
	require.NoError(t, err)

	var nested, nestedSettle error
	items.EXPECT().CheckOwnership("nft", uint64(1), "seller").Return(true, nil)
	assets.EXPECT().Transfer(usdc, custody, "seller", int64(9_000)).DoAndReturn(
		func(models.Asset, string, string, int64) error {
			nested = f.market.PlaceBid(other, "seller", 20_000, nil)
			_, nestedSettle = f.market.SettleAuction(id, "seller")
			return nil
		})
	items.EXPECT().TransferItem("nft", uint64(1), "seller", "alice").Return(nil)

	_, err = f.market.SettleAuction(id, "seller")
	require.NoError(t, err)
	require.ErrorIs(t, nested, settlementerrors.ErrReentrancyDetected)
	require.ErrorIs(t, nestedSettle, settlementerrors.ErrReentrancyDetected)
	require.Len(t, f.log.ByKind(events.ReentrancyDetected), 1)

	requireUnlocked(t, f.market)
	bids, err := f.market.GetBids(other)
	require.NoError(t, err)
	require.Empty(t, bids)

	// the guard does not stick after the outer call returns
	f.clock.Set(t0 + 3700)
	require.NoError(t, f.market.PlaceBid(other, "bob", 10_000, nil))
}

func TestMarketplace_RejectedBidLeavesNoTrace(t *testing.T) {
	f := newFixture(t, nil, nil)
	id, err := f.market.CreateAuction(params())
	require.NoError(t, err)

	f.clock.Set(t0 + 1)
	require.NoError(t, f.market.PlaceBid(id, "alice", 10_000, nil))
	f.clock.Set(t0 + 11)
	require.NoError(t, f.market.PlaceBid(id, "alice", 10_600, nil))
	before := len(f.log.Events())

	f.clock.Set(t0 + 40)
	err = f.market.PlaceBid(id, "alice", 11_200, nil)
	require.ErrorIs(t, err, settlementerrors.ErrFrontRunningDetected)

	// only the detection record survives the rejected call
	after := f.log.Events()
	require.Len(t, after, before+1)
	require.Equal(t, events.FrontRunningDetected, after[len(after)-1].Kind)

	a, err := f.market.GetAuction(id)
	require.NoError(t, err)
	require.Equal(t, int64(10_600), a.HighestBid)
	require.Len(t, a.Bids, 2)
	requireUnlocked(t, f.market)
}

func TestMarketplace_AdminOnly(t *testing.T) {
	f := newFixture(t, nil, nil)

	tests := []struct {
		name string
		call func(caller string) error
	}{
		{name: "update_auction_config", call: func(c string) error { return f.market.UpdateAuctionConfig(models.DefaultAuctionConfig(), c) }},
		{name: "update_fee_config", call: func(c string) error { return f.market.UpdateFeeConfig(models.DefaultFeeConfig(treasury), c) }},
		{name: "update_dispute_config", call: func(c string) error { return f.market.UpdateDisputeConfig(models.DefaultDisputeConfig(), c) }},
		{name: "add_vip", call: func(c string) error { return f.market.AddVIPExemption("vip", c) }},
		{name: "remove_vip", call: func(c string) error { return f.market.RemoveVIPExemption("vip", c) }},
		{name: "reset_volume", call: func(c string) error { return f.market.ResetUserVolume("alice", c) }},
		{name: "collect_fee", call: func(c string) error { return f.market.CollectPlatformFee(100, usdc, "alice", c) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call("mallory"), settlementerrors.ErrNotAdmin)
			require.NoError(t, tt.call(admin))
		})
	}
}

func TestMarketplace_DisputeFlow(t *testing.T) {
	f := newFixture(t, nil, nil)
	require.NoError(t, f.ledger.Deposit(usdc, custody, 10_000))
	for _, a := range []string{"arb1", "arb2", "arb3"} {
		require.NoError(t, f.market.RegisterArbitrator(a, 80))
	}
	id := f.endedAuction(t)

	disputeID, err := f.market.InitiateDispute(dispute.InitiateParams{
		TransactionID: 77,
		AuctionID:     &id,
		Initiator:     "alice",
		Reason:        "counterfeit item",
	})
	require.NoError(t, err)

	// payout is frozen while the dispute exists
	_, err = f.market.SettleAuction(id, "seller")
	require.ErrorIs(t, err, settlementerrors.ErrInvalidState)

	for _, v := range []struct {
		arb   string
		favor bool
	}{{"arb1", true}, {"arb2", false}, {"arb3", true}} {
		_, err := f.market.VoteOnDispute(disputeID, v.arb, v.favor)
		require.NoError(t, err)
	}

	d, err := f.market.GetDispute(disputeID)
	require.NoError(t, err)
	require.Equal(t, models.ResolutionRefundBuyer, d.Resolution)

	require.NoError(t, f.market.ExecuteDisputeResolution(disputeID, "alice"))
	require.Equal(t, int64(10_000), f.ledger.Balance(usdc, "alice"))
	require.Equal(t, int64(0), f.ledger.Balance(usdc, custody))
	require.ErrorIs(t, f.market.ExecuteDisputeResolution(disputeID, "alice"), settlementerrors.ErrInvalidState)
}

func TestMarketplace_ForceResolveRequiresAdmin(t *testing.T) {
	f := newFixture(t, nil, nil)
	require.NoError(t, f.market.RegisterArbitrator("arb1", 80))

	disputeID, err := f.market.InitiateDispute(dispute.InitiateParams{TransactionID: 1, Initiator: "alice"})
	require.NoError(t, err)

	require.ErrorIs(t, f.market.ForceResolveDispute(disputeID, models.ResolutionSplitFunds, "mallory"), settlementerrors.ErrNotAdmin)
	require.NoError(t, f.market.ForceResolveDispute(disputeID, models.ResolutionSplitFunds, admin))

	// plain transactions carry no escrow terms
	require.ErrorIs(t, f.market.ExecuteDisputeResolution(disputeID, admin), settlementerrors.ErrNotFound)

	active, err := f.market.ActiveDisputes()
	require.NoError(t, err)
	require.Empty(t, active)
}

func TestMarketplace_DisputeOnSettledAuction(t *testing.T) {
	f := newFixture(t, nil, nil)
	require.NoError(t, f.ledger.Mint("nft", 1, "seller"))
	require.NoError(t, f.ledger.Deposit(usdc, custody, 10_000))
	require.NoError(t, f.market.RegisterArbitrator("arb1", 80))
	id := f.endedAuction(t)

	_, err := f.market.SettleAuction(id, "seller")
	require.NoError(t, err)

	_, err = f.market.InitiateDispute(dispute.InitiateParams{TransactionID: 1, AuctionID: &id, Initiator: "alice"})
	require.ErrorIs(t, err, settlementerrors.ErrInvalidState)
}

func TestMarketplace_FeesAndQueries(t *testing.T) {
	f := newFixture(t, nil, nil)

	fee, err := f.market.CalculateFee(100_000, "alice")
	require.NoError(t, err)
	require.Equal(t, int64(2_500), fee)

	require.NoError(t, f.market.AddVIPExemption("vip", admin))
	q, err := f.market.QuoteFee(100_000, "vip")
	require.NoError(t, err)
	require.True(t, q.VIP)

	require.ErrorIs(t, f.market.CollectPlatformFee(500, usdc, "alice", "alice"), settlementerrors.ErrNotAdmin)
	acc, err := f.market.AccumulatedFees(usdc)
	require.NoError(t, err)
	require.Zero(t, acc)
	volume, err := f.market.UserVolume("alice")
	require.NoError(t, err)
	require.Zero(t, volume)

	require.NoError(t, f.market.CollectPlatformFee(500, usdc, "alice", admin))
	acc, err = f.market.AccumulatedFees(usdc)
	require.NoError(t, err)
	require.Equal(t, int64(500), acc)
	stats, err := f.market.FeeStatistics()
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.TotalUsers)

	p := params()
	p.AuctionType = models.Dutch
	id, err := f.market.CreateAuction(p)
	require.NoError(t, err)
	f.clock.Set(t0 + 1800)
	price, err := f.market.GetDutchAuctionPrice(id)
	require.NoError(t, err)
	require.Equal(t, int64(7_500), price)

	active, err := f.market.ActiveAuctions()
	require.NoError(t, err)
	require.Len(t, active, 1)

	removed, err := f.market.CleanupExpiredCommitments(admin)
	require.NoError(t, err)
	require.Zero(t, removed)
}
