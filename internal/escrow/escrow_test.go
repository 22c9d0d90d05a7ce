package escrow

import (
	"errors"
	"testing"

	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/settlementerrors"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var usdc = models.Asset{Contract: "usdc-contract", Symbol: "USDC"}

func terms() Terms {
	return Terms{Account: "escrow", Buyer: "buyer", Seller: "seller", Currency: usdc, Amount: 1001, NFTAddress: "nft", TokenID: 3}
}

func TestDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actions := NewMockActions(ctrl)

	tests := []struct {
		name       string
		resolution models.Resolution
		mockSetup  func(d models.Dispute)
		expectErr  error
	}{
		{
			name:       "refund_buyer",
			resolution: models.ResolutionRefundBuyer,
			mockSetup:  func(d models.Dispute) { actions.EXPECT().RefundBuyer(d, terms()).Return(nil) },
		},
		{
			name:       "release_to_seller",
			resolution: models.ResolutionReleaseToSeller,
			mockSetup:  func(d models.Dispute) { actions.EXPECT().ReleaseToSeller(d, terms()).Return(nil) },
		},
		{
			name:       "split_funds",
			resolution: models.ResolutionSplitFunds,
			mockSetup:  func(d models.Dispute) { actions.EXPECT().SplitFunds(d, terms()).Return(nil) },
		},
		{
			name:       "cancel_transaction",
			resolution: models.ResolutionCancelTransaction,
			mockSetup:  func(d models.Dispute) { actions.EXPECT().CancelTransaction(d, terms()).Return(nil) },
		},
		{name: "unset", resolution: models.ResolutionNone, mockSetup: func(models.Dispute) {}, expectErr: settlementerrors.ErrInvalidState},
		{name: "unknown_code", resolution: 42, mockSetup: func(models.Dispute) {}, expectErr: settlementerrors.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := models.Dispute{DisputeID: 1, Resolution: tt.resolution}
			tt.mockSetup(d)
			err := Dispatch(actions, d, terms())
			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTransferActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assets := NewMockAssetTransfer(ctrl)
	items := NewMockItemOwnership(ctrl)
	actions := NewTransferActions(assets, items)
	d := models.Dispute{DisputeID: 1}

	t.Run("refund", func(t *testing.T) {
		assets.EXPECT().Transfer(usdc, "escrow", "buyer", int64(1001)).Return(nil)
		require.NoError(t, actions.RefundBuyer(d, terms()))
	})

	t.Run("release", func(t *testing.T) {
		assets.EXPECT().Transfer(usdc, "escrow", "seller", int64(1001)).Return(nil)
		require.NoError(t, actions.ReleaseToSeller(d, terms()))
	})

	t.Run("split_odd_unit_to_seller", func(t *testing.T) {
		gomock.InOrder(
			assets.EXPECT().Transfer(usdc, "escrow", "buyer", int64(500)).Return(nil),
			assets.EXPECT().Transfer(usdc, "escrow", "seller", int64(501)).Return(nil),
		)
		require.NoError(t, actions.SplitFunds(d, terms()))
	})

	t.Run("cancel_returns_item", func(t *testing.T) {
		assets.EXPECT().Transfer(usdc, "escrow", "buyer", int64(1001)).Return(nil)
		items.EXPECT().CheckOwnership("nft", uint64(3), "buyer").Return(true, nil)
		items.EXPECT().TransferItem("nft", uint64(3), "buyer", "seller").Return(nil)
		require.NoError(t, actions.CancelTransaction(d, terms()))
	})

	t.Run("payment_failure", func(t *testing.T) {
		assets.EXPECT().Transfer(usdc, "escrow", "buyer", int64(1001)).Return(errors.New("rpc down"))
		require.ErrorIs(t, actions.RefundBuyer(d, terms()), settlementerrors.ErrPaymentFailed)
	})

	t.Run("split_second_payment_fails_reverses_first", func(t *testing.T) {
		gomock.InOrder(
			assets.EXPECT().Transfer(usdc, "escrow", "buyer", int64(500)).Return(nil),
			assets.EXPECT().Transfer(usdc, "escrow", "seller", int64(501)).Return(errors.New("rpc down")),
			assets.EXPECT().Transfer(usdc, "buyer", "escrow", int64(500)).Return(nil),
		)
		require.ErrorIs(t, actions.SplitFunds(d, terms()), settlementerrors.ErrPaymentFailed)
	})

	t.Run("cancel_item_return_fails_reverses_refund", func(t *testing.T) {
		gomock.InOrder(
			assets.EXPECT().Transfer(usdc, "escrow", "buyer", int64(1001)).Return(nil),
			items.EXPECT().CheckOwnership("nft", uint64(3), "buyer").Return(true, nil),
			items.EXPECT().TransferItem("nft", uint64(3), "buyer", "seller").Return(errors.New("paused")),
			assets.EXPECT().Transfer(usdc, "buyer", "escrow", int64(1001)).Return(nil),
		)
		require.Error(t, actions.CancelTransaction(d, terms()))
	})

	t.Run("zero_amount_skipped", func(t *testing.T) {
		tm := terms()
		tm.Amount = 0
		require.NoError(t, actions.ReleaseToSeller(d, tm))
	})
}

func TestLedger(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.Deposit(usdc, "escrow", 5000))
	require.ErrorIs(t, l.Deposit(usdc, "escrow", 0), settlementerrors.ErrInvalidAmount)

	require.NoError(t, l.Transfer(usdc, "escrow", "seller", 3000))
	require.ErrorIs(t, l.Transfer(usdc, "escrow", "seller", 3000), settlementerrors.ErrInsufficientFunds)
	require.Equal(t, int64(2000), l.Balance(usdc, "escrow"))
	require.Equal(t, int64(3000), l.Balance(usdc, "seller"))

	require.NoError(t, l.Mint("nft", 1, "seller"))
	require.ErrorIs(t, l.Mint("nft", 1, "other"), settlementerrors.ErrAlreadyExists)
	require.ErrorIs(t, l.TransferItem("nft", 1, "buyer", "seller"), settlementerrors.ErrUnauthorized)
	require.NoError(t, l.TransferItem("nft", 1, "seller", "buyer"))

	owned, err := l.CheckOwnership("nft", 1, "buyer")
	require.NoError(t, err)
	require.True(t, owned)
	require.Len(t, l.Receipts(), 2)
}

// flakyLedger fails the first n transfers of either kind
type flakyLedger struct {
	*Ledger
	failAssets int
	failItems  int
}

func (f *flakyLedger) Transfer(currency models.Asset, from, to string, amount int64) error {
	if f.failAssets > 0 {
		f.failAssets--
		return errors.New("transfer rejected")
	}
	return f.Ledger.Transfer(currency, from, to, amount)
}

func (f *flakyLedger) TransferItem(nftAddress string, tokenID uint64, from, to string) error {
	if f.failItems > 0 {
		f.failItems--
		return errors.New("item transfer rejected")
	}
	return f.Ledger.TransferItem(nftAddress, tokenID, from, to)
}

func TestJournal(t *testing.T) {
	t.Run("unwind_newest_first", func(t *testing.T) {
		l := NewLedger()
		require.NoError(t, l.Deposit(usdc, "escrow", 1000))
		require.NoError(t, l.Mint("nft", 1, "seller"))

		j := NewJournal(l, l)
		require.NoError(t, j.Pay(usdc, "escrow", "creator", 300))
		require.NoError(t, j.Pay(usdc, "creator", "seller", 100))
		require.NoError(t, j.MoveItem("nft", 1, "seller", "buyer"))
		require.Equal(t, 3, j.Len())

		require.NoError(t, j.Unwind())
		require.Equal(t, 0, j.Len())
		require.Equal(t, int64(1000), l.Balance(usdc, "escrow"))
		require.Equal(t, int64(0), l.Balance(usdc, "creator"))
		require.Equal(t, int64(0), l.Balance(usdc, "seller"))
		owned, err := l.CheckOwnership("nft", 1, "seller")
		require.NoError(t, err)
		require.True(t, owned)
	})

	t.Run("failed_step_is_not_recorded", func(t *testing.T) {
		l := NewLedger()
		j := NewJournal(l, l)
		require.ErrorIs(t, j.Pay(usdc, "escrow", "seller", 10), settlementerrors.ErrInsufficientFunds)
		require.Equal(t, 0, j.Len())
	})

	t.Run("abort_reports_incomplete_compensation", func(t *testing.T) {
		fl := &flakyLedger{Ledger: NewLedger()}
		require.NoError(t, fl.Deposit(usdc, "escrow", 1000))
		j := NewJournal(fl, fl)
		require.NoError(t, j.Pay(usdc, "escrow", "seller", 400))

		fl.failAssets = 1
		cause := errors.New("item transfer rejected")
		err := j.Abort(cause)
		require.ErrorIs(t, err, cause)
		require.Contains(t, err.Error(), "compensation incomplete")
		require.Equal(t, int64(400), fl.Balance(usdc, "seller"))
	})
}

func TestTransferActions_LedgerBalancesAfterFailure(t *testing.T) {
	fl := &flakyLedger{Ledger: NewLedger()}
	require.NoError(t, fl.Deposit(usdc, "escrow", 1001))
	require.NoError(t, fl.Mint("nft", 3, "buyer"))
	actions := NewTransferActions(fl, fl)
	d := models.Dispute{DisputeID: 1}

	fl.failItems = 1
	require.Error(t, actions.CancelTransaction(d, terms()))
	require.Equal(t, int64(1001), fl.Balance(usdc, "escrow"))
	require.Equal(t, int64(0), fl.Balance(usdc, "buyer"))

	// a retry after the fault clears completes exactly once
	require.NoError(t, actions.CancelTransaction(d, terms()))
	require.Equal(t, int64(0), fl.Balance(usdc, "escrow"))
	require.Equal(t, int64(1001), fl.Balance(usdc, "buyer"))
	owned, err := fl.CheckOwnership("nft", 3, "seller")
	require.NoError(t, err)
	require.True(t, owned)
}

func TestLedger_Seed(t *testing.T) {
	l := NewLedger()
	err := l.Seed(
		[]Holding{{Currency: usdc, Account: "escrow", Amount: 50_000}, {Currency: usdc, Account: "escrow", Amount: 5_000}},
		[]ItemHolding{{NFTAddress: "nft", TokenID: 1, Owner: "seller"}},
	)
	require.NoError(t, err)
	require.Equal(t, int64(55_000), l.Balance(usdc, "escrow"))
	owned, err := l.CheckOwnership("nft", 1, "seller")
	require.NoError(t, err)
	require.True(t, owned)

	require.ErrorIs(t, l.Seed(nil, []ItemHolding{{NFTAddress: "nft", TokenID: 1, Owner: "other"}}), settlementerrors.ErrAlreadyExists)
	require.ErrorIs(t, l.Seed([]Holding{{Currency: usdc, Account: "alice"}}, nil), settlementerrors.ErrInvalidAmount)
}
