package fee

import (
	"errors"
	"testing"

	"marketplace-settlement/internal/escrow"
	"marketplace-settlement/internal/events"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var usdc = models.Asset{Contract: "usdc-contract", Symbol: "USDC"}

func newManager(t *testing.T, assets escrow.AssetTransfer, mutate func(*models.FeeConfig)) (*Manager, *events.Recorder) {
	t.Helper()
	rec := events.NewRecorder()
	if assets == nil {
		assets = escrow.NewLedger()
	}
	m := NewManager(repository.NewMemoryStore(), utils.NewFixedClock(1_700_000_000), rec, assets, "platform")

	cfg := models.DefaultFeeConfig("treasury")
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, m.UpdateConfig(cfg, "admin"))
	return m, rec
}

func TestManager_CalculateFeeFlat(t *testing.T) {
	m, _ := newManager(t, nil, func(c *models.FeeConfig) { c.DynamicFeeEnabled = false })

	tests := []struct {
		name     string
		amount   int64
		expected int64
	}{
		{name: "unclamped", amount: 100_000, expected: 2_500},
		{name: "clamped_to_max", amount: 1_000_000_000, expected: 1_000_000},
		{name: "clamped_to_min", amount: 100, expected: 1_000},
		{name: "zero_amount_pays_min", amount: 0, expected: 1_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := m.CalculateFee(tt.amount, "alice")
			require.NoError(t, err)
			require.Equal(t, tt.expected, fee)
		})
	}

	_, err := m.CalculateFee(-1, "alice")
	require.ErrorIs(t, err, settlementerrors.ErrInvalidAmount)
}

func TestManager_CalculateFeeDynamic(t *testing.T) {
	m, _ := newManager(t, nil, nil)

	fee, err := m.CalculateFee(100_000, "alice")
	require.NoError(t, err)
	require.Equal(t, int64(2_500), fee)

	// volume of 2M reaches the first tier: 250 - 50 = 200 bps
	require.NoError(t, m.CollectPlatformFee(2_000_000, usdc, "alice"))
	q, err := m.Quote(100_000, "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(200), q.AppliedBps)
	require.Equal(t, int64(2_000), q.Fee)
	require.Equal(t, "2.0000", q.EffectiveRate)
}

// Tiers are scanned in stored order and the first reached tier wins, so a user above
// the 10M tier still receives the 1M tier discount.
func TestManager_FirstMatchingTierWins(t *testing.T) {
	m, _ := newManager(t, nil, nil)
	require.NoError(t, m.CollectPlatformFee(20_000_000, usdc, "whale"))

	q, err := m.Quote(100_000, "whale")
	require.NoError(t, err)
	require.Equal(t, uint64(200), q.AppliedBps)
	require.Equal(t, uint64(50), VolumeDiscount(20_000_000, models.DefaultFeeConfig("x").VolumeDiscounts))
}

func TestManager_VIP(t *testing.T) {
	m, _ := newManager(t, nil, nil)

	require.NoError(t, m.AddVIPExemption("vip", "admin"))
	require.NoError(t, m.AddVIPExemption("vip", "admin"))
	cfg, err := m.GetConfig()
	require.NoError(t, err)
	require.Equal(t, []string{"vip"}, cfg.VIPExemptions)

	q, err := m.Quote(1_000_000, "vip")
	require.NoError(t, err)
	require.True(t, q.VIP)
	require.Zero(t, q.Fee)
	require.Equal(t, "0.0000", q.EffectiveRate)

	require.NoError(t, m.RemoveVIPExemption("vip", "admin"))
	fee, err := m.CalculateFee(1_000_000, "vip")
	require.NoError(t, err)
	require.Equal(t, int64(25_000), fee)
}

func TestManager_VIPIgnoredWithoutDynamicFees(t *testing.T) {
	m, _ := newManager(t, nil, func(c *models.FeeConfig) {
		c.DynamicFeeEnabled = false
		c.VIPExemptions = []string{"vip"}
	})
	fee, err := m.CalculateFee(100_000, "vip")
	require.NoError(t, err)
	require.Equal(t, int64(2_500), fee)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.FeeConfig)
		expectErr bool
	}{
		{name: "default", mutate: func(*models.FeeConfig) {}},
		{name: "bps_above_100_percent", mutate: func(c *models.FeeConfig) { c.PlatformFeeBps = 10001 }, expectErr: true},
		{name: "min_equals_max", mutate: func(c *models.FeeConfig) { c.MinimumFee = c.MaximumFee }, expectErr: true},
		{name: "unbounded_max", mutate: func(c *models.FeeConfig) { c.MaximumFee = 0; c.MinimumFee = 5000 }},
		{name: "negative_min", mutate: func(c *models.FeeConfig) { c.MinimumFee = -1 }, expectErr: true},
		{
			name: "tiers_not_increasing",
			mutate: func(c *models.FeeConfig) {
				c.VolumeDiscounts = []models.VolumeTier{{MinVolume: 100, FeeDiscountBps: 10}, {MinVolume: 100, FeeDiscountBps: 20}}
			},
			expectErr: true,
		},
		{
			name:      "tier_at_zero",
			mutate:    func(c *models.FeeConfig) { c.VolumeDiscounts = []models.VolumeTier{{MinVolume: 0, FeeDiscountBps: 10}} },
			expectErr: true,
		},
		{
			name: "discount_above_base",
			mutate: func(c *models.FeeConfig) {
				c.VolumeDiscounts = []models.VolumeTier{{MinVolume: 1, FeeDiscountBps: 251}}
			},
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.DefaultFeeConfig("treasury")
			tt.mutate(&cfg)
			err := ValidateConfig(cfg)
			if tt.expectErr {
				require.ErrorIs(t, err, settlementerrors.ErrInvalidFeeConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestManager_CollectAndWithdraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assets := escrow.NewMockAssetTransfer(ctrl)
	m, rec := newManager(t, assets, nil)

	require.NoError(t, m.CollectPlatformFee(2_500, usdc, "alice"))
	require.NoError(t, m.CollectPlatformFee(1_500, usdc, "bob"))
	require.ErrorIs(t, m.CollectPlatformFee(-1, usdc, "bob"), settlementerrors.ErrInvalidAmount)
	require.Len(t, rec.ByKind(events.FeeCollected), 2)

	acc, err := m.AccumulatedFees(usdc)
	require.NoError(t, err)
	require.Equal(t, int64(4_000), acc)

	_, err = m.WithdrawPlatformFees(usdc, "treasury", "mallory")
	require.ErrorIs(t, err, settlementerrors.ErrUnauthorized)

	assets.EXPECT().Transfer(usdc, "platform", "treasury", int64(4_000)).Return(nil)
	amount, err := m.WithdrawPlatformFees(usdc, "treasury", "treasury")
	require.NoError(t, err)
	require.Equal(t, int64(4_000), amount)

	acc, err = m.AccumulatedFees(usdc)
	require.NoError(t, err)
	require.Zero(t, acc)

	_, err = m.WithdrawPlatformFees(usdc, "treasury", "treasury")
	require.ErrorIs(t, err, settlementerrors.ErrInsufficientFunds)
}

func TestManager_WithdrawTransferFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assets := escrow.NewMockAssetTransfer(ctrl)
	m, _ := newManager(t, assets, nil)
	require.NoError(t, m.CollectPlatformFee(2_500, usdc, "alice"))

	assets.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("custody offline"))
	_, err := m.WithdrawPlatformFees(usdc, "treasury", "treasury")
	require.ErrorIs(t, err, settlementerrors.ErrPaymentFailed)
}

func TestManager_VolumeAndStatistics(t *testing.T) {
	m, _ := newManager(t, nil, nil)
	eth := models.Asset{Contract: "native", Symbol: "ETH"}

	require.NoError(t, m.CollectPlatformFee(100, usdc, "alice"))
	require.NoError(t, m.CollectPlatformFee(200, eth, "alice"))
	require.NoError(t, m.CollectPlatformFee(300, eth, "bob"))

	volume, err := m.UserVolume("alice")
	require.NoError(t, err)
	require.Equal(t, int64(300), volume)

	stats, err := m.Statistics()
	require.NoError(t, err)
	require.Equal(t, uint64(2), stats.TotalUsers)
	require.Equal(t, int64(600), stats.TotalVolume)
	require.Equal(t, map[string]int64{usdc.Key(): 100, eth.Key(): 500}, stats.AccumulatedFees)

	require.NoError(t, m.ResetUserVolume("alice"))
	volume, err = m.UserVolume("alice")
	require.NoError(t, err)
	require.Zero(t, volume)
}

func TestManager_MissingConfig(t *testing.T) {
	m := NewManager(repository.NewMemoryStore(), utils.NewFixedClock(1), events.Discard, escrow.NewLedger(), "platform")
	_, err := m.CalculateFee(100, "alice")
	require.ErrorIs(t, err, settlementerrors.ErrNotFound)
}
