package fee

import (
	"fmt"

	"marketplace-settlement/internal/escrow"
	"marketplace-settlement/internal/events"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"

	"github.com/shopspring/decimal"
)

const configKey = "fee_config"

// Quote is a fee computation with the rate that produced it
type Quote struct {
	Amount        int64  `json:"amount"`
	Fee           int64  `json:"fee"`
	AppliedBps    uint64 `json:"applied_bps"`
	VIP           bool   `json:"vip"`
	EffectiveRate string `json:"effective_rate"` // percent of amount
}

// Manager computes, accumulates and pays out platform fees
type Manager struct {
	store   repository.Store
	clock   utils.Clock
	events  events.Emitter
	assets  escrow.AssetTransfer
	account string
}

// NewManager creates a fee manager. account is the custody account fees are paid out from.
func NewManager(store repository.Store, clock utils.Clock, emitter events.Emitter, assets escrow.AssetTransfer, account string) *Manager {
	return &Manager{store: store, clock: clock, events: emitter, assets: assets, account: account}
}

// GetConfig returns the stored fee configuration
func (m *Manager) GetConfig() (models.FeeConfig, error) {
	cfg, ok, err := repository.Load[models.FeeConfig](m.store, repository.GroupConfig, configKey)
	if err != nil {
		return models.FeeConfig{}, fmt.Errorf("fee: failed to load config: %w", err)
	}
	if !ok {
		return models.FeeConfig{}, fmt.Errorf("fee: %w - fee config not initialized", settlementerrors.ErrNotFound)
	}
	return cfg, nil
}

// UpdateConfig validates and stores cfg
func (m *Manager) UpdateConfig(cfg models.FeeConfig, updatedBy string) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}
	if cfg.VIPExemptions == nil {
		cfg.VIPExemptions = []string{}
	}
	if err := repository.Save(m.store, repository.GroupConfig, configKey, cfg); err != nil {
		return fmt.Errorf("fee: %w", err)
	}

	m.events.Emit(events.New(events.FeeConfigUpdated, m.clock.Now(), map[string]any{
		"platform_fee_bps": cfg.PlatformFeeBps,
		"minimum_fee":      cfg.MinimumFee,
		"maximum_fee":      cfg.MaximumFee,
		"dynamic":          cfg.DynamicFeeEnabled,
		"updated_by":       updatedBy,
	}))
	utils.Info("fee config updated", map[string]any{"platform_fee_bps": cfg.PlatformFeeBps, "updated_by": updatedBy})
	return nil
}

// ValidateConfig checks a fee schedule before it is stored
func ValidateConfig(cfg models.FeeConfig) error {
	if cfg.PlatformFeeBps > utils.BasisPointsDenominator {
		return fmt.Errorf("fee: %w - platform fee %d bps exceeds 100%%", settlementerrors.ErrInvalidFeeConfig, cfg.PlatformFeeBps)
	}
	if cfg.MinimumFee < 0 || cfg.MaximumFee < 0 {
		return fmt.Errorf("fee: %w - negative fee bound", settlementerrors.ErrInvalidFeeConfig)
	}
	if cfg.MaximumFee > 0 && cfg.MinimumFee >= cfg.MaximumFee {
		return fmt.Errorf("fee: %w - minimum fee must be below maximum fee", settlementerrors.ErrInvalidFeeConfig)
	}

	var prev int64
	for i, tier := range cfg.VolumeDiscounts {
		if tier.MinVolume <= prev {
			return fmt.Errorf("fee: %w - tier %d threshold must exceed %d", settlementerrors.ErrInvalidFeeConfig, i, prev)
		}
		if tier.FeeDiscountBps > cfg.PlatformFeeBps {
			return fmt.Errorf("fee: %w - tier %d discount exceeds base rate", settlementerrors.ErrInvalidFeeConfig, i)
		}
		prev = tier.MinVolume
	}
	return nil
}

// CalculateFee returns the platform fee user pays on amount
func (m *Manager) CalculateFee(amount int64, user string) (int64, error) {
	q, err := m.Quote(amount, user)
	if err != nil {
		return 0, err
	}
	return q.Fee, nil
}

// Quote computes the fee on amount for user together with the applied rate
func (m *Manager) Quote(amount int64, user string) (Quote, error) {
	if amount < 0 {
		return Quote{}, fmt.Errorf("fee: %w - negative amount", settlementerrors.ErrInvalidAmount)
	}
	cfg, err := m.GetConfig()
	if err != nil {
		return Quote{}, err
	}

	q := Quote{Amount: amount, AppliedBps: cfg.PlatformFeeBps}
	if cfg.DynamicFeeEnabled {
		volume, err := m.UserVolume(user)
		if err != nil {
			return Quote{}, err
		}
		discount := VolumeDiscount(volume, cfg.VolumeDiscounts)
		if discount >= cfg.PlatformFeeBps {
			q.AppliedBps = 0
		} else {
			q.AppliedBps = cfg.PlatformFeeBps - discount
		}

		if cfg.IsVIP(user) {
			q.VIP = true
			q.AppliedBps = 0
			q.EffectiveRate = decimal.Zero.StringFixed(4)
			return q, nil
		}
	}

	q.Fee, err = utils.CalculateFee(amount, q.AppliedBps, cfg.MinimumFee, cfg.MaximumFee)
	if err != nil {
		return Quote{}, fmt.Errorf("fee: %w", err)
	}
	q.EffectiveRate = EffectiveRate(q.Fee, amount)
	return q, nil
}

// VolumeDiscount returns the discount of the first tier volume reaches, in stored order
func VolumeDiscount(volume int64, tiers []models.VolumeTier) uint64 {
	for _, tier := range tiers {
		if volume >= tier.MinVolume {
			return tier.FeeDiscountBps
		}
	}
	return 0
}

// EffectiveRate renders fee as a percentage of amount with four decimals
func EffectiveRate(fee, amount int64) string {
	if amount == 0 {
		return decimal.Zero.StringFixed(4)
	}
	return decimal.NewFromInt(fee).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(amount)).
		StringFixed(4)
}

// CollectPlatformFee adds amount to the accumulator of currency and to payer's volume
func (m *Manager) CollectPlatformFee(amount int64, currency models.Asset, payer string) error {
	if amount < 0 {
		return fmt.Errorf("fee: %w - negative fee", settlementerrors.ErrInvalidAmount)
	}

	current, err := m.AccumulatedFees(currency)
	if err != nil {
		return err
	}
	total, err := utils.SafeAdd(current, amount)
	if err != nil {
		return fmt.Errorf("fee: %w", err)
	}
	if err := repository.Save(m.store, repository.GroupAccumulatedFees, currency.Key(), total); err != nil {
		return fmt.Errorf("fee: %w", err)
	}

	volume, err := m.UserVolume(payer)
	if err != nil {
		return err
	}
	volume, err = utils.SafeAdd(volume, amount)
	if err != nil {
		return fmt.Errorf("fee: %w", err)
	}
	if err := repository.Save(m.store, repository.GroupUserVolumes, payer, volume); err != nil {
		return fmt.Errorf("fee: %w", err)
	}

	m.events.Emit(events.New(events.FeeCollected, m.clock.Now(), map[string]any{
		"amount":    amount,
		"currency":  currency.Key(),
		"collector": payer,
	}))
	utils.Info("platform fee collected", map[string]any{"amount": amount, "currency": currency.Key(), "payer": payer})
	return nil
}

// WithdrawPlatformFees pays the accumulated fees of currency to recipient. Only the
// configured fee recipient may withdraw.
func (m *Manager) WithdrawPlatformFees(currency models.Asset, recipient, admin string) (int64, error) {
	cfg, err := m.GetConfig()
	if err != nil {
		return 0, err
	}
	if cfg.FeeRecipient != admin {
		return 0, fmt.Errorf("fee: %w - %s is not the fee recipient", settlementerrors.ErrUnauthorized, admin)
	}

	amount, err := m.AccumulatedFees(currency)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, fmt.Errorf("fee: %w - nothing accumulated in %s", settlementerrors.ErrInsufficientFunds, currency.Key())
	}

	if err := repository.Save(m.store, repository.GroupAccumulatedFees, currency.Key(), int64(0)); err != nil {
		return 0, fmt.Errorf("fee: %w", err)
	}
	if err := m.assets.Transfer(currency, m.account, recipient, amount); err != nil {
		return 0, fmt.Errorf("fee: %w - %v", settlementerrors.ErrPaymentFailed, err)
	}

	m.events.Emit(events.New(events.FeesWithdrawn, m.clock.Now(), map[string]any{
		"amount":    amount,
		"currency":  currency.Key(),
		"recipient": recipient,
	}))
	utils.Info("platform fees withdrawn", map[string]any{"amount": amount, "currency": currency.Key(), "recipient": recipient})
	return amount, nil
}

// AddVIPExemption exempts user from dynamic fees
func (m *Manager) AddVIPExemption(user, admin string) error {
	cfg, err := m.GetConfig()
	if err != nil {
		return err
	}
	if cfg.IsVIP(user) {
		return nil
	}
	cfg.VIPExemptions = append(cfg.VIPExemptions, user)
	return m.UpdateConfig(cfg, admin)
}

// RemoveVIPExemption drops the exemption of user
func (m *Manager) RemoveVIPExemption(user, admin string) error {
	cfg, err := m.GetConfig()
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(cfg.VIPExemptions))
	for _, v := range cfg.VIPExemptions {
		if v != user {
			kept = append(kept, v)
		}
	}
	cfg.VIPExemptions = kept
	return m.UpdateConfig(cfg, admin)
}

// AccumulatedFees returns the withdrawable fees of currency
func (m *Manager) AccumulatedFees(currency models.Asset) (int64, error) {
	amount, _, err := repository.Load[int64](m.store, repository.GroupAccumulatedFees, currency.Key())
	if err != nil {
		return 0, fmt.Errorf("fee: %w", err)
	}
	return amount, nil
}

// UserVolume returns the cumulative volume recorded for user
func (m *Manager) UserVolume(user string) (int64, error) {
	volume, _, err := repository.Load[int64](m.store, repository.GroupUserVolumes, user)
	if err != nil {
		return 0, fmt.Errorf("fee: %w", err)
	}
	return volume, nil
}

// ResetUserVolume zeroes the volume of user
func (m *Manager) ResetUserVolume(user string) error {
	if err := repository.Save(m.store, repository.GroupUserVolumes, user, int64(0)); err != nil {
		return fmt.Errorf("fee: %w", err)
	}
	utils.Info("user volume reset", map[string]any{"user": user})
	return nil
}

// Statistics aggregates the fee and volume ledgers
func (m *Manager) Statistics() (models.FeeStatistics, error) {
	stats := models.FeeStatistics{AccumulatedFees: map[string]int64{}}

	keys, err := m.store.Keys(repository.GroupAccumulatedFees)
	if err != nil {
		return stats, fmt.Errorf("fee: %w", err)
	}
	for _, key := range keys {
		amount, _, err := repository.Load[int64](m.store, repository.GroupAccumulatedFees, key)
		if err != nil {
			return stats, fmt.Errorf("fee: %w", err)
		}
		stats.AccumulatedFees[key] = amount
	}

	users, err := m.store.Keys(repository.GroupUserVolumes)
	if err != nil {
		return stats, fmt.Errorf("fee: %w", err)
	}
	stats.TotalUsers = uint64(len(users))
	for _, user := range users {
		volume, _, err := repository.Load[int64](m.store, repository.GroupUserVolumes, user)
		if err != nil {
			return stats, fmt.Errorf("fee: %w", err)
		}
		if stats.TotalVolume, err = utils.SafeAdd(stats.TotalVolume, volume); err != nil {
			return stats, fmt.Errorf("fee: %w", err)
		}
	}
	return stats, nil
}
