package settlement

import (
	fee "marketplace-settlement/internal/feeService"
	"marketplace-settlement/internal/models"
)

// CalculateFee returns the platform fee user pays on amount
func (m *Marketplace) CalculateFee(amount int64, user string) (int64, error) {
	q, err := m.QuoteFee(amount, user)
	return q.Fee, err
}

// QuoteFee returns the fee on amount with the rate applied
func (m *Marketplace) QuoteFee(amount int64, user string) (fee.Quote, error) {
	var q fee.Quote
	err := m.view(func(s *session) error {
		var err error
		q, err = s.fees.Quote(amount, user)
		return err
	})
	return q, err
}

// CollectPlatformFee credits a fee paid by payer outside auction settlement to the
// accumulator of currency. Only the admin records such fees.
func (m *Marketplace) CollectPlatformFee(amount int64, currency models.Asset, payer, admin string) error {
	return m.invoke(admin, "collect_platform_fee", func(s *session) error {
		if err := requireAdmin(s, admin); err != nil {
			return err
		}
		return s.fees.CollectPlatformFee(amount, currency, payer)
	})
}

// WithdrawPlatformFees pays out the accumulated fees of currency
func (m *Marketplace) WithdrawPlatformFees(currency models.Asset, recipient, admin string) (int64, error) {
	release, err := m.locks.Lock("withdraw_platform_fees", admin)
	if err != nil {
		return 0, err
	}
	defer release()

	var amount int64
	err = m.invoke(admin, "withdraw_platform_fees", func(s *session) error {
		var err error
		amount, err = s.fees.WithdrawPlatformFees(currency, recipient, admin)
		return err
	})
	return amount, err
}

// GetFeeConfig returns the fee schedule
func (m *Marketplace) GetFeeConfig() (models.FeeConfig, error) {
	var cfg models.FeeConfig
	err := m.view(func(s *session) error {
		var err error
		cfg, err = s.fees.GetConfig()
		return err
	})
	return cfg, err
}

// UpdateFeeConfig replaces the fee schedule
func (m *Marketplace) UpdateFeeConfig(cfg models.FeeConfig, admin string) error {
	return m.invoke(admin, "update_fee_config", func(s *session) error {
		if err := requireAdmin(s, admin); err != nil {
			return err
		}
		return s.fees.UpdateConfig(cfg, admin)
	})
}

// AddVIPExemption exempts user from dynamic fees
func (m *Marketplace) AddVIPExemption(user, admin string) error {
	return m.invoke(admin, "add_vip_exemption", func(s *session) error {
		if err := requireAdmin(s, admin); err != nil {
			return err
		}
		return s.fees.AddVIPExemption(user, admin)
	})
}

// RemoveVIPExemption drops a fee exemption
func (m *Marketplace) RemoveVIPExemption(user, admin string) error {
	return m.invoke(admin, "remove_vip_exemption", func(s *session) error {
		if err := requireAdmin(s, admin); err != nil {
			return err
		}
		return s.fees.RemoveVIPExemption(user, admin)
	})
}

// ResetUserVolume zeroes the trading volume of user
func (m *Marketplace) ResetUserVolume(user, admin string) error {
	return m.invoke(admin, "reset_user_volume", func(s *session) error {
		if err := requireAdmin(s, admin); err != nil {
			return err
		}
		return s.fees.ResetUserVolume(user)
	})
}

// AccumulatedFees returns the withdrawable fees of currency
func (m *Marketplace) AccumulatedFees(currency models.Asset) (int64, error) {
	var amount int64
	err := m.view(func(s *session) error {
		var err error
		amount, err = s.fees.AccumulatedFees(currency)
		return err
	})
	return amount, err
}

// UserVolume returns the trading volume recorded for user
func (m *Marketplace) UserVolume(user string) (int64, error) {
	var volume int64
	err := m.view(func(s *session) error {
		var err error
		volume, err = s.fees.UserVolume(user)
		return err
	})
	return volume, err
}

// FeeStatistics aggregates the fee and volume ledgers
func (m *Marketplace) FeeStatistics() (models.FeeStatistics, error) {
	var stats models.FeeStatistics
	err := m.view(func(s *session) error {
		var err error
		stats, err = s.fees.Statistics()
		return err
	})
	return stats, err
}
