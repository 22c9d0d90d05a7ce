package models

// VolumeTier grants a fee discount once a user's trading volume reaches MinVolume
type VolumeTier struct {
	MinVolume      int64  `json:"min_volume"`
	FeeDiscountBps uint64 `json:"fee_discount_bps"`
}

// FeeConfig is the administrator-owned platform fee schedule
type FeeConfig struct {
	PlatformFeeBps    uint64       `json:"platform_fee_bps"`
	MinimumFee        int64        `json:"minimum_fee"`
	MaximumFee        int64        `json:"maximum_fee"`
	FeeRecipient      string       `json:"fee_recipient"`
	DynamicFeeEnabled bool         `json:"dynamic_fee_enabled"`
	VolumeDiscounts   []VolumeTier `json:"volume_discounts"`
	VIPExemptions     []string     `json:"vip_exemptions"`
}

// DefaultFeeConfig returns the configuration seeded on first start
func DefaultFeeConfig(recipient string) FeeConfig {
	return FeeConfig{
		PlatformFeeBps:    250,
		MinimumFee:        1000,
		MaximumFee:        1000000,
		FeeRecipient:      recipient,
		DynamicFeeEnabled: true,
		VolumeDiscounts: []VolumeTier{
			{MinVolume: 1000000, FeeDiscountBps: 50},
			{MinVolume: 10000000, FeeDiscountBps: 100},
		},
		VIPExemptions: []string{},
	}
}

// IsVIP reports whether user is exempt from platform fees
func (c FeeConfig) IsVIP(user string) bool {
	for _, v := range c.VIPExemptions {
		if v == user {
			return true
		}
	}
	return false
}

// FeeStatistics aggregates the fee and volume ledgers
type FeeStatistics struct {
	AccumulatedFees map[string]int64 `json:"accumulated_fees"`
	TotalUsers      uint64           `json:"total_users"`
	TotalVolume     int64            `json:"total_volume"`
}
