package fee

import (
	"marketplace-settlement/utils"
)

// off-peak window, UTC hours inclusive
const (
	offPeakStartHour   = 2
	offPeakEndHour     = 6
	offPeakDiscountBps = 2500
)

// AmountTier applies FeeBps to amounts of at least MinAmount
type AmountTier struct {
	MinAmount int64  `json:"min_amount"`
	FeeBps    uint64 `json:"fee_bps"`
}

// TieredFee charges the rate of the first tier amount reaches. Amounts below every tier are free.
func TieredFee(amount int64, tiers []AmountTier) (int64, error) {
	for _, tier := range tiers {
		if amount >= tier.MinAmount {
			return utils.CalculatePercentage(amount, tier.FeeBps)
		}
	}
	return 0, nil
}

// TimeBasedFee discounts baseFee by 25% during the off-peak hours
func TimeBasedFee(baseFee int64, hour uint64) (int64, error) {
	if hour < offPeakStartHour || hour > offPeakEndHour {
		return baseFee, nil
	}
	discount, err := utils.CalculatePercentage(baseFee, offPeakDiscountBps)
	if err != nil {
		return 0, err
	}
	return utils.SafeSub(baseFee, discount)
}

// HourOf returns the UTC hour of a unix timestamp
func HourOf(ts uint64) uint64 {
	return (ts / 3600) % 24
}

// BundleFee sums individual fees and applies a bundle discount
func BundleFee(fees []int64, discountBps uint64) (int64, error) {
	var total int64
	for _, f := range fees {
		sum, err := utils.SafeAdd(total, f)
		if err != nil {
			return 0, err
		}
		total = sum
	}
	discount, err := utils.CalculatePercentage(total, discountBps)
	if err != nil {
		return 0, err
	}
	return utils.SafeSub(total, discount)
}
