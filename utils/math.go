package utils

import (
	"fmt"
	"math"

	"marketplace-settlement/internal/settlementerrors"
)

// BasisPointsDenominator is 100% expressed in basis points.
const BasisPointsDenominator = 10000

// SafeAdd adds a and b, failing with ErrOverflow when the result does not fit in int64
func SafeAdd(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("math: %w - %d + %d", settlementerrors.ErrOverflow, a, b)
	}
	return a + b, nil
}

// SafeSub subtracts b from a, failing with ErrUnderflow when the result does not fit in int64
func SafeSub(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, fmt.Errorf("math: %w - %d - %d", settlementerrors.ErrUnderflow, a, b)
	}
	return a - b, nil
}

// SafeMul multiplies a and b, failing with ErrOverflow when the result does not fit in int64
func SafeMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("math: %w - %d * %d", settlementerrors.ErrOverflow, a, b)
	}
	r := a * b
	if r/b != a {
		return 0, fmt.Errorf("math: %w - %d * %d", settlementerrors.ErrOverflow, a, b)
	}
	return r, nil
}

// SafeDiv divides a by b, failing with ErrDivisionByZero when b is zero
func SafeDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("math: %w", settlementerrors.ErrDivisionByZero)
	}
	if a == math.MinInt64 && b == -1 {
		return 0, fmt.Errorf("math: %w - %d / %d", settlementerrors.ErrOverflow, a, b)
	}
	return a / b, nil
}

// CalculatePercentage returns amount * bps / 10000. bps above 100% is rejected.
func CalculatePercentage(amount int64, bps uint64) (int64, error) {
	if bps > BasisPointsDenominator {
		return 0, fmt.Errorf("math: %w - %d bps", settlementerrors.ErrInvalidRoyaltyPercentage, bps)
	}
	scaled, err := SafeMul(amount, int64(bps))
	if err != nil {
		return 0, err
	}
	return SafeDiv(scaled, BasisPointsDenominator)
}

// CalculateFee applies bps to amount and clamps the result into [minFee, maxFee].
// maxFee of zero leaves the fee unbounded above.
func CalculateFee(amount int64, bps uint64, minFee, maxFee int64) (int64, error) {
	fee, err := CalculatePercentage(amount, bps)
	if err != nil {
		return 0, err
	}
	if fee < minFee {
		fee = minFee
	}
	if maxFee > 0 && fee > maxFee {
		fee = maxFee
	}
	return fee, nil
}

// TimeWeightedPrice interpolates linearly from startPrice at startTime to endPrice at endTime.
func TimeWeightedPrice(startTime, endTime, now uint64, startPrice, endPrice int64) (int64, error) {
	if now <= startTime {
		return startPrice, nil
	}
	if now >= endTime {
		return endPrice, nil
	}

	total := endTime - startTime
	elapsed := now - startTime
	if total > math.MaxInt64 {
		return 0, fmt.Errorf("math: %w - duration %d", settlementerrors.ErrOverflow, total)
	}

	diff, err := SafeSub(startPrice, endPrice)
	if err != nil {
		return 0, err
	}
	weighted, err := SafeMul(diff, int64(elapsed))
	if err != nil {
		return 0, err
	}
	step, err := SafeDiv(weighted, int64(total))
	if err != nil {
		return 0, err
	}
	return SafeSub(startPrice, step)
}
