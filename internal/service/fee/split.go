package fee

import (
	"math"
	"math/bits"
	"time"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// MaxPercent is the upper bound of the platform fee percentage.
const MaxPercent = 100

// Quote prices durationDays of access at pricePerDay and splits the total at
// feePercent. The platform fee rounds down; the owner receives the remainder,
// so PlatformFee + OwnerAmount == Total exactly.
func Quote(pricePerDay, durationDays int64, feePercent uint8) (domain.Quote, error) {
	if durationDays <= 0 {
		return domain.Quote{}, domain.ErrZeroDuration
	}
	if pricePerDay <= 0 {
		return domain.Quote{}, domain.ErrInvalidPrice
	}
	if feePercent > MaxPercent {
		return domain.Quote{}, domain.ErrPercentageExceeded
	}

	total, err := mulAmount(pricePerDay, durationDays)
	if err != nil {
		return domain.Quote{}, err
	}

	owner, platform, err := Split(total, feePercent)
	if err != nil {
		return domain.Quote{}, err
	}

	return domain.Quote{
		Total:       total,
		PlatformFee: platform,
		OwnerAmount: owner,
		FeePercent:  feePercent,
	}, nil
}

// Split divides an escrowed amount into the owner share and the platform fee
// using the same rounding rule as Quote.
func Split(amount int64, feePercent uint8) (ownerAmount, platformFee int64, err error) {
	if amount < 0 {
		return 0, 0, domain.ErrInvalidPrice
	}
	if feePercent > MaxPercent {
		return 0, 0, domain.ErrPercentageExceeded
	}

	platformFee = int64(mulDiv(uint64(amount), uint64(feePercent), MaxPercent))
	return amount - platformFee, platformFee, nil
}

// ProRatedRefund returns the unused share of totalPaid after usedDays of
// totalDurationDays. Any rounding remainder stays with the payee, never the
// refund recipient.
func ProRatedRefund(totalPaid, totalDurationDays, usedDays int64) (int64, error) {
	if totalDurationDays <= 0 {
		return 0, domain.ErrZeroDuration
	}
	if usedDays > totalDurationDays {
		return 0, domain.ErrUsedExceedsTotal
	}
	if totalPaid < 0 {
		return 0, domain.ErrInvalidPrice
	}
	if usedDays < 0 {
		usedDays = 0
	}

	unused := totalDurationDays - usedDays
	return int64(mulDiv(uint64(totalPaid), uint64(unused), uint64(totalDurationDays))), nil
}

// ElapsedDays counts whole days between grantedAt and now, clamped to
// [0, totalDurationDays].
func ElapsedDays(grantedAt, now time.Time, totalDurationDays int64) int64 {
	if !now.After(grantedAt) {
		return 0
	}
	elapsed := int64(now.Sub(grantedAt) / domain.Day)
	return min(elapsed, totalDurationDays)
}

// mulAmount multiplies two positive amounts, failing instead of truncating.
func mulAmount(a, b int64) (int64, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, domain.ErrAmountOverflow
	}
	return int64(lo), nil
}

// mulDiv computes floor(a*b/d) with a 128-bit intermediate. Callers guarantee
// the quotient fits: b <= d, so the result never exceeds a.
func mulDiv(a, b, d uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, _ := bits.Div64(hi, lo, d)
	return q
}
