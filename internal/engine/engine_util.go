package engine

import (
	"math"
	"math/bits"
)

// NormalizeFee returns fee when it lies in (0, 2*EntryFee], otherwise EntryFee.
func NormalizeFee(fee int64) int64 {
	if fee <= 0 || fee > 2*EntryFee {
		return EntryFee
	}
	return fee
}

// prizeShare computes floor(n * EntryFee * PrizePoolBP / BPDenom), saturating at
// math.MaxInt64. The pool is the canonical fee times participants, not the lobby fee.
func prizeShare(n int) int64 {
	if n <= 0 {
		return 0
	}
	hi, pool := bits.Mul64(uint64(n), uint64(EntryFee))
	if hi != 0 || pool > math.MaxInt64 {
		return math.MaxInt64
	}
	return mulDiv(int64(pool), PrizePoolBP, BPDenom)
}

// mulDiv returns floor(a*b/d) for non-negative a, b and positive d without overflowing
// the intermediate product.
func mulDiv(a, b, d int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(d) {
		return math.MaxInt64
	}
	q, _ := bits.Div64(hi, lo, uint64(d))
	if q > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(q)
}
