package numeric

import (
	"errors"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// ErrNotFinite is returned by [DecimalOf] for NaN and infinite inputs.
var ErrNotFinite = errors.New("infinite or NaN")

// Number matches every built-in integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

var (
	decimalOne = decimal.NewFromInt(1)
	bigTen     = big.NewInt(10)
)

// IsInteger reports whether f has no fractional component. NaN and infinities
// are never integers.
func IsInteger[F constraints.Float](f F) bool {
	return math.Mod(float64(f), 1) == 0
}

// IsIntegerDecimal reports whether d has no fractional component.
func IsIntegerDecimal(d decimal.Decimal) bool {
	return d.Mod(decimalOne).IsZero()
}

// InRange reports whether lo <= v <= hi.
func InRange[N Number](v, lo, hi N) bool {
	return v >= lo && v <= hi
}

// BigIntInRange reports whether lo <= b <= hi. A nil b is never in range.
func BigIntInRange(b *big.Int, lo, hi int64) bool {
	if b == nil || !b.IsInt64() {
		return false
	}

	return InRange(b.Int64(), lo, hi)
}

// StripTrailingZeros returns d with its coefficient reduced to the smallest
// scale that keeps the same value, so 1.2300 becomes 1.23 and 1200 becomes
// 12e2.
func StripTrailingZeros(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.New(0, 0)
	}

	coef := d.Coefficient()
	exp := d.Exponent()

	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(coef, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		coef.Set(q)
		exp++
	}

	return decimal.NewFromBigInt(coef, exp)
}

// DecimalOf returns the decimal form of f using its shortest textual
// representation, matching what strconv.FormatFloat(f, 'g', -1, 64) prints.
func DecimalOf(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, ErrNotFinite
	}

	return decimal.NewFromFloat(f), nil
}

// DecimalOf32 is like [DecimalOf] for float32 values.
func DecimalOf32(f float32) (decimal.Decimal, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return decimal.Zero, ErrNotFinite
	}

	return decimal.NewFromFloat32(f), nil
}

// BigIntOf returns the exact integer value of f. It reports false when f has a
// fractional component or is not finite.
func BigIntOf(f float64) (*big.Int, bool) {
	if !IsInteger(f) {
		return nil, false
	}

	i, _ := new(big.Float).SetFloat64(f).Int(nil)
	return i, true
}

// BigFloat64 returns the float64 nearest to b and reports whether that value
// is finite, i.e. whether b lies within ±math.MaxFloat64 after rounding.
func BigFloat64(b *big.Int) (float64, bool) {
	f, _ := new(big.Float).SetInt(b).Float64()
	return f, !math.IsInf(f, 0)
}
