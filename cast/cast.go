package cast

import (
	"errors"
	"math/big"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.dw1.io/safemath"

	"go.onixlabs.io/x/numeric"
)

// To converts v to type T.
func To[T Target](v any) (T, error) {
	return For[T]().Convert(v)
}

// ToMust converts v to type T and panics on error.
func ToMust[T Target](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// For returns the converter producing T.
func For[T Target]() Converter[T] {
	var c any

	switch any(*new(T)).(type) {
	case bool:
		c = BooleanConverter{}
	case int8:
		c = ByteConverter{}
	case int16:
		c = ShortConverter{}
	case int32:
		c = IntConverter{}
	case int64:
		c = LongConverter{}
	case float32:
		c = FloatConverter{}
	case float64:
		c = DoubleConverter{}
	case Char:
		c = CharConverter{}
	case string:
		c = StringConverter{}
	case *big.Int:
		c = BigIntegerConverter{}
	case decimal.Decimal:
		c = BigDecimalConverter{}
	case uuid.UUID:
		c = UUIDConverter{}
	}

	return c.(Converter[T])
}

// 2^63 is exactly representable as a float64; every float64 in
// [-2^63, 2^63) converts to int64 without overflow.
const twoTo63 = 1 << 63

// narrowInt converts v to I using safemath, reporting overflow instead of
// truncating.
func narrowInt[I Integer](v int64) (I, error) {
	n, err := safemath.ConvertAny[I](v)
	if err != nil {
		return 0, errNumericOverflow(err)
	}

	return n, nil
}

func narrowBig[I Integer](b *big.Int) (I, error) {
	if !b.IsInt64() {
		return 0, errNumericOverflow(nil)
	}

	return narrowInt[I](b.Int64())
}

// narrowFloat checks precision before range, so 123.456 reports loss of
// precision even for a target wide enough to hold 123.
func narrowFloat[I Integer](f float64) (I, error) {
	if !numeric.IsInteger(f) {
		return 0, errLossOfPrecision()
	}

	if f < -twoTo63 || f >= twoTo63 {
		return 0, errNumericOverflow(nil)
	}

	return narrowInt[I](int64(f))
}

func narrowDecimal[I Integer](d decimal.Decimal) (I, error) {
	if !numeric.IsIntegerDecimal(d) {
		return 0, errLossOfPrecision()
	}

	return narrowBig[I](d.BigInt())
}

// parseError maps a strconv failure: out-of-range literals overflow, anything
// else is malformed input.
func parseError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return errNumericOverflow(err)
	}

	return errMalformed(err)
}

func boolToInt[I Integer](b bool) I {
	if b {
		return 1
	}

	return 0
}
