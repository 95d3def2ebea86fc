package cast

import (
	"github.com/shopspring/decimal"

	"go.onixlabs.io/x/numeric"
)

var _ Converter[decimal.Decimal] = BigDecimalConverter{}

// BigDecimalConverter converts values to [decimal.Decimal].
//
// Floating-point inputs use their shortest decimal representation, so 0.1
// becomes exactly 0.1. Parsed strings have trailing zeros stripped.
type BigDecimalConverter struct{}

// Convert converts v to decimal.Decimal.
func (BigDecimalConverter) Convert(v any) (decimal.Decimal, error) {
	value := ValueOf(v)

	switch value.kind {
	case KindBoolean:
		return decimal.NewFromInt(boolToInt[int64](value.b)), nil
	case KindByte, KindShort, KindInt, KindLong, KindChar:
		return decimal.NewFromInt(value.i), nil
	case KindBigInteger:
		return decimal.NewFromBigInt(value.big, 0), nil
	case KindFloat:
		d, err := numeric.DecimalOf32(float32(value.f))
		if err != nil {
			return decimal.Zero, errMalformed(err)
		}
		return d, nil
	case KindDouble:
		d, err := numeric.DecimalOf(value.f)
		if err != nil {
			return decimal.Zero, errMalformed(err)
		}
		return d, nil
	case KindBigDecimal:
		return value.dec, nil
	case KindString:
		d, err := decimal.NewFromString(value.s)
		if err != nil {
			return decimal.Zero, errMalformed(err)
		}
		return numeric.StripTrailingZeros(d), nil
	default:
		return decimal.Zero, errUnsupported[decimal.Decimal](value)
	}
}
