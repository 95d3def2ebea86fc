package cast

import (
	"math"
	"strconv"

	"go.onixlabs.io/x/numeric"
)

var (
	_ Converter[float32] = FloatConverter{}
	_ Converter[float64] = DoubleConverter{}
)

// FloatConverter converts values to float32.
//
// Integers widen directly and may round to the nearest representable value.
// Double and BigInteger inputs beyond ±math.MaxFloat32 overflow. BigDecimal is
// not supported.
type FloatConverter struct{}

// Convert converts v to float32.
func (FloatConverter) Convert(v any) (float32, error) {
	value := ValueOf(v)

	switch value.kind {
	case KindBoolean:
		if value.b {
			return 1, nil
		}
		return 0, nil
	case KindByte, KindShort, KindInt, KindLong, KindChar:
		return float32(value.i), nil
	case KindBigInteger:
		f, ok := numeric.BigFloat64(value.big)
		if !ok {
			return 0, errNumericOverflow(nil)
		}
		return narrowFloat32(f)
	case KindFloat:
		return float32(value.f), nil
	case KindDouble:
		return narrowFloat32(value.f)
	case KindString:
		f, err := strconv.ParseFloat(value.s, 32)
		if err != nil {
			return 0, parseError(err)
		}
		return float32(f), nil
	default:
		return 0, errUnsupported[float32](value)
	}
}

// narrowFloat32 passes NaN and infinities through unchanged.
func narrowFloat32(f float64) (float32, error) {
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, errNumericOverflow(nil)
	}

	return float32(f), nil
}

// DoubleConverter converts values to float64.
//
// BigInteger inputs are range-checked against ±math.MaxFloat64 before
// widening. BigDecimal is not supported.
type DoubleConverter struct{}

// Convert converts v to float64.
func (DoubleConverter) Convert(v any) (float64, error) {
	value := ValueOf(v)

	switch value.kind {
	case KindBoolean:
		if value.b {
			return 1, nil
		}
		return 0, nil
	case KindByte, KindShort, KindInt, KindLong, KindChar:
		return float64(value.i), nil
	case KindBigInteger:
		f, ok := numeric.BigFloat64(value.big)
		if !ok {
			return 0, errNumericOverflow(nil)
		}
		return f, nil
	case KindFloat, KindDouble:
		return value.f, nil
	case KindString:
		f, err := strconv.ParseFloat(value.s, 64)
		if err != nil {
			return 0, parseError(err)
		}
		return f, nil
	default:
		return 0, errUnsupported[float64](value)
	}
}
