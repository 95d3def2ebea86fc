package cast

import (
	"math/big"
	"strconv"

	"go.onixlabs.io/x/numeric"
)

var _ Converter[*big.Int] = BigIntegerConverter{}

// BigIntegerConverter converts values to [*big.Int]. The result never aliases
// the input.
type BigIntegerConverter struct{}

// Convert converts v to *big.Int.
func (BigIntegerConverter) Convert(v any) (*big.Int, error) {
	value := ValueOf(v)

	switch value.kind {
	case KindBoolean:
		return big.NewInt(boolToInt[int64](value.b)), nil
	case KindByte, KindShort, KindInt, KindLong, KindChar:
		return big.NewInt(value.i), nil
	case KindBigInteger:
		return new(big.Int).Set(value.big), nil
	case KindFloat, KindDouble:
		b, ok := numeric.BigIntOf(value.f)
		if !ok {
			return nil, errLossOfPrecision()
		}
		return b, nil
	case KindBigDecimal:
		if !numeric.IsIntegerDecimal(value.dec) {
			return nil, errLossOfPrecision()
		}
		return value.dec.BigInt(), nil
	case KindString:
		b, ok := new(big.Int).SetString(value.s, 10)
		if !ok {
			return nil, errMalformed(&strconv.NumError{Func: "SetString", Num: value.s, Err: strconv.ErrSyntax})
		}
		return b, nil
	default:
		return nil, errUnsupported[*big.Int](value)
	}
}
