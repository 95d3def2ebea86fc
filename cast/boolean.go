package cast

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var _ Converter[bool] = BooleanConverter{}

var decimalOne = decimal.NewFromInt(1)

// BooleanConverter converts values to bool.
//
// Numbers convert only when they equal exactly one or zero. Strings accept
// "true", "yes", "y", "1", "false", "no", "n" and "0"; characters accept 'y',
// '1', 'n' and '0'. Matching ignores case.
type BooleanConverter struct{}

// Convert converts v to bool.
func (BooleanConverter) Convert(v any) (bool, error) {
	value := ValueOf(v)

	switch value.kind {
	case KindBoolean:
		return value.b, nil
	case KindByte, KindShort, KindInt, KindLong:
		return numberToBool(value.i == 1, value.i == 0)
	case KindBigInteger:
		return numberToBool(value.big.IsInt64() && value.big.Int64() == 1, value.big.Sign() == 0)
	case KindFloat, KindDouble:
		return numberToBool(value.f == 1, value.f == 0)
	case KindBigDecimal:
		return numberToBool(value.dec.Equal(decimalOne), value.dec.IsZero())
	case KindString:
		switch strings.ToLower(value.s) {
		case "true", "yes", "y", "1":
			return true, nil
		case "false", "no", "n", "0":
			return false, nil
		}
		return false, NewConversionError(msgStringToBool, nil)
	case KindChar:
		switch unicode.ToLower(rune(value.i)) {
		case 'y', '1':
			return true, nil
		case 'n', '0':
			return false, nil
		}
		return false, NewConversionError(msgCharToBool, nil)
	default:
		return false, errUnsupported[bool](value)
	}
}

func numberToBool(one, zero bool) (bool, error) {
	switch {
	case one:
		return true, nil
	case zero:
		return false, nil
	default:
		return false, NewConversionError(msgNumberToBool, nil)
	}
}
