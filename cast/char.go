package cast

import (
	"unicode/utf16"
	"unicode/utf8"
)

var _ Converter[Char] = CharConverter{}

// CharConverter converts values to [Char].
//
// Numeric inputs are bounded by the int16 range, so code units above 0x7FFF
// cannot be produced from numbers, while negative values map onto the upper
// half of the code unit space. Strings must hold exactly one UTF-16 code unit.
type CharConverter struct{}

// Convert converts v to Char.
func (CharConverter) Convert(v any) (Char, error) {
	value := ValueOf(v)

	var (
		n   int16
		err error
	)

	switch value.kind {
	case KindBoolean:
		if value.b {
			return '1', nil
		}
		return '0', nil
	case KindByte, KindShort, KindInt, KindLong:
		n, err = narrowInt[int16](value.i)
	case KindBigInteger:
		n, err = narrowBig[int16](value.big)
	case KindFloat, KindDouble:
		n, err = narrowFloat[int16](value.f)
	case KindBigDecimal:
		n, err = narrowDecimal[int16](value.dec)
	case KindString:
		return stringToChar(value.s)
	case KindChar:
		return Char(value.i), nil
	default:
		return 0, errUnsupported[Char](value)
	}

	if err != nil {
		return 0, err
	}

	return Char(uint16(n)), nil
}

func stringToChar(s string) (Char, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || (r == utf8.RuneError && size <= 1) || utf16.RuneLen(r) != 1 {
		return 0, NewConversionError(msgStringToChar, nil)
	}

	return Char(r), nil
}
