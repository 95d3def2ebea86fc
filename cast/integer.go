package cast

import "strconv"

var (
	_ Converter[int8]  = ByteConverter{}
	_ Converter[int16] = ShortConverter{}
	_ Converter[int32] = IntConverter{}
	_ Converter[int64] = LongConverter{}
)

// ByteConverter converts values to int8.
type ByteConverter struct{}

// ShortConverter converts values to int16.
type ShortConverter struct{}

// IntConverter converts values to int32.
type IntConverter struct{}

// LongConverter converts values to int64.
type LongConverter struct{}

// Convert converts v to int8.
func (ByteConverter) Convert(v any) (int8, error) {
	return toInteger[int8](ValueOf(v), 8)
}

// Convert converts v to int16.
func (ShortConverter) Convert(v any) (int16, error) {
	return toInteger[int16](ValueOf(v), 16)
}

// Convert converts v to int32.
func (IntConverter) Convert(v any) (int32, error) {
	return toInteger[int32](ValueOf(v), 32)
}

// Convert converts v to int64.
func (LongConverter) Convert(v any) (int64, error) {
	return toInteger[int64](ValueOf(v), 64)
}

// toInteger converts value to an integer type of the given bit size. Wider
// inputs are range-checked, and floating-point or decimal inputs must also be
// integral. Characters convert by code unit.
func toInteger[I int8 | int16 | int32 | int64](value Value, bitSize int) (I, error) {
	switch value.kind {
	case KindBoolean:
		return boolToInt[I](value.b), nil
	case KindByte, KindShort, KindInt, KindLong, KindChar:
		return narrowInt[I](value.i)
	case KindBigInteger:
		return narrowBig[I](value.big)
	case KindFloat, KindDouble:
		return narrowFloat[I](value.f)
	case KindBigDecimal:
		return narrowDecimal[I](value.dec)
	case KindString:
		n, err := strconv.ParseInt(value.s, 10, bitSize)
		if err != nil {
			return 0, parseError(err)
		}
		return I(n), nil
	default:
		return 0, errUnsupported[I](value)
	}
}
