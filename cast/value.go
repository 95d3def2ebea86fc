package cast

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Value is a dynamically-typed input classified into one of the supported
// kinds. The zero Value has kind [KindUnknown].
type Value struct {
	kind Kind
	raw  any
	null bool

	b   bool
	i   int64 // Byte, Short, Int, Long and Char
	f   float64
	big *big.Int
	dec decimal.Decimal
	s   string
	id  uuid.UUID
}

// ValueOf classifies v. Unsigned integers are placed in the narrowest signed
// kind that holds every value of their type; uint, uint64 and uintptr become
// BigInteger. Nil values, nil pointers and unrecognised types are
// [KindUnknown].
func ValueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case *Value:
		if x == nil {
			return Value{raw: v, null: true}
		}
		return *x
	case nil:
		return Value{null: true}
	case bool:
		return Value{kind: KindBoolean, raw: v, b: x}
	case int8:
		return Value{kind: KindByte, raw: v, i: int64(x)}
	case int16:
		return Value{kind: KindShort, raw: v, i: int64(x)}
	case uint8:
		return Value{kind: KindShort, raw: v, i: int64(x)}
	case int32:
		return Value{kind: KindInt, raw: v, i: int64(x)}
	case uint16:
		return Value{kind: KindInt, raw: v, i: int64(x)}
	case int64:
		return Value{kind: KindLong, raw: v, i: x}
	case int:
		return Value{kind: KindLong, raw: v, i: int64(x)}
	case uint32:
		return Value{kind: KindLong, raw: v, i: int64(x)}
	case uint:
		return Value{kind: KindBigInteger, raw: v, big: new(big.Int).SetUint64(uint64(x))}
	case uint64:
		return Value{kind: KindBigInteger, raw: v, big: new(big.Int).SetUint64(x)}
	case uintptr:
		return Value{kind: KindBigInteger, raw: v, big: new(big.Int).SetUint64(uint64(x))}
	case *big.Int:
		if x == nil {
			return Value{raw: v, null: true}
		}
		return Value{kind: KindBigInteger, raw: v, big: x}
	case float32:
		return Value{kind: KindFloat, raw: v, f: float64(x)}
	case float64:
		return Value{kind: KindDouble, raw: v, f: x}
	case decimal.Decimal:
		return Value{kind: KindBigDecimal, raw: v, dec: x}
	case *decimal.Decimal:
		if x == nil {
			return Value{raw: v, null: true}
		}
		return Value{kind: KindBigDecimal, raw: v, dec: *x}
	case string:
		return Value{kind: KindString, raw: v, s: x}
	case Char:
		return Value{kind: KindChar, raw: v, i: int64(x)}
	case uuid.UUID:
		return Value{kind: KindUUID, raw: v, id: x}
	case *uuid.UUID:
		if x == nil {
			return Value{raw: v, null: true}
		}
		return Value{kind: KindUUID, raw: v, id: *x}
	default:
		return Value{raw: v}
	}
}

// Kind returns the kind v was classified into.
func (v Value) Kind() Kind {
	return v.kind
}

// Interface returns the original input.
func (v Value) Interface() any {
	return v.raw
}

// TypeName returns the Go type name of the original input, or "<nil>".
func (v Value) TypeName() string {
	return fmt.Sprintf("%T", v.raw)
}
