package cast

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.dw1.io/safemath"
)

// Char is a single UTF-16 code unit.
type Char uint16

// String returns the character as a string.
func (c Char) String() string {
	return string(rune(c))
}

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// Target is a constraint that matches every type produced by a [Converter].
type Target interface {
	bool | int8 | int16 | int32 | int64 | float32 | float64 | Char | string |
		*big.Int | decimal.Decimal | uuid.UUID
}

// Converter converts dynamically-typed values to T.
type Converter[T Target] interface {
	Convert(v any) (T, error)
}

// Kind identifies the category an input value is classified into.
type Kind uint8

// Supported input kinds.
const (
	KindUnknown Kind = iota
	KindBoolean
	KindByte
	KindShort
	KindInt
	KindLong
	KindBigInteger
	KindFloat
	KindDouble
	KindBigDecimal
	KindString
	KindChar
	KindUUID
)

var kindNames = [...]string{
	KindUnknown:    "Unknown",
	KindBoolean:    "Boolean",
	KindByte:       "Byte",
	KindShort:      "Short",
	KindInt:        "Int",
	KindLong:       "Long",
	KindBigInteger: "BigInteger",
	KindFloat:      "Float",
	KindDouble:     "Double",
	KindBigDecimal: "BigDecimal",
	KindString:     "String",
	KindChar:       "Char",
	KindUUID:       "UUID",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[KindUnknown]
}
