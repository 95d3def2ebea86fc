package cast

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharConverter(t *testing.T) {
	c := CharConverter{}

	t.Run("converts", func(t *testing.T) {
		cases := []struct {
			in   any
			want Char
		}{
			{in: true, want: '1'},
			{in: false, want: '0'},
			{in: int8(32), want: ' '},
			{in: int16(32), want: ' '},
			{in: int32(32), want: ' '},
			{in: int64(32), want: ' '},
			{in: big.NewInt(32), want: ' '},
			{in: float32(32), want: ' '},
			{in: 32.0, want: ' '},
			{in: decimal.NewFromInt(32), want: ' '},
			{in: " ", want: ' '},
			{in: "é", want: 'é'},
			{in: Char(' '), want: ' '},
			{in: int16(math.MaxInt16), want: 0x7FFF},
			{in: int8(-1), want: 0xFFFF},
		}
		for _, tc := range cases {
			got, err := c.Convert(tc.in)
			require.NoError(t, err, "%T", tc.in)
			assert.Equal(t, tc.want, got, "%T", tc.in)
		}
	})

	t.Run("numeric bridge is bounded by int16", func(t *testing.T) {
		inputs := []any{
			int32(math.MaxInt16 + 1), int32(math.MaxInt32), int64(math.MaxInt64),
			big.NewInt(math.MaxInt64), float32(math.MaxFloat32), math.MaxFloat64,
			decimal.NewFromFloat(math.MaxFloat64),
		}
		for _, in := range inputs {
			_, err := c.Convert(in)
			assert.EqualError(t, err, "Illegal type conversion. Numeric overflow.", "%T", in)
		}
	})

	t.Run("loss of precision", func(t *testing.T) {
		inputs := []any{float32(123.456), 123.456, decimal.NewFromFloat(123.456)}
		for _, in := range inputs {
			_, err := c.Convert(in)
			assert.EqualError(t, err, "Illegal type conversion. Loss of precision.", "%T", in)
		}
	})

	t.Run("strings must hold a single code unit", func(t *testing.T) {
		for _, s := range []string{"ab", "", "🙂", "\xff"} {
			_, err := c.Convert(s)
			assert.EqualError(t, err, "Illegal type conversion. String value cannot be converted to Char.", "%q", s)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := c.Convert(uuid.New())
		assert.EqualError(t, err, "Illegal type conversion. Cannot convert from 'uuid.UUID' to 'cast.Char'.")
	})
}

func TestCharString(t *testing.T) {
	if got := Char('A').String(); got != "A" {
		t.Fatalf("Char('A').String() = %q", got)
	}
}
