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

func TestFloatConverter(t *testing.T) {
	c := FloatConverter{}

	t.Run("converts", func(t *testing.T) {
		cases := []struct {
			in   any
			want float32
		}{
			{in: true, want: 1},
			{in: false, want: 0},
			{in: int8(1), want: 1},
			{in: int16(1), want: 1},
			{in: int32(1), want: 1},
			{in: int64(-7), want: -7},
			{in: big.NewInt(1), want: 1},
			{in: float32(1), want: 1},
			{in: 0.5, want: 0.5},
			{in: "1", want: 1},
			{in: Char(' '), want: 32},
		}
		for _, tc := range cases {
			got, err := c.Convert(tc.in)
			require.NoError(t, err, "%T", tc.in)
			assert.Equal(t, tc.want, got, "%T", tc.in)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		inputs := []any{math.MaxFloat64, -math.MaxFloat64, new(big.Int).Lsh(big.NewInt(1), 200), "1e39"}
		for _, in := range inputs {
			_, err := c.Convert(in)
			assert.ErrorIs(t, err, ErrNumericOverflow, "%v", in)
		}
	})

	t.Run("infinity passes through", func(t *testing.T) {
		got, err := c.Convert(math.Inf(-1))
		require.NoError(t, err)
		assert.True(t, math.IsInf(float64(got), -1))
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := c.Convert(uuid.Nil)
		assert.EqualError(t, err, "Illegal type conversion. Cannot convert from 'uuid.UUID' to 'float32'.")

		_, err = c.Convert(decimal.NewFromInt(1))
		assert.EqualError(t, err, "Illegal type conversion. Cannot convert from 'decimal.Decimal' to 'float32'.")
	})
}

func TestDoubleConverter(t *testing.T) {
	c := DoubleConverter{}

	t.Run("converts", func(t *testing.T) {
		cases := []struct {
			in   any
			want float64
		}{
			{in: true, want: 1},
			{in: false, want: 0},
			{in: int8(1), want: 1},
			{in: int16(1), want: 1},
			{in: int32(1), want: 1},
			{in: int64(1), want: 1},
			{in: big.NewInt(1), want: 1},
			{in: big.NewInt(-1), want: -1},
			{in: float32(0.5), want: 0.5},
			{in: 1.0, want: 1},
			{in: "1", want: 1},
			{in: Char(' '), want: 32},
		}
		for _, tc := range cases {
			got, err := c.Convert(tc.in)
			require.NoError(t, err, "%T", tc.in)
			assert.Equal(t, tc.want, got, "%T", tc.in)
		}
	})

	t.Run("big integer within range", func(t *testing.T) {
		square := new(big.Int).Mul(big.NewInt(math.MaxInt64), big.NewInt(math.MaxInt64))

		got, err := c.Convert(square)
		require.NoError(t, err)
		assert.InEpsilon(t, 8.507059173023462e37, got, 1e-15)
	})

	t.Run("big integer overflow", func(t *testing.T) {
		huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(309), nil)

		_, err := c.Convert(huge)
		assert.ErrorIs(t, err, ErrNumericOverflow)

		_, err = c.Convert(new(big.Int).Neg(huge))
		assert.ErrorIs(t, err, ErrNumericOverflow)
	})

	t.Run("string overflow", func(t *testing.T) {
		_, err := c.Convert("1e400")
		assert.ErrorIs(t, err, ErrNumericOverflow)
	})

	t.Run("malformed string", func(t *testing.T) {
		_, err := c.Convert("one")
		assert.EqualError(t, err, `Illegal type conversion. strconv.ParseFloat: parsing "one": invalid syntax.`)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := c.Convert(uuid.Nil)
		assert.EqualError(t, err, "Illegal type conversion. Cannot convert from 'uuid.UUID' to 'float64'.")
	})
}
