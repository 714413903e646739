package guard_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

type celsius float64

func TestNegative(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		for _, v := range []int{0, 1, math.MaxInt} {
			got, err := guard.Negative("stock", v)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
		got, err := guard.Negative("stock", -1)
		assert.Equal(t, 0, got)
		require.Error(t, err)
		assert.True(t, guard.IsRange(err))
		assert.EqualError(t, err, "stock: value cannot be negative (actual value: -1)")
	})

	t.Run("widths", func(t *testing.T) {
		_, err := guard.Negative("v", int8(-1))
		assert.Error(t, err)
		_, err = guard.Negative("v", int16(-1))
		assert.Error(t, err)
		_, err = guard.Negative("v", int32(-1))
		assert.Error(t, err)
		_, err = guard.Negative("v", int64(-1))
		assert.Error(t, err)
		_, err = guard.Negative("v", uint8(0))
		assert.NoError(t, err)
		_, err = guard.Negative("v", uint64(math.MaxUint64))
		assert.NoError(t, err)
	})

	t.Run("float", func(t *testing.T) {
		_, err := guard.Negative("v", float32(-0.01))
		assert.Error(t, err)
		_, err = guard.Negative("v", 0.0)
		assert.NoError(t, err)
		_, err = guard.Negative("v", math.Copysign(0, -1))
		assert.NoError(t, err)
	})

	t.Run("named type", func(t *testing.T) {
		_, err := guard.Negative("temperature", celsius(-5))
		assert.Error(t, err)
		got, err := guard.Negative("temperature", celsius(21.5))
		require.NoError(t, err)
		assert.Equal(t, celsius(21.5), got)
	})
}

func TestZero(t *testing.T) {
	t.Parallel()

	for _, v := range []int{-1, 1, 100} {
		got, err := guard.Zero("count", v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := guard.Zero("count", 0)
	require.Error(t, err)
	assert.True(t, guard.IsRange(err))
	assert.Contains(t, err.Error(), "value cannot be zero")

	_, err = guard.Zero("ratio", 0.0)
	assert.Error(t, err)
	_, err = guard.Zero("ratio", uint(0))
	assert.Error(t, err)
}

func TestNegativeOrZero(t *testing.T) {
	t.Parallel()

	_, err := guard.NegativeOrZero("quantity", 1)
	assert.NoError(t, err)

	for _, v := range []int{0, -1, math.MinInt} {
		_, err := guard.NegativeOrZero("quantity", v)
		require.Error(t, err)
		assert.True(t, guard.IsRange(err))
		assert.Contains(t, err.Error(), "must be positive (greater than zero)")
	}

	_, err = guard.NegativeOrZero("price", 0.01)
	assert.NoError(t, err)
}

// Positive rejects positive values: the name says what is guarded against.
func TestPositive_RejectsPositiveValues(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, -1, -100} {
		got, err := guard.Positive("debt", v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	for _, v := range []int{1, 100} {
		_, err := guard.Positive("debt", v)
		require.Error(t, err)
		assert.True(t, guard.IsRange(err))
		assert.Contains(t, err.Error(), "value cannot be positive")
	}
}

func TestNaNIsOrderedBelowZero(t *testing.T) {
	t.Parallel()

	_, err := guard.Negative("v", math.NaN())
	assert.Error(t, err)
	_, err = guard.Positive("v", math.NaN())
	assert.NoError(t, err)
}

func TestSignRulesDecimal(t *testing.T) {
	t.Parallel()

	price := decimal.RequireFromString("19.99")
	got, err := guard.NegativeOrZeroCmp("price", price)
	require.NoError(t, err)
	assert.True(t, price.Equal(got))

	_, err = guard.NegativeOrZeroCmp("price", decimal.RequireFromString("0.00"))
	assert.True(t, guard.IsRange(err))

	_, err = guard.NegativeOrZeroCmp("price", decimal.Decimal{})
	assert.True(t, guard.IsRange(err))

	_, err = guard.NegativeCmp("balance", decimal.RequireFromString("-0.01"))
	require.Error(t, err)
	assert.EqualError(t, err, "balance: value cannot be negative (actual value: -0.01)")

	_, err = guard.ZeroCmp("rate", decimal.Zero)
	assert.Error(t, err)
	_, err = guard.ZeroCmp("rate", decimal.NewFromInt(1))
	assert.NoError(t, err)

	_, err = guard.PositiveCmp("refund", decimal.NewFromInt(-5))
	assert.NoError(t, err)
	_, err = guard.PositiveCmp("refund", decimal.NewFromInt(5))
	assert.Error(t, err)
}
