package guard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type meters int

func TestZeroOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, zeroOf[int]())
	assert.Equal(t, int8(0), zeroOf[int8]())
	assert.Equal(t, int16(0), zeroOf[int16]())
	assert.Equal(t, int32(0), zeroOf[int32]())
	assert.Equal(t, int64(0), zeroOf[int64]())
	assert.Equal(t, uint(0), zeroOf[uint]())
	assert.Equal(t, uint8(0), zeroOf[uint8]())
	assert.Equal(t, uint16(0), zeroOf[uint16]())
	assert.Equal(t, uint32(0), zeroOf[uint32]())
	assert.Equal(t, uint64(0), zeroOf[uint64]())
	assert.Equal(t, uintptr(0), zeroOf[uintptr]())
	assert.Equal(t, float32(0), zeroOf[float32]())
	assert.Equal(t, float64(0), zeroOf[float64]())

	d := zeroOf[decimal.Decimal]()
	assert.True(t, d.IsZero())
	assert.True(t, d.Equal(decimal.Zero))

	t.Run("unmapped types fall back to default value", func(t *testing.T) {
		assert.Equal(t, meters(0), zeroOf[meters]())
		assert.True(t, zeroOf[time.Time]().IsZero())
		assert.Equal(t, "", zeroOf[string]())
	})
}
