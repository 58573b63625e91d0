package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUint32(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		got, err := ToUint32(0)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("max", func(t *testing.T) {
		got, err := ToUint32(int64(math.MaxUint32))
		require.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := ToUint32(int8(-1))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := ToUint32(int64(math.MaxUint32) + 1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestRowCount(t *testing.T) {
	assert.NoError(t, RowCount(0))
	assert.NoError(t, RowCount(1000))
	assert.ErrorIs(t, RowCount(-1), ErrOverflow)
}
