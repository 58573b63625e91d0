package column

import (
	"math"
	"testing"

	"github.com/hupe1980/colstore/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		name   string
		cur    int
		need   int
		minCap int
		want   int
	}{
		{"fits", 64, 10, 0, 64},
		{"exact fit", 64, 64, 0, 64},
		{"first step uses default", 0, 1, 0, DefaultInitialCapacity},
		{"first step uses min", 0, 1, 8, 8},
		{"doubles", 64, 65, 0, 128},
		{"jumps to need", 64, 1000, 0, 1000},
		{"saturates", math.MaxInt/2 + 1, math.MaxInt/2 + 2, 0, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextCapacity(tt.cur, tt.need, tt.minCap))
		})
	}
}

func TestGrow_Empty(t *testing.T) {
	g, err := Grow(nil, 10, 0)
	require.NoError(t, err)
	assert.False(t, g.Grown())
}

func TestGrow_SharedCapacity(t *testing.T) {
	var f Column[float64]
	var i Column[int32]

	g, err := Grow(nil, 1, 0, &f, &i)
	require.NoError(t, err)
	assert.True(t, g.Grown())
	assert.Equal(t, 0, g.OldCap)
	assert.Equal(t, DefaultInitialCapacity, g.NewCap)
	assert.Equal(t, int64(DefaultInitialCapacity*(8+4)), g.Bytes)

	assert.Equal(t, f.Cap(), i.Cap())
	assert.Equal(t, g.Bytes, Reserved(&f, &i))

	g, err = Grow(nil, 10, 0, &f, &i)
	require.NoError(t, err)
	assert.False(t, g.Grown(), "capacity already sufficient")
}

func TestGrow_PreservesContents(t *testing.T) {
	var a Column[uint16]
	var b Column[bool]

	_, err := Grow(nil, 2, 2, &a, &b)
	require.NoError(t, err)
	a.Push(1)
	b.Push(true)
	a.Push(2)
	b.Push(false)

	_, err = Grow(nil, 3, 2, &a, &b)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Cap())
	assert.Equal(t, []uint16{1, 2}, a.View())
	assert.Equal(t, []bool{true, false}, b.View())
}

func TestGrow_MemoryLimit(t *testing.T) {
	ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 100})

	var a Column[float64]
	var b Column[float64]

	// 2 columns * 4 rows * 8 bytes = 64 bytes fits.
	_, err := Grow(ctrl, 1, 4, &a, &b)
	require.NoError(t, err)
	assert.Equal(t, int64(64), ctrl.MemoryUsage())

	a.Push(1)
	b.Push(2)

	// Doubling needs another 64 bytes and is denied.
	_, err = Grow(ctrl, 5, 4, &a, &b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResourceExhausted)
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)

	assert.Equal(t, 4, a.Cap())
	assert.Equal(t, 4, b.Cap())
	assert.Equal(t, []float64{1}, a.View())
	assert.Equal(t, []float64{2}, b.View())
	assert.Equal(t, int64(64), ctrl.MemoryUsage())
}

// panicGrower fails its first Stage like a makeslice overflow would.
type panicGrower struct {
	Column[int32]
	aborted bool
}

func (p *panicGrower) Stage(int) { panic("makeslice: len out of range") }

func (p *panicGrower) Abort() { p.aborted = true }

func TestGrow_RollbackOnAllocationPanic(t *testing.T) {
	ctrl := resource.NewController(resource.Config{})

	var ok Column[int64]
	bad := &panicGrower{}

	_, err := Grow(ctrl, 1, 4, &ok, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResourceExhausted)
	assert.Contains(t, err.Error(), "makeslice")

	assert.True(t, bad.aborted)
	assert.Equal(t, 0, ok.Cap(), "staged sibling must be discarded")
	assert.Equal(t, int64(0), ctrl.MemoryUsage(), "reservation must be released")

	// The healthy column is still usable afterwards.
	_, err = Grow(ctrl, 1, 4, &ok)
	require.NoError(t, err)
	assert.Equal(t, 4, ok.Cap())
}

func TestGrow_Overflow(t *testing.T) {
	var c Column[complex128]
	_, err := Grow(nil, math.MaxInt, 0, &c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResourceExhausted)
	assert.Equal(t, 0, c.Cap())
}
