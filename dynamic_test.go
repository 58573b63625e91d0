package colstore

import (
	"errors"
	"testing"

	"github.com/hupe1980/colstore/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPriceQty(t *testing.T, opts ...Option) *Dynamic {
	t.Helper()
	schema, err := NewSchema(
		Field{Name: "price", Kind: KindFloat64},
		Field{Name: "qty", Kind: KindInt},
	)
	require.NoError(t, err)
	d, err := NewDynamic(schema, opts...)
	require.NoError(t, err)
	return d
}

func TestDynamic_Scenario(t *testing.T) {
	d := newPriceQty(t)

	require.NoError(t, d.Append(1.5, 10))
	require.NoError(t, d.Append(2.5, 20))
	require.NoError(t, d.Append(3.5, 30))

	prices, err := ColumnOf[float64](d, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, prices)

	qty, err := ColumnOf[int](d, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, qty)

	byName, err := ColumnByName[int](d, "qty")
	require.NoError(t, err)
	assert.Equal(t, qty, byName)
}

func TestDynamic_Empty(t *testing.T) {
	d := newPriceQty(t)

	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 2, d.Width())

	prices, err := ColumnOf[float64](d, 0)
	require.NoError(t, err)
	assert.Empty(t, prices)

	qty, err := ColumnOf[int](d, 1)
	require.NoError(t, err)
	assert.Empty(t, qty)
}

func TestDynamic_New(t *testing.T) {
	_, err := NewDynamic(nil)
	assert.ErrorIs(t, err, ErrEmptySchema)

	_, err = NewDynamic(&Schema{})
	assert.ErrorIs(t, err, ErrEmptySchema)
}

func TestDynamic_AppendValidation(t *testing.T) {
	d := newPriceQty(t)
	require.NoError(t, d.Append(1.0, 1))

	t.Run("arity", func(t *testing.T) {
		err := d.Append(1.0)
		assert.ErrorIs(t, err, ErrArity)

		err = d.Append(1.0, 2, 3)
		assert.ErrorIs(t, err, ErrArity)
	})

	t.Run("wrong kind", func(t *testing.T) {
		err := d.Append(1.0, "ten")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTypeMismatch)

		var ct *ErrColumnType
		require.True(t, errors.As(err, &ct))
		assert.Equal(t, 1, ct.Column)
		assert.Equal(t, KindInt, ct.Expected)
		assert.Equal(t, "string", ct.Actual)
	})

	t.Run("wrong width", func(t *testing.T) {
		err := d.Append(float32(1), 2)
		assert.ErrorIs(t, err, ErrTypeMismatch)

		err = d.Append(1.0, int64(2))
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, d.Append(nil, 1), ErrTypeMismatch)
	})

	// No failed append may leave a trace.
	assert.Equal(t, 1, d.Len())
	prices, _ := ColumnOf[float64](d, 0)
	qty, _ := ColumnOf[int](d, 1)
	assert.Len(t, prices, 1)
	assert.Len(t, qty, 1)
}

func TestDynamic_NamedTypes(t *testing.T) {
	type celsius float64

	d := newPriceQty(t)
	require.NoError(t, d.Append(celsius(21.5), 1))

	prices, err := ColumnOf[float64](d, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{21.5}, prices)

	// Accessors must name the column's exact type.
	_, err = ColumnOf[celsius](d, 0)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDynamic_ColumnAccessErrors(t *testing.T) {
	d := newPriceQty(t)

	_, err := ColumnOf[float64](d, 2)
	assert.ErrorIs(t, err, ErrColumnIndex)

	_, err = ColumnOf[float64](d, -1)
	assert.ErrorIs(t, err, ErrColumnIndex)

	_, err = ColumnOf[int32](d, 1)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = ColumnByName[float64](d, "missing")
	assert.ErrorIs(t, err, ErrColumnIndex)
}

func TestDynamic_Row(t *testing.T) {
	d := newPriceQty(t)
	require.NoError(t, d.Append(1.5, 10))
	require.NoError(t, d.Append(2.5, 20))

	row, err := d.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []any{2.5, 20}, row)

	_, err = d.Row(2)
	assert.ErrorIs(t, err, ErrRowIndex)
	_, err = d.Row(-1)
	assert.ErrorIs(t, err, ErrRowIndex)
}

func TestDynamic_AppendRows(t *testing.T) {
	d := newPriceQty(t)

	require.NoError(t, d.AppendRows(nil))
	require.NoError(t, d.AppendRows([][]any{
		{1.5, 10},
		{2.5, 20},
		{3.5, 30},
	}))
	assert.Equal(t, 3, d.Len())

	// One bad row rejects the whole batch.
	err := d.AppendRows([][]any{
		{4.5, 40},
		{5.5, "x"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "row 1")
	assert.Equal(t, 3, d.Len())

	qty, err := ColumnOf[int](d, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, qty)
}

func TestDynamic_AppendRowsMemoryLimit(t *testing.T) {
	// 2 columns x 8 bytes x 4 rows = 64 bytes.
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64})
	d := newPriceQty(t, WithResourceController(rc), WithInitialCapacity(4))

	require.NoError(t, d.AppendRows([][]any{{1.0, 1}, {2.0, 2}}))

	err := d.AppendRows([][]any{{3.0, 3}, {4.0, 4}, {5.0, 5}})
	assert.ErrorIs(t, err, ErrResourceExhausted)
	assert.Equal(t, 2, d.Len())

	require.NoError(t, d.Append(3.0, 3))
	require.NoError(t, d.Append(4.0, 4))
	assert.ErrorIs(t, d.Append(5.0, 5), ErrResourceExhausted)
	assert.Equal(t, 4, d.Len())
}

func TestDynamic_AllKinds(t *testing.T) {
	samples := []any{
		true, int(-1), int8(-2), int16(-3), int32(-4), int64(-5),
		uint(1), uint8(2), uint16(3), uint32(4), uint64(5), uintptr(6),
		float32(1.5), float64(2.5), complex64(1 + 2i), complex128(3 + 4i),
	}
	schema, err := SchemaOf(samples...)
	require.NoError(t, err)
	assert.Equal(t, 16, schema.Len())

	d, err := NewDynamic(schema)
	require.NoError(t, err)
	require.NoError(t, d.Append(samples...))

	row, err := d.Row(0)
	require.NoError(t, err)
	assert.Equal(t, samples, row)

	c, err := ColumnOf[complex128](d, 15)
	require.NoError(t, err)
	assert.Equal(t, []complex128{3 + 4i}, c)
}

func TestDynamic_Close(t *testing.T) {
	d := newPriceQty(t)
	require.NoError(t, d.Append(1.0, 1))
	assert.Positive(t, d.SizeBytes())
	assert.GreaterOrEqual(t, d.Cap(), 1)

	require.NoError(t, d.Close())
	assert.Equal(t, int64(0), d.SizeBytes())
	assert.ErrorIs(t, d.Append(1.0, 1), ErrClosed)
	assert.ErrorIs(t, d.Reserve(1), ErrClosed)
}

func TestDynamic_Reserve(t *testing.T) {
	d := newPriceQty(t)
	require.NoError(t, d.Reserve(100))
	assert.GreaterOrEqual(t, d.Cap(), 100)
	assert.Equal(t, 0, d.Len())
	assert.Same(t, d.Schema(), d.Schema())
}
