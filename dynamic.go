package colstore

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/colstore/column"
)

// Dynamic is a columnar table whose column types are declared at run time
// by a Schema instead of type parameters.
//
// Every operation checks its input against the schema before touching any
// column: a wrong arity, a value of the wrong kind or an out-of-range
// column index fails fast and leaves the table unchanged.
//
// Not safe for concurrent use.
type Dynamic struct {
	schema *Schema
	cols   []dynColumn
	grp    *Group
}

// NewDynamic creates an empty table with one column per schema field.
func NewDynamic(schema *Schema, opts ...Option) (*Dynamic, error) {
	if schema == nil || schema.Len() == 0 {
		return nil, ErrEmptySchema
	}

	d := &Dynamic{
		schema: schema,
		cols:   make([]dynColumn, schema.Len()),
	}
	growers := make([]column.Grower, schema.Len())
	for i, f := range schema.fields {
		c, err := newDynColumn(f.Kind)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", f.Name, err)
		}
		d.cols[i] = c
		growers[i] = c
	}
	d.grp = NewGroup(growers, opts...)
	return d, nil
}

// Schema returns the table schema.
func (d *Dynamic) Schema() *Schema { return d.schema }

// Len returns the number of rows.
func (d *Dynamic) Len() int { return d.grp.Len() }

// Cap returns the number of rows that fit without reallocation.
func (d *Dynamic) Cap() int { return d.grp.Cap() }

// Width returns the number of columns.
func (d *Dynamic) Width() int { return d.grp.Width() }

// SizeBytes returns the bytes held by column backing storage.
func (d *Dynamic) SizeBytes() int64 { return d.grp.SizeBytes() }

// Reserve makes room for rows more rows in every column, or in none.
func (d *Dynamic) Reserve(rows int) error { return d.grp.Reserve(rows) }

// Close releases the column storage. See Group.Close.
func (d *Dynamic) Close() error { return d.grp.Close() }

// Append adds one row, one value per column in schema order.
//
// Values must have the exact kind of their column; named types over the
// same kind are converted. Untyped constants default to int and float64,
// so pass int32(7) for an int32 column.
func (d *Dynamic) Append(values ...any) error {
	if err := d.check(values); err != nil {
		return err
	}
	if err := d.grp.BeginAppend(1); err != nil {
		return err
	}
	for i, v := range values {
		d.cols[i].push(v)
	}
	d.grp.EndAppend(1)
	return nil
}

// AppendRows adds rows in order. All rows are validated and capacity for
// all of them is reserved before the first value is stored, so either
// every row is appended or none is.
func (d *Dynamic) AppendRows(rows [][]any) error {
	for r, values := range rows {
		if err := d.check(values); err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	if err := d.grp.BeginAppend(len(rows)); err != nil {
		return err
	}
	for _, values := range rows {
		for i, v := range values {
			d.cols[i].push(v)
		}
	}
	d.grp.EndAppend(len(rows))
	return nil
}

// Row returns a copy of row k, one value per column.
func (d *Dynamic) Row(k int) ([]any, error) {
	if err := d.grp.CheckRow(k); err != nil {
		return nil, err
	}
	out := make([]any, len(d.cols))
	for i, c := range d.cols {
		out[i] = c.at(k)
	}
	return out, nil
}

func (d *Dynamic) check(values []any) error {
	if len(values) != len(d.cols) {
		return fmt.Errorf("%w: expected %d, got %d", ErrArity, len(d.cols), len(values))
	}
	for i, v := range values {
		if !d.cols[i].accepts(v) {
			return &ErrColumnType{Column: i, Expected: d.schema.fields[i].Kind, Actual: fmt.Sprintf("%T", v)}
		}
	}
	return nil
}

// ColumnOf returns column i of d as a []T in append order.
//
// T must be exactly the Go type of the column's kind. The slice aliases
// table memory, must not be modified and is invalidated by the next
// Append, AppendRows or Reserve.
func ColumnOf[T Primitive](d *Dynamic, i int) ([]T, error) {
	if i < 0 || i >= len(d.cols) {
		return nil, fmt.Errorf("%w: %d (width %d)", ErrColumnIndex, i, len(d.cols))
	}
	c, ok := d.cols[i].(*typedColumn[T])
	if !ok {
		var zero T
		return nil, &ErrColumnType{Column: i, Expected: d.schema.fields[i].Kind, Actual: fmt.Sprintf("%T", zero)}
	}
	return c.View(), nil
}

// ColumnByName returns the named column of d. See ColumnOf.
func ColumnByName[T Primitive](d *Dynamic, name string) ([]T, error) {
	i, ok := d.schema.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnIndex, name)
	}
	return ColumnOf[T](d, i)
}

// dynColumn is a typed column behind an untyped interface.
type dynColumn interface {
	column.Grower
	accepts(v any) bool
	push(v any)
	at(i int) any
}

type typedColumn[T Primitive] struct {
	column.Column[T]
	rt reflect.Type
}

func newTypedColumn[T Primitive]() *typedColumn[T] {
	var zero T
	return &typedColumn[T]{rt: reflect.TypeOf(zero)}
}

func (c *typedColumn[T]) convert(v any) (T, bool) {
	if x, ok := v.(T); ok {
		return x, true
	}
	var zero T
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != c.rt.Kind() {
		return zero, false
	}
	return rv.Convert(c.rt).Interface().(T), true
}

func (c *typedColumn[T]) accepts(v any) bool {
	_, ok := c.convert(v)
	return ok
}

func (c *typedColumn[T]) push(v any) {
	x, _ := c.convert(v)
	c.Push(x)
}

func (c *typedColumn[T]) at(i int) any {
	return c.At(i)
}

func newDynColumn(k Kind) (dynColumn, error) {
	switch k {
	case KindBool:
		return newTypedColumn[bool](), nil
	case KindInt:
		return newTypedColumn[int](), nil
	case KindInt8:
		return newTypedColumn[int8](), nil
	case KindInt16:
		return newTypedColumn[int16](), nil
	case KindInt32:
		return newTypedColumn[int32](), nil
	case KindInt64:
		return newTypedColumn[int64](), nil
	case KindUint:
		return newTypedColumn[uint](), nil
	case KindUint8:
		return newTypedColumn[uint8](), nil
	case KindUint16:
		return newTypedColumn[uint16](), nil
	case KindUint32:
		return newTypedColumn[uint32](), nil
	case KindUint64:
		return newTypedColumn[uint64](), nil
	case KindUintptr:
		return newTypedColumn[uintptr](), nil
	case KindFloat32:
		return newTypedColumn[float32](), nil
	case KindFloat64:
		return newTypedColumn[float64](), nil
	case KindComplex64:
		return newTypedColumn[complex64](), nil
	case KindComplex128:
		return newTypedColumn[complex128](), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotPrimitive, k)
	}
}
