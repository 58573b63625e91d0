package colstore

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colstore/column"
)

var (
	// ErrNotPrimitive is returned when a column is declared with a type that
	// is not a fixed-width, non-aggregate value type.
	ErrNotPrimitive = errors.New("column type is not primitive")

	// ErrEmptySchema is returned when a schema declares no columns.
	ErrEmptySchema = errors.New("schema has no columns")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrResourceExhausted is returned when an append or reserve could not
	// grow every column. No column is modified when it is returned.
	ErrResourceExhausted = column.ErrResourceExhausted

	// ErrColumnIndex is returned for a column index outside the schema.
	ErrColumnIndex = errors.New("column index out of range")

	// ErrRowIndex is returned for a row index outside [0, Len).
	ErrRowIndex = errors.New("row index out of range")

	// ErrArity is returned when an append supplies the wrong number of values.
	ErrArity = errors.New("wrong number of values")

	// ErrTypeMismatch is returned when a value or accessor type does not
	// match the declared column kind.
	ErrTypeMismatch = errors.New("column type mismatch")

	// ErrClosed is returned by operations on a closed table.
	ErrClosed = errors.New("table is closed")
)

// ErrColumnType indicates a value or accessor type that does not match the
// declared kind of a column.
//
// It matches ErrTypeMismatch via errors.Is.
type ErrColumnType struct {
	Column   int
	Expected Kind
	Actual   string
}

func (e *ErrColumnType) Error() string {
	return fmt.Sprintf("column %d: expected %s, got %s", e.Column, e.Expected, e.Actual)
}

func (e *ErrColumnType) Unwrap() error { return ErrTypeMismatch }
