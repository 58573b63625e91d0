package column

import "unsafe"

// Primitive is the set of fixed-width, non-aggregate element types a
// column can hold.
type Primitive interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Column is an append-only sequence of T.
//
// The zero value is an empty column ready for use.
// Not safe for concurrent use.
type Column[T Primitive] struct {
	data   []T
	staged []T
}

// Len returns the number of elements.
func (c *Column[T]) Len() int {
	return len(c.data)
}

// Cap returns the number of elements that fit without reallocation.
func (c *Column[T]) Cap() int {
	return cap(c.data)
}

// ElemSize returns the size of one element in bytes.
func (c *Column[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeBytes returns the bytes held by the backing array.
func (c *Column[T]) SizeBytes() int64 {
	return int64(cap(c.data)) * int64(c.ElemSize())
}

// Push appends v. Callers must Grow first; Push on a full column panics
// rather than silently reallocating one column of a group.
func (c *Column[T]) Push(v T) {
	if len(c.data) == cap(c.data) {
		panic("column: push without reserved capacity")
	}
	c.data = append(c.data, v)
}

// At returns the element at index i. It panics if i is out of range.
func (c *Column[T]) At(i int) T {
	return c.data[i]
}

// View returns the contents with len == cap.
// The returned slice aliases column memory; do not modify.
// It is invalidated by the next Grow.
func (c *Column[T]) View() []T {
	n := len(c.data)
	return c.data[:n:n]
}

// Stage allocates a backing array of the given capacity and copies the
// current contents into it. The column is unchanged until Commit.
func (c *Column[T]) Stage(capacity int) {
	if capacity < len(c.data) {
		capacity = len(c.data)
	}
	staged := allocAligned[T](capacity)
	c.staged = append(staged, c.data...)
}

// Commit swaps in the staged backing array. No-op if nothing is staged.
func (c *Column[T]) Commit() {
	if c.staged == nil {
		return
	}
	c.data = c.staged
	c.staged = nil
}

// Abort discards the staged backing array.
func (c *Column[T]) Abort() {
	c.staged = nil
}

// Free drops the backing array.
func (c *Column[T]) Free() {
	c.data = nil
	c.staged = nil
}
