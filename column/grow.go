package column

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/colstore/resource"
)

// DefaultInitialCapacity is the capacity of the first growth step.
const DefaultInitialCapacity = 64

// ErrResourceExhausted is returned when a growth step cannot reserve
// memory for every column of a group.
var ErrResourceExhausted = errors.New("resource exhausted")

// Grower is the untyped view of a Column used by Grow.
type Grower interface {
	Len() int
	Cap() int
	ElemSize() int
	Stage(capacity int)
	Commit()
	Abort()
	Free()
}

// Growth describes one completed growth step.
type Growth struct {
	OldCap int
	NewCap int
	Bytes  int64
}

// Grown reports whether the step reallocated anything.
func (g Growth) Grown() bool {
	return g.NewCap > g.OldCap
}

// NextCapacity returns the capacity that fits need elements, doubling cur
// and never returning less than minCap.
func NextCapacity(cur, need, minCap int) int {
	if need <= cur {
		return cur
	}
	if minCap <= 0 {
		minCap = DefaultInitialCapacity
	}
	next := cur
	if next > math.MaxInt/2 {
		next = math.MaxInt
	} else {
		next *= 2
	}
	if next < minCap {
		next = minCap
	}
	if next < need {
		next = need
	}
	return next
}

// Grow makes room for need elements in every column of cols.
//
// The byte delta of all columns is acquired from ctrl first; a denied
// reservation returns an error wrapping ErrResourceExhausted and leaves
// every column unchanged. Otherwise all columns are staged and then
// committed together, so they always share one capacity.
func Grow(ctrl *resource.Controller, need, minCap int, cols ...Grower) (Growth, error) {
	if len(cols) == 0 {
		return Growth{}, nil
	}

	cur := cols[0].Cap()
	for _, c := range cols[1:] {
		cur = min(cur, c.Cap())
	}
	if need <= cur {
		return Growth{OldCap: cur, NewCap: cur}, nil
	}

	next := NextCapacity(cur, need, minCap)

	var delta int64
	for _, c := range cols {
		extra := int64(next - c.Cap())
		size := int64(c.ElemSize())
		if extra > 0 && size > math.MaxInt64/extra {
			return Growth{}, fmt.Errorf("%w: capacity %d overflows address space", ErrResourceExhausted, next)
		}
		if extra > 0 {
			delta += extra * size
		}
	}

	if err := ctrl.AcquireMemory(delta); err != nil {
		return Growth{}, fmt.Errorf("%w: grow to %d rows (%d bytes): %w", ErrResourceExhausted, next, delta, err)
	}

	if err := stageAll(next, cols); err != nil {
		ctrl.ReleaseMemory(delta)
		return Growth{}, fmt.Errorf("%w: grow to %d rows: %w", ErrResourceExhausted, next, err)
	}
	for _, c := range cols {
		c.Commit()
	}

	return Growth{OldCap: cur, NewCap: next, Bytes: delta}, nil
}

// stageAll stages every column or none of them. A recoverable allocation
// panic (e.g. makeslice: len out of range) aborts all staged arrays.
func stageAll(capacity int, cols []Grower) (err error) {
	defer func() {
		if r := recover(); r != nil {
			for _, c := range cols {
				c.Abort()
			}
			err = fmt.Errorf("allocation failed: %v", r)
		}
	}()
	for _, c := range cols {
		c.Stage(capacity)
	}
	return nil
}

// Reserved returns the bytes currently held by cols.
func Reserved(cols ...Grower) int64 {
	var n int64
	for _, c := range cols {
		n += int64(c.Cap()) * int64(c.ElemSize())
	}
	return n
}
