package scan

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/colstore/internal/conv"
)

// Selection is a set of row positions backed by a Roaring bitmap.
//
// Positions are uint32, so a selection addresses at most 2^32 rows.
// Not safe for concurrent mutation.
type Selection struct {
	rb *roaring.Bitmap
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{rb: roaring.New()}
}

// SelectionOf creates a selection holding rows.
func SelectionOf(rows ...uint32) *Selection {
	return &Selection{rb: roaring.BitmapOf(rows...)}
}

// Add adds row to the selection.
func (s *Selection) Add(row uint32) {
	s.rb.Add(row)
}

// AddRow adds the row at index row. It fails with conv.ErrOverflow if row
// is negative or beyond the uint32 range.
func (s *Selection) AddRow(row int) error {
	r, err := conv.ToUint32(row)
	if err != nil {
		return fmt.Errorf("selection: %w", err)
	}
	s.rb.Add(r)
	return nil
}

// Contains reports whether row is selected.
func (s *Selection) Contains(row uint32) bool {
	return s.rb.Contains(row)
}

// Cardinality returns the number of selected rows.
func (s *Selection) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// IsEmpty returns true if no row is selected.
func (s *Selection) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// And intersects s with other in place.
func (s *Selection) And(other *Selection) {
	s.rb.And(other.rb)
}

// Or merges other into s in place.
func (s *Selection) Or(other *Selection) {
	s.rb.Or(other.rb)
}

// Clone returns a deep copy of the selection.
func (s *Selection) Clone() *Selection {
	return &Selection{rb: s.rb.Clone()}
}

// All returns the selected rows in ascending order.
func (s *Selection) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// SizeBytes returns the serialized size of the bitmap.
func (s *Selection) SizeBytes() uint64 {
	return s.rb.GetSizeInBytes()
}

// Filter returns the positions of col whose value satisfies pred.
// It fails with conv.ErrOverflow if col has more rows than a selection
// can address.
func Filter[T any](col []T, pred func(T) bool) (*Selection, error) {
	if err := conv.RowCount(len(col)); err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	sel := NewSelection()
	for i, v := range col {
		if pred(v) {
			sel.rb.Add(uint32(i))
		}
	}
	return sel, nil
}

// SumSelected returns the sum of the values of col at the selected rows.
// Rows beyond len(col) are ignored.
func SumSelected[T Number](col []T, sel *Selection) T {
	var s T
	it := sel.rb.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= len(col) {
			break
		}
		s += col[i]
	}
	return s
}
