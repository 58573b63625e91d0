package scan

import (
	"cmp"
	"slices"
)

// Real is the set of ordered numeric element types.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Number is the set of element types that support addition.
type Number interface {
	Real | ~complex64 | ~complex128
}

// Sum returns the sum of col. Integer sums wrap on overflow.
func Sum[T Number](col []T) T {
	var s T
	for _, v := range col {
		s += v
	}
	return s
}

// SumLess returns the sum of the values of col strictly below bound.
//
// The loop branches on every element; over sorted input the branch is
// predictable and the scan runs markedly faster than over shuffled input.
func SumLess[T Real](col []T, bound T) T {
	var s T
	for _, v := range col {
		if v < bound {
			s += v
		}
	}
	return s
}

// Max returns the index and value of the first maximum of col.
// ok is false if col is empty. NaN values are never selected.
func Max[T cmp.Ordered](col []T) (idx int, val T, ok bool) {
	idx = -1
	for i, v := range col {
		if v != v { // NaN
			continue
		}
		if idx < 0 || v > val {
			idx, val = i, v
		}
	}
	return idx, val, idx >= 0
}

// Contains reports whether v occurs in col using a linear scan.
func Contains[T comparable](col []T, v T) bool {
	return slices.Contains(col, v)
}

// SortedContains reports whether v occurs in col, which must be sorted in
// ascending order.
func SortedContains[T cmp.Ordered](col []T, v T) bool {
	_, found := slices.BinarySearch(col, v)
	return found
}
