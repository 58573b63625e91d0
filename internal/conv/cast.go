package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a value does not fit the target type.
var ErrOverflow = errors.New("integer overflow")

// Signed is the set of signed integer types accepted by the helpers.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// ToUint32 converts v to uint32 with bounds checking.
func ToUint32[T Signed](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrOverflow, v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d exceeds uint32", ErrOverflow, v)
	}
	return uint32(v), nil
}

// RowCount checks that n rows can be addressed by uint32 row ids.
func RowCount(n int) error {
	if n < 0 || uint64(n) > math.MaxUint32+1 {
		return fmt.Errorf("%w: %d rows exceed uint32 row ids", ErrOverflow, n)
	}
	return nil
}
