package column

import (
	"math"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Alignment is the byte alignment of column backing arrays: one cache line.
const Alignment = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// allocAligned allocates a slice of n elements whose first element starts
// on an Alignment boundary. T must not contain pointers.
func allocAligned[T Primitive](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if n > (math.MaxInt-Alignment)/size {
		panic("column: allocation size overflows int")
	}

	// Over-allocate so the start can be shifted up to Alignment-1 bytes.
	buf := make([]byte, n*size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (uintptr(Alignment) - (addr & uintptr(Alignment-1))) & uintptr(Alignment-1)

	ptr := unsafe.Pointer(&buf[offset])   //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n)[:0] //nolint:gosec // unsafe is required for memory alignment
}
