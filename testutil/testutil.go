package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int32 returns a pseudo-random int32 over the full range.
func (r *RNG) Int32() int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int32(r.rand.Uint32())
}

// Uint16 returns a pseudo-random uint16.
func (r *RNG) Uint16() uint16 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint16(r.rand.Uint32())
}

// Bool returns a pseudo-random bool.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Uint8s returns n random bytes.
// Locks only once per call (preferred over calling Uint8 in a loop).
func (r *RNG) Uint8s(n int) []uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(r.rand.Uint32())
	}
	return out
}

// Int32s returns n random int32 values.
func (r *RNG) Int32s(n int) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(r.rand.Uint32())
	}
	return out
}

// Float64s returns n random values in range [minVal, maxVal).
func (r *RNG) Float64s(n int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	out := make([]float64, n)
	for i := range out {
		out[i] = minVal + r.rand.Float64()*span
	}
	return out
}

// SortedUint8s returns n random bytes in ascending order.
func (r *RNG) SortedUint8s(n int) []uint8 {
	out := r.Uint8s(n)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Sample returns up to n distinct elements of src in random order.
// src is not modified.
func Sample[T any](r *RNG, src []T, n int) []T {
	out := make([]T, len(src))
	copy(out, src)

	r.mu.Lock()
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	r.mu.Unlock()

	if n < len(out) {
		out = out[:n]
	}
	return out
}
