// Package testutil provides testing utilities for colstore.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating column data.
//
// # Random Column Data
//
//	rng := testutil.NewRNG(seed)
//	bytes := rng.Uint8s(2000)            // uniform bytes
//	sorted := rng.SortedUint8s(2000)     // same distribution, ascending
//	prices := rng.Float64s(100, 1, 500)  // uniform [1, 500)
//	probe := testutil.Sample(rng, bytes, 50)
package testutil
