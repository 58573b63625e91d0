// Package resource implements the Controller for memory budgets and worker limits.
//
// The Controller manages three resource types:
//
//   - Memory: Track and limit column backing storage (non-blocking, fail-fast)
//   - Concurrency: Limit scan workers running over frozen column views
//   - Scan bandwidth: Throttle bytes read per second (token bucket)
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                         Controller                          │
//	├─────────────────────┬─────────────────────┬─────────────────┤
//	│  Memory Limit       │  Background         │  Scan Limit     │
//	│  (fail-fast)        │  Workers (sem)      │  (rate.Limiter) │
//	├─────────────────────┼─────────────────────┼─────────────────┤
//	│  AcquireMemory      │  AcquireBackground  │  AcquireScan    │
//	│  ReleaseMemory      │  TryAcquire...      │                 │
//	│  MemoryUsage        │  ReleaseBackground  │                 │
//	└─────────────────────┴─────────────────────┴─────────────────┘
//
// # Memory Management
//
// Stores acquire the byte delta of a growth step before any column is
// reallocated. A denied reservation leaves the store untouched:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//
//	t := colstore.NewTable2[float64, int64](colstore.WithResourceController(rc))
//	if err := t.Append(1.5, 10); errors.Is(err, colstore.ErrResourceExhausted) {
//	    // nothing was appended
//	}
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
