package colstore

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting store metrics.
// Implement this interface to integrate with monitoring systems; the
// prometheus subpackage provides a ready-made implementation.
type MetricsCollector interface {
	// RecordAppend is called after each Append with the number of rows
	// attempted. err is nil if the rows were stored.
	RecordAppend(rows int, err error)

	// RecordGrow is called after every growth step that reallocated the
	// columns of a table.
	RecordGrow(oldCap, newCap int, bytes int64)

	// RecordClose is called when a table releases its storage.
	RecordClose(bytes int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAppend(int, error)    {}
func (NoopMetricsCollector) RecordGrow(int, int, int64) {}
func (NoopMetricsCollector) RecordClose(int64)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AppendCount   atomic.Int64
	AppendRows    atomic.Int64
	AppendErrors  atomic.Int64
	GrowCount     atomic.Int64
	GrowBytes     atomic.Int64
	ReleasedBytes atomic.Int64
}

// RecordAppend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppend(rows int, err error) {
	b.AppendCount.Add(1)
	if err != nil {
		b.AppendErrors.Add(1)
		return
	}
	b.AppendRows.Add(int64(rows))
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, _ int, bytes int64) {
	b.GrowCount.Add(1)
	b.GrowBytes.Add(bytes)
}

// RecordClose implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClose(bytes int64) {
	b.ReleasedBytes.Add(bytes)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AppendCount:   b.AppendCount.Load(),
		AppendRows:    b.AppendRows.Load(),
		AppendErrors:  b.AppendErrors.Load(),
		GrowCount:     b.GrowCount.Load(),
		GrowBytes:     b.GrowBytes.Load(),
		ReleasedBytes: b.ReleasedBytes.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AppendCount   int64
	AppendRows    int64
	AppendErrors  int64
	GrowCount     int64
	GrowBytes     int64
	ReleasedBytes int64
}
