package scan

import (
	"context"
	"runtime"
	"unsafe"

	"github.com/hupe1980/colstore/resource"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of elements summed by one worker.
const DefaultChunkSize = 64 << 10

// ParallelSum sums col in chunks of chunkSize elements on several goroutines.
//
// Each chunk holds one background worker slot of ctrl while it runs, so
// concurrent scans sharing a controller never exceed its worker limit. A
// nil ctrl bounds the fan-out by GOMAXPROCS. A controller with a scan
// limit also throttles the bytes read per second. Partial sums are added in chunk
// order, so float results are deterministic for a given chunkSize.
//
// col must be a frozen view: no Append may happen until ParallelSum returns.
func ParallelSum[T Number](ctx context.Context, col []T, ctrl *resource.Controller, chunkSize int) (T, error) {
	var zero T
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	elemSize := int64(unsafe.Sizeof(zero))
	if len(col) <= chunkSize {
		if err := ctrl.AcquireScan(ctx, int64(len(col))*elemSize); err != nil {
			return zero, err
		}
		return Sum(col), nil
	}

	chunks := (len(col) + chunkSize - 1) / chunkSize
	partial := make([]T, chunks)

	g, gctx := errgroup.WithContext(ctx)
	if ctrl == nil {
		g.SetLimit(runtime.GOMAXPROCS(0))
	}

	for i := range chunks {
		if err := ctrl.AcquireBackground(gctx); err != nil {
			break
		}
		lo := i * chunkSize
		hi := min(lo+chunkSize, len(col))
		g.Go(func() error {
			defer ctrl.ReleaseBackground()
			if err := ctrl.AcquireScan(gctx, int64(hi-lo)*elemSize); err != nil {
				return err
			}
			partial[i] = Sum(col[lo:hi])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return zero, err
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	return Sum(partial), nil
}
