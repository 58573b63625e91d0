package colstore

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/colstore/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_BeginEndAppend(t *testing.T) {
	var a column.Column[int32]
	var b column.Column[float64]
	metrics := &BasicMetricsCollector{}
	g := NewGroup([]column.Grower{&a, &b}, WithMetricsCollector(metrics), WithInitialCapacity(2))

	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 0, g.Len())

	require.NoError(t, g.BeginAppend(3))
	for i := range 3 {
		a.Push(int32(i))
		b.Push(float64(i))
	}
	g.EndAppend(3)

	assert.Equal(t, 3, g.Len())
	// The first step jumps straight to the requested rows.
	assert.Equal(t, 3, g.Cap())
	assert.Equal(t, int64(3*4+3*8), g.SizeBytes())

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.AppendCount)
	assert.Equal(t, int64(3), stats.AppendRows)
	assert.Equal(t, int64(1), stats.GrowCount)

	require.NoError(t, g.CheckRow(2))
	assert.ErrorIs(t, g.CheckRow(3), ErrRowIndex)
}

func TestGroup_Empty(t *testing.T) {
	g := NewGroup(nil)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.Cap())
	assert.Equal(t, 0, g.Width())
	require.NoError(t, g.BeginAppend(1))
	require.NoError(t, g.Close())
}

func TestGroup_Overflow(t *testing.T) {
	var a column.Column[int8]
	g := NewGroup([]column.Grower{&a})
	require.NoError(t, g.BeginAppend(1))
	a.Push(1)
	g.EndAppend(1)

	err := g.Reserve(int(^uint(0) >> 1))
	assert.ErrorIs(t, err, ErrResourceExhausted)
	assert.Equal(t, 1, g.Len())
}

func TestGroup_ClosedAppendIsRecorded(t *testing.T) {
	var a column.Column[int8]
	metrics := &BasicMetricsCollector{}
	g := NewGroup([]column.Grower{&a}, WithMetricsCollector(metrics))
	require.NoError(t, g.Close())

	assert.ErrorIs(t, g.BeginAppend(1), ErrClosed)
	assert.Equal(t, int64(1), metrics.GetStats().AppendErrors)
}

func TestLogger_GrowAndClose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tbl := NewTable1[int64](WithLogger(logger), WithName("ticks"), WithInitialCapacity(4))
	require.NoError(t, tbl.Append(1))
	require.NoError(t, tbl.Close())

	out := buf.String()
	assert.Contains(t, out, "columns grown")
	assert.Contains(t, out, "table=ticks")
	assert.Contains(t, out, "columns=1")
	assert.Contains(t, out, "new_cap=4")
	assert.Contains(t, out, "bytes=32")
	assert.Contains(t, out, "table closed")
	assert.Contains(t, out, "released_bytes=32")
}

func TestLogger_AppendFailed(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil))

	tbl := NewTable1[int64](WithLogger(logger))
	require.NoError(t, tbl.Close())
	require.ErrorIs(t, tbl.Append(1), ErrClosed)
	// Closed tables fail before any growth is attempted.
	assert.Empty(t, buf.String())

	buf.Reset()
	logger.WithTable("t").WithColumns(2).Info("hello")
	assert.Contains(t, buf.String(), `"table":"t"`)
	assert.Contains(t, buf.String(), `"columns":2`)

	buf.Reset()
	logger.LogAppendFailed(3, 1, errors.New("boom"))
	assert.Contains(t, buf.String(), `"msg":"append failed"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestOptions_Nil(t *testing.T) {
	o := applyOptions([]Option{nil, WithLogger(nil), WithMetricsCollector(nil)})
	assert.NotNil(t, o.logger)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.Equal(t, column.DefaultInitialCapacity, o.initialCapacity)
	assert.Nil(t, o.controller)

	o = applyOptions([]Option{WithLogLevel(slog.LevelError), WithName("x"), WithInitialCapacity(7)})
	assert.True(t, o.logger.Enabled(t.Context(), slog.LevelError))
	assert.False(t, o.logger.Enabled(t.Context(), slog.LevelInfo))
	assert.Equal(t, "x", o.name)
	assert.Equal(t, 7, o.initialCapacity)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordAppend(1, nil)
	mc.RecordGrow(0, 1, 8)
	mc.RecordClose(8)
}
