package colstore

import (
	"fmt"
	"math"

	"github.com/hupe1980/colstore/column"
)

// Group binds the columns of one table so they grow, report and release
// together. It is the shared engine behind the generic tables, Dynamic and
// colgen-generated tables; applications normally use those instead.
//
// A Group is not safe for concurrent use.
type Group struct {
	cols   []column.Grower
	opts   options
	logger *Logger
	closed bool
}

// NewGroup creates a group over cols. The columns must be empty.
func NewGroup(cols []column.Grower, opts ...Option) *Group {
	o := applyOptions(opts)
	logger := o.logger.WithColumns(len(cols))
	if o.name != "" {
		logger = logger.WithTable(o.name)
	}
	return &Group{
		cols:   cols,
		opts:   o,
		logger: logger,
	}
}

// Width returns the number of columns.
func (g *Group) Width() int {
	return len(g.cols)
}

// Len returns the number of rows.
func (g *Group) Len() int {
	if len(g.cols) == 0 {
		return 0
	}
	return g.cols[0].Len()
}

// Cap returns the number of rows that fit without reallocation.
func (g *Group) Cap() int {
	if len(g.cols) == 0 {
		return 0
	}
	return g.cols[0].Cap()
}

// SizeBytes returns the bytes held by column backing storage.
func (g *Group) SizeBytes() int64 {
	return column.Reserved(g.cols...)
}

// Reserve makes room for rows more rows in every column, or in none.
func (g *Group) Reserve(rows int) error {
	if g.closed {
		return ErrClosed
	}
	if rows <= 0 {
		return nil
	}
	if err := g.grow(rows); err != nil {
		g.logger.LogAppendFailed(g.Len(), rows, err)
		return err
	}
	return nil
}

// BeginAppend prepares every column to take rows more values. On error
// nothing was changed and the failure is already recorded; callers return
// it unchanged. On success callers push exactly rows values into every
// column and then call EndAppend.
func (g *Group) BeginAppend(rows int) error {
	if g.closed {
		g.opts.metricsCollector.RecordAppend(rows, ErrClosed)
		return ErrClosed
	}
	if err := g.grow(rows); err != nil {
		g.logger.LogAppendFailed(g.Len(), rows, err)
		g.opts.metricsCollector.RecordAppend(rows, err)
		return err
	}
	return nil
}

// EndAppend records a completed append of rows rows.
func (g *Group) EndAppend(rows int) {
	g.opts.metricsCollector.RecordAppend(rows, nil)
}

// CheckRow returns ErrRowIndex unless 0 <= k < Len.
func (g *Group) CheckRow(k int) error {
	if k < 0 || k >= g.Len() {
		return fmt.Errorf("%w: %d (len %d)", ErrRowIndex, k, g.Len())
	}
	return nil
}

// Close releases the column storage and returns its bytes to the resource
// controller. Views obtained earlier stay readable but belong to nobody.
// Further appends fail with ErrClosed.
func (g *Group) Close() error {
	if g.closed {
		return ErrClosed
	}
	length := g.Len()
	bytes := g.SizeBytes()
	for _, c := range g.cols {
		c.Free()
	}
	g.opts.controller.ReleaseMemory(bytes)
	g.closed = true

	g.logger.LogClose(length, bytes)
	g.opts.metricsCollector.RecordClose(bytes)
	return nil
}

func (g *Group) grow(rows int) error {
	if rows > math.MaxInt-g.Len() {
		return fmt.Errorf("%w: %d rows overflow int", ErrResourceExhausted, rows)
	}
	growth, err := column.Grow(g.opts.controller, g.Len()+rows, g.opts.initialCapacity, g.cols...)
	if err != nil {
		return err
	}
	if growth.Grown() {
		g.logger.LogGrow(growth.OldCap, growth.NewCap, growth.Bytes)
		g.opts.metricsCollector.RecordGrow(growth.OldCap, growth.NewCap, growth.Bytes)
	}
	return nil
}
