// Package colstore provides small, append-only columnar (structure-of-arrays)
// tables of primitive values.
//
// A table stores N parallel columns, one per declared element type. Rows are
// implicit: row k is the k-th element of every column. Appending a row grows
// every column by one; reading a column returns one contiguous slice, so a
// scan over a single field never touches the bytes of the others.
//
// # Three Ways to Declare a Table
//
//	// 1. Generic tables: column types and indexes fixed at compile time.
//	t := colstore.NewTable2[float64, int64]()
//	_ = t.Append(1.5, 10)
//	prices := t.Column0() // []float64
//
//	// 2. Dynamic tables: column types declared by a run-time Schema.
//	schema, _ := colstore.NewSchema(
//	    colstore.Field{Name: "price", Kind: colstore.KindFloat64},
//	    colstore.Field{Name: "qty", Kind: colstore.KindInt64},
//	)
//	d, _ := colstore.NewDynamic(schema)
//	_ = d.Append(1.5, int64(10))
//	qty, _ := colstore.ColumnByName[int64](d, "qty")
//
//	// 3. Generated tables: named columns from a YAML schema via colgen.
//	//go:generate colgen generate -f schema.yaml -o .
//
// Element types are restricted to the Primitive constraint: booleans,
// integers, floats and complex numbers. Generic tables reject anything else
// at compile time; Dynamic and colgen reject it with ErrNotPrimitive.
//
// # Growth and Resource Limits
//
// Columns of a table share one capacity and grow together. A growth step
// reserves its byte delta with an optional resource.Controller before any
// column is reallocated, then reallocates all of them. If the reservation is
// denied, Append returns ErrResourceExhausted and no column changes, so
// columns never disagree on length.
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64 << 20})
//	t := colstore.NewTable1[int32](colstore.WithResourceController(rc))
//
// # Views
//
// Column accessors return views: slices that alias table memory. A view
// must not be modified and is invalidated by the next Append or Reserve,
// which may move the column. Fetch the column again after appending:
//
//	col := t.Column0()
//	_ = t.Append(4.5, 40)
//	col = t.Column0() // re-fetch; the old view may be stale
//
// Views have len == cap, so appending to a view copies rather than
// writing into table memory.
//
// # Concurrency
//
// Tables are single-threaded. Callers that share a table must synchronise
// externally, e.g. one writer that finishes before readers start. Scans in
// the scan package may read a view from many goroutines once writes stop.
package colstore
