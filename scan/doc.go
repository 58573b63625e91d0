// Package scan provides reductions and filters over column views.
//
// Every function takes a plain slice, typically obtained from a table's
// column accessor, and never retains it. The slice must not be appended to
// while a scan is running; ParallelSum in particular reads the view from
// several goroutines and requires that no Append happens until it returns.
//
// # Reductions
//
//	qty := t.Column1()
//	total := scan.Sum(qty)
//	small := scan.SumLess(qty, 128)
//	i, best, ok := scan.Max(qty)
//
// # Selections
//
// Filter records matching row positions in a Roaring bitmap, which can be
// combined with other selections and used to reduce a second column:
//
//	cheap, _ := scan.Filter(prices, func(p float64) bool { return p < 10 })
//	bulk, _ := scan.Filter(qty, func(q int64) bool { return q >= 100 })
//	cheap.And(bulk)
//	revenue := scan.SumSelected(prices, cheap)
package scan
