package colstore

import "github.com/hupe1980/colstore/column"

// Primitive is the set of column element types: booleans, integers,
// floats and complex numbers, including named types over them.
type Primitive = column.Primitive

// table holds the methods shared by the fixed-arity tables.
type table struct {
	grp *Group
}

// Len returns the number of rows.
func (t table) Len() int { return t.grp.Len() }

// Cap returns the number of rows that fit without reallocation.
func (t table) Cap() int { return t.grp.Cap() }

// Width returns the number of columns.
func (t table) Width() int { return t.grp.Width() }

// SizeBytes returns the bytes held by column backing storage.
func (t table) SizeBytes() int64 { return t.grp.SizeBytes() }

// Reserve makes room for rows more rows in every column, or in none.
func (t table) Reserve(rows int) error { return t.grp.Reserve(rows) }

// Close releases the column storage. See Group.Close.
func (t table) Close() error { return t.grp.Close() }

// Table1 stores a single column of A. Create it with NewTable1; the zero
// value is not usable.
type Table1[A Primitive] struct {
	table
	c0 column.Column[A]
}

// NewTable1 creates an empty Table1.
func NewTable1[A Primitive](opts ...Option) *Table1[A] {
	t := &Table1[A]{}
	t.grp = NewGroup([]column.Grower{&t.c0}, opts...)
	return t
}

// Append adds one value.
func (t *Table1[A]) Append(a A) error {
	if err := t.grp.BeginAppend(1); err != nil {
		return err
	}
	t.c0.Push(a)
	t.grp.EndAppend(1)
	return nil
}

// Row returns row k. ok is false if k is out of range.
func (t *Table1[A]) Row(k int) (a A, ok bool) {
	if t.grp.CheckRow(k) != nil {
		return a, false
	}
	return t.c0.At(k), true
}

// Column0 returns column 0 in append order. The slice aliases table
// memory, must not be modified and is invalidated by the next Append or
// Reserve; fetch it again afterwards.
func (t *Table1[A]) Column0() []A { return t.c0.View() }

// Table2 stores rows of (A, B) as two parallel columns.
//
// Column k of every row is held in its own contiguous slice, so a scan over
// one field touches no bytes of the others. Create tables with NewTable2;
// the zero value is not usable. Not safe for concurrent use.
type Table2[A, B Primitive] struct {
	table
	c0 column.Column[A]
	c1 column.Column[B]
}

// NewTable2 creates an empty Table2.
func NewTable2[A, B Primitive](opts ...Option) *Table2[A, B] {
	t := &Table2[A, B]{}
	t.grp = NewGroup([]column.Grower{&t.c0, &t.c1}, opts...)
	return t
}

// Append adds the row (a, b). Either every column grows by one or,
// on error, none does.
func (t *Table2[A, B]) Append(a A, b B) error {
	if err := t.grp.BeginAppend(1); err != nil {
		return err
	}
	t.c0.Push(a)
	t.c1.Push(b)
	t.grp.EndAppend(1)
	return nil
}

// Row returns row k. ok is false if k is out of range.
func (t *Table2[A, B]) Row(k int) (a A, b B, ok bool) {
	if t.grp.CheckRow(k) != nil {
		return a, b, false
	}
	return t.c0.At(k), t.c1.At(k), true
}

// Column0 returns column 0 in append order. The slice aliases table
// memory, must not be modified and is invalidated by the next Append or
// Reserve; fetch it again afterwards.
func (t *Table2[A, B]) Column0() []A { return t.c0.View() }

// Column1 returns column 1. See Column0.
func (t *Table2[A, B]) Column1() []B { return t.c1.View() }

// Table3 stores rows of (A, B, C) as three parallel columns.
// Create it with NewTable3; the zero value is not usable.
type Table3[A, B, C Primitive] struct {
	table
	c0 column.Column[A]
	c1 column.Column[B]
	c2 column.Column[C]
}

// NewTable3 creates an empty Table3.
func NewTable3[A, B, C Primitive](opts ...Option) *Table3[A, B, C] {
	t := &Table3[A, B, C]{}
	t.grp = NewGroup([]column.Grower{&t.c0, &t.c1, &t.c2}, opts...)
	return t
}

// Append adds the row (a, b, c). Either every column grows by one or,
// on error, none does.
func (t *Table3[A, B, C]) Append(a A, b B, c C) error {
	if err := t.grp.BeginAppend(1); err != nil {
		return err
	}
	t.c0.Push(a)
	t.c1.Push(b)
	t.c2.Push(c)
	t.grp.EndAppend(1)
	return nil
}

// Row returns row k. ok is false if k is out of range.
func (t *Table3[A, B, C]) Row(k int) (a A, b B, c C, ok bool) {
	if t.grp.CheckRow(k) != nil {
		return a, b, c, false
	}
	return t.c0.At(k), t.c1.At(k), t.c2.At(k), true
}

// Column0 returns column 0 in append order. The slice aliases table
// memory, must not be modified and is invalidated by the next Append or
// Reserve; fetch it again afterwards.
func (t *Table3[A, B, C]) Column0() []A { return t.c0.View() }

// Column1 returns column 1. See Column0.
func (t *Table3[A, B, C]) Column1() []B { return t.c1.View() }

// Column2 returns column 2. See Column0.
func (t *Table3[A, B, C]) Column2() []C { return t.c2.View() }

// Table4 stores rows of (A, B, C, D) as four parallel columns.
// Create it with NewTable4; the zero value is not usable.
type Table4[A, B, C, D Primitive] struct {
	table
	c0 column.Column[A]
	c1 column.Column[B]
	c2 column.Column[C]
	c3 column.Column[D]
}

// NewTable4 creates an empty Table4.
func NewTable4[A, B, C, D Primitive](opts ...Option) *Table4[A, B, C, D] {
	t := &Table4[A, B, C, D]{}
	t.grp = NewGroup([]column.Grower{&t.c0, &t.c1, &t.c2, &t.c3}, opts...)
	return t
}

// Append adds the row (a, b, c, d). Either every column grows by one or,
// on error, none does.
func (t *Table4[A, B, C, D]) Append(a A, b B, c C, d D) error {
	if err := t.grp.BeginAppend(1); err != nil {
		return err
	}
	t.c0.Push(a)
	t.c1.Push(b)
	t.c2.Push(c)
	t.c3.Push(d)
	t.grp.EndAppend(1)
	return nil
}

// Row returns row k. ok is false if k is out of range.
func (t *Table4[A, B, C, D]) Row(k int) (a A, b B, c C, d D, ok bool) {
	if t.grp.CheckRow(k) != nil {
		return a, b, c, d, false
	}
	return t.c0.At(k), t.c1.At(k), t.c2.At(k), t.c3.At(k), true
}

// Column0 returns column 0 in append order. The slice aliases table
// memory, must not be modified and is invalidated by the next Append or
// Reserve; fetch it again afterwards.
func (t *Table4[A, B, C, D]) Column0() []A { return t.c0.View() }

// Column1 returns column 1. See Column0.
func (t *Table4[A, B, C, D]) Column1() []B { return t.c1.View() }

// Column2 returns column 2. See Column0.
func (t *Table4[A, B, C, D]) Column2() []C { return t.c2.View() }

// Column3 returns column 3. See Column0.
func (t *Table4[A, B, C, D]) Column3() []D { return t.c3.View() }

// Table5 stores rows of (A, B, C, D, E) as five parallel columns.
// Create it with NewTable5; the zero value is not usable.
type Table5[A, B, C, D, E Primitive] struct {
	table
	c0 column.Column[A]
	c1 column.Column[B]
	c2 column.Column[C]
	c3 column.Column[D]
	c4 column.Column[E]
}

// NewTable5 creates an empty Table5.
func NewTable5[A, B, C, D, E Primitive](opts ...Option) *Table5[A, B, C, D, E] {
	t := &Table5[A, B, C, D, E]{}
	t.grp = NewGroup([]column.Grower{&t.c0, &t.c1, &t.c2, &t.c3, &t.c4}, opts...)
	return t
}

// Append adds the row (a, b, c, d, e). Either every column grows by one or,
// on error, none does.
func (t *Table5[A, B, C, D, E]) Append(a A, b B, c C, d D, e E) error {
	if err := t.grp.BeginAppend(1); err != nil {
		return err
	}
	t.c0.Push(a)
	t.c1.Push(b)
	t.c2.Push(c)
	t.c3.Push(d)
	t.c4.Push(e)
	t.grp.EndAppend(1)
	return nil
}

// Row returns row k. ok is false if k is out of range.
func (t *Table5[A, B, C, D, E]) Row(k int) (a A, b B, c C, d D, e E, ok bool) {
	if t.grp.CheckRow(k) != nil {
		return a, b, c, d, e, false
	}
	return t.c0.At(k), t.c1.At(k), t.c2.At(k), t.c3.At(k), t.c4.At(k), true
}

// Column0 returns column 0 in append order. The slice aliases table
// memory, must not be modified and is invalidated by the next Append or
// Reserve; fetch it again afterwards.
func (t *Table5[A, B, C, D, E]) Column0() []A { return t.c0.View() }

// Column1 returns column 1. See Column0.
func (t *Table5[A, B, C, D, E]) Column1() []B { return t.c1.View() }

// Column2 returns column 2. See Column0.
func (t *Table5[A, B, C, D, E]) Column2() []C { return t.c2.View() }

// Column3 returns column 3. See Column0.
func (t *Table5[A, B, C, D, E]) Column3() []D { return t.c3.View() }

// Column4 returns column 4. See Column0.
func (t *Table5[A, B, C, D, E]) Column4() []E { return t.c4.View() }

// Table6 stores rows of (A, B, C, D, E, F) as six parallel columns.
// Create it with NewTable6; the zero value is not usable.
type Table6[A, B, C, D, E, F Primitive] struct {
	table
	c0 column.Column[A]
	c1 column.Column[B]
	c2 column.Column[C]
	c3 column.Column[D]
	c4 column.Column[E]
	c5 column.Column[F]
}

// NewTable6 creates an empty Table6.
func NewTable6[A, B, C, D, E, F Primitive](opts ...Option) *Table6[A, B, C, D, E, F] {
	t := &Table6[A, B, C, D, E, F]{}
	t.grp = NewGroup([]column.Grower{&t.c0, &t.c1, &t.c2, &t.c3, &t.c4, &t.c5}, opts...)
	return t
}

// Append adds the row (a, b, c, d, e, f). Either every column grows by one or,
// on error, none does.
func (t *Table6[A, B, C, D, E, F]) Append(a A, b B, c C, d D, e E, f F) error {
	if err := t.grp.BeginAppend(1); err != nil {
		return err
	}
	t.c0.Push(a)
	t.c1.Push(b)
	t.c2.Push(c)
	t.c3.Push(d)
	t.c4.Push(e)
	t.c5.Push(f)
	t.grp.EndAppend(1)
	return nil
}

// Row returns row k. ok is false if k is out of range.
func (t *Table6[A, B, C, D, E, F]) Row(k int) (a A, b B, c C, d D, e E, f F, ok bool) {
	if t.grp.CheckRow(k) != nil {
		return a, b, c, d, e, f, false
	}
	return t.c0.At(k), t.c1.At(k), t.c2.At(k), t.c3.At(k), t.c4.At(k), t.c5.At(k), true
}

// Column0 returns column 0 in append order. The slice aliases table
// memory, must not be modified and is invalidated by the next Append or
// Reserve; fetch it again afterwards.
func (t *Table6[A, B, C, D, E, F]) Column0() []A { return t.c0.View() }

// Column1 returns column 1. See Column0.
func (t *Table6[A, B, C, D, E, F]) Column1() []B { return t.c1.View() }

// Column2 returns column 2. See Column0.
func (t *Table6[A, B, C, D, E, F]) Column2() []C { return t.c2.View() }

// Column3 returns column 3. See Column0.
func (t *Table6[A, B, C, D, E, F]) Column3() []D { return t.c3.View() }

// Column4 returns column 4. See Column0.
func (t *Table6[A, B, C, D, E, F]) Column4() []E { return t.c4.View() }

// Column5 returns column 5. See Column0.
func (t *Table6[A, B, C, D, E, F]) Column5() []F { return t.c5.View() }

// Table7 stores rows of (A, B, C, D, E, F, G) as seven parallel columns.
// Create it with NewTable7; the zero value is not usable.
type Table7[A, B, C, D, E, F, G Primitive] struct {
	table
	c0 column.Column[A]
	c1 column.Column[B]
	c2 column.Column[C]
	c3 column.Column[D]
	c4 column.Column[E]
	c5 column.Column[F]
	c6 column.Column[G]
}

// NewTable7 creates an empty Table7.
func NewTable7[A, B, C, D, E, F, G Primitive](opts ...Option) *Table7[A, B, C, D, E, F, G] {
	t := &Table7[A, B, C, D, E, F, G]{}
	t.grp = NewGroup([]column.Grower{&t.c0, &t.c1, &t.c2, &t.c3, &t.c4, &t.c5, &t.c6}, opts...)
	return t
}

// Append adds the row (a, b, c, d, e, f, g). Either every column grows by one or,
// on error, none does.
func (t *Table7[A, B, C, D, E, F, G]) Append(a A, b B, c C, d D, e E, f F, g G) error {
	if err := t.grp.BeginAppend(1); err != nil {
		return err
	}
	t.c0.Push(a)
	t.c1.Push(b)
	t.c2.Push(c)
	t.c3.Push(d)
	t.c4.Push(e)
	t.c5.Push(f)
	t.c6.Push(g)
	t.grp.EndAppend(1)
	return nil
}

// Row returns row k. ok is false if k is out of range.
func (t *Table7[A, B, C, D, E, F, G]) Row(k int) (a A, b B, c C, d D, e E, f F, g G, ok bool) {
	if t.grp.CheckRow(k) != nil {
		return a, b, c, d, e, f, g, false
	}
	return t.c0.At(k), t.c1.At(k), t.c2.At(k), t.c3.At(k), t.c4.At(k), t.c5.At(k), t.c6.At(k), true
}

// Column0 returns column 0 in append order. The slice aliases table
// memory, must not be modified and is invalidated by the next Append or
// Reserve; fetch it again afterwards.
func (t *Table7[A, B, C, D, E, F, G]) Column0() []A { return t.c0.View() }

// Column1 returns column 1. See Column0.
func (t *Table7[A, B, C, D, E, F, G]) Column1() []B { return t.c1.View() }

// Column2 returns column 2. See Column0.
func (t *Table7[A, B, C, D, E, F, G]) Column2() []C { return t.c2.View() }

// Column3 returns column 3. See Column0.
func (t *Table7[A, B, C, D, E, F, G]) Column3() []D { return t.c3.View() }

// Column4 returns column 4. See Column0.
func (t *Table7[A, B, C, D, E, F, G]) Column4() []E { return t.c4.View() }

// Column5 returns column 5. See Column0.
func (t *Table7[A, B, C, D, E, F, G]) Column5() []F { return t.c5.View() }

// Column6 returns column 6. See Column0.
func (t *Table7[A, B, C, D, E, F, G]) Column6() []G { return t.c6.View() }

// Table8 stores rows of (A, B, C, D, E, F, G, H) as eight parallel columns.
// Create it with NewTable8; the zero value is not usable.
type Table8[A, B, C, D, E, F, G, H Primitive] struct {
	table
	c0 column.Column[A]
	c1 column.Column[B]
	c2 column.Column[C]
	c3 column.Column[D]
	c4 column.Column[E]
	c5 column.Column[F]
	c6 column.Column[G]
	c7 column.Column[H]
}

// NewTable8 creates an empty Table8.
func NewTable8[A, B, C, D, E, F, G, H Primitive](opts ...Option) *Table8[A, B, C, D, E, F, G, H] {
	t := &Table8[A, B, C, D, E, F, G, H]{}
	t.grp = NewGroup([]column.Grower{&t.c0, &t.c1, &t.c2, &t.c3, &t.c4, &t.c5, &t.c6, &t.c7}, opts...)
	return t
}

// Append adds the row (a, b, c, d, e, f, g, h). Either every column grows by one or,
// on error, none does.
func (t *Table8[A, B, C, D, E, F, G, H]) Append(a A, b B, c C, d D, e E, f F, g G, h H) error {
	if err := t.grp.BeginAppend(1); err != nil {
		return err
	}
	t.c0.Push(a)
	t.c1.Push(b)
	t.c2.Push(c)
	t.c3.Push(d)
	t.c4.Push(e)
	t.c5.Push(f)
	t.c6.Push(g)
	t.c7.Push(h)
	t.grp.EndAppend(1)
	return nil
}

// Row returns row k. ok is false if k is out of range.
func (t *Table8[A, B, C, D, E, F, G, H]) Row(k int) (a A, b B, c C, d D, e E, f F, g G, h H, ok bool) {
	if t.grp.CheckRow(k) != nil {
		return a, b, c, d, e, f, g, h, false
	}
	return t.c0.At(k), t.c1.At(k), t.c2.At(k), t.c3.At(k), t.c4.At(k), t.c5.At(k), t.c6.At(k), t.c7.At(k), true
}

// Column0 returns column 0 in append order. The slice aliases table
// memory, must not be modified and is invalidated by the next Append or
// Reserve; fetch it again afterwards.
func (t *Table8[A, B, C, D, E, F, G, H]) Column0() []A { return t.c0.View() }

// Column1 returns column 1. See Column0.
func (t *Table8[A, B, C, D, E, F, G, H]) Column1() []B { return t.c1.View() }

// Column2 returns column 2. See Column0.
func (t *Table8[A, B, C, D, E, F, G, H]) Column2() []C { return t.c2.View() }

// Column3 returns column 3. See Column0.
func (t *Table8[A, B, C, D, E, F, G, H]) Column3() []D { return t.c3.View() }

// Column4 returns column 4. See Column0.
func (t *Table8[A, B, C, D, E, F, G, H]) Column4() []E { return t.c4.View() }

// Column5 returns column 5. See Column0.
func (t *Table8[A, B, C, D, E, F, G, H]) Column5() []F { return t.c5.View() }

// Column6 returns column 6. See Column0.
func (t *Table8[A, B, C, D, E, F, G, H]) Column6() []G { return t.c6.View() }

// Column7 returns column 7. See Column0.
func (t *Table8[A, B, C, D, E, F, G, H]) Column7() []H { return t.c7.View() }
