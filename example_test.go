package colstore_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/colstore"
	"github.com/hupe1980/colstore/resource"
)

// Example_table2 stores prices and quantities as two parallel columns.
func Example_table2() {
	t := colstore.NewTable2[float64, int]()
	defer t.Close()

	_ = t.Append(1.5, 10)
	_ = t.Append(2.5, 20)
	_ = t.Append(3.5, 30)

	fmt.Println(t.Column0())
	fmt.Println(t.Column1())
	// Output:
	// [1.5 2.5 3.5]
	// [10 20 30]
}

// Example_dynamic declares the column types at run time.
func Example_dynamic() {
	schema, err := colstore.NewSchema(
		colstore.Field{Name: "price", Kind: colstore.KindFloat64},
		colstore.Field{Name: "qty", Kind: colstore.KindInt64},
	)
	if err != nil {
		log.Fatal(err)
	}

	d, err := colstore.NewDynamic(schema)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	_ = d.Append(1.5, int64(10))
	_ = d.Append(2.5, int64(20))

	// Untyped 30 is an int, not an int64.
	if err := d.Append(3.5, 30); errors.Is(err, colstore.ErrTypeMismatch) {
		fmt.Println("rejected:", err)
	}

	qty, _ := colstore.ColumnByName[int64](d, "qty")
	fmt.Println(schema, qty)
	// Output:
	// rejected: column 1: expected int64, got int
	// (price float64, qty int64) [10 20]
}

// Example_memoryLimit bounds the column storage of a table.
func Example_memoryLimit() {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 32})
	t := colstore.NewTable1[int64](
		colstore.WithResourceController(rc),
		colstore.WithInitialCapacity(4),
	)

	for i := range int64(5) {
		if err := t.Append(i); err != nil {
			fmt.Println("append", i, "failed:", errors.Is(err, colstore.ErrResourceExhausted))
		}
	}
	fmt.Println(t.Column0(), rc.MemoryUsage())
	// Output:
	// append 4 failed: true
	// [0 1 2 3] 32
}

// Example_viewRefetch shows that views must be fetched again after an
// append.
func Example_viewRefetch() {
	t := colstore.NewTable1[int32](colstore.WithInitialCapacity(2))
	_ = t.Append(1)
	_ = t.Append(2)

	col := t.Column0()
	_ = t.Append(3)
	fmt.Println(len(col), len(t.Column0()))
	// Output: 2 3
}
