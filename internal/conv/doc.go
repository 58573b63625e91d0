// Package conv provides bounds-checked integer conversions between Go's
// platform int and the uint32 row ids used by scan selections.
package conv
