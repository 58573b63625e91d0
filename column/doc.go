// Package column provides the typed, append-only column used by every
// colstore table.
//
// A Column owns one contiguous, cache-line aligned backing array of a
// primitive element type. Columns never grow on their own: a table groups
// its columns and calls Grow, which reallocates all of them to a common
// capacity in two phases:
//
//  1. Stage: reserve the byte delta with the resource controller, then
//     allocate and fill a new backing array for every column.
//  2. Commit: swap every staged array in.
//
// If the reservation is denied nothing is staged, and no column changes
// length or capacity. Push after a successful Grow never reallocates.
//
// # Views
//
// View returns the live contents with len == cap, so appending to a view
// always copies. A view aliases column memory and is invalidated by the
// next Grow.
package column
