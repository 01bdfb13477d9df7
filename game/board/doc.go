// Package board provides the addressing model for fixed-size square grids.
//
// The board package implements:
//   - Cell values identified by 1-based (i, j) coordinates
//   - Bounds-checked and unchecked cell lookup
//   - Row and column queries driven by integer spans
//   - Directional neighbour navigation
//   - ValueBoard, a generic overlay attaching an optional value to every cell
//
// Core Types:
//
// SquareBoard owns the width² cells of a grid, created once at construction.
// ValueBoard[T] builds its own grid and keeps a value slot for each cell,
// where a nil *T means the cell holds no value.
//
// Usage:
//
//	vb, err := board.NewValueBoard[int](4)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	two := 2
//	if err := vb.Set(vb.Cell(1, 1), &two); err != nil {
//		log.Fatal(err)
//	}
//
//	empty := vb.Filter(func(v *int) bool { return v == nil })
//
// Concurrency:
//
// Boards do no internal locking. Callers that share a ValueBoard between
// goroutines must guard every Get, Set and query with their own mutex.
package board
