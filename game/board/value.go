package board

import "fmt"

// ValueBoard attaches an optional value of type T to every cell of its own
// grid. A nil *T means the cell holds no value. Every cell always has a slot;
// slots are only changed through Set and Clear.
type ValueBoard[T any] struct {
	*SquareBoard
	values map[Cell]*T
}

// NewValueBoard creates a width×width board with every cell empty.
func NewValueBoard[T any](width int) (*ValueBoard[T], error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWidth, width)
	}

	grid := &SquareBoard{
		width: width,
		cells: createEmptyBoard(width),
	}
	vb := &ValueBoard[T]{
		SquareBoard: grid,
		values:      make(map[Cell]*T, width*width),
	}
	for _, cell := range grid.AllCells() {
		vb.values[cell] = nil
	}
	return vb, nil
}

// Get returns a copy of the value held by cell, or nil when the cell is empty
// or not part of the board.
func (vb *ValueBoard[T]) Get(cell Cell) *T {
	return clone(vb.values[cell])
}

// Set stores a copy of value in cell, replacing what was there. A nil value
// empties the cell. Cells from outside the board are rejected with ErrForeignCell.
func (vb *ValueBoard[T]) Set(cell Cell, value *T) error {
	if _, ok := vb.values[cell]; !ok {
		return fmt.Errorf("%w: %s on width %d", ErrForeignCell, cell, vb.width)
	}
	vb.values[cell] = clone(value)
	return nil
}

// Values returns the values of cells in the same order.
func (vb *ValueBoard[T]) Values(cells []Cell) []*T {
	values := make([]*T, len(cells))
	for k, cell := range cells {
		values[k] = vb.Get(cell)
	}
	return values
}

// Clear empties every cell.
func (vb *ValueBoard[T]) Clear() {
	for cell := range vb.values {
		vb.values[cell] = nil
	}
}

// Filter returns, in row-major order, the cells whose value satisfies predicate.
func (vb *ValueBoard[T]) Filter(predicate func(*T) bool) []Cell {
	var matched []Cell
	for _, cell := range vb.AllCells() {
		if predicate(vb.Get(cell)) {
			matched = append(matched, cell)
		}
	}
	return matched
}

// Find returns the first cell in row-major order whose value satisfies
// predicate, or false when there is none.
func (vb *ValueBoard[T]) Find(predicate func(*T) bool) (Cell, bool) {
	for _, cell := range vb.AllCells() {
		if predicate(vb.Get(cell)) {
			return cell, true
		}
	}
	return Cell{}, false
}

// Any reports whether some cell's value, empty ones included, satisfies predicate.
func (vb *ValueBoard[T]) Any(predicate func(*T) bool) bool {
	_, ok := vb.Find(predicate)
	return ok
}

// All reports whether every cell's value, empty ones included, satisfies predicate.
func (vb *ValueBoard[T]) All(predicate func(*T) bool) bool {
	return !vb.Any(func(v *T) bool { return !predicate(v) })
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
