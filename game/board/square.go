package board

import "fmt"

// SquareBoard is a width×width grid of cells. The cell set is built once by
// NewSquareBoard and never changes afterwards.
type SquareBoard struct {
	width int
	cells [][]Cell
}

// NewSquareBoard creates a board holding every cell (i, j) with 1 <= i, j <= width.
func NewSquareBoard(width int) (*SquareBoard, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWidth, width)
	}
	return &SquareBoard{
		width: width,
		cells: createEmptyBoard(width),
	}, nil
}

// createEmptyBoard materializes the rows of a grid, row i holding the cells (i, 1)..(i, width).
func createEmptyBoard(width int) [][]Cell {
	cells := make([][]Cell, width)
	for i := 1; i <= width; i++ {
		row := make([]Cell, width)
		for j := 1; j <= width; j++ {
			row[j-1] = Cell{I: i, J: j}
		}
		cells[i-1] = row
	}
	return cells
}

// Width returns the side length of the grid.
func (b *SquareBoard) Width() int {
	return b.width
}

// LookupCell returns the cell at (i, j) and true, or false when either
// coordinate lies outside [1, width].
func (b *SquareBoard) LookupCell(i, j int) (Cell, bool) {
	if i < 1 || j < 1 || i > b.width || j > b.width {
		return Cell{}, false
	}
	return b.cells[i-1][j-1], true
}

// Cell returns the cell at (i, j). It panics with an *OutOfBoundsError when
// the coordinates are out of range; use LookupCell when unsure.
func (b *SquareBoard) Cell(i, j int) Cell {
	cell, ok := b.LookupCell(i, j)
	if !ok {
		panic(&OutOfBoundsError{I: i, J: j, Width: b.width})
	}
	return cell
}

// Contains reports whether cell is one of this board's cells.
func (b *SquareBoard) Contains(cell Cell) bool {
	_, ok := b.LookupCell(cell.I, cell.J)
	return ok
}

// AllCells returns the width² cells in row-major order.
func (b *SquareBoard) AllCells() []Cell {
	all := make([]Cell, 0, b.width*b.width)
	for _, row := range b.cells {
		all = append(all, row...)
	}
	return all
}

// Row returns the cells of row i for each column in js. When js.Last is past
// the right edge the span is cut back to Ascending(js.First, width); js.First
// is never adjusted and must be in range.
func (b *SquareBoard) Row(i int, js Span) []Cell {
	js = b.clip(js)
	var row []Cell
	for _, j := range js.Values() {
		row = append(row, b.Cell(i, j))
	}
	return row
}

// Column returns the cells of column j for each row in is, clipped like Row.
func (b *SquareBoard) Column(is Span, j int) []Cell {
	is = b.clip(is)
	var column []Cell
	for _, i := range is.Values() {
		column = append(column, b.Cell(i, j))
	}
	return column
}

func (b *SquareBoard) clip(s Span) Span {
	if s.Last > b.width {
		return Ascending(s.First, b.width)
	}
	return s
}

// Neighbour returns the cell one step away from cell in direction d, or
// false when that step leaves the board.
func (b *SquareBoard) Neighbour(cell Cell, d Direction) (Cell, bool) {
	if !d.valid() {
		return Cell{}, false
	}
	off := offsets[d]
	return b.LookupCell(cell.I+off.di, cell.J+off.dj)
}

// Neighbours returns the on-board neighbours of cell keyed by direction.
func (b *SquareBoard) Neighbours(cell Cell) map[Direction]Cell {
	neighbours := make(map[Direction]Cell, len(offsets))
	for _, d := range Directions() {
		if n, ok := b.Neighbour(cell, d); ok {
			neighbours[d] = n
		}
	}
	return neighbours
}
