package slide

import (
	"fmt"

	"github.com/wricardo/mcp-training/squareboard/game/board"
)

// Lines returns every row or column of b ordered so that the first cell of
// each line is the edge values slide towards when moving in direction d.
func Lines(b *board.SquareBoard, d board.Direction) ([][]board.Cell, error) {
	width := b.Width()
	lines := make([][]board.Cell, 0, width)

	for k := 1; k <= width; k++ {
		switch d {
		case board.Left:
			lines = append(lines, b.Row(k, board.Ascending(1, width)))
		case board.Right:
			lines = append(lines, b.Row(k, board.Descending(width, 1)))
		case board.Up:
			lines = append(lines, b.Column(board.Ascending(1, width), k))
		case board.Down:
			lines = append(lines, b.Column(board.Descending(width, 1), k))
		default:
			return nil, fmt.Errorf("cannot slide towards %s", d)
		}
	}
	return lines, nil
}

// MoveLine compacts the values held by cells and writes them back in the same
// order, emptying the cells past the merged values. It reports whether any
// cell changed.
func MoveLine[T comparable](vb *board.ValueBoard[T], cells []board.Cell, double func(T) T) (bool, error) {
	before := vb.Values(cells)
	after := padded(before, double)

	changed := false
	for k, cell := range cells {
		if !sameValue(before[k], after[k]) {
			changed = true
		}
		if err := vb.Set(cell, after[k]); err != nil {
			return changed, fmt.Errorf("failed to write line: %w", err)
		}
	}
	return changed, nil
}

// Move slides every line of vb towards direction d and reports whether the
// board changed.
func Move[T comparable](vb *board.ValueBoard[T], d board.Direction, double func(T) T) (bool, error) {
	lines, err := Lines(vb.SquareBoard, d)
	if err != nil {
		return false, err
	}

	changed := false
	for _, line := range lines {
		lineChanged, err := MoveLine(vb, line, double)
		if err != nil {
			return changed, err
		}
		changed = changed || lineChanged
	}
	return changed, nil
}

// CanMove reports whether moving vb towards d would change it. vb is left untouched.
func CanMove[T comparable](vb *board.ValueBoard[T], d board.Direction, double func(T) T) (bool, error) {
	lines, err := Lines(vb.SquareBoard, d)
	if err != nil {
		return false, err
	}

	for _, line := range lines {
		before := vb.Values(line)
		after := padded(before, double)
		for k := range before {
			if !sameValue(before[k], after[k]) {
				return true, nil
			}
		}
	}
	return false, nil
}

// padded returns the compacted line at the length of line, nil past the merged values.
func padded[T comparable](line []*T, double func(T) T) []*T {
	merged := MoveAndMergeEqual(line, double)
	out := make([]*T, len(line))
	for k := range merged {
		out[k] = &merged[k]
	}
	return out
}

func sameValue[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
