package slide

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mcp-training/squareboard/game/board"
)

// fill builds a board from rows where 0 marks an empty cell.
func fill(t *testing.T, rows [][]int) *board.ValueBoard[int] {
	t.Helper()
	vb, err := board.NewValueBoard[int](len(rows))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			if v == 0 {
				continue
			}
			v := v
			require.NoError(t, vb.Set(vb.Cell(i+1, j+1), &v))
		}
	}
	return vb
}

// snapshot reads a board back into rows where 0 marks an empty cell.
func snapshot(vb *board.ValueBoard[int]) [][]int {
	rows := make([][]int, vb.Width())
	for i := range rows {
		rows[i] = make([]int, vb.Width())
		for j := range rows[i] {
			if v := vb.Get(vb.Cell(i+1, j+1)); v != nil {
				rows[i][j] = *v
			}
		}
	}
	return rows
}

func TestLines(t *testing.T) {
	b, err := board.NewSquareBoard(2)
	require.NoError(t, err)

	tests := []struct {
		direction board.Direction
		expected  [][]board.Cell
	}{
		{board.Left, [][]board.Cell{{{I: 1, J: 1}, {I: 1, J: 2}}, {{I: 2, J: 1}, {I: 2, J: 2}}}},
		{board.Right, [][]board.Cell{{{I: 1, J: 2}, {I: 1, J: 1}}, {{I: 2, J: 2}, {I: 2, J: 1}}}},
		{board.Up, [][]board.Cell{{{I: 1, J: 1}, {I: 2, J: 1}}, {{I: 1, J: 2}, {I: 2, J: 2}}}},
		{board.Down, [][]board.Cell{{{I: 2, J: 1}, {I: 1, J: 1}}, {{I: 2, J: 2}, {I: 1, J: 2}}}},
	}

	for _, test := range tests {
		t.Run(test.direction.String(), func(t *testing.T) {
			lines, err := Lines(b, test.direction)
			require.NoError(t, err)
			assert.Equal(t, test.expected, lines)
		})
	}

	_, err = Lines(b, board.Direction(42))
	assert.Error(t, err)
}

func TestMoveLine_PadsWithEmpty(t *testing.T) {
	vb := fill(t, [][]int{
		{2, 2, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	changed, err := MoveLine(vb, vb.Row(1, board.Ascending(1, 4)), double)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{4, 2, 0, 0}, snapshot(vb)[0])

	changed, err = MoveLine(vb, vb.Row(1, board.Ascending(1, 4)), double)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestMoveLine_ForeignCell(t *testing.T) {
	vb := fill(t, [][]int{{2, 0}, {0, 0}})

	_, err := MoveLine(vb, []board.Cell{{I: 1, J: 1}, {I: 1, J: 3}}, double)
	assert.True(t, errors.Is(err, board.ErrForeignCell))
}

func TestMove(t *testing.T) {
	start := [][]int{
		{2, 2, 0, 4},
		{0, 4, 4, 4},
		{2, 0, 2, 0},
		{8, 0, 0, 8},
	}

	tests := []struct {
		direction board.Direction
		expected  [][]int
	}{
		{board.Left, [][]int{
			{4, 4, 0, 0},
			{8, 4, 0, 0},
			{4, 0, 0, 0},
			{16, 0, 0, 0},
		}},
		{board.Right, [][]int{
			{0, 0, 4, 4},
			{0, 0, 4, 8},
			{0, 0, 0, 4},
			{0, 0, 0, 16},
		}},
		{board.Up, [][]int{
			{4, 2, 4, 8},
			{8, 4, 2, 8},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}},
		{board.Down, [][]int{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{4, 2, 4, 8},
			{8, 4, 2, 8},
		}},
	}

	for _, test := range tests {
		t.Run(test.direction.String(), func(t *testing.T) {
			vb := fill(t, start)
			changed, err := Move(vb, test.direction, double)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, test.expected, snapshot(vb))
		})
	}
}

func TestMove_NoChange(t *testing.T) {
	rows := [][]int{
		{2, 4, 0},
		{8, 0, 0},
		{0, 0, 0},
	}
	vb := fill(t, rows)

	can, err := CanMove(vb, board.Left, double)
	require.NoError(t, err)
	assert.False(t, can)

	can, err = CanMove(vb, board.Right, double)
	require.NoError(t, err)
	assert.True(t, can)
	assert.Equal(t, rows, snapshot(vb), "CanMove must not modify the board")

	changed, err := Move(vb, board.Left, double)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, rows, snapshot(vb))
}
