package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wricardo/mcp-training/squareboard/game/board"
)

const (
	// Empty is the token for a cell without a value.
	Empty = "."

	MinWidth     = 1
	MaxWidth     = 32
	DefaultWidth = 4
)

var ErrInvalidLayout = errors.New("invalid layout")

// ValidateWidth checks that width is within MinWidth..MaxWidth.
func ValidateWidth(width int) error {
	if width < MinWidth || width > MaxWidth {
		return fmt.Errorf("%w: width must be between %d and %d, got %d", ErrInvalidLayout, MinWidth, MaxWidth, width)
	}
	return nil
}

// ParseLine reads one line of tokens into optional values.
func ParseLine(line string) ([]*int, error) {
	tokens := strings.Fields(line)
	values := make([]*int, len(tokens))
	for k, token := range tokens {
		if token == Empty {
			continue
		}
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid token %q at position %d", ErrInvalidLayout, token, k+1)
		}
		values[k] = &v
	}
	return values, nil
}

// Parse builds a board from rows, one row string per board row.
func Parse(rows []string) (*board.ValueBoard[int], error) {
	width := len(rows)
	if err := ValidateWidth(width); err != nil {
		return nil, err
	}

	vb, err := board.NewValueBoard[int](width)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		values, err := ParseLine(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if len(values) != width {
			return nil, fmt.Errorf("%w: row %d must have %d cells to match the row count, got %d",
				ErrInvalidLayout, i+1, width, len(values))
		}
		for j, v := range values {
			if err := vb.Set(vb.Cell(i+1, j+1), v); err != nil {
				return nil, err
			}
		}
	}
	return vb, nil
}

// FormatLine renders optional values with the Parse grammar.
func FormatLine(values []*int) string {
	tokens := make([]string, len(values))
	for k, v := range values {
		tokens[k] = token(v)
	}
	return strings.Join(tokens, " ")
}

// Format renders vb as right-aligned rows separated by newlines. The output
// parses back into an equal board.
func Format(vb *board.ValueBoard[int]) string {
	width := vb.Width()

	pad := len(Empty)
	for _, cell := range vb.AllCells() {
		if n := len(token(vb.Get(cell))); n > pad {
			pad = n
		}
	}

	var sb strings.Builder
	for i := 1; i <= width; i++ {
		for k, v := range vb.Values(vb.Row(i, board.Ascending(1, width))) {
			if k > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*s", pad, token(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func token(v *int) string {
	if v == nil {
		return Empty
	}
	return strconv.Itoa(*v)
}
