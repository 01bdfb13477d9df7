package board

import "fmt"

// Cell identifies one grid position. I is the row and J the column, both
// starting at 1. Cells compare by value and can be used as map keys.
type Cell struct {
	I int `json:"i"`
	J int `json:"j"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.I, c.J)
}
