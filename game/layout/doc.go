// Package layout reads and writes the text notation used to describe integer
// boards on the command line.
//
// A layout is one string per row. Each row holds width whitespace-separated
// tokens, either a decimal integer or "." for an empty cell:
//
//	2 2 . 4
//	. 4 4 4
//	2 . 2 .
//	8 . . 8
//
// The number of rows is the board width, so a layout must be square.
package layout
