// Package slide implements the "slide and merge" line mechanic of 2048-style
// boards.
//
// MoveAndMergeEqual compacts one ordered line of optional values: empty
// entries are dropped and equal neighbours are merged pairwise from the
// left. A run of three or more equal values merges only once per pair, so
// [2, 2, 2] becomes [4, 2], never [8] or [2, 4].
//
// MoveLine and Move apply that compaction to cells of a board.ValueBoard and
// write the result back, padding the tail of each line with empty cells.
//
// Usage:
//
//	double := func(v int) int { return 2 * v }
//	merged := slide.MoveAndMergeEqual([]*int{&two, nil, &two}, double) // [4]
//
//	changed, err := slide.Move(vb, board.Left, double)
package slide
