package slide

// MoveAndMergeEqual removes the nil entries of line and merges each value
// equal to the value right before it into double(value). Merged values are
// not compared against the next value again, so every value takes part in at
// most one merge. The result never contains more values than line.
func MoveAndMergeEqual[T comparable](line []*T, double func(T) T) []T {
	merged := make([]T, 0, len(line))
	for _, v := range line {
		if v != nil {
			merged = append(merged, *v)
		}
	}

	for i := 1; i < len(merged); i++ {
		if merged[i] == merged[i-1] {
			merged[i-1] = double(merged[i])
			merged = append(merged[:i], merged[i+1:]...)
		}
	}
	return merged
}
