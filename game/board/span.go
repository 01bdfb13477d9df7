package board

// Span is an integer progression from First towards Last moving by Step.
// A span whose Step points away from Last, or whose Step is zero, is empty.
type Span struct {
	First int
	Last  int
	Step  int
}

// Ascending returns first, first+1, ..., last. It is empty when first > last.
func Ascending(first, last int) Span {
	return Span{First: first, Last: last, Step: 1}
}

// Descending returns first, first-1, ..., last. It is empty when first < last.
func Descending(first, last int) Span {
	return Span{First: first, Last: last, Step: -1}
}

// Values expands the span into its elements.
func (s Span) Values() []int {
	var values []int
	switch {
	case s.Step > 0:
		for v := s.First; v <= s.Last; v += s.Step {
			values = append(values, v)
		}
	case s.Step < 0:
		for v := s.First; v >= s.Last; v += s.Step {
			values = append(values, v)
		}
	}
	return values
}
