package testcase

// Sequence hands out strictly increasing record numbers starting at 1.
// Each upload owns its own instance; it is never package-level state, so
// concurrent uploads cannot interleave each other's numbering.
type Sequence struct {
	n int
}

// Next returns the next number in the sequence.
func (s *Sequence) Next() int {
	s.n++
	return s.n
}
