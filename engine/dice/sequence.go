package dice

// Sequence is a scripted Source. Each call consumes the next value: Roll
// returns it as the die face, WeightedSelect returns it as the index. When
// the script runs out, Roll returns 1 and WeightedSelect returns 0.
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a Source that replays values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Roll returns the next scripted value.
func (s *Sequence) Roll(sides int) int {
	v, ok := s.pop()
	if !ok {
		return 1
	}
	return v
}

// WeightedSelect returns the next scripted value as an index.
func (s *Sequence) WeightedSelect(weights []int) int {
	v, ok := s.pop()
	if !ok {
		return 0
	}
	return v
}

// Remaining returns how many scripted values have not been used.
func (s *Sequence) Remaining() int {
	return len(s.values) - s.next
}

func (s *Sequence) pop() (int, bool) {
	if s.next >= len(s.values) {
		return 0, false
	}
	v := s.values[s.next]
	s.next++
	return v, true
}
