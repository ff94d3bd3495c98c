package befunge

// stack is the operand stack. Popping an empty stack yields 0 rather than
// failing, which is the Befunge-93 convention.
type stack struct {
	values []int64
}

func (s *stack) push(v int64) {
	s.values = append(s.values, v)
}

func (s *stack) pop() int64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v
}

func (s *stack) len() int {
	return len(s.values)
}
