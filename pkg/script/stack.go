package script

// stack is the evaluation stack of byte-string elements. All opcode
// failures surface as boolean results, so pop on an empty stack returns
// ok=false rather than panicking.
type stack struct {
	items [][]byte
}

func (s *stack) push(item []byte) {
	s.items = append(s.items, item)
}

func (s *stack) pop() ([]byte, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, true
}

func (s *stack) peek() ([]byte, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

func (s *stack) len() int {
	return len(s.items)
}
