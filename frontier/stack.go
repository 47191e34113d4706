package frontier

import "github.com/emirpasic/gods/stacks/arraystack"

// Stack is the LIFO container; it turns the search engine into
// depth-first growth.
type Stack struct {
	s *arraystack.Stack
}

// NewStack builds an empty LIFO container.
func NewStack() *Stack {
	return &Stack{s: arraystack.New()}
}

// Enter pushes an entry; the priority is ignored.
func (s *Stack) Enter(e Entry, _ float64) {
	s.s.Push(e)
}

// Serve removes and returns the most recent entry.
func (s *Stack) Serve() (Entry, bool) {
	v, ok := s.s.Pop()
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// Len returns the number of pending entries.
func (s *Stack) Len() int { return s.s.Size() }
