package tagwriter

// tagStack records the names of the currently open elements. The last
// element of names is the innermost open tag.
type tagStack struct {
	names []string
}

func newTagStack() tagStack {
	return tagStack{names: make([]string, 0, initialNodeDepth)}
}

func (s *tagStack) len() int { return len(s.names) }

func (s *tagStack) push(name string) {
	s.names = append(s.names, name)
}

// pop must only be called on a non-empty stack.
func (s *tagStack) pop() string {
	last := len(s.names) - 1
	name := s.names[last]
	s.names[last] = ""
	s.names = s.names[:last]
	return name
}

func (s *tagStack) peek() (name string, ok bool) {
	if len(s.names) == 0 {
		return "", false
	}
	return s.names[len(s.names)-1], true
}

// innermost returns a copy of the stack, innermost tag first.
func (s *tagStack) innermost() []string {
	if len(s.names) == 0 {
		return nil
	}
	out := make([]string, len(s.names))
	for i, name := range s.names {
		out[len(s.names)-1-i] = name
	}
	return out
}

func (s *tagStack) clear() {
	for i := range s.names {
		s.names[i] = ""
	}
	s.names = s.names[:0]
}
