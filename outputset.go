package ahocorasick

// outputSet is an Empty | Single | Many sum type: most states end up with
// zero or one output, a minority pick up more through failure-link
// propagation, so a per-state slice allocation for the common case would be
// wasted memory across a large keyword set.
//
// Outputs are compared by ==, which requires the caller's output values to
// be comparable — ordinary comparable types like ints and strings are the
// expected case.
type outputSet struct {
	n    int
	one  any
	many []any
}

func (s *outputSet) empty() bool { return s.n == 0 }

// add inserts o, returning false if it was already present
func (s *outputSet) add(o any) bool {
	switch s.n {
	case 0:
		s.one = o
		s.n = 1
		return true
	case 1:
		if s.one == o {
			return false
		}
		s.many = []any{s.one, o}
		s.n = 2
		return true
	default:
		for _, e := range s.many {
			if e == o {
				return false
			}
		}
		s.many = append(s.many, o)
		s.n++
		return true
	}
}

// unionFrom merges every output of other into s (failure-link propagation)
func (s *outputSet) unionFrom(other *outputSet) {
	switch other.n {
	case 0:
		return
	case 1:
		s.add(other.one)
	default:
		for _, o := range other.many {
			s.add(o)
		}
	}
}

// slice returns a snapshot of the set's members; nil when empty
func (s *outputSet) slice() []any {
	switch s.n {
	case 0:
		return nil
	case 1:
		return []any{s.one}
	default:
		out := make([]any, len(s.many))
		copy(out, s.many)
		return out
	}
}
