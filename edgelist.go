package ahocorasick

// edgeList is a character-keyed mapping from a single state to its child
// states. Code units form a 16-bit alphabet (65,536 possible
// keys) so a sparse map is the right default representation — most states
// carry only a handful of edges, occasionally more near the root. The zero
// value is ready to use; the backing map is allocated lazily on first put
// so leaf states (the common case for long keyword sets) cost nothing extra.
type edgeList struct {
	m map[uint16]*state
}

// get returns the child on c, or nil if absent
func (e *edgeList) get(c uint16) *state {
	if e.m == nil {
		return nil
	}
	return e.m[c]
}

// put installs s as the child on c
func (e *edgeList) put(c uint16, s *state) {
	if e.m == nil {
		e.m = make(map[uint16]*state, 1)
	}
	e.m[c] = s
}

// size returns the number of outgoing edges
func (e *edgeList) size() int { return len(e.m) }

// keys returns an unordered snapshot of the outgoing code units
func (e *edgeList) keys() []uint16 {
	if len(e.m) == 0 {
		return nil
	}
	out := make([]uint16, 0, len(e.m))
	for c := range e.m {
		out = append(out, c)
	}
	return out
}

// values returns an unordered snapshot of the child states
func (e *edgeList) values() []*state {
	if len(e.m) == 0 {
		return nil
	}
	out := make([]*state, 0, len(e.m))
	for _, s := range e.m {
		out = append(out, s)
	}
	return out
}
