package ahocorasick

// SearchResult is one reporting point of a progressive search: every output
// co-located on the state reached at LastIndex, surfaced together as a set.
// LastIndex is a code-unit offset.
type SearchResult struct {
	Outputs   []any
	LastIndex int
}

// SearchIterator is the lazy, purely synchronous cursor returned by
// ProgressiveSearch. Its entire state is (automaton, input, current state,
// index) — restart by constructing a fresh iterator via ProgressiveSearch
type SearchIterator struct {
	automaton *Automaton
	input     []uint16
	state     *state
	index     int
	done      bool
}

// Next advances the search to the next output-bearing state, returning the
// match and true, or a zero SearchResult and false once the input is
// exhausted (or a fast path runs out of input mid-chain)
func (it *SearchIterator) Next() (SearchResult, bool) {
	if it.done {
		return SearchResult{}, false
	}
	for it.index < len(it.input) {
		next, newIndex := step(it.state, it.input, it.index)
		if next == emptyState {
			it.done = true
			return SearchResult{}, false
		}
		it.state = next
		it.index = newIndex
		if !it.state.outputs.empty() {
			return SearchResult{Outputs: it.state.outputs.slice(), LastIndex: it.index}, true
		}
	}
	it.done = true
	return SearchResult{}, false
}

// step performs one transition from (state, index) over input, returning
// the resulting state and the new index
func step(cur *state, input []uint16, index int) (*state, int) {
	if !cur.compressed {
		c := input[index]
		index++
		f := cur
		for {
			if next := f.get(c); next != nil {
				return next, index
			}
			f = f.fail
		}
	}
	return stepFastPath(cur, input, index)
}

// stepFastPath advances along a compressed state's fast path: on a full
// match of the chain it lands on the chain's terminal
// state; on a mismatch at position i it resumes the ordinary failure-link
// walk from fastTransitions[i] (the pre-compression fail target of the
// chain's i-th state); on input exhaustion mid-chain it returns the EMPTY
// sentinel.
func stepFastPath(cur *state, input []uint16, index int) (*state, int) {
	k := len(cur.fastPath)
	for i := 0; i < k; i++ {
		if index == len(input) {
			return emptyState, index
		}
		c := input[index]
		index++
		if c == cur.fastPath[i] {
			continue
		}
		f := cur.fastTransitions[i]
		for {
			if next := f.get(c); next != nil {
				return next, index
			}
			f = f.fail
		}
	}
	return cur.fastTransitions[k], index
}
