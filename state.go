package ahocorasick

// state is a node of the goto-trie, plus its failure link, output set, and
// optional fast path. States live in a single arena slice owned by
// Automaton; Go's GC means fail/edge pointers can cross-reference freely
// without the index-based cycle-breaking a stricter-ownership language
// would need, but the single-owner-arena shape is kept the way the
// teacher's acAutomaton.nodes []acNode arena does it.
type state struct {
	depth  int
	isRoot bool

	edges edgeList
	fail  *state

	outputs outputSet

	// fastPath/fastTransitions are set together by path compression;
	// compressed is a cheap branch for the matcher instead of checking
	// fastPath != nil everywhere call sites care about it
	fastPath        []uint16
	fastTransitions []*state
	compressed      bool

	// incomingFail is true iff some other state's fail points here; gates
	// compressibility
	incomingFail bool
}

// emptyState is the distinguished EMPTY sentinel: no outputs, no edges,
// signals input exhaustion mid-fast-path
var emptyState = &state{}

// extend returns the child on c, creating it with depth = s.depth+1 if
// absent. Panics with a programmer error if the automaton is already
// prepared.
func (s *state) extend(c uint16, a *Automaton) *state {
	if a.prepared {
		programmerPanic("extend called on a prepared automaton")
	}
	if child := s.edges.get(c); child != nil {
		return child
	}
	child := &state{depth: s.depth + 1}
	s.edges.put(c, child)
	a.states = append(a.states, child)
	return child
}

// extendAll walks/extends the trie along every code unit of units,
// returning the terminal state
func (s *state) extendAll(units []uint16, a *Automaton) *state {
	cur := s
	for _, c := range units {
		cur = cur.extend(c, a)
	}
	return cur
}

// addOutput inserts o into the state's output set, idempotent by equality
func (s *state) addOutput(o any) { s.outputs.add(o) }

// get returns the child on c, or nil if absent, honoring the root's total
// self-loop goto: the root maps any code unit without a direct child to
// itself. Asserts the state is not compressed.
func (s *state) get(c uint16) *state {
	if s.compressed {
		programmerPanic("get called on a compressed state")
	}
	if child := s.edges.get(c); child != nil {
		return child
	}
	if s.isRoot {
		return s
	}
	return nil
}

// keys returns a snapshot of outgoing code units; empty when no edges
func (s *state) keys() []uint16 { return s.edges.keys() }
