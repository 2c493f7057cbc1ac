package ahocorasick

// runPathCompressionPass walks the prepared trie depth-first, collapsing
// eligible chains into fast paths, and returns the number of fast paths
// installed (surfaced in the Prepare() log line).
//
// A state is compressible iff it has exactly one outgoing edge, an empty
// output set, no incoming failure link, and is not the root. Singleton
// chains (k == 1) are left alone — compressing them would gain nothing and
// only complicate get() for no benefit.
func runPathCompressionPass(a *Automaton) int {
	count := 0

	var visit func(s *state)
	visit = func(s *state) {
		if compressible(s) {
			fastPath, fastTransitions, terminal := walkCompressibleChain(s)
			if len(fastPath) > 1 {
				s.fastPath = fastPath
				s.fastTransitions = append(fastTransitions, terminal)
				s.compressed = true
				s.edges = edgeList{}
				s.fail = nil
				count++
				visit(terminal)
				return
			}
		}
		for _, c := range s.keys() {
			visit(s.edges.get(c))
		}
	}
	visit(a.root)
	return count
}

func compressible(s *state) bool {
	if s.isRoot || s.compressed {
		return false
	}
	return s.edges.size() == 1 && s.outputs.empty() && !s.incomingFail
}

// walkCompressibleChain follows the unique outgoing edge from s for as long
// as each state visited is compressible, accumulating the chain's code
// units and each link's pre-compression fail target. It stops at the first
// state that is not compressible (the chain's terminal), which is never
// itself compressed by this call.
func walkCompressibleChain(s *state) (fastPath []uint16, fastTransitions []*state, terminal *state) {
	cur := s
	for compressible(cur) {
		c := cur.keys()[0]
		next := cur.edges.get(c)
		fastPath = append(fastPath, c)
		fastTransitions = append(fastTransitions, cur.fail)
		cur = next
	}
	return fastPath, fastTransitions, cur
}
