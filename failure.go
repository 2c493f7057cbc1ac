package ahocorasick

// runFailureLinkPass builds failure links and propagates outputs with a
// standard breadth-first construction. Depth-1 states (the root's children)
// get fail = root; every other state's fail is resolved by walking up its
// parent's fail chain until an edge on the same code unit is found, relying
// on the root's total self-loop goto to terminate.
func runFailureLinkPass(a *Automaton) {
	root := a.root
	queue := make([]*state, 0, len(a.states))

	for _, c := range root.keys() {
		child := root.edges.get(c)
		child.fail = root
		root.incomingFail = true
		child.outputs.unionFrom(&root.outputs)
		queue = append(queue, child)
	}

	for i := 0; i < len(queue); i++ {
		s := queue[i]
		for _, c := range s.keys() {
			t := s.edges.get(c)
			queue = append(queue, t)

			f := s.fail
			for f.get(c) == nil && f != root {
				f = f.fail
			}
			t.fail = f.get(c)
			t.fail.incomingFail = true
			t.outputs.unionFrom(&t.fail.outputs)
		}
	}
}
