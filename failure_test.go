package ahocorasick

import "testing"

func TestFailureLinkPass_ChildrenOfRootFailToRoot(t *testing.T) {
	a := NewBuilder().Build()
	if err := a.Add("he"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := a.Add("she"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	runFailureLinkPass(a)

	h := a.root.get('h')
	s := a.root.get('s')
	if h.fail != a.root || s.fail != a.root {
		t.Fatalf("depth-1 states must fail to root")
	}
	if !a.root.incomingFail {
		t.Fatalf("root should be marked incomingFail after depth-1 states fail to it")
	}
}

func TestFailureLinkPass_SheFailsToHe(t *testing.T) {
	a := NewBuilder().Build()
	a.Add("he")
	a.Add("she")
	runFailureLinkPass(a)

	// she: s -> h -> e. The 'h' under 's' should fail to root's 'h'.
	sState := a.root.get('s')
	shState := sState.get('h')
	rootH := a.root.get('h')
	if shState.fail != rootH {
		t.Fatalf("'sh' should fail to root's 'h' state")
	}

	sheState := shState.get('e')
	rootHE := rootH.get('e')
	if sheState.fail != rootHE {
		t.Fatalf("'she' should fail to 'he'")
	}
	if sheState.outputs.empty() {
		t.Fatalf("'she' should inherit 'he's output via its fail link")
	}
}

func TestFailureLinkPass_OutputPropagation(t *testing.T) {
	a := NewBuilder().Build()
	a.Add("his")
	a.Add("hers")
	a.Add("he")
	a.Add("she")
	runFailureLinkPass(a)

	// walking 'hers': h -> e -> r -> s. The terminal 's' should have
	// picked up nothing extra (no suffix of "hers" is a keyword other than
	// itself), but the 'he' prefix along the way must carry 'he's output.
	h := a.root.get('h')
	he := h.get('e')
	if he.outputs.empty() {
		t.Fatalf("'he' terminal must carry its own output")
	}
	hers := he.get('r').get('s')
	if got := hers.outputs.slice(); len(got) != 1 || got[0] != "hers" {
		t.Fatalf("'hers' terminal should carry only its own output, got %v", got)
	}
}
