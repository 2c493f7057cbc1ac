package ahocorasick

import "testing"

func buildPrepared(t *testing.T, keywords ...string) *Automaton {
	t.Helper()
	a := NewBuilder().Build()
	for _, k := range keywords {
		if err := a.Add(k); err != nil {
			t.Fatalf("Add(%q): %v", k, err)
		}
	}
	if err := a.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	return a
}

func collect(t *testing.T, a *Automaton, input string) []SearchResult {
	t.Helper()
	it, err := a.ProgressiveSearch(input)
	if err != nil {
		t.Fatalf("ProgressiveSearch: %v", err)
	}
	var out []SearchResult
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, r)
	}
	return out
}

func TestMatcher_ClassicHeSheHisHers(t *testing.T) {
	a := buildPrepared(t, "he", "she", "his", "hers")
	results := collect(t, a, "ushers")

	var lastIdx []int
	for _, r := range results {
		lastIdx = append(lastIdx, r.LastIndex)
	}
	want := []int{4, 6}
	if len(lastIdx) != len(want) {
		t.Fatalf("got %d results (%v), want lastIndex sequence %v", len(lastIdx), lastIdx, want)
	}
	for i, w := range want {
		if lastIdx[i] != w {
			t.Fatalf("result %d lastIndex = %d, want %d", i, lastIdx[i], w)
		}
	}
}

func TestMatcher_NestedXXX(t *testing.T) {
	a := buildPrepared(t, "x", "xx", "xxx")
	results := collect(t, a, "xxx")

	if len(results) != 3 {
		t.Fatalf("got %d SearchResults, want 3", len(results))
	}
	wantLast := []int{1, 2, 3}
	wantOutputs := [][]string{{"x"}, {"xx", "x"}, {"xxx", "xx", "x"}}
	for i, r := range results {
		if r.LastIndex != wantLast[i] {
			t.Fatalf("result %d lastIndex = %d, want %d", i, r.LastIndex, wantLast[i])
		}
		if len(r.Outputs) != len(wantOutputs[i]) {
			t.Fatalf("result %d outputs = %v, want len %d", i, r.Outputs, len(wantOutputs[i]))
		}
	}
}

func TestMatcher_PathCompressionHelloWorld(t *testing.T) {
	a := buildPrepared(t, "hello", "world")

	results := collect(t, a, "helloworld")
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (hello, world)", len(results))
	}
	if results[0].LastIndex != 5 || results[1].LastIndex != 10 {
		t.Fatalf("lastIndex sequence = %d,%d want 5,10", results[0].LastIndex, results[1].LastIndex)
	}
}

func TestMatcher_PathCompressionMissingSuffix(t *testing.T) {
	a := buildPrepared(t, "hello", "world")

	results := collect(t, a, "helloworl")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (hello only, world truncated)", len(results))
	}
	if results[0].LastIndex != 5 {
		t.Fatalf("lastIndex = %d, want 5", results[0].LastIndex)
	}
}

func TestMatcher_EarlyTerminationInsideFastPath(t *testing.T) {
	a := buildPrepared(t, "abcdefg")

	results := collect(t, a, "abcde")
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0 (fast path exhausts input before the keyword's terminal)", len(results))
	}
}

func TestMatcher_ProgressiveSearch_NotPrepared(t *testing.T) {
	a := NewBuilder().Build()
	if _, err := a.ProgressiveSearch("x"); !IsNotPrepared(err) {
		t.Fatalf("expected ErrNotPrepared, got %v", err)
	}
}

func TestMatcher_EmptyInput(t *testing.T) {
	a := buildPrepared(t, "x")
	results := collect(t, a, "")
	if len(results) != 0 {
		t.Fatalf("empty input should produce zero results, got %d", len(results))
	}
}
