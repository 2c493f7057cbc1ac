package ahocorasick

import "testing"

func TestOverlapsAndDominates(t *testing.T) {
	she := OutputResult{Output: "she", StartIndex: 1, EndIndex: 4}
	he := OutputResult{Output: "he", StartIndex: 2, EndIndex: 4}
	hers := OutputResult{Output: "hers", StartIndex: 2, EndIndex: 6}

	if !overlaps(she, he) || !overlaps(she, hers) {
		t.Fatalf("expected she to overlap both he and hers")
	}
	if !dominates(she, he) {
		t.Fatalf("she should dominate he (leftmost)")
	}
	if !dominates(she, hers) {
		t.Fatalf("she should dominate hers (leftmost)")
	}
}

func TestRemoveOverlaps_SheHeHers(t *testing.T) {
	list := []OutputResult{
		{Output: "she", StartIndex: 1, EndIndex: 4},
		{Output: "he", StartIndex: 2, EndIndex: 4},
		{Output: "hers", StartIndex: 2, EndIndex: 6},
	}
	got := removeOverlaps(list)
	if len(got) != 1 || got[0].Output != "she" {
		t.Fatalf("removeOverlaps = %v, want [she(1,4)]", got)
	}
}

func TestRemoveOverlaps_NestedXXX(t *testing.T) {
	list := []OutputResult{
		{Output: "x", StartIndex: 0, EndIndex: 1},
		{Output: "xx", StartIndex: 0, EndIndex: 2},
		{Output: "xxx", StartIndex: 0, EndIndex: 3},
	}
	got := removeOverlaps(list)
	if len(got) != 1 || got[0].Output != "xxx" || got[0].EndIndex != 3 {
		t.Fatalf("removeOverlaps = %v, want [xxx(0,3)]", got)
	}
}

func TestRemoveOverlaps_Disjoint(t *testing.T) {
	list := []OutputResult{
		{Output: "hello", StartIndex: 0, EndIndex: 5},
		{Output: "world", StartIndex: 5, EndIndex: 10},
	}
	got := removeOverlaps(list)
	if len(got) != 2 {
		t.Fatalf("disjoint results should both survive, got %v", got)
	}
}

func TestFilterTokenAligned(t *testing.T) {
	starts := []int{3, 33, 53}
	ends := []int{14, 38, 62}
	results := []OutputResult{
		{Output: "Rea", StartIndex: 3, EndIndex: 6},
		{Output: "Real Madrid", StartIndex: 3, EndIndex: 14},
		{Output: "Madrid", StartIndex: 8, EndIndex: 14},
		{Output: "Messi", StartIndex: 33, EndIndex: 38},
		{Output: "Barcelona", StartIndex: 53, EndIndex: 62},
	}
	got := filterTokenAligned(results, starts, ends)
	if len(got) != 3 {
		t.Fatalf("filterTokenAligned len = %d, want 3: %v", len(got), got)
	}
	for _, r := range got {
		if r.Output == "Rea" || r.Output == "Madrid" {
			t.Fatalf("sub-token fragment %v should have been dropped", r)
		}
	}
}

func TestLowerResults(t *testing.T) {
	raw := []SearchResult{
		{Outputs: []any{"she", "he"}, LastIndex: 4},
		{Outputs: []any{"hers"}, LastIndex: 6},
	}
	got := lowerResults(StringSizeCalculator{}, raw)
	if len(got) != 3 {
		t.Fatalf("lowerResults len = %d, want 3", len(got))
	}
	for _, r := range got {
		if r.EndIndex-r.StartIndex != codeUnitLen(r.Output.(string)) {
			t.Fatalf("span for %v does not match its size", r)
		}
	}
}

func TestPostProcess_OnlyTokensRequiresTokenizer(t *testing.T) {
	_, err := postProcess(nil, SearchOptions{OnlyTokens: true})
	if err == nil {
		t.Fatalf("expected an error when OnlyTokens is set with no Tokenizer")
	}
}
