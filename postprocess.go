package ahocorasick

import "sort"

// OutputResult is a single lowered match: an output value plus its span over
// the searched code units, endIndex exclusive
type OutputResult struct {
	Output     any
	StartIndex int
	EndIndex   int
}

// SearchOptions configures CompleteSearch's post-processing. Results are
// always sorted by start index; the zero value also removes overlapping
// matches and applies no token filter.
type SearchOptions struct {
	// AllowOverlapping false triggers the leftmost-then-longest dominance
	// pass; true reports every match the automaton found
	AllowOverlapping bool

	// OnlyTokens true drops any match whose span isn't exactly aligned to
	// a token boundary produced by Tokenizer
	OnlyTokens bool

	// Tokenizer supplies token boundaries for OnlyTokens. When nil and
	// OnlyTokens is true, CompleteSearch uses the automaton's configured
	// TokenizerFactory instead.
	Tokenizer Tokenizer
}

// lowerResults converts the raw output-set stream from a full traversal into
// one OutputResult per (output, endIndex) pair, each output's size obtained
// from calc so the start index can be derived without re-matching.
func lowerResults(calc OutputSizeCalculator, results []SearchResult) []OutputResult {
	out := make([]OutputResult, 0, len(results))
	for _, r := range results {
		for _, o := range r.Outputs {
			size := calc.SizeOf(o)
			out = append(out, OutputResult{
				Output:     o,
				StartIndex: r.LastIndex - size,
				EndIndex:   r.LastIndex,
			})
		}
	}
	return out
}

// postProcess applies the options pipeline, in order: token filter, stable
// sort by start index, overlap removal.
func postProcess(results []OutputResult, opts SearchOptions) ([]OutputResult, error) {
	if opts.OnlyTokens {
		tok := opts.Tokenizer
		if tok == nil {
			return nil, newInvalidArgument("postprocess: OnlyTokens requires a Tokenizer")
		}
		starts, ends, err := tok.Boundaries()
		if err != nil {
			return nil, wrapTokenizerFailure(err)
		}
		results = filterTokenAligned(results, starts, ends)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].StartIndex < results[j].StartIndex
	})

	if !opts.AllowOverlapping {
		results = removeOverlaps(results)
	}
	return results, nil
}

// filterTokenAligned keeps only results whose StartIndex/EndIndex exactly
// match a token boundary pair, found by binary search over the sorted
// starts/ends arrays.
func filterTokenAligned(results []OutputResult, starts, ends []int) []OutputResult {
	out := results[:0:0]
	for _, r := range results {
		if indexOf(starts, r.StartIndex) >= 0 && indexOf(ends, r.EndIndex) >= 0 {
			out = append(out, r)
		}
	}
	return out
}

// indexOf binary-searches a sorted ascending slice for v, returning its
// index or -1
func indexOf(sorted []int, v int) int {
	i := sort.SearchInts(sorted, v)
	if i < len(sorted) && sorted[i] == v {
		return i
	}
	return -1
}

// overlaps reports whether A and B overlap: A = (s1,e1), B = (s2,e2),
// overlapping iff s1 <= s2 < e1 or s1 < e2 <= e1
func overlaps(a, b OutputResult) bool {
	return (a.StartIndex <= b.StartIndex && b.StartIndex < a.EndIndex) ||
		(a.StartIndex < b.EndIndex && b.EndIndex <= a.EndIndex)
}

// dominates reports whether A dominates B: they overlap, and A is leftmost,
// or they start together and A is longest
func dominates(a, b OutputResult) bool {
	if !overlaps(a, b) {
		return false
	}
	return a.StartIndex < b.StartIndex || (a.StartIndex == b.StartIndex && a.EndIndex > b.EndIndex)
}

// removeOverlaps compares each adjacent pair of an already-sorted list,
// dropping whichever one the other dominates, without advancing past a
// removal — the freed-up neighbor may still overlap the survivor.
func removeOverlaps(results []OutputResult) []OutputResult {
	list := append([]OutputResult(nil), results...)
	i := 0
	for i < len(list)-1 {
		a, b := list[i], list[i+1]
		switch {
		case !overlaps(a, b):
			i++
		case dominates(a, b):
			list = append(list[:i+1], list[i+2:]...)
		default:
			list = append(list[:i], list[i+1:]...)
		}
	}
	return list
}
