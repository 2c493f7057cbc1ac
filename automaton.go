package ahocorasick

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Automaton is a built, searchable Aho-Corasick automaton over UTF-16 code
// units. It has two lifecycle phases: mutable before Prepare, frozen and
// searchable after.
type Automaton struct {
	root   *state
	states []*state

	prepared bool
	buildID  uuid.UUID

	outputSizeCalc   OutputSizeCalculator
	tokenizerFactory TokenizerFactory

	log zerolog.Logger

	compressedPaths int
}

// Add inserts keyword into the trie with output = keyword, equivalent to
// Add(keyword, keyword)
func (a *Automaton) Add(keyword string) error {
	return a.AddOutput(keyword, keyword)
}

// AddOutput inserts keyword into the trie, attaching output to its terminal
// state. Returns ErrAlreadyPrepared if called after Prepare, or an
// InvalidArgument error for an empty keyword.
func (a *Automaton) AddOutput(keyword string, output any) error {
	if a.prepared {
		return ErrAlreadyPrepared
	}
	if keyword == "" {
		return newInvalidArgument("automaton: keyword must not be empty")
	}
	units := toCodeUnits(keyword)
	terminal := a.root.extendAll(units, a)
	terminal.addOutput(output)
	return nil
}

// Prepare freezes the automaton: builds failure links, propagates outputs,
// then runs path compression, and stamps a build id for diagnostics.
// Returns ErrAlreadyPrepared if called twice.
func (a *Automaton) Prepare() error {
	if a.prepared {
		return ErrAlreadyPrepared
	}
	runFailureLinkPass(a)
	a.compressedPaths = runPathCompressionPass(a)
	a.prepared = true
	a.buildID = uuid.New()

	a.log.Info().
		Str("build_id", a.buildID.String()).
		Int("states", len(a.states)).
		Int("compressed_paths", a.compressedPaths).
		Msg("automaton prepared")

	return nil
}

// ProgressiveSearch returns a lazy iterator over every output-bearing state
// reached scanning input left to right. Returns ErrNotPrepared if Prepare
// has not been called.
func (a *Automaton) ProgressiveSearch(input string) (*SearchIterator, error) {
	if !a.prepared {
		return nil, ErrNotPrepared
	}
	return &SearchIterator{
		automaton: a,
		input:     toCodeUnits(input),
		state:     a.root,
		index:     0,
	}, nil
}

// CompleteSearch runs a full search and post-processes the results per opts.
// Returns ErrNotPrepared if Prepare has not been called, or a
// TokenizerFailure if opts.OnlyTokens is set and the tokenizer errors.
func (a *Automaton) CompleteSearch(input string, opts SearchOptions) ([]OutputResult, error) {
	if !a.prepared {
		return nil, ErrNotPrepared
	}
	units := toCodeUnits(input)
	it := &SearchIterator{automaton: a, input: units, state: a.root}

	var raw []SearchResult
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		raw = append(raw, r)
	}

	if opts.OnlyTokens && opts.Tokenizer == nil {
		opts.Tokenizer = a.tokenizerFactory.Create(units)
	}

	lowered := lowerResults(a.outputSizeCalc, raw)
	return postProcess(lowered, opts)
}

// BuildID returns the uuid stamped by the most recent Prepare call, or the
// zero uuid if Prepare has not yet run
func (a *Automaton) BuildID() uuid.UUID { return a.buildID }

// StateCount returns the number of trie states allocated so far
func (a *Automaton) StateCount() int { return len(a.states) }

// CompressedPathCount returns how many fast paths Prepare installed
func (a *Automaton) CompressedPathCount() int { return a.compressedPaths }
