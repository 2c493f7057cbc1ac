package ahocorasick

import (
	"unicode"

	"github.com/rs/zerolog"

	"github.com/arrowcorp/ahocorasick/internal/platform/diag"
	"github.com/arrowcorp/ahocorasick/internal/platform/logger"
)

// OutputSizeCalculator returns the number of input code units a match on
// output spans; it must equal endIndex-startIndex for any real match with
// that output
type OutputSizeCalculator interface {
	SizeOf(output any) int
}

// StringSizeCalculator is the default OutputSizeCalculator: when output is a
// string, its code-unit length; any other type sizes to zero, which is a
// caller error, not a fault of this package
type StringSizeCalculator struct{}

// SizeOf implements OutputSizeCalculator
func (StringSizeCalculator) SizeOf(output any) int {
	if s, ok := output.(string); ok {
		return codeUnitLen(s)
	}
	return 0
}

// Tokenizer supplies token boundaries for an already-searched input:
// Boundaries returns two parallel ascending arrays, starts[i] < ends[i],
// with non-overlapping tokens.
type Tokenizer interface {
	Boundaries() (starts, ends []int, err error)
}

// TokenizerFactory builds a Tokenizer bound to a specific input
type TokenizerFactory interface {
	Create(input []uint16) Tokenizer
}

// isWordUnit reports whether c is a word code unit for boundary purposes:
// letters, numbers, combining marks, and connector punctuation are word
// characters. Surrogate code units (outside the BMP) are conservatively
// treated as word characters, since this package never decodes surrogate
// pairs.
func isWordUnit(c uint16) bool {
	if c >= 0xD800 && c <= 0xDFFF {
		return true
	}
	r := rune(c)
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.In(r, unicode.Mn, unicode.Pc)
}

// WordTokenizer finds maximal runs of word code units in a fixed input and
// reports them as tokens
type WordTokenizer struct {
	starts, ends []int
}

// Boundaries implements Tokenizer
func (t *WordTokenizer) Boundaries() ([]int, []int, error) {
	return t.starts, t.ends, nil
}

// WordTokenizerFactory builds WordTokenizers
type WordTokenizerFactory struct{}

// Create implements TokenizerFactory, scanning input once for maximal word runs
func (WordTokenizerFactory) Create(input []uint16) Tokenizer {
	var starts, ends []int
	i := 0
	for i < len(input) {
		if !isWordUnit(input[i]) {
			i++
			continue
		}
		start := i
		for i < len(input) && isWordUnit(input[i]) {
			i++
		}
		starts = append(starts, start)
		ends = append(ends, i)
	}
	return &WordTokenizer{starts: starts, ends: ends}
}

// Builder assembles an Automaton with its injected collaborators, configurable
// via functional options, then produces an Automaton via Build
type Builder struct {
	outputSizeCalc   OutputSizeCalculator
	tokenizerFactory TokenizerFactory
	log              zerolog.Logger
	arenaHint        int
}

// Option configures a Builder
type Option func(*Builder)

// NewBuilder returns a Builder with the package defaults (StringSizeCalculator,
// WordTokenizerFactory, a console logger) applied, overridable via opts
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		outputSizeCalc:   StringSizeCalculator{},
		tokenizerFactory: WordTokenizerFactory{},
		log:              *logger.Named("ahocorasick"),
		arenaHint:        0,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithOutputSizeCalculator overrides the default StringSizeCalculator
func WithOutputSizeCalculator(c OutputSizeCalculator) Option {
	return func(b *Builder) { b.outputSizeCalc = c }
}

// WithTokenizerFactory overrides the default WordTokenizerFactory
func WithTokenizerFactory(f TokenizerFactory) Option {
	return func(b *Builder) { b.tokenizerFactory = f }
}

// WithLogger attaches a caller-owned logger the Automaton uses for its
// prepare()/diagnostic log lines
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) { b.log = l }
}

// WithEstimatedKeywords pre-sizes the Automaton's state arena from a rough
// count and average code-unit length of the keywords about to be added,
// trading a larger up-front allocation for fewer slice growths during Add
func WithEstimatedKeywords(count, avgLen int) Option {
	return func(b *Builder) {
		b.arenaHint = diag.EstimateArenaCapacity(count, avgLen).Capacity
	}
}

// Build returns a fresh, unprepared Automaton ready for Add/AddOutput
func (b *Builder) Build() *Automaton {
	root := &state{isRoot: true}
	states := make([]*state, 0, maxInt(b.arenaHint, 1))
	states = append(states, root)
	return &Automaton{
		root:             root,
		states:           states,
		outputSizeCalc:   b.outputSizeCalc,
		tokenizerFactory: b.tokenizerFactory,
		log:              b.log,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
