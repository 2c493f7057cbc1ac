package ahocorasick

import (
	perr "github.com/arrowcorp/ahocorasick/internal/platform/errors"
)

// Sentinel-style lifecycle errors. Use errors.Is to test against these;
// wrapped causes (e.g. a tokenizer failure) remain inspectable via
// errors.Unwrap.

// ErrNotPrepared is returned when a search method is called before prepare()
var ErrNotPrepared = perr.NotPreparedf("automaton: prepare() has not been called")

// ErrAlreadyPrepared is returned when Add or prepare() is called on a frozen automaton
var ErrAlreadyPrepared = perr.AlreadyPreparedf("automaton: already prepared")

// IsNotPrepared reports whether err is (or wraps) ErrNotPrepared
func IsNotPrepared(err error) bool { return perr.IsCode(err, perr.ErrorCodeNotPrepared) }

// IsAlreadyPrepared reports whether err is (or wraps) ErrAlreadyPrepared
func IsAlreadyPrepared(err error) bool { return perr.IsCode(err, perr.ErrorCodeAlreadyPrepared) }

// IsTokenizerFailure reports whether err originated from an injected Tokenizer
func IsTokenizerFailure(err error) bool { return perr.IsCode(err, perr.ErrorCodeTokenizerFailure) }

// wrapTokenizerFailure wraps a Tokenizer-originated error, tagging it with a
// stable code without altering or hiding the original error, which remains
// reachable via errors.Unwrap
func wrapTokenizerFailure(err error) error {
	if err == nil {
		return nil
	}
	return perr.TokenizerFailuref(err, "tokenizer failed")
}

// newInvalidArgument builds an invalid-argument error (e.g. empty keyword)
func newInvalidArgument(msg string) error { return perr.InvalidArgf("%s", msg) }

// programmerPanic surfaces a programmer error (e.g. mutating a prepared
// automaton) as a panic carrying a structured *perr.Error rather than a
// plain string, so callers using recover() can still inspect the code via
// errors.As
func programmerPanic(msg string) {
	panic(perr.Programmerf("%s", msg))
}
