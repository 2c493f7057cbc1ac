package ahocorasick

import "unicode/utf16"

// toCodeUnits converts a Go string (UTF-8) into the sequence of UTF-16 code
// units that the automaton's alphabet operates over. Strings are treated as
// sequences of 16-bit code units; surrogate pairs are not decoded, matching
// is code-unit literal. No third-party package does this conversion any
// better than the standard library's unicode/utf16 — see DESIGN.md.
func toCodeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// codeUnitLen returns the number of UTF-16 code units s encodes to, which is
// the unit StringSizeCalculator and span offsets are expressed in.
func codeUnitLen(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
