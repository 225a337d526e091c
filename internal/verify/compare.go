package verify

import (
	"strings"

	"gtr/internal/domain"
)

// ErrorPrefix is stripped from captured stderr lines before comparison
const ErrorPrefix = "Error: "

// Matches compares actual output against a recorded expectation using the
// rule for the given kind
func Matches(kind domain.Kind, expected, actual string) bool {
	_, ok := FirstMismatch(kind, expected, actual)
	return ok
}

// Exact reports whether actual equals expected character for character
func Exact(expected, actual string) bool {
	return expected == actual
}

// Tolerant reports whether every expected line is contained in the
// corresponding actual line once both have their error prefix stripped.
// Actual lines past the end of the expectation are not examined.
// The expectation is stripped as well, so a baseline recorded from raw
// stderr matches the output it was recorded from.
func Tolerant(expected, actual string) bool {
	_, ok := tolerantMismatch(expected, actual)
	return ok
}

// StripErrorPrefix returns the text after the last occurrence of
// ErrorPrefix, or the whole line when the prefix is absent.
func StripErrorPrefix(line string) string {
	if i := strings.LastIndex(line, ErrorPrefix); i >= 0 {
		return line[i+len(ErrorPrefix):]
	}
	return line
}

// FirstMismatch returns the 0-based line at which actual stops matching
// expected. ok is true when the outputs match.
func FirstMismatch(kind domain.Kind, expected, actual string) (line int, ok bool) {
	if kind == domain.KindFail {
		return tolerantMismatch(expected, actual)
	}
	if Exact(expected, actual) {
		return 0, true
	}

	exp := splitLines(expected)
	act := splitLines(actual)
	for i := range exp {
		if i >= len(act) || exp[i] != act[i] {
			return i, false
		}
	}
	// Expectation is a strict prefix of actual.
	return len(exp), false
}

func tolerantMismatch(expected, actual string) (int, bool) {
	exp := splitLines(expected)
	act := splitLines(actual)
	for i, want := range exp {
		if i >= len(act) {
			return i, false
		}
		// Recorded expectations hold raw stderr, so they are stripped too.
		if !strings.Contains(StripErrorPrefix(act[i]), StripErrorPrefix(want)) {
			return i, false
		}
	}
	return 0, true
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
