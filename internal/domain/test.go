package domain

import (
	"path/filepath"
	"strings"
)

// TestCase represents a single compiler test discovered on disk
type TestCase struct {
	Identifier string // Path relative to the discovery root, extension stripped
	Path       string // Absolute path, extension stripped
}

// SourcePath returns the path of the test source passed to the compiler
func (tc TestCase) SourcePath(sourceExt string) string {
	return tc.Path + sourceExt
}

// ExpectationPath returns the path of the recorded expected output
func (tc TestCase) ExpectationPath(expectExt string) string {
	return tc.Path + expectExt
}

// Kind tells which output stream a test is verified against
type Kind int

const (
	KindInvalid Kind = iota
	KindOK           // expected to succeed, stdout compared exactly
	KindFail         // expected to fail, stderr compared line by line
)

// Name markers looked up in the base name of a test
const (
	OKMarker   = "ok-"
	FailMarker = "fail-"
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindFail:
		return "fail"
	default:
		return "invalid"
	}
}

// StreamName names the compiler output stream a test of this kind is
// verified against
func (k Kind) StreamName() string {
	if k == KindFail {
		return "stderr"
	}
	return "stdout"
}

// Classify derives the kind of a test from the base name of its identifier.
// A name carrying both markers is an ok test.
func Classify(identifier string) Kind {
	name := filepath.Base(identifier)
	switch {
	case strings.Contains(name, OKMarker):
		return KindOK
	case strings.Contains(name, FailMarker):
		return KindFail
	default:
		return KindInvalid
	}
}
