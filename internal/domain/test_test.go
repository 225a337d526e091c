package domain

import (
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		expected   Kind
	}{
		{name: "ok prefix", identifier: "ok-arith", expected: KindOK},
		{name: "fail prefix", identifier: "fail-undefined", expected: KindFail},
		{name: "marker inside name", identifier: "closures-ok-nested", expected: KindOK},
		{name: "no marker", identifier: "weird-test", expected: KindInvalid},
		{name: "both markers resolve to ok", identifier: "fail-ok-both", expected: KindOK},
		{name: "nested directory", identifier: filepath.Join("types", "fail-mismatch"), expected: KindFail},
		{name: "marker only in directory", identifier: filepath.Join("ok-dir", "plain"), expected: KindInvalid},
		{name: "case sensitive", identifier: "OK-upper", expected: KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.identifier); got != tt.expected {
				t.Errorf("Classify(%q) = %v, expected %v", tt.identifier, got, tt.expected)
			}
		})
	}
}

func TestTestCase_Paths(t *testing.T) {
	tc := TestCase{Identifier: "ok-print", Path: filepath.Join("/suite", "ok-print")}

	if got, expected := tc.SourcePath(".bat"), filepath.Join("/suite", "ok-print.bat"); got != expected {
		t.Errorf("expected source path %s, got %s", expected, got)
	}
	if got, expected := tc.ExpectationPath(".out"), filepath.Join("/suite", "ok-print.out"); got != expected {
		t.Errorf("expected expectation path %s, got %s", expected, got)
	}
}

func TestSummary_Add(t *testing.T) {
	t.Run("empty summary passes", func(t *testing.T) {
		s := NewSummary()
		if !s.Passed {
			t.Error("expected empty summary to pass")
		}
	})

	t.Run("invalid and recorded do not clear verdict", func(t *testing.T) {
		s := NewSummary()
		s.Add(TestResult{Outcome: OutcomeInvalid})
		s.Add(TestResult{Outcome: OutcomeRecorded})
		s.Add(TestResult{Outcome: OutcomePass})
		if !s.Passed {
			t.Error("expected summary to pass")
		}
	})

	t.Run("failure is never reset", func(t *testing.T) {
		s := NewSummary()
		s.Add(TestResult{Outcome: OutcomeFail})
		s.Add(TestResult{Outcome: OutcomePass})
		if s.Passed {
			t.Error("expected summary to fail after a failed test")
		}
		if n := s.Count(OutcomePass); n != 1 {
			t.Errorf("expected 1 passed result, got %d", n)
		}
		if n := len(s.Failures()); n != 1 {
			t.Errorf("expected 1 failure, got %d", n)
		}
	})
}
