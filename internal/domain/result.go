package domain

import "time"

// Outcome is the verdict reached for one test
type Outcome int

const (
	OutcomePass     Outcome = iota
	OutcomeFail             // output did not match the expectation
	OutcomeRecorded         // no expectation existed, one was written
	OutcomeInvalid          // name carries neither marker, test skipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "pass"
	case OutcomeFail:
		return "fail"
	case OutcomeRecorded:
		return "recorded"
	default:
		return "invalid"
	}
}

// TestResult represents the result of executing a single test
type TestResult struct {
	Test     TestCase
	Kind     Kind
	Outcome  Outcome
	Output   string        // Captured stream the test is verified against
	Expected string        // Recorded expectation, empty when just recorded
	Duration time.Duration // Time taken by the compiler invocation
}

// Failed reports whether the result clears the aggregate verdict
func (r TestResult) Failed() bool {
	return r.Outcome == OutcomeFail
}

// Summary is the outcome of a whole run
type Summary struct {
	Results  []TestResult
	Passed   bool // Aggregate verdict, false once any test failed
	Duration time.Duration
}

// NewSummary returns an empty summary whose aggregate verdict holds
func NewSummary() Summary {
	return Summary{Passed: true}
}

// Add appends a result and folds it into the aggregate verdict
func (s *Summary) Add(r TestResult) {
	s.Results = append(s.Results, r)
	s.Passed = s.Passed && !r.Failed()
}

// Count returns the number of results with the given outcome
func (s Summary) Count(o Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Failures returns the failed results in run order
func (s Summary) Failures() []TestResult {
	var failed []TestResult
	for _, r := range s.Results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}
