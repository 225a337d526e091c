package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"gtr/internal/domain"
	"gtr/internal/verify"
)

// Reporter prints test verdicts as they are reached
type Reporter struct {
	out io.Writer

	pass    *color.Color
	fail    *color.Color
	notice  *color.Color
	subtle  *color.Color
	heading *color.Color
}

// NewReporter creates a Reporter writing to out, or stdout when out is nil
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{
		out:     out,
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		notice:  color.New(color.FgYellow),
		subtle:  color.New(color.FgCyan),
		heading: color.New(color.FgCyan, color.Bold),
	}
}

// Report prints the verdict line of a single test
func (r *Reporter) Report(result domain.TestResult) {
	id := result.Test.Identifier

	switch result.Outcome {
	case domain.OutcomeInvalid:
		r.notice.Fprintf(r.out, "Invalid test %s. Test name must begin with '%s' or '%s'\n", id, domain.OKMarker, domain.FailMarker)
	case domain.OutcomeRecorded:
		r.notice.Fprintf(r.out, "No expected result file for %s, creating one ...\n", id)
	case domain.OutcomePass:
		fmt.Fprintf(r.out, "Test %s ... %s\n", id, r.pass.Sprint("PASS"))
	case domain.OutcomeFail:
		fmt.Fprintf(r.out, "Test %s ... %s\n", id, r.fail.Sprint("FAIL"))
		if line, ok := verify.FirstMismatch(result.Kind, result.Expected, result.Output); !ok {
			r.subtle.Fprintf(r.out, "First mismatch at line %d of %s\n", line+1, result.Kind.StreamName())
		}
		fmt.Fprintln(r.out, "Dumping output...")
		fmt.Fprintln(r.out, result.Output)
	}
}

// PrintSummary prints the closing line of a run
func (r *Reporter) PrintSummary(summary domain.Summary) {
	passed := summary.Count(domain.OutcomePass)
	recorded := summary.Count(domain.OutcomeRecorded)
	failed := summary.Count(domain.OutcomeFail)
	invalid := summary.Count(domain.OutcomeInvalid)
	total := passed + recorded + failed

	fmt.Fprintln(r.out)
	if summary.Passed {
		r.pass.Fprintf(r.out, "✓ All %d test(s) passed", total)
	} else {
		r.fail.Fprintf(r.out, "✗ %d of %d test(s) failed", failed, total)
	}
	fmt.Fprintf(r.out, " (%d recorded, %d invalid) in %s\n", recorded, invalid, summary.Duration.Round(time.Millisecond))
}

// PrintTestList prints discovered tests as a tree with their kinds
func (r *Reporter) PrintTestList(tests []domain.TestCase) {
	r.pass.Fprintf(r.out, "Found %d test(s):\n\n", len(tests))

	for i, tc := range tests {
		connector := "├── "
		if i == len(tests)-1 {
			connector = "└── "
		}

		kind := domain.Classify(tc.Identifier)
		var marker string
		switch kind {
		case domain.KindOK:
			marker = r.pass.Sprintf("[%s]", kind)
		case domain.KindFail:
			marker = r.fail.Sprintf("[%s]", kind)
		default:
			marker = r.notice.Sprintf("[%s]", kind)
		}
		fmt.Fprintf(r.out, "%s%s %s\n", connector, r.subtle.Sprint(tc.Identifier), marker)
	}
}

// PrintNotice prints a highlighted informational line
func (r *Reporter) PrintNotice(msg string) {
	r.notice.Fprintln(r.out, msg)
}

// PrintHeading prints a banner line, used between watch runs
func (r *Reporter) PrintHeading(format string, args ...interface{}) {
	r.heading.Fprintf(r.out, format+"\n", args...)
}
