package ui

import (
	"strings"
	"testing"

	"gtr/internal/domain"
)

func TestFormatFailureDetails(t *testing.T) {
	failure := domain.TestResult{
		Test:     domain.TestCase{Identifier: "ok-print", Path: "/suite/ok-print"},
		Kind:     domain.KindOK,
		Outcome:  domain.OutcomeFail,
		Expected: "1\n2\n",
		Output:   "1\n[3]\n",
	}

	details := formatFailureDetails(failure)

	for _, s := range []string{
		"[red]✗ First mismatch at line 2[white]",
		"Captured stdout:",
		"[red]   2 │ 2[white]",
		"[red]   2 │ [3[][white]",
		"[gray]   1 │[white] 1",
	} {
		if !strings.Contains(details, s) {
			t.Errorf("expected %q in details:\n%s", s, details)
		}
	}

	stats := formatFailureStats(failure)
	if !strings.Contains(stats, "stream:[white] stdout") {
		t.Errorf("unexpected stats line %q", stats)
	}
}
