package execution

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"gtr/internal/domain"
	"gtr/internal/storage"
	"gtr/internal/verify"
)

// SequentialExecutor runs tests one at a time in discovery order
type SequentialExecutor struct {
	invoker  Invoker
	storage  storage.Storage
	reporter Reporter
}

// NewSequentialExecutor creates a new SequentialExecutor
func NewSequentialExecutor(invoker Invoker, st storage.Storage, reporter Reporter) *SequentialExecutor {
	return &SequentialExecutor{
		invoker:  invoker,
		storage:  st,
		reporter: reporter,
	}
}

// Execute runs every test to completion. Invocation and storage errors abort
// the run and are returned together with the results reached so far.
func (e *SequentialExecutor) Execute(ctx context.Context, tests []domain.TestCase) (domain.Summary, error) {
	summary := domain.NewSummary()
	startTime := time.Now()

	for _, tc := range tests {
		result, err := e.runTest(ctx, tc)
		if err != nil {
			summary.Duration = time.Since(startTime)
			return summary, err
		}
		summary.Add(result)
		if e.reporter != nil {
			e.reporter.Report(result)
		}
	}

	summary.Duration = time.Since(startTime)
	return summary, nil
}

// runTest classifies, invokes and verifies a single test
func (e *SequentialExecutor) runTest(ctx context.Context, tc domain.TestCase) (domain.TestResult, error) {
	result := domain.TestResult{Test: tc, Kind: domain.Classify(tc.Identifier)}
	if result.Kind == domain.KindInvalid {
		result.Outcome = domain.OutcomeInvalid
		return result, nil
	}

	inv, err := e.invoker.Run(ctx, tc)
	if err != nil {
		return result, err
	}
	result.Duration = inv.Duration
	result.Output = inv.Stdout
	if result.Kind == domain.KindFail {
		result.Output = inv.Stderr
	}

	expected, found, err := e.storage.Load(tc)
	if err != nil {
		return result, err
	}
	if !found {
		if err := e.storage.Record(tc, result.Output); err != nil {
			return result, fmt.Errorf("record expectation for %s: %w", tc.Identifier, err)
		}
		log.Debugf("Recorded expectation for %s", tc.Identifier)
		result.Outcome = domain.OutcomeRecorded
		return result, nil
	}

	result.Expected = expected
	if verify.Matches(result.Kind, expected, result.Output) {
		result.Outcome = domain.OutcomePass
	} else {
		result.Outcome = domain.OutcomeFail
	}
	return result, nil
}
