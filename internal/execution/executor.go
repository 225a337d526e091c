package execution

import (
	"context"
	"errors"

	"gtr/internal/domain"
)

// ErrTestsFailed is returned when a run completed with at least one failure
var ErrTestsFailed = errors.New("one or more tests failed")

// Executor executes tests and returns the run summary
type Executor interface {
	Execute(ctx context.Context, tests []domain.TestCase) (domain.Summary, error)
}

// Invoker runs the compiler for a single test
type Invoker interface {
	Run(ctx context.Context, tc domain.TestCase) (Invocation, error)
}

// Reporter is told about every test verdict as soon as it is reached
type Reporter interface {
	Report(result domain.TestResult)
}
