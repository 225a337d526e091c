package cli

import (
	"errors"

	"gtr/internal/execution"
)

// Process exit codes
const (
	ExitOK     = 0
	ExitFailed = 1 // at least one test failed
	ExitError  = 2 // the run could not complete
)

// ExitCode maps the error returned by a command to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, execution.ErrTestsFailed):
		return ExitFailed
	default:
		return ExitError
	}
}
