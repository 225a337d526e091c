package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"gtr/internal/config"
	"gtr/internal/domain"
	"gtr/internal/storage"
)

// MethodFlag selects the execution method of the compiler
const MethodFlag = "--method"

// Invocation holds the captured output of one compiler run
type Invocation struct {
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// InvocationError reports that the compiler could not be launched or
// communicated with. It aborts the run.
type InvocationError struct {
	Test string
	Argv []string
	Err  error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("invoke %q for test %s: %v", strings.Join(e.Argv, " "), e.Test, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Runner invokes the compiler under test for a single test
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Args returns the compiler arguments for a test
func (r *Runner) Args(tc domain.TestCase) []string {
	args := []string{tc.SourcePath(r.config.SourceExt)}
	if r.config.Method != "" {
		args = append(args, MethodFlag, r.config.Method)
	}
	return args
}

// Run executes the compiler for a single test and waits for it to exit.
// The exit status of the compiler is not inspected.
func (r *Runner) Run(ctx context.Context, tc domain.TestCase) (Invocation, error) {
	args := r.Args(tc)
	argv := append([]string{r.config.Compiler}, args...)
	log.Debugf("Invoking %s", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, r.config.Compiler, args...)
	// A bare compiler name may resolve to the working directory, as it
	// does for the default BatScript.exe on Windows.
	if errors.Is(cmd.Err, exec.ErrDot) {
		cmd.Err = nil
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Invocation{}, &InvocationError{Test: tc.Identifier, Argv: argv, Err: ctxErr}
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return Invocation{}, &InvocationError{Test: tc.Identifier, Argv: argv, Err: err}
	}
	if exitErr != nil {
		log.Debugf("Compiler exited with status %d for %s", exitErr.ExitCode(), tc.Identifier)
	}

	return Invocation{
		Stdout:   storage.NormalizeNewlines(stdout.String()),
		Stderr:   storage.NormalizeNewlines(stderr.String()),
		Duration: duration,
	}, nil
}
