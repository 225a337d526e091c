package commands

import (
	"context"
	"io"

	"gtr/internal/config"
	"gtr/internal/discovery"
	"gtr/internal/domain"
	"gtr/internal/execution"
	"gtr/internal/storage"
	"gtr/internal/ui"
)

// suite wires discovery, execution and reporting for one configuration
type suite struct {
	config   *config.Config
	scanner  *discovery.Scanner
	executor execution.Executor
	reporter *ui.Reporter
}

func newSuite(cfg *config.Config, out io.Writer) *suite {
	reporter := ui.NewReporter(out)
	runner := execution.NewRunner(cfg)
	return &suite{
		config:   cfg,
		scanner:  discovery.NewScanner(cfg.SourceExt),
		executor: execution.NewSequentialExecutor(runner, storage.NewFileStorage(cfg.ExpectExt), reporter),
		reporter: reporter,
	}
}

// run discovers and executes every test under the configured root
func (s *suite) run(ctx context.Context) (domain.Summary, error) {
	tests, err := s.scanner.Scan(s.config.GetTestRoot())
	if err != nil {
		return domain.Summary{}, err
	}

	if len(tests) == 0 {
		s.reporter.PrintNotice("No tests to execute")
		return domain.NewSummary(), nil
	}

	summary, err := s.executor.Execute(ctx, tests)
	if err != nil {
		return summary, err
	}

	s.reporter.PrintSummary(summary)
	return summary, nil
}
