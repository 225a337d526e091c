package commands

import (
	"github.com/spf13/cobra"

	"gtr/internal/config"
	"gtr/internal/discovery"
	"gtr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{config: cfg}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := discovery.NewScanner(lc.config.SourceExt).Scan(lc.config.GetTestRoot())
	if err != nil {
		return err
	}

	reporter := ui.NewReporter(cmd.OutOrStdout())
	if len(tests) == 0 {
		reporter.PrintNotice("No tests found")
		return nil
	}

	reporter.PrintTestList(tests)
	return nil
}
