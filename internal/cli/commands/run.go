package commands

import (
	"gtr/internal/config"
	"gtr/internal/execution"
	"gtr/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config *config.Config
	viewer ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, viewer ui.Viewer) *RunCommand {
	return &RunCommand{
		config: cfg,
		viewer: viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	summary, err := newSuite(rc.config, cmd.OutOrStdout()).run(cmd.Context())
	if err != nil {
		return err
	}

	if summary.Passed {
		return nil
	}

	if rc.config.Flags.Inspect && rc.viewer != nil {
		if err := rc.viewer.View(summary); err != nil {
			return err
		}
	}
	return execution.ErrTestsFailed
}
