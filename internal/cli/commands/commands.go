package commands

import (
	"gtr/internal/cli"
	"gtr/internal/config"
	"gtr/internal/ui"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run   *RunCommand
	List  *ListCommand
	Watch *WatchCommand
}

// NewCommands creates all commands with dependencies. cfg is filled in once
// flags are parsed.
func NewCommands(cfg *config.Config) *Commands {
	return &Commands{
		Run:   NewRunCommand(cfg, ui.NewFailureViewer()),
		List:  NewListCommand(cfg),
		Watch: NewWatchCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.TestPath, "test-path", "t", "", "Directory where test discovery starts (default \".\")")
	pf.StringVarP(&flags.Compiler, "compiler", "c", "", "Compiler executable under test; a bare name found in the working directory is accepted (default \""+config.DefaultCompiler+"\")")
	pf.StringVarP(&flags.Method, "method", "m", config.DefaultMethod, "Execution method passed to the compiler as --method; empty to omit")
	pf.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Log compiler invocations and recorded expectations")

	// Load config after flags are parsed, for every subcommand
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if flags.NoColor {
			color.NoColor = true
		}
		if flags.Verbose {
			log.SetLevel(log.DebugLevel)
		}

		loaded, err := config.Load(flags.ToConfigFlags(cmd.Flags().Changed("method")))
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run compiler tests against recorded expectations",
		Long:  "Discover test sources, run the compiler on each one sequentially and compare its output with the recorded .out file. Missing .out files are recorded from the current output.",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().BoolVar(&flags.Inspect, "inspect", false, "Open the failure viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered tests",
		Long:  "Scan and list all test sources with their kind without executing them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)

	// Watch command
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Rerun tests when a test source changes",
		Long:  "Run the suite, then run it again every time a test source under the test path is created, modified or removed",
		Args:  cobra.NoArgs,
		RunE:  c.Watch.Execute,
	}
	rootCmd.AddCommand(watchCmd)
}
