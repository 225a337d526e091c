package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"gtr/internal/cli"
	"gtr/internal/cli/commands"
	"gtr/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "gtr",
		Short:   "Golden-file test runner for compilers",
		Long:    `Run a compiler over a directory of test sources and compare what it prints with recorded expectation files. Tests named ok-* are checked against stdout, tests named fail-* against stderr.`,
		Version: version,
	}

	// Config is loaded once flags are parsed
	cfg := config.New()

	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	code := cli.ExitCode(err)
	if code == cli.ExitError {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
