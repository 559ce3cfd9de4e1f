package main

import (
	"errors"
	"os"

	"junitreport/internal/cli"
	"junitreport/internal/cli/commands"
	"junitreport/internal/config"
	"junitreport/internal/ui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "junit-report [flags] <template> <junit xml> [<junit xml> ...]",
		Short: "Render JUnit XML test results through a template",
		Long: `Aggregate one or more JUnit XML result documents into overall and per-class
statistics and render them through a Go text/template (HTML, text, ...).
Directories are searched for result documents matching --pattern.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Diagnostics go to stderr, the report owns stdout
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, log, os.Stdout)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		var usage *cli.UsageError
		if errors.As(err, &usage) {
			ui.PrintUsage(os.Stderr, rootCmd.Name(), err)
		} else {
			ui.PrintError(os.Stderr, err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
