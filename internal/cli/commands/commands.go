package commands

import (
	"fmt"
	"io"

	"junitreport/internal/cli"
	"junitreport/internal/config"
	"junitreport/internal/parser"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Commands holds all CLI commands
type Commands struct {
	Report *ReportCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, log *logrus.Logger, stdout io.Writer) *Commands {
	junitParser := parser.NewJUnitParser()

	return &Commands{
		Report: NewReportCommand(cfg, junitParser, log, stdout),
	}
}

// Register registers all commands with cobra. The report is the root command itself.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return &cli.UsageError{Err: fmt.Errorf("expected a template and at least one result document, got %d argument(s)", len(args))}
		}
		return nil
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Build the config from defaults, settings file and the flags actually given
		changed := make(map[string]bool)
		cmd.Flags().Visit(func(f *pflag.Flag) {
			changed[f.Name] = true
		})

		loaded, err := config.Load(flags.ToConfigFlags(changed), args)
		if err != nil {
			return fmt.Errorf("configuration: %w", err)
		}
		*cfg = *loaded
		return nil
	}
	rootCmd.RunE = c.Report.Execute

	rootCmd.Flags().StringVarP(&flags.Output, "output", "o", config.DefaultOutputPath, "Write the report to this file instead of standard output")
	rootCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "Settings file (.yaml/.yml, otherwise dotenv format with REPORT_* keys)")
	rootCmd.Flags().StringVar(&flags.Pattern, "pattern", config.DefaultPattern, "File name pattern for result documents inside directory arguments")
	rootCmd.Flags().IntVar(&flags.PercentPlaces, "percent-places", config.DefaultPercentPlaces, "Default number of decimal places kept by the percent helper")
	rootCmd.Flags().BoolVar(&flags.Strict, "strict", false, "Fail when a test case has conflicting result markers")
	rootCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr while reading result documents")
	rootCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log debug information to stderr")
}
