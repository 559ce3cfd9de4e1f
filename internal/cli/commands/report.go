package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"junitreport/internal/config"
	"junitreport/internal/discovery"
	"junitreport/internal/parser"
	"junitreport/internal/render"
	"junitreport/internal/report"
	"junitreport/internal/ui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ReportCommand renders result documents through a template
type ReportCommand struct {
	config *config.Config
	parser parser.Parser
	log    *logrus.Logger
	stdout io.Writer
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, p parser.Parser, log *logrus.Logger, stdout io.Writer) *ReportCommand {
	return &ReportCommand{
		config: cfg,
		parser: p,
		log:    log,
		stdout: stdout,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	if rc.config.Verbose {
		rc.log.SetLevel(logrus.DebugLevel)
	}

	// Expand directories into result documents
	scanner := discovery.NewScanner(rc.config.PathsToIgnore, discovery.NewFilter(rc.config.Pattern))
	documents, err := scanner.Resolve(rc.config.ResultPaths)
	if err != nil {
		return err
	}
	rc.log.WithField("documents", len(documents)).Debug("Resolved result documents")

	renderer := render.NewRenderer(render.FuncMap(rc.config.PercentPlaces), rc.log)
	pipeline := report.NewPipeline(rc.parser, renderer, rc.log, report.Options{Strict: rc.config.Strict})
	if rc.config.Progress {
		if bar := ui.StderrProgressBar(len(documents)); bar != nil {
			pipeline.SetProgress(bar)
		}
	}

	var buf bytes.Buffer
	if err := pipeline.Run(&buf, rc.config.TemplatePath, documents); err != nil {
		return err
	}

	return rc.write(buf.Bytes())
}

// write sends the rendered report to the output file or to stdout
func (rc *ReportCommand) write(data []byte) error {
	path := rc.config.GetOutputPath()
	if path == "" {
		_, err := rc.stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	rc.log.WithField("output", path).Debug("Report written")
	return nil
}
