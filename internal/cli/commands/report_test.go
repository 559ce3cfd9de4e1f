package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"junitreport/internal/cli"
	"junitreport/internal/config"
	"junitreport/internal/report"
)

const (
	docA = `<testsuites><testsuite name="FooSuite">
<testcase classname="Foo" name="passes" time="0.5"/>
<testcase classname="Foo" name="fails" time="1"><failure message="nope"/></testcase>
</testsuite></testsuites>`
	docB = `<testsuite name="BarSuite"><testcase classname="Bar" name="skips"><skipped/></testcase></testsuite>`

	summaryTemplate = `{{ .totals.Tests }}/{{ .totals.Failures }}/{{ .totals.Skipped }}/{{ .totals.Successes }}
{{- range $name, $c := .per_class }} {{ $name }}={{ $c.Tests }}{{ end }}`
)

func write(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	var stdout bytes.Buffer
	root := &cobra.Command{Use: "junit-report", SilenceUsage: true, SilenceErrors: true}
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	cfg := config.New()
	var flags cli.Flags
	NewCommands(cfg, log, &stdout).Register(root, &flags, cfg)

	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	tmpl := write(t, filepath.Join(dir, "templates", "summary.tmpl"), summaryTemplate)
	a := write(t, filepath.Join(dir, "results", "a.xml"), docA)
	b := write(t, filepath.Join(dir, "results", "nested", "b.xml"), docB)

	t.Run("documents as files", func(t *testing.T) {
		out, err := execute(t, tmpl, a, b)
		require.NoError(t, err)
		assert.Equal(t, "3/1/1/1 Bar=1 Foo=2", out)
	})

	t.Run("directory argument", func(t *testing.T) {
		out, err := execute(t, tmpl, filepath.Join(dir, "results"))
		require.NoError(t, err)
		assert.Equal(t, "3/1/1/1 Bar=1 Foo=2", out)
	})

	t.Run("output file", func(t *testing.T) {
		target := filepath.Join(dir, "out", "report.txt")
		out, err := execute(t, "--output", target, tmpl, a)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "2/1/0/1 Foo=2", string(data))
	})

	t.Run("settings file", func(t *testing.T) {
		settings := write(t, filepath.Join(dir, "report.env"), "REPORT_PATTERN=b.xml\n")
		out, err := execute(t, "--config", settings, tmpl, filepath.Join(dir, "results"))
		require.NoError(t, err)
		assert.Equal(t, "1/0/1/0 Bar=1", out)
	})
}

func TestReportCommand_Faults(t *testing.T) {
	dir := t.TempDir()
	tmpl := write(t, filepath.Join(dir, "summary.tmpl"), summaryTemplate)
	a := write(t, filepath.Join(dir, "a.xml"), docA)
	ambiguous := write(t, filepath.Join(dir, "ambiguous.xml"), `<testsuite><testcase classname="X" name="y"><failure/><error/></testcase></testsuite>`)

	t.Run("usage", func(t *testing.T) {
		out, err := execute(t, tmpl)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
		assert.Empty(t, out)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := execute(t, "--bogus", tmpl, a)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("missing template", func(t *testing.T) {
		out, err := execute(t, filepath.Join(dir, "missing.tmpl"), a)
		var terr *report.TemplateError
		assert.ErrorAs(t, err, &terr)
		assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
		assert.Empty(t, out)
	})

	t.Run("missing document", func(t *testing.T) {
		out, err := execute(t, tmpl, a, filepath.Join(dir, "missing.xml"))
		assert.Error(t, err)
		assert.Empty(t, out)
	})

	t.Run("ambiguous markers lenient", func(t *testing.T) {
		out, err := execute(t, tmpl, ambiguous)
		require.NoError(t, err)
		assert.Equal(t, "1/0/0/0 X=1", out)
	})

	t.Run("ambiguous markers strict", func(t *testing.T) {
		out, err := execute(t, "--strict", tmpl, ambiguous)
		var cerr *report.ClassificationError
		assert.ErrorAs(t, err, &cerr)
		assert.Empty(t, out)
	})
}
