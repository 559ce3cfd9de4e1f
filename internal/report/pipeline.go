package report

import (
	"bytes"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"junitreport/internal/domain"
	"junitreport/internal/parser"
	"junitreport/internal/render"
	"junitreport/internal/stats"
)

// Progress receives ingestion progress updates
type Progress interface {
	Update(documents, cases int)
	Finish()
}

// Options tunes a Pipeline
type Options struct {
	// Strict turns classification faults into fatal errors
	Strict bool
}

// Result holds the collectors built from a set of result documents
type Result struct {
	Totals   *stats.Collector
	PerClass stats.Groups
}

// Data returns the template bindings for the result
func (r *Result) Data() map[string]any {
	return map[string]any{
		"totals":    r.Totals,
		"per_class": r.PerClass,
	}
}

// Pipeline ingests result documents and renders them through a template
type Pipeline struct {
	parser   parser.Parser
	renderer *render.Renderer
	log      logrus.FieldLogger
	progress Progress
	opts     Options
}

// NewPipeline creates a new Pipeline
func NewPipeline(p parser.Parser, renderer *render.Renderer, log logrus.FieldLogger, opts Options) *Pipeline {
	return &Pipeline{
		parser:   p,
		renderer: renderer,
		log:      log,
		opts:     opts,
	}
}

// SetProgress sets the progress reporter used while ingesting
func (p *Pipeline) SetProgress(progress Progress) {
	p.progress = progress
}

// Ingest reads every document in order and adds each test case to the totals
// and to the collector of its group. The first fault aborts ingestion.
func (p *Pipeline) Ingest(documents []string) (*Result, error) {
	if len(documents) == 0 {
		return nil, errors.New("no result documents given")
	}

	result := &Result{
		Totals:   stats.NewCollector(),
		PerClass: stats.Groups{},
	}

	if p.progress != nil {
		defer p.progress.Finish()
	}

	for i, path := range documents {
		doc, err := p.parser.ParseFile(path)
		if err != nil {
			return nil, &IngestError{Path: path, Err: err}
		}

		before := result.Totals.Tests()
		err = doc.Walk(func(suite string, tc *parser.TestCase) error {
			record, err := p.record(path, suite, tc)
			if err != nil {
				return err
			}
			result.Totals.Add(record)
			result.PerClass.Add(record)
			return nil
		})
		if err != nil {
			var cerr *ClassificationError
			if errors.As(err, &cerr) {
				return nil, err
			}
			return nil, &IngestError{Path: path, Err: err}
		}

		p.log.WithFields(logrus.Fields{
			"document": path,
			"cases":    result.Totals.Tests() - before,
		}).Debug("Ingested result document")

		if p.progress != nil {
			p.progress.Update(i+1, result.Totals.Tests())
		}
	}

	return result, nil
}

// record converts a parsed test case into a TestCase record. Classification
// faults keep the record unclassified unless the pipeline is strict.
func (p *Pipeline) record(path, suite string, tc *parser.TestCase) (domain.TestCase, error) {
	secs, err := tc.Seconds()
	if err != nil {
		return domain.TestCase{}, err
	}

	group := tc.Classname
	if group == "" {
		group = suite
	}

	record := domain.TestCase{
		Name:     tc.Name,
		Group:    group,
		Suite:    suite,
		Document: path,
		Duration: secs,
		Message:  tc.Message(),
	}

	outcome, err := parser.Classify(tc)
	if err != nil {
		cerr := &ClassificationError{Path: path, Group: group, Name: tc.Name, Err: err}
		if p.opts.Strict {
			return domain.TestCase{}, cerr
		}
		p.log.WithError(err).WithFields(logrus.Fields{
			"document": path,
			"group":    group,
			"case":     tc.Name,
		}).Warn("Test case counted without an outcome")
	}
	record.Outcome = outcome

	return record, nil
}

// Render loads the template at templatePath and renders result through it.
// Nothing is written to w unless rendering succeeds.
func (p *Pipeline) Render(w io.Writer, templatePath string, result *Result) error {
	tmpl, err := p.renderer.Load(templatePath)
	if err != nil {
		return &TemplateError{Path: templatePath, Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Render(&buf, result.Data()); err != nil {
		return &TemplateError{Path: templatePath, Err: err}
	}

	if _, err := buf.WriteTo(w); err != nil {
		return err
	}
	return nil
}

// Run ingests documents and renders the report to w
func (p *Pipeline) Run(w io.Writer, templatePath string, documents []string) error {
	result, err := p.Ingest(documents)
	if err != nil {
		return err
	}
	return p.Render(w, templatePath, result)
}
