package report

import (
	"fmt"
	"strings"
)

// IngestError reports a result document that could not be read or parsed
type IngestError struct {
	Path string
	Err  error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("ingest %s: %v", e.Path, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// TemplateError reports a template that could not be loaded or rendered
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// ClassificationError reports a test case whose result markers map to no single outcome
type ClassificationError struct {
	Path  string
	Group string
	Name  string
	Err   error
}

func (e *ClassificationError) Error() string {
	name := strings.TrimPrefix(e.Group+"."+e.Name, ".")
	return fmt.Sprintf("classify %s in %s: %v", name, e.Path, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}
