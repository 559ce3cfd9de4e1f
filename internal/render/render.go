package render

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"text/template"
	"text/template/parse"

	"github.com/sirupsen/logrus"
)

// Renderer loads report templates
type Renderer struct {
	funcs template.FuncMap
	log   logrus.FieldLogger
}

// NewRenderer creates a Renderer whose templates can call funcs
func NewRenderer(funcs template.FuncMap, log logrus.FieldLogger) *Renderer {
	return &Renderer{funcs: funcs, log: log}
}

// Template is a loaded report template together with its siblings
type Template struct {
	name string
	tmpl *template.Template
}

// Load parses the template at path. Templates it includes by name with
// {{ template "x" }} are read on demand from the file with that
// slash-separated path relative to the template's directory, and so on for
// the templates those include. Names that resolve to no file are left
// undefined and fail when the report is rendered.
func (r *Renderer) Load(templatePath string) (*Template, error) {
	info, err := os.Stat(templatePath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("template path is a directory: %s", templatePath)
	}

	dir, name := filepath.Split(templatePath)
	if dir == "" {
		dir = "."
	}
	fsys := os.DirFS(dir)

	root := template.New(name).Funcs(r.funcs).Option("missingkey=error")
	if err := r.parseFile(root, fsys, name); err != nil {
		return nil, err
	}

	tried := map[string]bool{name: true}
	for {
		var loaded bool
		for _, ref := range undefinedTemplates(root) {
			if tried[ref] {
				continue
			}
			tried[ref] = true

			if !fs.ValidPath(ref) {
				r.log.WithField("template", ref).Debug("Template name is not a relative path")
				continue
			}
			err := r.parseFile(root.New(ref), fsys, ref)
			if errors.Is(err, fs.ErrNotExist) {
				r.log.WithField("template", ref).Debug("No file for included template")
				continue
			}
			if err != nil {
				return nil, err
			}
			loaded = true
		}
		if !loaded {
			break
		}
	}

	return &Template{name: name, tmpl: root}, nil
}

func (r *Renderer) parseFile(t *template.Template, fsys fs.FS, name string) error {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if _, err := t.Parse(string(content)); err != nil {
		return err
	}
	r.log.WithField("template", name).Debug("Loaded template")
	return nil
}

// undefinedTemplates returns the sorted names included by the templates
// associated with root that are not defined yet
func undefinedTemplates(root *template.Template) []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range root.Templates() {
		if t.Tree == nil {
			continue
		}
		walkIncludes(t.Tree.Root, func(name string) {
			if seen[name] || root.Lookup(name) != nil {
				return
			}
			seen[name] = true
			names = append(names, name)
		})
	}
	sort.Strings(names)
	return names
}

func walkIncludes(node parse.Node, visit func(name string)) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			walkIncludes(child, visit)
		}
	case *parse.IfNode:
		walkIncludes(n.List, visit)
		walkIncludes(n.ElseList, visit)
	case *parse.RangeNode:
		walkIncludes(n.List, visit)
		walkIncludes(n.ElseList, visit)
	case *parse.WithNode:
		walkIncludes(n.List, visit)
		walkIncludes(n.ElseList, visit)
	case *parse.TemplateNode:
		visit(n.Name)
	}
}

// Name returns the name of the main template
func (t *Template) Name() string {
	return t.name
}

// Render executes the main template with data
func (t *Template) Render(w io.Writer, data any) error {
	return t.tmpl.ExecuteTemplate(w, t.name, data)
}
