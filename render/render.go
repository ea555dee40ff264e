// Package render turns a model into source text through text/template.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"github.com/takumakei/model-gen-go/model"
)

// Renderer renders a model for one target language.
type Renderer struct {
	name string
	ext  string
	tmpl *template.Template
}

// New parses text as the template for target name, writing files with ext.
func New(name, ext, text string) (*Renderer, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("render: target %s: %w", name, err)
	}
	return &Renderer{name: name, ext: ext, tmpl: tmpl}, nil
}

func (r *Renderer) Name() string { return r.name }

// Ext is the file extension without the leading dot.
func (r *Renderer) Ext() string { return r.ext }

// Render executes the template with data.
func (r *Renderer) Render(data model.Data) (string, error) {
	buf := new(bytes.Buffer)
	if err := r.tmpl.Execute(buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var funcs = map[string]any{
	"upperFirst": model.UpperFirst,
	"lowerFirst": model.LowerFirst,
}

var (
	//go:embed rust.tmpl
	rustTemplate string

	//go:embed go.tmpl
	goTemplate string
)

var (
	Rust = must(New("rust", "rs", rustTemplate))
	Go   = must(New("go", "go", goTemplate))
)

var targets = map[string]*Renderer{
	Rust.Name(): Rust,
	Go.Name():   Go,
}

// Lookup returns the renderer registered for name.
func Lookup(name string) (*Renderer, error) {
	if r, ok := targets[strings.ToLower(name)]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("unknown target %q, use one of %s", name, strings.Join(Targets(), ", "))
}

// Targets lists the registered target names, sorted.
func Targets() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func must(r *Renderer, err error) *Renderer {
	if err != nil {
		panic(err)
	}
	return r
}
