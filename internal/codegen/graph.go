package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"

	"github.com/hupe1980/colstore"
)

// Generator renders a graph.
type Generator interface {
	Generate(*Graph) error
}

// GenerateFunc adapts an ordinary function to the Generator interface.
type GenerateFunc func(*Graph) error

// Generate calls f(g).
func (f GenerateFunc) Generate(g *Graph) error { return f(g) }

// Hook wraps a Generator, e.g. to run checks before or after it.
type Hook func(Generator) Generator

// Graph holds one node per table of a schema file.
type Graph struct {
	*Config

	Nodes []*Type

	// Written lists the files produced by the last Gen, in node order.
	Written []string
}

// NewGraph resolves the tables of f into template nodes.
func NewGraph(c *Config, f *File) (*Graph, error) {
	if c.Target == "" {
		return nil, fmt.Errorf("colgen: codegen: target directory is required")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	pkg := f.Package
	if c.Package != "" {
		pkg = c.Package
	}

	g := &Graph{
		Config: c,
		Nodes:  make([]*Type, 0, len(f.Tables)),
	}
	for _, td := range f.Tables {
		cols := make([]*Column, len(td.Columns))
		for i, cd := range td.Columns {
			k, err := colstore.ParseKind(cd.Type)
			if err != nil {
				return nil, fmt.Errorf("colgen: table %s: column %s: %w", td.Name, cd.Name, err)
			}
			cols[i] = &Column{Name: cd.Name, Kind: k, Index: i}
		}
		assignParams(cols)
		g.Nodes = append(g.Nodes, &Type{
			Config:  c,
			Name:    td.Name,
			Package: pkg,
			Columns: cols,
		})
	}
	return g, nil
}

// Gen runs the generator wrapped in the configured hooks.
func (g *Graph) Gen() error {
	var gen Generator = GenerateFunc(generate)
	for i := len(g.Hooks) - 1; i >= 0; i-- {
		gen = g.Hooks[i](gen)
	}
	return gen.Generate(g)
}

func generate(g *Graph) error {
	if err := os.MkdirAll(g.Target, 0o755); err != nil {
		return fmt.Errorf("colgen: create target dir: %w", err)
	}

	initTemplates()

	g.Written = g.Written[:0]
	for _, n := range g.Nodes {
		for _, tmpl := range TypeTemplates {
			if tmpl.Cond != nil && !tmpl.Cond(n) {
				continue
			}
			src, err := Render(tmpl.Name, n)
			if err != nil {
				return err
			}
			path := filepath.Join(g.Target, tmpl.Format(n))
			if err := os.WriteFile(path, src, 0o644); err != nil {
				return fmt.Errorf("colgen: write %s: %w", path, err)
			}
			g.Written = append(g.Written, path)
		}
	}
	return nil
}

// Render executes the named template for n and gofmts the result.
func Render(name string, n *Type) ([]byte, error) {
	initTemplates()

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, n); err != nil {
		return nil, fmt.Errorf("colgen: execute %s for %s: %w", name, n.Name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("colgen: format %s for %s: %w", name, n.Name, err)
	}
	return src, nil
}
