package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Generator renders a resolved graph to disk. Enums are independent, so
// files are generated in parallel; within one file the content is fully
// determined by the resolved metadata.
type Generator struct {
	graph   *Graph
	outDir  string
	pkg     string
	workers int
	dialect Dialect
}

// NewGenerator creates a generator for the graph.
// You must call WithDialect before Generate.
//
// Example:
//
//	import "github.com/syssam/enumext/compiler/gen/golang"
//
//	g := gen.NewGenerator(graph, outDir)
//	g.WithDialect(golang.NewDialect(g))
//	err := g.Generate(ctx)
func NewGenerator(g *Graph, outDir string) *Generator {
	return &Generator{
		graph:   g,
		outDir:  outDir,
		pkg:     filepath.Base(outDir),
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *Generator) WithPackage(pkg string) *Generator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithDialect sets the dialect used to render enums.
func (g *Generator) WithDialect(d Dialect) *Generator {
	if d != nil {
		g.dialect = d
	}
	return g
}

// Generate renders every enum in the graph to its own file under the output
// directory. The file name is the snake_case enum name. The first failing
// enum aborts the run.
func (g *Generator) Generate(ctx context.Context) error {
	if g.dialect == nil {
		return NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)

	for _, e := range g.graph.Nodes {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return g.generateEnum(e)
			}
		})
	}

	return eg.Wait()
}

// generateEnum renders one enum and writes it to disk.
func (g *Generator) generateEnum(e *Enum) error {
	name := SnakeCase(e.Name) + ".go"
	f, err := g.dialect.GenEnum(e)
	if err != nil {
		return NewGenerationError(e.Name, name, "rendering failed", err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError(e.Name, name, "rendering failed", err)
	}

	path := filepath.Join(g.outDir, name)
	// goimports prunes unused imports and normalizes formatting, keeping
	// regenerated output byte-stable.
	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return NewGenerationError(e.Name, name, "formatting failed", err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return NewGenerationError(e.Name, name, "writing failed", err)
	}
	return nil
}

// =============================================================================
// DialectHelper implementation
// =============================================================================

// NewFile creates a Jennifer file with the configured header and the
// standard "Code generated" marker.
func (g *Generator) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	if h := g.graph.Header; h != "" {
		f.HeaderComment(h)
	}
	f.HeaderComment("Code generated by enumext. DO NOT EDIT.")
	return f
}

// Pkg returns the output package name.
func (g *Generator) Pkg() string {
	return g.pkg
}

// RuntimePkg returns the import path of the runtime contract package.
func (g *Generator) RuntimePkg() string {
	return "github.com/syssam/enumext"
}

// FeatureEnabled reports if the named opt-in feature is enabled.
func (g *Generator) FeatureEnabled(name string) bool {
	return g.graph.Config.FeatureEnabled(name)
}

// Graph returns the resolved graph.
func (g *Generator) Graph() *Graph {
	return g.graph
}

var _ DialectHelper = (*Generator)(nil)
