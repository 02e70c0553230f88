package golang

import (
	"context"
	"path/filepath"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/enumext/compiler/gen"
	"github.com/syssam/enumext/schema/enum"
)

// Generate renders a resolved graph with the Go dialect. This is the
// recommended entry point for programmatic generation.
//
// Example:
//
//	graph, err := gen.GraphFromManifest(m)
//	...
//	err = golang.Generate(ctx, graph)
func Generate(ctx context.Context, g *gen.Graph) error {
	if g.Config == nil || g.Config.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	generator := gen.NewGenerator(g, g.Config.Target)
	if g.Config.Package != "" {
		generator.WithPackage(filepath.Base(g.Config.Package))
	}
	return generator.WithDialect(NewDialect(generator)).Generate(ctx)
}

// Dialect renders enums as Go source files.
type Dialect struct {
	helper gen.DialectHelper
}

// NewDialect creates the Go dialect backed by the given generator helper.
func NewDialect(h gen.DialectHelper) *Dialect {
	return &Dialect{helper: h}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "golang"
}

// GenEnum renders the full helper surface of one resolved enum.
func (d *Dialect) GenEnum(e *gen.Enum) (*jen.File, error) {
	// The core resolves 128-bit types, but Go has no integer type to carry
	// them in generated signatures.
	if e.IntType.GoType() == "" && (e.IntTypeSpecified || e.Plan.EmitIntegerConversion) {
		return nil, gen.NewGenerationError(e.Name, "",
			e.IntType.String()+" discriminants are not representable in Go", nil)
	}
	f := d.helper.NewFile(d.helper.Pkg())
	if e.Mode == enum.ModeComplex && e.HasPayloads() {
		d.genComplex(f, e)
	} else {
		d.genSimple(f, e)
	}
	return f, nil
}

var _ gen.Dialect = (*Dialect)(nil)
