package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/syssam/enumext"
	"github.com/syssam/enumext/compiler/gen"
	"github.com/syssam/enumext/compiler/gen/golang"
	"github.com/syssam/enumext/compiler/load"
	"github.com/syssam/enumext/schema/enum"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Resolve a manifest and generate enum helpers."`
	Check   CheckCmd   `cmd:"" help:"Resolve a manifest without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Manifest string   `arg:"" help:"Path to the YAML enum manifest." type:"existingfile"`
	Target   string   `help:"Output directory, overrides the manifest target." short:"t"`
	Package  string   `help:"Output package import path, overrides the manifest." short:"p"`
	IntType  string   `help:"Default discriminant type tag (i8 through usize)." name:"int-type"`
	Feature  []string `help:"Enable opt-in generation features." short:"F"`
	Workers  int      `help:"Number of parallel workers."`
	Watch    bool     `help:"Watch the manifest and regenerate on change." short:"w"`
}

func (c *GenCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.generate(ctx); err != nil {
		if !c.Watch {
			return err
		}
		// In watch mode a broken manifest is not fatal; report and wait
		// for the next edit.
		fmt.Fprintln(os.Stderr, "enumext:", err)
	}
	if c.Watch {
		return c.watch(ctx)
	}
	return nil
}

func (c *GenCmd) generate(ctx context.Context) error {
	graph, err := c.resolve()
	if err != nil {
		return err
	}
	if graph.Config.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	generator := gen.NewGenerator(graph, graph.Config.Target)
	if c.Workers > 0 {
		generator.WithWorkers(c.Workers)
	}
	if graph.Config.Package != "" {
		generator.WithPackage(pkgBase(graph.Config.Package))
	}
	return generator.WithDialect(golang.NewDialect(generator)).Generate(ctx)
}

// resolve loads the manifest, applies flag overrides and resolves the graph.
func (c *GenCmd) resolve() (*gen.Graph, error) {
	m, err := load.LoadManifest(c.Manifest)
	if err != nil {
		return nil, err
	}
	cfg, err := gen.ConfigFromManifest(m)
	if err != nil {
		return nil, err
	}
	if c.Target != "" {
		cfg.Target = c.Target
	}
	if c.Package != "" {
		cfg.Package = c.Package
	}
	if c.IntType != "" {
		t, ok := enum.ParseIntType(c.IntType)
		if !ok {
			return nil, enumext.NewParseError("int-type", c.IntType,
				"supported types are "+strings.Join(enum.IntTypeTags(), ", "))
		}
		cfg.IntType = t
	}
	if len(c.Feature) > 0 {
		fs, err := gen.Features(c.Feature...)
		if err != nil {
			return nil, err
		}
		cfg.Features = append(cfg.Features, fs...)
	}
	return gen.NewGraph(cfg, m.Enums...)
}

type CheckCmd struct {
	Manifest string `arg:"" help:"Path to the YAML enum manifest." type:"existingfile"`
}

func (c *CheckCmd) Run() error {
	m, err := load.LoadManifest(c.Manifest)
	if err != nil {
		return err
	}
	cfg, err := gen.ConfigFromManifest(m)
	if err != nil {
		return err
	}
	graph, err := gen.NewGraph(cfg, m.Enums...)
	if err != nil {
		return err
	}
	for _, e := range graph.Nodes {
		extras := make([]string, 0, 2)
		if e.Plan.EmitIntegerConversion {
			extras = append(extras, "int conversion")
		}
		if e.Plan.AutoAddDuplication {
			extras = append(extras, "Clone auto-added")
		}
		suffix := ""
		if len(extras) > 0 {
			suffix = ", " + strings.Join(extras, ", ")
		}
		fmt.Printf("%s: %d variants (%s%s)\n", e.Name, e.Count(), e.IntType, suffix)
	}
	return nil
}

// pkgBase returns the last element of an import path.
func pkgBase(pkg string) string {
	if i := strings.LastIndexByte(pkg, '/'); i >= 0 {
		return pkg[i+1:]
	}
	return pkg
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("enumext"),
		kong.Description("Generates enriched enum helpers from declarative manifests."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
