// Package golang renders resolved enums as Go source.
//
// The dialect emits one file per enum containing the full helper surface:
// the enum type and its constants, ordinal and name-form accessors with
// inverse lookups, plan-gated integer round-trip conversion, neighbor
// navigation, name queries, slicing helpers and the canonical declaration
// constant. Complex-mode enums with payloads render as a sealed interface
// with one struct per variant.
//
// Usage:
//
//	import (
//	    "github.com/syssam/enumext/compiler/gen"
//	    "github.com/syssam/enumext/compiler/gen/golang"
//	)
//
//	g := gen.NewGenerator(graph, outDir)
//	g.WithDialect(golang.NewDialect(g))
//	err := g.Generate(ctx)
package golang
