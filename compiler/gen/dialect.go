package gen

import "github.com/dave/jennifer/jen"

// Dialect renders resolved enums into source files for one target language.
//
// The generator orchestrates resolution, parallel execution and file
// writing; dialects only translate metadata into code. A dialect must be
// safe for concurrent GenEnum calls on distinct enums.
type Dialect interface {
	// Name returns the dialect name (e.g. "golang").
	Name() string
	// GenEnum renders the full helper surface of one resolved enum.
	GenEnum(e *Enum) (*jen.File, error)
}

// DialectHelper exposes generator services to dialect implementations
// without them importing the generator type.
type DialectHelper interface {
	// NewFile creates a Jennifer file with the standard header comment.
	NewFile(pkg string) *jen.File
	// Pkg returns the output package name.
	Pkg() string
	// RuntimePkg returns the import path of the runtime contract package.
	RuntimePkg() string
	// FeatureEnabled reports if the named opt-in feature is enabled.
	FeatureEnabled(name string) bool
}
