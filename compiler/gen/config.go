package gen

import (
	"strings"

	"github.com/syssam/enumext"
	"github.com/syssam/enumext/compiler/load"
	"github.com/syssam/enumext/schema/enum"
)

// Config holds the shared generation configuration of a graph.
type Config struct {
	// Target is the output directory for generated files.
	Target string
	// Package is the import path of the generated package.
	Package string
	// Header is an optional comment placed at the top of each generated
	// file, before the standard "Code generated" marker.
	Header string
	// IntType is the default discriminant type for enums that do not
	// request one. Invalid (zero) means the unsigned pointer-sized default.
	IntType enum.IntType
	// Features are the enabled opt-in generation features.
	Features []Feature
}

// NewConfig builds a Config from functional options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ConfigFromManifest builds a Config from a loaded manifest. Unknown feature
// names are ParseErrors.
func ConfigFromManifest(m *load.Manifest) (*Config, error) {
	c := &Config{
		Target:  m.Target,
		Package: m.Package,
		Header:  m.Header,
	}
	if m.IntType != "" {
		t, ok := enum.ParseIntType(m.IntType)
		if !ok {
			return nil, enumext.NewParseError("int_type", m.IntType,
				"supported types are "+strings.Join(enum.IntTypeTags(), ", "))
		}
		c.IntType = t
	}
	fs, err := Features(m.Features...)
	if err != nil {
		return nil, err
	}
	c.Features = fs
	return c, nil
}

// DefaultIntType returns the configured default discriminant type, falling
// back to the unsigned pointer-sized type.
func (c *Config) DefaultIntType() enum.IntType {
	if c != nil && c.IntType.Valid() {
		return c.IntType
	}
	return enum.DefaultIntType
}

// FeatureEnabled reports if the named feature is enabled.
func (c *Config) FeatureEnabled(name string) bool {
	if c == nil {
		return false
	}
	for _, f := range c.Features {
		if f.Name == name {
			return true
		}
	}
	return false
}
