package gen

import (
	"strings"

	"github.com/syssam/enumext"
	"github.com/syssam/enumext/schema/enum"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the output directory for generated files.
func WithTarget(target string) Option {
	return func(c *Config) error {
		if target == "" {
			return NewConfigError("Target", nil, "target cannot be empty")
		}
		c.Target = target
		return nil
	}
}

// WithPackage sets the output package import path.
// For example: "github.com/org/project/statuses".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithIntType sets the default discriminant type by tag. The tag must be a
// member of the supported whitelist ("i8" through "usize").
func WithIntType(tag string) Option {
	return func(c *Config) error {
		t, ok := enum.ParseIntType(tag)
		if !ok {
			return enumext.NewParseError("IntType", tag,
				"supported types are "+strings.Join(enum.IntTypeTags(), ", "))
		}
		c.IntType = t
		return nil
	}
}

// WithFeatures enables opt-in generation features by name. Unknown feature
// names are ParseErrors.
func WithFeatures(names ...string) Option {
	return func(c *Config) error {
		fs, err := Features(names...)
		if err != nil {
			return err
		}
		c.Features = append(c.Features, fs...)
		return nil
	}
}
