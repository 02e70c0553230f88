package load

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/enumext"
	"github.com/syssam/enumext/schema/enum"
)

// Manifest is a declaration file listing the enums to generate plus the
// shared generation configuration.
type Manifest struct {
	// Package is the import path of the generated package.
	Package string `json:"package,omitempty" yaml:"package,omitempty"`
	// Target is the output directory for generated files.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Header is an optional comment placed at the top of generated files.
	Header string `json:"header,omitempty" yaml:"header,omitempty"`
	// IntType is the default discriminant type tag for enums that do not
	// request one. Empty means the unsigned pointer-sized default.
	IntType string `json:"int_type,omitempty" yaml:"int_type,omitempty"`
	// Features are opt-in generation features by name.
	Features []string `json:"features,omitempty" yaml:"features,omitempty"`
	Enums    []*Enum  `json:"enums,omitempty" yaml:"enums"`
}

// ParseManifest decodes a YAML manifest. Unrecognized configuration keys and
// integer types outside the whitelist are ParseErrors; the declaration never
// reaches resolution.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	m := &Manifest{}
	if err := dec.Decode(m); err != nil {
		return nil, enumext.NewParseError("", nil, fmt.Sprintf("malformed manifest: %v", err))
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadManifest reads and decodes a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: reading manifest %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// validate checks the configuration surface of the manifest. Variant-level
// legality (payload/discriminant combinations, empty variant lists) is the
// resolver's job, not the loader's.
func (m *Manifest) validate() error {
	if err := validIntTypeTag(m.IntType); err != nil {
		return err
	}
	for _, e := range m.Enums {
		if e.Name == "" {
			return enumext.NewParseError("name", nil, "enum declaration is missing a name")
		}
		if err := validIntTypeTag(e.IntType); err != nil {
			return err
		}
		switch e.Mode {
		case "", enum.ModeSimple.String(), enum.ModeComplex.String():
		default:
			return enumext.NewParseError("mode", e.Mode, `expected "simple" or "complex"`)
		}
	}
	return nil
}

func validIntTypeTag(tag string) error {
	if tag == "" {
		return nil
	}
	if _, ok := enum.ParseIntType(tag); !ok {
		return enumext.NewParseError("int_type", tag,
			"supported types are "+strings.Join(enum.IntTypeTags(), ", "))
	}
	return nil
}
