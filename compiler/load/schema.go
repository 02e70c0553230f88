// Package load defines the wire format of enum declarations and loads
// declaration manifests from disk.
package load

import (
	"github.com/syssam/enumext/schema/enum"
)

// Enum represents one enum declaration as loaded from a manifest or built
// from a schema descriptor. Variant order is declaration order.
type Enum struct {
	Name string `json:"name,omitempty" yaml:"name"`
	// Mode is "simple" (default) or "complex". Complex mode admits
	// payload-bearing variants.
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"`
	// IntType is the requested discriminant type tag ("i8" through
	// "usize"). Empty means the configuration default applies.
	IntType string `json:"int_type,omitempty" yaml:"int_type,omitempty"`
	// Derives are the declared capability tokens, in declared order.
	Derives  []string   `json:"derives,omitempty" yaml:"derives,omitempty"`
	Variants []*Variant `json:"variants,omitempty" yaml:"variants"`
}

// Variant represents one variant declaration.
type Variant struct {
	Name string `json:"name,omitempty" yaml:"name"`
	// Discriminant is the discriminant expression, or empty if none.
	Discriminant string `json:"discriminant,omitempty" yaml:"discriminant,omitempty"`
	// Payload is the ordered payload field list; empty for bare variants.
	Payload enum.Payload `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// FromDescriptor converts a schema descriptor built with the schema/enum
// builders into its wire form.
func FromDescriptor(d *enum.Descriptor) *Enum {
	e := &Enum{
		Name:    d.Name,
		Derives: append([]string(nil), d.Derives...),
	}
	if d.Mode == enum.ModeComplex {
		e.Mode = d.Mode.String()
	}
	if d.IntType.Valid() {
		e.IntType = d.IntType.String()
	}
	for _, v := range d.Variants {
		e.Variants = append(e.Variants, &Variant{
			Name:         v.Name,
			Discriminant: v.Discriminant,
			Payload:      append(enum.Payload(nil), v.Payload...),
		})
	}
	return e
}
