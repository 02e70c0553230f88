package gen

import (
	"strings"

	"github.com/syssam/enumext/schema/enum"
)

// PrettyPrint renders the resolved declaration in its canonical source form:
// capability attributes first, an auto-added duplication capability on its
// own line, the integer type attribute, then the variants indented four
// spaces with a trailing comma each. Two resolutions of the same declaration
// render byte-identical output.
func (e *Enum) PrettyPrint() string {
	var b strings.Builder
	if e.Capabilities.HasDerive {
		b.WriteString("#[derive(")
		b.WriteString(strings.Join(e.Capabilities.Declared(), ", "))
		b.WriteString(")]\n")
	}
	if e.Plan.AutoAddDuplication {
		b.WriteString("#[derive(Clone)]\n")
	}
	if e.IntTypeSpecified || e.Plan.EmitIntegerConversion {
		b.WriteString("#[repr(")
		b.WriteString(e.IntType.String())
		b.WriteString(")]\n")
	}
	b.WriteString("enum ")
	b.WriteString(e.Name)
	b.WriteString(" {\n")
	for _, v := range e.Variants {
		b.WriteString("    ")
		b.WriteString(v.declaration())
		b.WriteString(",\n")
	}
	b.WriteString("}")
	return b.String()
}

// declaration renders one variant as declared: name, payload shape and
// discriminant expression.
func (v *Variant) declaration() string {
	var b strings.Builder
	b.WriteString(v.Name)
	switch v.Payload.Kind() {
	case enum.PayloadPositional:
		b.WriteString("(")
		for i, f := range v.Payload {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Type)
		}
		b.WriteString(")")
	case enum.PayloadNamed:
		b.WriteString(" { ")
		for i, f := range v.Payload {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(f.Type)
		}
		b.WriteString(" }")
	}
	if v.Expr != "" {
		b.WriteString(" = ")
		b.WriteString(v.Expr)
	}
	return b.String()
}
