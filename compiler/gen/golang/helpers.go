package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/enumext/compiler/gen"
	"github.com/syssam/enumext/schema/enum"
)

// goType maps a declared payload type tag to Go code. Unknown tags pass
// through as identifiers so user-defined types keep working.
func goType(tag string) jen.Code {
	switch tag {
	case "i8":
		return jen.Int8()
	case "u8":
		return jen.Uint8()
	case "i16":
		return jen.Int16()
	case "u16":
		return jen.Uint16()
	case "i32":
		return jen.Int32()
	case "u32":
		return jen.Uint32()
	case "i64":
		return jen.Int64()
	case "u64":
		return jen.Uint64()
	case "isize":
		return jen.Int()
	case "usize":
		return jen.Uint()
	case "f32":
		return jen.Float32()
	case "f64":
		return jen.Float64()
	case "bool":
		return jen.Bool()
	case "char":
		return jen.Rune()
	case "String", "str", "&str":
		return jen.String()
	default:
		return jen.Id(tag)
	}
}

// intType returns the Go code for the enum's discriminant type.
func intType(t enum.IntType) jen.Code {
	return jen.Id(t.GoType())
}

// fieldName derives the exported Go field name of a payload field:
// positional fields become F0, F1, ..., named fields are pascalized.
func fieldName(i int, f enum.PayloadField) string {
	if f.Name == "" {
		return fmt.Sprintf("F%d", i)
	}
	return gen.Pascal(f.Name)
}

// discriminantLit renders an evaluated discriminant as a decimal literal.
func discriminantLit(v *gen.Variant) jen.Code {
	return jen.Id(v.ValueString())
}
