package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/enumext/compiler/gen"
)

// genComplex renders a payload-bearing enum as a sealed interface with one
// struct per variant. The resolver guarantees every variant of such an enum
// carries an explicit discriminant, so the integer round trip is total.
func (d *Dialect) genComplex(f *jen.File, e *gen.Enum) {
	name := e.Name
	sealed := "is" + name
	suffix := e.IntType.MethodSuffix()

	f.Commentf("%s is the %q enum. Exactly the generated %s* variant structs implement it.", name, name, name)
	f.Type().Id(name).Interface(
		jen.Id(sealed).Params(),
		jen.Comment("Ordinal returns the 0-based declaration position of the variant."),
		jen.Id("Ordinal").Params().Int(),
		jen.Comment("VariantName returns the variant identifier as declared."),
		jen.Id("VariantName").Params().String(),
		jen.Comment("PascalSpaced returns the variant name in spaced PascalCase."),
		jen.Id("PascalSpaced").Params().String(),
		jen.Comment("SnakeCase returns the variant name in snake_case."),
		jen.Id("SnakeCase").Params().String(),
		jen.Comment("KebabCase returns the variant name in kebab-case."),
		jen.Id("KebabCase").Params().String(),
		jen.Commentf("As%s returns the declared %s discriminant of the variant.", suffix, e.IntType),
		jen.Id("As"+suffix).Params().Add(intType(e.IntType)),
	)

	f.Commentf("%sCount is the number of %s variants.", name, name)
	f.Const().Id(name + "Count").Op("=").Lit(e.Count())

	for _, v := range e.Variants {
		d.genVariantStruct(f, e, v)
	}

	d.genComplexLookups(f, e)

	f.Commentf("%sDeclaration is the canonical form of the declaration.", name)
	f.Const().Id(name + "Declaration").Op("=").Lit(e.PrettyPrint())

	f.Var().Id("_").Qual(d.helper.RuntimePkg(), "Enum").Op("=").Id(name).Parens(jen.Nil())
}

// genVariantStruct renders one variant struct with its metadata methods.
func (d *Dialect) genVariantStruct(f *jen.File, e *gen.Enum, v *gen.Variant) {
	st := v.StructName()
	sealed := "is" + e.Name
	suffix := e.IntType.MethodSuffix()

	fields := make([]jen.Code, 0, len(v.Payload))
	for i, pf := range v.Payload {
		fields = append(fields, jen.Id(fieldName(i, pf)).Add(goType(pf.Type)))
	}
	f.Commentf("%s is the %q variant of %s.", st, v.Name, e.Name)
	f.Type().Id(st).Struct(fields...)

	f.Func().Params(jen.Id(st)).Id(sealed).Params().Block()

	f.Func().Params(jen.Id(st)).Id("Ordinal").Params().Int().Block(
		jen.Return(jen.Lit(v.Ordinal)),
	)
	f.Func().Params(jen.Id(st)).Id("VariantName").Params().String().Block(
		jen.Return(jen.Lit(v.Name)),
	)
	f.Func().Params(jen.Id(st)).Id("PascalSpaced").Params().String().Block(
		jen.Return(jen.Lit(v.PascalSpaced)),
	)
	f.Func().Params(jen.Id(st)).Id("SnakeCase").Params().String().Block(
		jen.Return(jen.Lit(v.SnakeCase)),
	)
	f.Func().Params(jen.Id(st)).Id("KebabCase").Params().String().Block(
		jen.Return(jen.Lit(v.KebabCase)),
	)
	f.Func().Params(jen.Id(st)).Id("As"+suffix).Params().Add(intType(e.IntType)).Block(
		jen.Return(discriminantLit(v)),
	)
}

// genComplexLookups renders the package-level lookups. Struct values carry
// payloads, so reconstruction returns zero-valued instances.
func (d *Dialect) genComplexLookups(f *jen.File, e *gen.Enum) {
	name := e.Name
	suffix := e.IntType.MethodSuffix()
	plural := gen.Plural(name)

	all := make([]jen.Code, 0, e.Count())
	for _, v := range e.Variants {
		all = append(all, jen.Id(v.StructName()).Values())
	}
	f.Commentf("%s returns a zero-valued instance of every variant in declaration order.", plural)
	f.Func().Id(plural).Params().Index().Id(name).Block(
		jen.Return(jen.Index().Id(name).Values(all...)),
	)

	names := make([]jen.Code, 0, e.Count())
	for _, v := range e.Variants {
		names = append(names, jen.Lit(v.Name))
	}
	f.Commentf("%sNames returns the declared variant names in declaration order.", name)
	f.Func().Id(name + "Names").Params().Index().String().Block(
		jen.Return(jen.Index().String().Values(names...)),
	)

	f.Commentf("%sFromVariantName returns a zero-valued instance of the named variant.", name)
	f.Func().Id(name+"FromVariantName").Params(jen.Id("s").String()).Params(jen.Id(name), jen.Bool()).Block(
		jen.Switch(jen.Id("s")).BlockFunc(func(g *jen.Group) {
			for _, v := range e.Variants {
				g.Case(jen.Lit(v.Name)).Block(jen.Return(jen.Id(v.StructName()).Values(), jen.True()))
			}
		}),
		jen.Return(jen.Nil(), jen.False()),
	)

	if e.Plan.EmitOrdinalReconstruction {
		f.Commentf("%sFromOrdinal returns a zero-valued instance of the variant at the ordinal.", name)
		f.Func().Id(name+"FromOrdinal").Params(jen.Id("ord").Int()).Params(jen.Id(name), jen.Bool()).Block(
			jen.Switch(jen.Id("ord")).BlockFunc(func(g *jen.Group) {
				for _, v := range e.Variants {
					g.Case(jen.Lit(v.Ordinal)).Block(jen.Return(jen.Id(v.StructName()).Values(), jen.True()))
				}
			}),
			jen.Return(jen.Nil(), jen.False()),
		)
	}

	f.Commentf("%sFrom%s returns a zero-valued instance of the variant declared with the discriminant.", name, suffix)
	f.Func().Id(name+"From"+suffix).Params(jen.Id("v").Add(intType(e.IntType))).Params(jen.Id(name), jen.Bool()).Block(
		jen.Switch(jen.Id("v")).BlockFunc(func(g *jen.Group) {
			seen := make(map[string]bool, e.Count())
			for _, v := range e.Variants {
				key := v.ValueString()
				if seen[key] {
					continue
				}
				seen[key] = true
				g.Case(discriminantLit(v)).Block(jen.Return(jen.Id(v.StructName()).Values(), jen.True()))
			}
		}),
		jen.Return(jen.Nil(), jen.False()),
	)
}
