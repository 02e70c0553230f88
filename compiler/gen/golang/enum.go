package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/enumext/compiler/gen"
)

// genSimple renders a payload-free enum: an integer type whose values are
// the variant ordinals, plus the metadata helper surface.
func (d *Dialect) genSimple(f *jen.File, e *gen.Enum) {
	name := e.Name
	r := gen.Receiver(name)
	plural := gen.Plural(name)
	recv := jen.Id(r).Id(name)
	first := e.Variants[0].Constant()
	last := e.Variants[e.Count()-1].Constant()

	f.Commentf("%s is the %q enum. Values are variant ordinals in declaration order.", name, name)
	f.Type().Id(name).Int()

	defs := make([]jen.Code, 0, e.Count())
	for i, v := range e.Variants {
		if i == 0 {
			defs = append(defs, jen.Id(v.Constant()).Id(name).Op("=").Iota())
			continue
		}
		defs = append(defs, jen.Id(v.Constant()))
	}
	f.Commentf("%s variants.", name)
	f.Const().Defs(defs...)

	f.Commentf("%sCount is the number of %s variants.", name, name)
	f.Const().Id(name + "Count").Op("=").Lit(e.Count())

	all := make([]jen.Code, 0, e.Count())
	for _, v := range e.Variants {
		all = append(all, jen.Id(v.Constant()))
	}
	f.Commentf("%s returns every variant in declaration order.", plural)
	f.Func().Id(plural).Params().Index().Id(name).Block(
		jen.Return(jen.Index().Id(name).Values(all...)),
	)

	f.Comment("Ordinal returns the 0-based declaration position of the variant.")
	f.Func().Params(recv.Clone()).Id("Ordinal").Params().Int().Block(
		jen.Return(jen.Int().Parens(jen.Id(r))),
	)

	f.Comment("Valid reports whether the value names a declared variant.")
	f.Func().Params(recv.Clone()).Id("Valid").Params().Bool().Block(
		jen.Return(jen.Id(r).Op(">=").Lit(0).Op("&&").Id(r).Op("<").Id(name + "Count")),
	)

	d.genOrdinalLookups(f, e)
	d.genNameForms(f, e)
	d.genInverseLookups(f, e)
	if e.Plan.EmitIntegerConversion {
		d.genIntConversion(f, e)
	}
	d.genNavigation(f, e, first, last)
	d.genQueries(f, e)
	d.genSlicing(f, e)

	f.Commentf("%sDeclaration is the canonical form of the declaration.", name)
	f.Const().Id(name + "Declaration").Op("=").Lit(e.PrettyPrint())

	if d.helper.FeatureEnabled(gen.FeatureTextMarshal.Name) {
		d.genTextMarshal(f, e)
	}
	if d.helper.FeatureEnabled(gen.FeatureRandom.Name) {
		f.Commentf("Random%s returns a uniformly random variant.", name)
		f.Func().Id("Random" + name).Params().Id(name).Block(
			jen.Return(jen.Id(name).Parens(jen.Qual("math/rand/v2", "IntN").Call(jen.Id(name + "Count")))),
		)
	}

	f.Var().Id("_").Qual(d.helper.RuntimePkg(), "Enum").Op("=").Id(first)
}

// genOrdinalLookups emits the reference lookup and, when the plan allows it,
// value reconstruction from an ordinal.
func (d *Dialect) genOrdinalLookups(f *jen.File, e *gen.Enum) {
	name := e.Name
	first := e.Variants[0].Constant()

	f.Commentf("Ref%sFromOrdinal returns a pointer to the variant at the ordinal, or nil.", name)
	f.Func().Id("Ref"+name+"FromOrdinal").Params(jen.Id("ord").Int()).Op("*").Id(name).Block(
		jen.If(jen.Id("ord").Op("<").Lit(0).Op("||").Id("ord").Op(">=").Id(name+"Count")).Block(
			jen.Return(jen.Nil()),
		),
		jen.Id("v").Op(":=").Id(name).Parens(jen.Id("ord")),
		jen.Return(jen.Op("&").Id("v")),
	)

	if !e.Plan.EmitOrdinalReconstruction {
		return
	}
	f.Commentf("%sFromOrdinal returns the variant at the ordinal.", name)
	f.Func().Id(name+"FromOrdinal").Params(jen.Id("ord").Int()).Params(jen.Id(name), jen.Bool()).Block(
		jen.If(jen.Id("ord").Op("<").Lit(0).Op("||").Id("ord").Op(">=").Id(name+"Count")).Block(
			jen.Return(jen.Id(first), jen.False()),
		),
		jen.Return(jen.Id(name).Parens(jen.Id("ord")), jen.True()),
	)
}

// genNameForms emits the name-form getters backed by per-variant switches.
func (d *Dialect) genNameForms(f *jen.File, e *gen.Enum) {
	name := e.Name
	r := gen.Receiver(name)
	recv := jen.Id(r).Id(name)

	forms := []struct {
		method string
		doc    string
		value  func(v *gen.Variant) string
	}{
		{"VariantName", "VariantName returns the variant identifier as declared.", func(v *gen.Variant) string { return v.Name }},
		{"PascalSpaced", `PascalSpaced returns the variant name in spaced PascalCase ("In QA").`, func(v *gen.Variant) string { return v.PascalSpaced }},
		{"SnakeCase", `SnakeCase returns the variant name in snake_case ("in_qa").`, func(v *gen.Variant) string { return v.SnakeCase }},
		{"KebabCase", `KebabCase returns the variant name in kebab-case ("in-qa").`, func(v *gen.Variant) string { return v.KebabCase }},
	}
	for _, form := range forms {
		form := form
		f.Comment(form.doc)
		f.Func().Params(recv.Clone()).Id(form.method).Params().String().Block(
			jen.Switch(jen.Id(r)).BlockFunc(func(g *jen.Group) {
				for _, v := range e.Variants {
					g.Case(jen.Id(v.Constant())).Block(jen.Return(jen.Lit(form.value(v))))
				}
			}),
			jen.Return(jen.Lit("")),
		)
	}

	f.Comment("String implements fmt.Stringer using the declared variant name.")
	f.Func().Params(recv.Clone()).Id("String").Params().String().Block(
		jen.Return(jen.Id(r).Dot("VariantName").Call()),
	)

	names := make([]jen.Code, 0, e.Count())
	for _, v := range e.Variants {
		names = append(names, jen.Lit(v.Name))
	}
	f.Commentf("%sNames returns the declared variant names in declaration order.", name)
	f.Func().Id(name + "Names").Params().Index().String().Block(
		jen.Return(jen.Index().String().Values(names...)),
	)
}

// genInverseLookups emits the four string-to-variant lookups. Lookup tables
// are rendered in declaration order; if two variants transcode to the same
// string, only the earliest declared one is emitted.
func (d *Dialect) genInverseLookups(f *jen.File, e *gen.Enum) {
	name := e.Name
	first := e.Variants[0].Constant()

	lookups := []struct {
		fn  string
		doc string
		key func(v *gen.Variant) string
	}{
		{name + "FromVariantName", "looks up a variant by its declared name", func(v *gen.Variant) string { return v.Name }},
		{name + "FromPascalSpaced", "looks up a variant by its spaced PascalCase form", func(v *gen.Variant) string { return v.PascalSpaced }},
		{name + "FromSnakeCase", "looks up a variant by its snake_case form", func(v *gen.Variant) string { return v.SnakeCase }},
		{name + "FromKebabCase", "looks up a variant by its kebab-case form", func(v *gen.Variant) string { return v.KebabCase }},
	}
	for _, lk := range lookups {
		lk := lk
		f.Commentf("%s %s.", lk.fn, lk.doc)
		f.Func().Id(lk.fn).Params(jen.Id("s").String()).Params(jen.Id(name), jen.Bool()).Block(
			jen.Switch(jen.Id("s")).BlockFunc(func(g *jen.Group) {
				seen := make(map[string]bool, e.Count())
				for _, v := range e.Variants {
					key := lk.key(v)
					if seen[key] {
						continue
					}
					seen[key] = true
					g.Case(jen.Lit(key)).Block(jen.Return(jen.Id(v.Constant()), jen.True()))
				}
			}),
			jen.Return(jen.Id(first), jen.False()),
		)
	}
}

// genIntConversion emits the discriminant round trip. Only variants with an
// explicit discriminant enter the conversion tables.
func (d *Dialect) genIntConversion(f *jen.File, e *gen.Enum) {
	name := e.Name
	r := gen.Receiver(name)
	recv := jen.Id(r).Id(name)
	suffix := e.IntType.MethodSuffix()
	goT := intType(e.IntType)
	first := e.Variants[0].Constant()
	dv := e.DiscriminantVariants()

	f.Commentf("As%s returns the declared %s discriminant of the variant.", suffix, e.IntType)
	f.Func().Params(recv.Clone()).Id("As"+suffix).Params().Params(goT, jen.Bool()).Block(
		jen.Switch(jen.Id(r)).BlockFunc(func(g *jen.Group) {
			for _, v := range dv {
				g.Case(jen.Id(v.Constant())).Block(jen.Return(discriminantLit(v), jen.True()))
			}
		}),
		jen.Return(jen.Lit(0), jen.False()),
	)

	f.Commentf("%sFrom%s returns the variant declared with the discriminant.", name, suffix)
	f.Func().Id(name+"From"+suffix).Params(jen.Id("v").Add(intType(e.IntType))).Params(jen.Id(name), jen.Bool()).Block(
		jen.Switch(jen.Id("v")).BlockFunc(func(g *jen.Group) {
			seen := make(map[string]bool, len(dv))
			for _, v := range dv {
				key := v.ValueString()
				if seen[key] {
					continue
				}
				seen[key] = true
				g.Case(discriminantLit(v)).Block(jen.Return(jen.Id(v.Constant()), jen.True()))
			}
		}),
		jen.Return(jen.Id(first), jen.False()),
	)

	f.Commentf("Must%sFrom%s is like %sFrom%s but panics on unknown values.", name, suffix, name, suffix)
	f.Func().Id("Must"+name+"From"+suffix).Params(jen.Id("v").Add(intType(e.IntType))).Id(name).Block(
		jen.List(jen.Id("t"), jen.Id("ok")).Op(":=").Id(name+"From"+suffix).Call(jen.Id("v")),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Panic(jen.Qual(d.helper.RuntimePkg(), "NewUnknownVariantError").Call(jen.Lit(name), jen.Id("v"))),
		),
		jen.Return(jen.Id("t")),
	)
}

// genNavigation emits neighbor movement and position predicates.
func (d *Dialect) genNavigation(f *jen.File, e *gen.Enum, first, last string) {
	name := e.Name
	r := gen.Receiver(name)
	recv := jen.Id(r).Id(name)

	f.Comment("Next returns the following variant, wrapping after the last one.")
	f.Func().Params(recv.Clone()).Id("Next").Params().Id(name).Block(
		jen.Return(jen.Id(name).Parens(jen.Parens(jen.Int().Parens(jen.Id(r)).Op("+").Lit(1)).Op("%").Id(name + "Count"))),
	)

	f.Comment("Previous returns the preceding variant, wrapping before the first one.")
	f.Func().Params(recv.Clone()).Id("Previous").Params().Id(name).Block(
		jen.Return(jen.Id(name).Parens(jen.Parens(jen.Int().Parens(jen.Id(r)).Op("+").Id(name + "Count").Op("-").Lit(1)).Op("%").Id(name + "Count"))),
	)

	f.Comment("NextLinear returns the following variant without wrapping.")
	f.Func().Params(recv.Clone()).Id("NextLinear").Params().Params(jen.Id(name), jen.Bool()).Block(
		jen.If(jen.Id(r).Dot("IsLast").Call()).Block(
			jen.Return(jen.Id(r), jen.False()),
		),
		jen.Return(jen.Id(r).Op("+").Lit(1), jen.True()),
	)

	f.Comment("PreviousLinear returns the preceding variant without wrapping.")
	f.Func().Params(recv.Clone()).Id("PreviousLinear").Params().Params(jen.Id(name), jen.Bool()).Block(
		jen.If(jen.Id(r).Dot("IsFirst").Call()).Block(
			jen.Return(jen.Id(r), jen.False()),
		),
		jen.Return(jen.Id(r).Op("-").Lit(1), jen.True()),
	)

	f.Comment("IsFirst reports whether the variant is the first declared one.")
	f.Func().Params(recv.Clone()).Id("IsFirst").Params().Bool().Block(
		jen.Return(jen.Id(r).Op("==").Id(first)),
	)

	f.Comment("IsLast reports whether the variant is the last declared one.")
	f.Func().Params(recv.Clone()).Id("IsLast").Params().Bool().Block(
		jen.Return(jen.Id(r).Op("==").Id(last)),
	)

	f.Comment("ComesBefore reports whether the variant was declared before the other.")
	f.Func().Params(recv.Clone()).Id("ComesBefore").Params(jen.Id("other").Id(name)).Bool().Block(
		jen.Return(jen.Id(r).Op("<").Id("other")),
	)

	f.Comment("ComesAfter reports whether the variant was declared after the other.")
	f.Func().Params(recv.Clone()).Id("ComesAfter").Params(jen.Id("other").Id(name)).Bool().Block(
		jen.Return(jen.Id(r).Op(">").Id("other")),
	)
}

// genQueries emits the name-based variant filters.
func (d *Dialect) genQueries(f *jen.File, e *gen.Enum) {
	name := e.Name
	plural := gen.Plural(name)

	queries := []struct {
		fn   string
		doc  string
		pred string
		arg  string
	}{
		{plural + "Containing", "returns the variants whose name contains the substring", "Contains", "substr"},
		{plural + "WithPrefix", "returns the variants whose name starts with the prefix", "HasPrefix", "prefix"},
		{plural + "WithSuffix", "returns the variants whose name ends with the suffix", "HasSuffix", "suffix"},
	}
	for _, q := range queries {
		q := q
		f.Commentf("%s %s, in declaration order.", q.fn, q.doc)
		f.Func().Id(q.fn).Params(jen.Id(q.arg).String()).Index().Id(name).Block(
			jen.Var().Id("out").Index().Id(name),
			jen.For(jen.List(jen.Id("_"), jen.Id("v")).Op(":=").Range().Id(plural).Call()).Block(
				jen.If(jen.Qual("strings", q.pred).Call(jen.Id("v").Dot("VariantName").Call(), jen.Id(q.arg))).Block(
					jen.Id("out").Op("=").Append(jen.Id("out"), jen.Id("v")),
				),
			),
			jen.Return(jen.Id("out")),
		)
	}
}

// genSlicing emits ordinal-range helpers over the values table.
func (d *Dialect) genSlicing(f *jen.File, e *gen.Enum) {
	name := e.Name
	plural := gen.Plural(name)

	f.Commentf("%sSlice returns the variants with ordinals in [start, end), clamped to the declared range.", name)
	f.Func().Id(name+"Slice").Params(jen.Id("start"), jen.Id("end").Int()).Index().Id(name).Block(
		jen.If(jen.Id("start").Op("<").Lit(0)).Block(jen.Id("start").Op("=").Lit(0)),
		jen.If(jen.Id("end").Op(">").Id(name+"Count")).Block(jen.Id("end").Op("=").Id(name+"Count")),
		jen.If(jen.Id("start").Op(">=").Id("end")).Block(jen.Return(jen.Nil())),
		jen.Return(jen.Id(plural).Call().Index(jen.Id("start"), jen.Id("end"))),
	)

	f.Commentf("%sRange is an alias for %sSlice.", name, name)
	f.Func().Id(name+"Range").Params(jen.Id("start"), jen.Id("end").Int()).Index().Id(name).Block(
		jen.Return(jen.Id(name + "Slice").Call(jen.Id("start"), jen.Id("end"))),
	)

	f.Commentf("%sFirstN returns the first n variants in declaration order.", plural)
	f.Func().Id(plural+"FirstN").Params(jen.Id("n").Int()).Index().Id(name).Block(
		jen.Return(jen.Id(name + "Slice").Call(jen.Lit(0), jen.Id("n"))),
	)

	f.Commentf("%sLastN returns the last n variants in declaration order.", plural)
	f.Func().Id(plural+"LastN").Params(jen.Id("n").Int()).Index().Id(name).Block(
		jen.Return(jen.Id(name + "Slice").Call(jen.Id(name+"Count").Op("-").Id("n"), jen.Id(name+"Count"))),
	)
}

// genTextMarshal emits encoding.TextMarshaler/TextUnmarshaler backed by the
// snake_case name form.
func (d *Dialect) genTextMarshal(f *jen.File, e *gen.Enum) {
	name := e.Name
	r := gen.Receiver(name)

	f.Comment("MarshalText implements encoding.TextMarshaler using the snake_case form.")
	f.Func().Params(jen.Id(r).Id(name)).Id("MarshalText").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.Return(jen.Index().Byte().Parens(jen.Id(r).Dot("SnakeCase").Call()), jen.Nil()),
	)

	f.Comment("UnmarshalText implements encoding.TextUnmarshaler using the snake_case form.")
	f.Func().Params(jen.Id(r).Op("*").Id(name)).Id("UnmarshalText").Params(jen.Id("text").Index().Byte()).Error().Block(
		jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id(name+"FromSnakeCase").Call(jen.String().Parens(jen.Id("text"))),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Qual(d.helper.RuntimePkg(), "NewUnknownVariantError").Call(jen.Lit(name), jen.String().Parens(jen.Id("text")))),
		),
		jen.Op("*").Id(r).Op("=").Id("v"),
		jen.Return(jen.Nil()),
	)
}
