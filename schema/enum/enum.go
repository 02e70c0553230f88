package enum

// Mode selects the variant resolution mode of a declaration.
type Mode uint8

// Resolution modes. Simple mode rejects payload-bearing variants; complex
// mode admits them but requires an explicit discriminant on every variant.
const (
	ModeSimple Mode = iota
	ModeComplex
)

// String returns the name of the mode.
func (m Mode) String() string {
	if m == ModeComplex {
		return "complex"
	}
	return "simple"
}

// Descriptor is the plain-data form of an enum declaration, consumed by the
// loader and the resolver. Variant order is declaration order.
type Descriptor struct {
	// Name is the enum identifier.
	Name string
	// Mode is the resolution mode.
	Mode Mode
	// IntType is the requested discriminant type. Invalid (zero) means the
	// declaration did not request one and the default applies.
	IntType IntType
	// Derives are the declared capability tokens, in declared order.
	Derives []string
	// Variants are the variant descriptors, in declared order.
	Variants []*VariantDescriptor
}

// VariantDescriptor is the plain-data form of one variant.
type VariantDescriptor struct {
	// Name is the variant identifier.
	Name string
	// Discriminant is the discriminant expression, or empty if none was
	// declared.
	Discriminant string
	// Payload is the ordered payload field list; empty for bare variants.
	Payload Payload
}

// Builder constructs an enum Descriptor.
type Builder struct {
	desc Descriptor
}

// New returns a builder for an enum declaration with the given name.
func New(name string) *Builder {
	return &Builder{desc: Descriptor{Name: name}}
}

// Complex switches the declaration to complex mode, admitting
// payload-bearing variants.
func (b *Builder) Complex() *Builder {
	b.desc.Mode = ModeComplex
	return b
}

// IntType sets the requested discriminant type.
func (b *Builder) IntType(t IntType) *Builder {
	b.desc.IntType = t
	return b
}

// Derive appends capability tokens in declared order. Unknown tokens are
// kept; the inspector ignores them.
func (b *Builder) Derive(tokens ...string) *Builder {
	b.desc.Derives = append(b.desc.Derives, tokens...)
	return b
}

// Variants appends variant declarations in order.
func (b *Builder) Variants(vs ...*VariantBuilder) *Builder {
	for _, v := range vs {
		b.desc.Variants = append(b.desc.Variants, v.Descriptor())
	}
	return b
}

// Descriptor returns the built declaration.
func (b *Builder) Descriptor() *Descriptor {
	return &b.desc
}

// VariantBuilder constructs one variant declaration.
type VariantBuilder struct {
	desc VariantDescriptor
}

// Variant returns a builder for a variant with the given identifier.
func Variant(name string) *VariantBuilder {
	return &VariantBuilder{desc: VariantDescriptor{Name: name}}
}

// Discriminant sets the discriminant expression. The expression is evaluated
// by the resolver at the enum's integer type.
func (b *VariantBuilder) Discriminant(expr string) *VariantBuilder {
	b.desc.Discriminant = expr
	return b
}

// Positional appends unnamed payload fields with the given types.
func (b *VariantBuilder) Positional(types ...string) *VariantBuilder {
	for _, t := range types {
		b.desc.Payload = append(b.desc.Payload, PayloadField{Type: t})
	}
	return b
}

// Field appends a named payload field.
func (b *VariantBuilder) Field(name, typ string) *VariantBuilder {
	b.desc.Payload = append(b.desc.Payload, PayloadField{Name: name, Type: typ})
	return b
}

// Descriptor returns the built variant declaration.
func (b *VariantBuilder) Descriptor() *VariantDescriptor {
	return &b.desc
}
