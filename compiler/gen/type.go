package gen

import (
	"fmt"
	"go/token"
	"math/big"
	"strings"

	"github.com/syssam/enumext"
	"github.com/syssam/enumext/compiler/load"
	"github.com/syssam/enumext/schema/enum"
)

// The following types and their exported methods are used by the emission
// dialects to generate the assets.
type (
	// Enum is the resolved metadata of one enum declaration. It is
	// immutable once built: the resolver either returns a fully populated
	// Enum or an error, never partial metadata.
	Enum struct {
		*Config
		schema *load.Enum
		// Name holds the enum name.
		Name string
		// Mode is the resolution mode the declaration was resolved under.
		Mode enum.Mode
		// IntType is the integer type discriminants were evaluated at.
		IntType enum.IntType
		// IntTypeSpecified reports if the declaration or the configuration
		// requested the integer type explicitly rather than by default.
		IntTypeSpecified bool
		// Capabilities is the declared capability snapshot.
		Capabilities CapabilitySet
		// Variants holds the resolved variants in declaration order;
		// Variants[i].Ordinal == i.
		Variants []*Variant
		// Plan is the capability-gated feature plan.
		Plan FeaturePlan

		// Inverse name lookups, built in declaration order. On the
		// theoretical collision of two transcoded forms the earliest
		// declared variant wins, mirroring match-arm precedence.
		byName   map[string]*Variant
		byPascal map[string]*Variant
		bySnake  map[string]*Variant
		byKebab  map[string]*Variant
	}

	// Variant is the resolved identity of one declared variant.
	Variant struct {
		enum *Enum
		// Name is the variant identifier as declared.
		Name string
		// Ordinal is the 0-based position in declaration order.
		Ordinal int
		// Expr is the declared discriminant expression, or empty.
		Expr string
		// Value is the evaluated discriminant at the enum's integer type,
		// or nil if the variant declared none.
		Value *big.Int
		// PascalSpaced, SnakeCase and KebabCase are the derived name forms.
		PascalSpaced string
		SnakeCase    string
		KebabCase    string
		// Payload is the declared payload shape; empty for bare variants.
		Payload enum.Payload
	}
)

// NewEnum resolves one declaration into its metadata. This is the single
// authoritative pass: shape legality, ordinal assignment, discriminant
// evaluation and name transcoding all happen here, in declaration order.
func NewEnum(c *Config, schema *load.Enum) (*Enum, error) {
	if c == nil {
		c = &Config{}
	}
	if schema.Name == "" {
		return nil, enumext.NewParseError("name", nil, "enum declaration is missing a name")
	}
	if !token.IsIdentifier(schema.Name) {
		return nil, enumext.NewParseError("name", schema.Name, "enum name must be a valid identifier")
	}
	mode, err := parseMode(schema.Mode)
	if err != nil {
		return nil, err
	}
	intType, specified, err := chooseIntType(c, schema)
	if err != nil {
		return nil, err
	}
	if len(schema.Variants) == 0 {
		return nil, enumext.NewVariantError(schema.Name, "", "cannot generate methods for an empty enum", nil)
	}

	e := &Enum{
		Config:           c,
		schema:           schema,
		Name:             schema.Name,
		Mode:             mode,
		IntType:          intType,
		IntTypeSpecified: specified,
		Capabilities:     InspectCapabilities(schema.Derives),
		Variants:         make([]*Variant, 0, len(schema.Variants)),
		byName:           make(map[string]*Variant, len(schema.Variants)),
		byPascal:         make(map[string]*Variant, len(schema.Variants)),
		bySnake:          make(map[string]*Variant, len(schema.Variants)),
		byKebab:          make(map[string]*Variant, len(schema.Variants)),
	}

	// Payload presence anywhere makes discriminants mandatory on every
	// variant: ordinal or structural reconstruction cannot synthesize
	// payload field values.
	anyPayload := false
	for _, v := range schema.Variants {
		if !v.Payload.IsEmpty() {
			anyPayload = true
			break
		}
	}

	for _, vs := range schema.Variants {
		v, err := e.resolveVariant(vs, anyPayload)
		if err != nil {
			return nil, err
		}
		e.Variants = append(e.Variants, v)
	}

	e.Plan = PlanFeatures(e.Capabilities, e.HasDiscriminants(), intType)
	return e, nil
}

// resolveVariant validates and resolves the next variant, assigning the next
// ordinal.
func (e *Enum) resolveVariant(vs *load.Variant, anyPayload bool) (*Variant, error) {
	if vs.Name == "" {
		return nil, enumext.NewVariantError(e.Name, "", "variant is missing a name", nil)
	}
	if !token.IsIdentifier(vs.Name) {
		return nil, enumext.NewVariantError(e.Name, vs.Name, "variant name must be a valid identifier", nil)
	}
	if vs.Payload.Mixed() {
		return nil, enumext.NewVariantError(e.Name, vs.Name, "payload mixes named and unnamed fields", nil)
	}
	if e.Mode == enum.ModeSimple && !vs.Payload.IsEmpty() {
		return nil, enumext.NewVariantError(e.Name, vs.Name,
			fmt.Sprintf("unsupported variant %q: payload-bearing variants are not supported in simple mode", vs.Name), nil)
	}
	if anyPayload && vs.Discriminant == "" {
		return nil, enumext.NewVariantError(e.Name, vs.Name,
			"payload-bearing enums require an explicit discriminant on every variant", nil)
	}

	v := &Variant{
		enum:         e,
		Name:         vs.Name,
		Ordinal:      len(e.Variants),
		Expr:         strings.TrimSpace(vs.Discriminant),
		PascalSpaced: PascalSpaced(vs.Name),
		SnakeCase:    SnakeCase(vs.Name),
		KebabCase:    KebabCase(vs.Name),
		Payload:      vs.Payload,
	}
	if v.Expr != "" {
		value, err := evalDiscriminant(v.Expr, e.IntType)
		if err != nil {
			return nil, enumext.NewVariantError(e.Name, vs.Name, "invalid discriminant expression", err)
		}
		v.Value = value
	}

	insert(e.byName, v.Name, v)
	insert(e.byPascal, v.PascalSpaced, v)
	insert(e.bySnake, v.SnakeCase, v)
	insert(e.byKebab, v.KebabCase, v)
	return v, nil
}

// insert records a lookup key, keeping the earliest declared variant on
// collision.
func insert(m map[string]*Variant, key string, v *Variant) {
	if _, ok := m[key]; !ok {
		m[key] = v
	}
}

func parseMode(s string) (enum.Mode, error) {
	switch s {
	case "", enum.ModeSimple.String():
		return enum.ModeSimple, nil
	case enum.ModeComplex.String():
		return enum.ModeComplex, nil
	default:
		return 0, enumext.NewParseError("mode", s, `expected "simple" or "complex"`)
	}
}

// chooseIntType resolves the effective discriminant type: the declaration's
// request wins over the configured default, which wins over the whitelist
// default (usize).
func chooseIntType(c *Config, schema *load.Enum) (enum.IntType, bool, error) {
	if schema.IntType != "" {
		t, ok := enum.ParseIntType(schema.IntType)
		if !ok {
			return 0, false, enumext.NewParseError("int_type", schema.IntType,
				"supported types are "+strings.Join(enum.IntTypeTags(), ", "))
		}
		return t, true, nil
	}
	if c.IntType.Valid() {
		return c.IntType, true, nil
	}
	return enum.DefaultIntType, false, nil
}

// =============================================================================
// Enum methods
// =============================================================================

// Count returns the number of variants.
func (e *Enum) Count() int {
	return len(e.Variants)
}

// HasDiscriminants reports if at least one variant declared a discriminant.
func (e *Enum) HasDiscriminants() bool {
	for _, v := range e.Variants {
		if v.HasDiscriminant() {
			return true
		}
	}
	return false
}

// HasPayloads reports if at least one variant carries a payload.
func (e *Enum) HasPayloads() bool {
	for _, v := range e.Variants {
		if !v.Payload.IsEmpty() {
			return true
		}
	}
	return false
}

// DiscriminantVariants returns the variants that declared a discriminant, in
// declaration order. This is the round-trip table integer conversion is
// generated from; variants without an explicit discriminant never enter it.
func (e *Enum) DiscriminantVariants() []*Variant {
	vs := make([]*Variant, 0, len(e.Variants))
	for _, v := range e.Variants {
		if v.HasDiscriminant() {
			vs = append(vs, v)
		}
	}
	return vs
}

// VariantNames returns the variant identifiers in declaration order.
func (e *Enum) VariantNames() []string {
	names := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		names[i] = v.Name
	}
	return names
}

// VariantByName returns the variant with the given identifier.
func (e *Enum) VariantByName(name string) (*Variant, bool) {
	v, ok := e.byName[name]
	return v, ok
}

// FromPascalSpaced returns the variant whose spaced-Pascal form matches s.
func (e *Enum) FromPascalSpaced(s string) (*Variant, bool) {
	v, ok := e.byPascal[s]
	return v, ok
}

// FromSnakeCase returns the variant whose snake_case form matches s.
func (e *Enum) FromSnakeCase(s string) (*Variant, bool) {
	v, ok := e.bySnake[s]
	return v, ok
}

// FromKebabCase returns the variant whose kebab-case form matches s.
func (e *Enum) FromKebabCase(s string) (*Variant, bool) {
	v, ok := e.byKebab[s]
	return v, ok
}

// EffectiveCapabilities returns the capability set after planning: the
// declared snapshot, widened with the duplication capability when the
// planner auto-added it.
func (e *Enum) EffectiveCapabilities() CapabilitySet {
	caps := e.Capabilities
	if e.Plan.AutoAddDuplication {
		caps.Clone = true
	}
	return caps
}

// =============================================================================
// Variant methods
// =============================================================================

// HasDiscriminant reports if the variant declared an explicit discriminant.
func (v *Variant) HasDiscriminant() bool {
	return v.Value != nil
}

// Constant returns the constant name of the variant in generated code, e.g.
// "TicketStatusOpen".
func (v *Variant) Constant() string {
	return v.enum.Name + v.Name
}

// StructName returns the name of the generated payload struct for this
// variant in complex mode, e.g. "ShapeCircle".
func (v *Variant) StructName() string {
	return v.enum.Name + v.Name
}

// Int64 returns the discriminant as an int64. Valid only for signed types of
// 64 bits or less.
func (v *Variant) Int64() int64 {
	if v.Value == nil {
		return 0
	}
	return v.Value.Int64()
}

// Uint64 returns the discriminant as a uint64. Valid only for unsigned types
// of 64 bits or less.
func (v *Variant) Uint64() uint64 {
	if v.Value == nil {
		return 0
	}
	return v.Value.Uint64()
}

// ValueString returns the evaluated discriminant in decimal form, or the
// empty string if none was declared.
func (v *Variant) ValueString() string {
	if v.Value == nil {
		return ""
	}
	return v.Value.String()
}
