package enumext

// Enum is implemented by every generated enum type.
//
// The methods expose the metadata resolved at generation time: the 0-based
// declaration position and the four name forms derived from the variant
// identifier.
type Enum interface {
	// Ordinal returns the 0-based position of the variant in declaration order.
	Ordinal() int
	// VariantName returns the variant identifier as declared.
	VariantName() string
	// PascalSpaced returns the variant name in spaced PascalCase ("In QA").
	PascalSpaced() string
	// SnakeCase returns the variant name in snake_case ("in_qa").
	SnakeCase() string
	// KebabCase returns the variant name in kebab-case ("in-qa").
	KebabCase() string
}
