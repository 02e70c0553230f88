package golang

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/enumext/compiler/gen"
	"github.com/syssam/enumext/compiler/load"
	"github.com/syssam/enumext/schema/enum"
)

// render resolves one declaration and renders it with the Go dialect.
// File rendering runs the output through gofmt, so a successful render also
// checks that the generated code parses.
func render(t *testing.T, schema *load.Enum, opts ...gen.Option) string {
	t.Helper()
	c, err := gen.NewConfig(opts...)
	require.NoError(t, err)
	graph, err := gen.NewGraph(c, schema)
	require.NoError(t, err)
	g := gen.NewGenerator(graph, t.TempDir()).WithPackage("statuses")
	f, err := NewDialect(g).GenEnum(graph.Nodes[0])
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

func ticketStatus() *load.Enum {
	return &load.Enum{
		Name:    "TicketStatus",
		IntType: "i32",
		Derives: []string{"Debug", "Clone"},
		Variants: []*load.Variant{
			{Name: "Open", Discriminant: "1"},
			{Name: "InDev"},
			{Name: "InQA", Discriminant: "0x10 + 5"},
		},
	}
}

func TestGenSimple(t *testing.T) {
	out := render(t, ticketStatus())

	t.Run("TypeAndConstants", func(t *testing.T) {
		assert.Contains(t, out, "type TicketStatus int")
		assert.Contains(t, out, "TicketStatusOpen TicketStatus = iota")
		assert.Contains(t, out, "TicketStatusInDev")
		assert.Contains(t, out, "const TicketStatusCount = 3")
		assert.Contains(t, out, "func TicketStatuses() []TicketStatus")
	})

	t.Run("Ordinal", func(t *testing.T) {
		assert.Contains(t, out, "func (t TicketStatus) Ordinal() int")
		assert.Contains(t, out, "func TicketStatusFromOrdinal(ord int) (TicketStatus, bool)")
		assert.Contains(t, out, "func RefTicketStatusFromOrdinal(ord int) *TicketStatus")
	})

	t.Run("NameForms", func(t *testing.T) {
		assert.Contains(t, out, "func (t TicketStatus) VariantName() string")
		assert.Contains(t, out, `return "In QA"`)
		assert.Contains(t, out, `case "in_qa":`)
		assert.Contains(t, out, `case "in-qa":`)
		assert.Contains(t, out, "func TicketStatusNames() []string")
	})

	t.Run("IntConversion", func(t *testing.T) {
		assert.Contains(t, out, "func (t TicketStatus) AsInt32() (int32, bool)")
		assert.Contains(t, out, "func TicketStatusFromInt32(v int32) (TicketStatus, bool)")
		assert.Contains(t, out, "func MustTicketStatusFromInt32(v int32) TicketStatus")
		// The evaluated discriminant, not the raw expression.
		assert.Contains(t, out, "return 21, true")
		// Variants without a discriminant never enter the table: only the
		// two declared values appear as conversion cases.
		assert.NotContains(t, out, "case 0:")
	})

	t.Run("Navigation", func(t *testing.T) {
		assert.Contains(t, out, "func (t TicketStatus) Next() TicketStatus")
		assert.Contains(t, out, "func (t TicketStatus) PreviousLinear() (TicketStatus, bool)")
		assert.Contains(t, out, "func (t TicketStatus) IsFirst() bool")
		assert.Contains(t, out, "func (t TicketStatus) ComesBefore(other TicketStatus) bool")
	})

	t.Run("Queries", func(t *testing.T) {
		assert.Contains(t, out, "func TicketStatusesContaining(substr string) []TicketStatus")
		assert.Contains(t, out, "func TicketStatusesWithPrefix(prefix string) []TicketStatus")
		assert.Contains(t, out, "func TicketStatusesWithSuffix(suffix string) []TicketStatus")
	})

	t.Run("Slicing", func(t *testing.T) {
		assert.Contains(t, out, "func TicketStatusSlice(start, end int) []TicketStatus")
		assert.Contains(t, out, "func TicketStatusRange(start, end int) []TicketStatus")
		assert.Contains(t, out, "return TicketStatusSlice(start, end)")
		assert.Contains(t, out, "func TicketStatusesFirstN(n int) []TicketStatus")
		assert.Contains(t, out, "func TicketStatusesLastN(n int) []TicketStatus")
	})

	t.Run("Declaration", func(t *testing.T) {
		assert.Contains(t, out, "TicketStatusDeclaration")
		assert.Contains(t, out, "#[repr(i32)]")
	})

	t.Run("RuntimeContract", func(t *testing.T) {
		assert.Contains(t, out, "var _ enumext.Enum = TicketStatusOpen")
	})

	t.Run("FeaturesOffByDefault", func(t *testing.T) {
		assert.NotContains(t, out, "MarshalText")
		assert.NotContains(t, out, "RandomTicketStatus")
	})
}

func TestGenSimplePlanGating(t *testing.T) {
	// No discriminants and no Clone: neither integer conversion nor value
	// reconstruction, but the reference lookup stays.
	out := render(t, &load.Enum{
		Name:     "Color",
		Variants: []*load.Variant{{Name: "Red"}, {Name: "Green"}},
	})
	assert.NotContains(t, out, "AsUint(")
	assert.NotContains(t, out, "ColorFromUint")
	assert.NotContains(t, out, "func ColorFromOrdinal")
	assert.Contains(t, out, "func RefColorFromOrdinal")
	// No derives and no explicit type: the declaration has no attribute lines.
	assert.NotContains(t, out, "#[repr(")
}

func TestGenSimpleFeatures(t *testing.T) {
	out := render(t, ticketStatus(), gen.WithFeatures("textmarshal", "random"))
	assert.Contains(t, out, "func (t TicketStatus) MarshalText() ([]byte, error)")
	assert.Contains(t, out, "func (t *TicketStatus) UnmarshalText(text []byte) error")
	assert.Contains(t, out, "func RandomTicketStatus() TicketStatus")
	assert.Contains(t, out, "rand.IntN(TicketStatusCount)")
}

func TestGenComplex(t *testing.T) {
	out := render(t, &load.Enum{
		Name:    "Shape",
		Mode:    "complex",
		IntType: "u8",
		Variants: []*load.Variant{
			{Name: "Point", Discriminant: "0"},
			{Name: "Circle", Discriminant: "1", Payload: enum.Payload{{Type: "f64"}}},
			{Name: "Rect", Discriminant: "2", Payload: enum.Payload{
				{Name: "width", Type: "f64"},
				{Name: "height", Type: "f64"},
			}},
		},
	})

	t.Run("SealedInterface", func(t *testing.T) {
		assert.Contains(t, out, "type Shape interface")
		assert.Contains(t, out, "isShape()")
		assert.Contains(t, out, "AsUint8() uint8")
	})

	t.Run("VariantStructs", func(t *testing.T) {
		assert.Contains(t, out, "type ShapePoint struct")
		assert.Contains(t, out, "F0 float64")
		assert.Contains(t, out, "Width  float64")
		assert.Contains(t, out, "Height float64")
	})

	t.Run("Methods", func(t *testing.T) {
		assert.Contains(t, out, "func (ShapeCircle) Ordinal() int")
		assert.Contains(t, out, "func (ShapeRect) AsUint8() uint8")
		assert.Contains(t, out, `return "Rect"`)
	})

	t.Run("Lookups", func(t *testing.T) {
		assert.Contains(t, out, "func Shapes() []Shape")
		assert.Contains(t, out, "func ShapeFromVariantName(s string) (Shape, bool)")
		assert.Contains(t, out, "func ShapeFromUint8(v uint8) (Shape, bool)")
	})

	t.Run("Declaration", func(t *testing.T) {
		assert.Contains(t, out, "Rect { width: f64, height: f64 } = 2")
	})
}

// A complex-mode enum without payloads renders with the plain value surface.
func TestGenComplexWithoutPayloads(t *testing.T) {
	out := render(t, &load.Enum{
		Name: "Signal",
		Mode: "complex",
		Variants: []*load.Variant{
			{Name: "Start"},
			{Name: "Stop"},
		},
	})
	assert.Contains(t, out, "type Signal int")
	assert.NotContains(t, out, "interface")
}

func TestGenEnumRejectsWideTypes(t *testing.T) {
	c, err := gen.NewConfig()
	require.NoError(t, err)
	graph, err := gen.NewGraph(c, &load.Enum{
		Name:     "Big",
		IntType:  "u128",
		Variants: []*load.Variant{{Name: "A", Discriminant: "1"}},
	})
	require.NoError(t, err)

	g := gen.NewGenerator(graph, t.TempDir())
	_, err = NewDialect(g).GenEnum(graph.Nodes[0])
	require.Error(t, err)
	assert.True(t, gen.IsGenerationError(err))
	assert.Contains(t, err.Error(), "u128")
}
