package load_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/enumext"
	"github.com/syssam/enumext/compiler/load"
	"github.com/syssam/enumext/schema/enum"
)

func TestFromDescriptor(t *testing.T) {
	d := enum.New("TicketStatus").
		IntType(enum.IntTypeU32).
		Derive("Debug", "Clone").
		Variants(
			enum.Variant("Open").Discriminant("1"),
			enum.Variant("InQA").Discriminant("1 << 4"),
			enum.Variant("Closed"),
		).
		Descriptor()

	e := load.FromDescriptor(d)
	assert.Equal(t, "TicketStatus", e.Name)
	assert.Empty(t, e.Mode)
	assert.Equal(t, "u32", e.IntType)
	assert.Equal(t, []string{"Debug", "Clone"}, e.Derives)
	require.Len(t, e.Variants, 3)
	assert.Equal(t, "1 << 4", e.Variants[1].Discriminant)
	assert.Empty(t, e.Variants[2].Discriminant)
}

func TestFromDescriptorComplex(t *testing.T) {
	d := enum.New("Shape").
		Complex().
		Variants(
			enum.Variant("Circle").Positional("f64").Discriminant("1"),
		).
		Descriptor()

	e := load.FromDescriptor(d)
	assert.Equal(t, "complex", e.Mode)
	assert.Empty(t, e.IntType)
	require.Len(t, e.Variants, 1)
	assert.Equal(t, enum.PayloadPositional, e.Variants[0].Payload.Kind())
}

func TestParseManifest(t *testing.T) {
	m, err := load.ParseManifest([]byte(`
package: github.com/acme/tickets
target: ./tickets
int_type: u32
features: [textmarshal]
enums:
  - name: TicketStatus
    int_type: i32
    derives: [Debug, Clone, PartialEq]
    variants:
      - name: Open
        discriminant: "1"
      - name: InDev
      - name: InQA
        discriminant: "1 << 4"
  - name: Shape
    mode: complex
    variants:
      - name: Circle
        discriminant: "1"
        payload:
          - type: f64
      - name: Rect
        discriminant: "2"
        payload:
          - name: w
            type: f64
          - name: h
            type: f64
`))
	require.NoError(t, err)
	assert.Equal(t, "github.com/acme/tickets", m.Package)
	assert.Equal(t, "./tickets", m.Target)
	assert.Equal(t, "u32", m.IntType)
	assert.Equal(t, []string{"textmarshal"}, m.Features)
	require.Len(t, m.Enums, 2)

	status := m.Enums[0]
	assert.Equal(t, "i32", status.IntType)
	require.Len(t, status.Variants, 3)
	assert.Equal(t, "1 << 4", status.Variants[2].Discriminant)

	shape := m.Enums[1]
	assert.Equal(t, "complex", shape.Mode)
	require.Len(t, shape.Variants, 2)
	assert.Equal(t, enum.PayloadPositional, shape.Variants[0].Payload.Kind())
	assert.Equal(t, enum.PayloadNamed, shape.Variants[1].Payload.Kind())
	// Named field order is preserved from the manifest.
	assert.Equal(t, "w", shape.Variants[1].Payload[0].Name)
	assert.Equal(t, "h", shape.Variants[1].Payload[1].Name)
}

func TestParseManifestErrors(t *testing.T) {
	t.Run("UnknownKey", func(t *testing.T) {
		_, err := load.ParseManifest([]byte("package: x\nfrobnicate: true\nenums: []\n"))
		require.Error(t, err)
		assert.True(t, enumext.IsParse(err))
	})

	t.Run("InvalidIntType", func(t *testing.T) {
		_, err := load.ParseManifest([]byte("int_type: i9\nenums: []\n"))
		require.Error(t, err)
		assert.True(t, enumext.IsParse(err))
		assert.Contains(t, err.Error(), "i8, u8, i16, u16, i32, u32, i64, u64, i128, u128, isize, usize")
	})

	t.Run("InvalidEnumIntType", func(t *testing.T) {
		_, err := load.ParseManifest([]byte("enums:\n  - name: S\n    int_type: float\n    variants: []\n"))
		require.Error(t, err)
		assert.True(t, enumext.IsParse(err))
	})

	t.Run("InvalidMode", func(t *testing.T) {
		_, err := load.ParseManifest([]byte("enums:\n  - name: S\n    mode: fancy\n    variants: []\n"))
		require.Error(t, err)
		assert.True(t, enumext.IsParse(err))
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := load.ParseManifest([]byte("enums:\n  - variants: []\n"))
		require.Error(t, err)
		assert.True(t, enumext.IsParse(err))
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		_, err := load.ParseManifest([]byte(":\n\t-"))
		require.Error(t, err)
		assert.True(t, enumext.IsParse(err))
	})
}
