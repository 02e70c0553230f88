package golang

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/enumext/compiler/gen"
	"github.com/syssam/enumext/compiler/load"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	m, err := load.ParseManifest([]byte(`
package: github.com/org/project/statuses
enums:
  - name: TicketStatus
    int_type: i32
    derives: [Debug, Clone]
    variants:
      - name: Open
        discriminant: "1"
      - name: InQA
  - name: Color
    variants:
      - name: Red
      - name: Green
`))
	require.NoError(t, err)
	m.Target = dir

	graph, err := gen.GraphFromManifest(m)
	require.NoError(t, err)
	require.NoError(t, Generate(context.Background(), graph))

	t.Run("Files", func(t *testing.T) {
		for _, name := range []string{"ticket_status.go", "color.go"} {
			data, err := os.ReadFile(filepath.Join(dir, name))
			require.NoError(t, err, name)
			assert.Contains(t, string(data), "package statuses")
			assert.Contains(t, string(data), "Code generated by enumext. DO NOT EDIT.")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, err := os.ReadFile(filepath.Join(dir, "ticket_status.go"))
		require.NoError(t, err)
		graph, err := gen.GraphFromManifest(m)
		require.NoError(t, err)
		require.NoError(t, Generate(context.Background(), graph))
		second, err := os.ReadFile(filepath.Join(dir, "ticket_status.go"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestGenerateMissingTarget(t *testing.T) {
	graph, err := gen.NewGraph(&gen.Config{},
		&load.Enum{Name: "Color", Variants: []*load.Variant{{Name: "Red"}}})
	require.NoError(t, err)
	err = Generate(context.Background(), graph)
	require.Error(t, err)
	assert.True(t, gen.IsConfigError(err))
}

func TestDialectName(t *testing.T) {
	assert.Equal(t, "golang", NewDialect(nil).Name())
}
