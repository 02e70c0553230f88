package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/enumext"
	"github.com/syssam/enumext/compiler/load"
	"github.com/syssam/enumext/schema/enum"
)

func TestNewConfig(t *testing.T) {
	c, err := NewConfig(
		WithTarget("./statuses"),
		WithPackage("github.com/org/project/statuses"),
		WithHeader("Source: enums.yaml"),
		WithIntType("i32"),
		WithFeatures("textmarshal"),
	)
	require.NoError(t, err)
	assert.Equal(t, "./statuses", c.Target)
	assert.Equal(t, "github.com/org/project/statuses", c.Package)
	assert.Equal(t, "Source: enums.yaml", c.Header)
	assert.Equal(t, enum.IntTypeI32, c.IntType)
	assert.True(t, c.FeatureEnabled("textmarshal"))
	assert.False(t, c.FeatureEnabled("random"))
}

func TestNewConfigErrors(t *testing.T) {
	t.Run("EmptyTarget", func(t *testing.T) {
		_, err := NewConfig(WithTarget(""))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
	t.Run("EmptyPackage", func(t *testing.T) {
		_, err := NewConfig(WithPackage(""))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
	t.Run("BadIntType", func(t *testing.T) {
		_, err := NewConfig(WithIntType("i9"))
		require.Error(t, err)
		assert.True(t, enumext.IsParse(err))
		assert.Contains(t, err.Error(), "supported types are")
	})
	t.Run("UnknownFeature", func(t *testing.T) {
		_, err := NewConfig(WithFeatures("telepathy"))
		require.Error(t, err)
		assert.True(t, enumext.IsParse(err))
	})
}

func TestConfigFromManifest(t *testing.T) {
	m := &load.Manifest{
		Package:  "github.com/org/project/statuses",
		Target:   "./statuses",
		Header:   "Source: enums.yaml",
		IntType:  "u8",
		Features: []string{"random"},
	}
	c, err := ConfigFromManifest(m)
	require.NoError(t, err)
	assert.Equal(t, m.Package, c.Package)
	assert.Equal(t, m.Target, c.Target)
	assert.Equal(t, enum.IntTypeU8, c.IntType)
	assert.True(t, c.FeatureEnabled("random"))

	t.Run("BadIntType", func(t *testing.T) {
		_, err := ConfigFromManifest(&load.Manifest{IntType: "int"})
		require.Error(t, err)
		assert.True(t, enumext.IsParse(err))
	})
	t.Run("UnknownFeature", func(t *testing.T) {
		_, err := ConfigFromManifest(&load.Manifest{Features: []string{"nope"}})
		require.Error(t, err)
		assert.True(t, enumext.IsParse(err))
	})
}

func TestDefaultIntType(t *testing.T) {
	var c *Config
	assert.Equal(t, enum.DefaultIntType, c.DefaultIntType())
	assert.Equal(t, enum.DefaultIntType, (&Config{}).DefaultIntType())
	assert.Equal(t, enum.IntTypeI64, (&Config{IntType: enum.IntTypeI64}).DefaultIntType())
}

func TestFeatures(t *testing.T) {
	fs, err := Features("textmarshal", "random")
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, FeatureTextMarshal, fs[0])
	assert.Equal(t, FeatureRandom, fs[1])

	_, err = Features("unknown")
	require.Error(t, err)
	assert.True(t, enumext.IsParse(err))
}
