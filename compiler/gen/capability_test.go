package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectCapabilities(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		s := InspectCapabilities(nil)
		assert.False(t, s.HasDerive)
		assert.False(t, s.Clone)
		assert.Empty(t, s.Declared())
	})

	t.Run("Tracked", func(t *testing.T) {
		s := InspectCapabilities([]string{"Clone", "Copy", "Debug", "Default", "PartialEq", "PartialOrd", "Eq", "Ord"})
		assert.True(t, s.HasDerive)
		assert.True(t, s.Clone)
		assert.True(t, s.Copy)
		assert.True(t, s.Debug)
		assert.True(t, s.Default)
		assert.True(t, s.PartialEq)
		assert.True(t, s.PartialOrd)
		assert.True(t, s.Eq)
		assert.True(t, s.Ord)
	})

	t.Run("UnknownTokensIgnored", func(t *testing.T) {
		s := InspectCapabilities([]string{"Serialize", "Clone", "Hash"})
		assert.True(t, s.HasDerive)
		assert.True(t, s.Clone)
		assert.False(t, s.Eq)
		// The declared list keeps untracked tokens for canonical printing.
		assert.Equal(t, []string{"Serialize", "Clone", "Hash"}, s.Declared())
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		s := InspectCapabilities([]string{"clone"})
		assert.True(t, s.HasDerive)
		assert.False(t, s.Clone)
	})

	t.Run("DeclaredIsACopy", func(t *testing.T) {
		s := InspectCapabilities([]string{"Clone"})
		d := s.Declared()
		d[0] = "mutated"
		assert.Equal(t, []string{"Clone"}, s.Declared())
	})
}
