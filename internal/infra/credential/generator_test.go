package credential

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator_Generate(t *testing.T) {
	gen := NewRandomGenerator(16)

	password, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, password, 16)

	for _, c := range password {
		assert.True(t, strings.ContainsRune(passwordCharset, c),
			"unexpected character %q in generated credential", c)
	}
}

func TestRandomGenerator_DefaultLength(t *testing.T) {
	gen := NewRandomGenerator(0)

	password, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, password, defaultPasswordLength)
}

func TestRandomGenerator_Unique(t *testing.T) {
	gen := NewRandomGenerator(12)

	seen := make(map[string]struct{})
	for range 20 {
		password, err := gen.Generate()
		require.NoError(t, err)

		_, dup := seen[password]
		assert.False(t, dup, "generated the same credential twice: %s", password)
		seen[password] = struct{}{}
	}
}
