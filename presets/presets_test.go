package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/huekit/pkg/tokens"
)

func TestLoadBase(t *testing.T) {
	set, err := Load("base")
	require.NoError(t, err)
	assert.Equal(t, 17, set.Len())

	brand, ok := set.Get("color.brand.500")
	require.True(t, ok)
	assert.Equal(t, "#3366ff", brand.Value)
	assert.Equal(t, tokens.TypeColor, brand.Type)

	assert.Equal(t, 7, set.Filter(tokens.TypeDimension).Len())
	assert.Equal(t, 2, set.Filter(tokens.TypeFontWeight).Len())
}

func TestLoadBase_ExportsEveryFormat(t *testing.T) {
	set, err := Load("base")
	require.NoError(t, err)

	files, err := tokens.GenerateAll(set)
	require.NoError(t, err)
	assert.Len(t, files, len(tokens.AllFormats))
	assert.Contains(t, files["tailwind.config.js"], "'brand': {")
}

func TestUnknownPreset(t *testing.T) {
	_, err := Load("material")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base")
	assert.Equal(t, []string{"base"}, Names())
}
