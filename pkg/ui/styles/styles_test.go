package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	for _, name := range []string{"Path", "Error", "ErrorDetail", "Mode", "Pattern", "Muted"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s should be registered", name)
	}
	assert.True(t, GetStyle("Error").GetBold())
	assert.True(t, GetStyle("Mode").GetItalic())
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadStylesFromData(embeddedStyles)) })

	data := []byte(`
colors:
  red:
    light: "#FF0000"
    dark: "#FF0000"
styles:
  Loud:
    bold: true
    underline: true
    foreground: red
`)
	require.NoError(t, LoadStylesFromData(data))

	loud := GetStyle("Loud")
	assert.True(t, loud.GetBold())
	assert.True(t, loud.GetUnderline())
	assert.Equal(t, "Hello", GetStyle("missing").Render("Hello"))
}

func TestLoadStylesFromDataRejectsBadYAML(t *testing.T) {
	assert.Error(t, LoadStylesFromData([]byte("styles: [unclosed")))
}

func TestInitDefaultStyles(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadStylesFromData(embeddedStyles)) })

	initDefaultStyles()
	assert.Len(t, StyleRegistry, 6)
	assert.Equal(t, "x", GetStyle("Path").Render("x"))
}
