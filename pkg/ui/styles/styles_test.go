package styles_test

import (
	"testing"

	"github.com/arthur-debert/dotstow/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	expected := []string{
		"Header", "Success", "Error", "Warning", "Info",
		"Muted", "Bold", "Package", "FilePath", "DryRunBanner", "Summary", "Indent",
	}

	for _, name := range expected {
		_, exists := styles.StyleRegistry[name]
		assert.True(t, exists, "style %s should exist", name)
	}
}

func TestGetStyle_Unknown(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(styles.LoadDefaults)

	data := []byte(`
colors:
  accent:
    light: "#000000"
    dark: "#ffffff"
styles:
  Custom:
    bold: true
    foreground: accent
`)
	require.NoError(t, styles.LoadStylesFromData(data))

	_, ok := styles.StyleRegistry["Custom"]
	assert.True(t, ok)
	assert.True(t, styles.GetStyle("Custom").GetBold())

	err := styles.LoadStylesFromData([]byte("styles: [not, a, map"))
	assert.Error(t, err)
}

func TestRender_NoColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { styles.SetColor(false) })

	assert.Equal(t, "done", styles.Render("Success", "done"))
}

func TestSetColor_Disabled(t *testing.T) {
	styles.SetColor(false)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}
