package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kanji-tui/internal/ui/components"
	"kanji-tui/internal/ui/styles"
)

func TestIconGlyph(t *testing.T) {
	assert.Equal(t, "文", IconGlyph("languages"))
	assert.Equal(t, "▣", IconGlyph("unknown"))
}

func TestRenderPanel(t *testing.T) {
	content := components.NewContainer("view-content")
	content.CreateDiv("kanji").Text = "水"
	content.CreateDiv("meaning").Text = "water"

	out := RenderPanel(styles.NewTheme("dark"), PanelFrame{
		Title:   "Kanji View",
		Icon:    "languages",
		Content: content,
	}, 30, 16)

	assert.Contains(t, out, "文 Kanji View")
	assert.Contains(t, out, "水")
	assert.Contains(t, out, "water")
}

func TestRenderPanel_TooSmall(t *testing.T) {
	assert.Empty(t, RenderPanel(styles.NewTheme("dark"), PanelFrame{Title: "x"}, 2, 2))
}
