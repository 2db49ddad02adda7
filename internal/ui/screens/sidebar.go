package screens

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"kanji-tui/internal/ui/components"
	"kanji-tui/internal/ui/styles"
)

// largeFontSize and above render as the emphasized line of a panel.
const largeFontSize = 32

var icons = map[string]string{
	"languages": "文",
}

// IconGlyph maps an icon name to a terminal glyph.
func IconGlyph(name string) string {
	if glyph, ok := icons[name]; ok {
		return glyph
	}
	return "▣"
}

// PanelFrame describes one leaf of the side region.
type PanelFrame struct {
	Title   string
	Icon    string
	Content *components.Container
	Focused bool
}

// RenderPanel draws a leaf: a header line and the container's elements,
// centered in the remaining space.
func RenderPanel(theme *styles.Theme, frame PanelFrame, width, height int) string {
	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 1 || innerHeight < 2 {
		return ""
	}

	header := theme.PanelHeaderStyle.Width(innerWidth).MaxWidth(innerWidth).
		Render(IconGlyph(frame.Icon) + " " + frame.Title)

	var blocks []string
	if frame.Content != nil {
		for _, el := range frame.Content.Elements() {
			blocks = append(blocks, renderElement(theme, el, innerWidth))
		}
	}
	body := lipgloss.Place(innerWidth, innerHeight-1, lipgloss.Center, lipgloss.Center,
		strings.Join(blocks, "\n"))

	style := theme.PanelStyle
	if frame.Focused {
		style = theme.PanelFocusStyle
	}
	return style.Width(innerWidth).Height(innerHeight).
		Render(header + "\n" + body)
}

func renderElement(theme *styles.Theme, el components.Element, width int) string {
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if el.Color == "" && el.FontSize == 0 {
		style = style.Inherit(theme.PlaceholderStyle)
	}
	if el.Color != "" {
		style = style.Foreground(lipgloss.Color(el.Color))
	}
	if el.FontSize >= largeFontSize {
		style = style.Bold(true).Padding(1, 0)
	}
	return style.Render(el.Text)
}
