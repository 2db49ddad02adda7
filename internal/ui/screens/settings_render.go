package screens

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"kanji-tui/internal/ui/components"
)

const (
	buttonColumnWidth = 8
	minColumnWidth    = 6
)

// View рендерит активную вкладку настроек
func (ss *SettingsScreen) View() string {
	form := ss.Form()
	if form == nil {
		return ss.theme.SubtitleStyle.Render("No settings available")
	}

	r := &formRenderer{ss: ss, width: ss.Width(), focusLine: -1}
	r.lines = append(r.lines, ss.renderTabs(), "")
	for _, item := range form.Items() {
		switch it := item.(type) {
		case *components.Heading:
			r.heading(it)
		case *components.Setting:
			r.setting(it)
		case *components.Table:
			r.table(it)
		case *components.Button:
			r.lines = append(r.lines, r.button(it))
			r.advance()
		}
	}

	return ss.scroll(r.lines, r.focusLine)
}

func (ss *SettingsScreen) renderTabs() string {
	var parts []string
	for i, tab := range ss.tabs {
		style := ss.theme.DimStyle
		if i == ss.active {
			style = ss.theme.HighlightStyle
		}
		parts = append(parts, style.Render(tab.Name()))
	}
	tabs := strings.Join(parts, ss.theme.DimStyle.Render(" │ "))
	if len(ss.tabs) > 1 {
		tabs += ss.theme.DimStyle.Render("   PgUp/PgDn: switch")
	}
	return tabs
}

// scroll обрезает строки по высоте экрана так, чтобы фокус был виден
func (ss *SettingsScreen) scroll(lines []string, focusLine int) string {
	height := ss.Height()
	if height <= 0 || len(lines) <= height {
		ss.offset = 0
		return strings.Join(lines, "\n")
	}

	if focusLine >= 0 {
		if focusLine < ss.offset {
			ss.offset = focusLine
		}
		if focusLine >= ss.offset+height {
			ss.offset = focusLine - height + 1
		}
	}
	if ss.offset > len(lines)-height {
		ss.offset = len(lines) - height
	}
	if ss.offset < 0 {
		ss.offset = 0
	}
	return strings.Join(lines[ss.offset:ss.offset+height], "\n")
}

// formRenderer walks the form in the same order as Form.Controls so the
// running index matches the focus index.
type formRenderer struct {
	ss        *SettingsScreen
	width     int
	index     int
	focusLine int
	lines     []string
}

func (r *formRenderer) focused() bool {
	return r.index == r.ss.focus
}

func (r *formRenderer) advance() {
	if r.focused() {
		r.focusLine = len(r.lines) - 1
	}
	r.index++
}

func (r *formRenderer) heading(h *components.Heading) {
	r.lines = append(r.lines, r.ss.theme.TitleStyle.Render(h.Text), "")
}

func (r *formRenderer) setting(s *components.Setting) {
	theme := r.ss.theme
	r.lines = append(r.lines, theme.TextStyle.Bold(true).Render(s.Name))
	if s.Desc != "" {
		r.lines = append(r.lines, theme.DimStyle.Render(s.Desc))
	}
	if s.Input == nil {
		r.lines = append(r.lines, "")
		return
	}

	line := r.input(s.Input, 24)
	if s.Input.Color {
		if components.IsHexColor(s.Input.Value) {
			line += " " + lipgloss.NewStyle().Foreground(lipgloss.Color(s.Input.Value)).Render("██")
		}
		if r.focused() {
			line += " " + theme.DimStyle.Render("alt+←/→ pick")
		}
	}
	r.lines = append(r.lines, line)
	r.advance()
	r.lines = append(r.lines, "")
}

func (r *formRenderer) table(t *components.Table) {
	theme := r.ss.theme
	colWidth := (r.width - 4 - buttonColumnWidth - 3) / 3
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}

	var header []string
	for _, h := range t.Headers {
		header = append(header, theme.TableHeaderStyle.Width(colWidth).Render(h))
	}
	r.lines = append(r.lines, strings.Join(header, " "))

	for _, row := range t.Rows {
		var cells []string
		line := len(r.lines)
		focusInRow := -1
		for _, in := range row.Inputs {
			cells = append(cells, r.input(in, colWidth))
			if r.focused() {
				focusInRow = line
			}
			r.index++
		}
		for _, b := range row.Buttons {
			cells = append(cells, r.button(b))
			if r.focused() {
				focusInRow = line
			}
			r.index++
		}
		r.lines = append(r.lines, strings.Join(cells, " "))
		if focusInRow >= 0 {
			r.focusLine = focusInRow
		}
	}
	r.lines = append(r.lines, "")
}

func (r *formRenderer) input(in *components.Input, width int) string {
	theme := r.ss.theme
	if r.focused() {
		r.ss.input.Width = width - 1
		return theme.InputFocusStyle.Width(width).MaxWidth(width).Render(r.ss.input.View())
	}
	value := in.Value
	style := theme.InputStyle
	if value == "" {
		value = in.Placeholder
		style = style.Inherit(theme.PlaceholderStyle)
	}
	return style.Width(width).MaxWidth(width).Render(value)
}

func (r *formRenderer) button(b *components.Button) string {
	style := r.ss.theme.ButtonStyle
	if r.focused() {
		style = r.ss.theme.ButtonFocusStyle
	}
	return style.Render(b.Text)
}
