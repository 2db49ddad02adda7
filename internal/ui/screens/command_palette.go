package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"kanji-tui/internal/ui/styles"
)

// CommandEntry описывает одну команду в палитре.
type CommandEntry struct {
	ID      string
	Title   string
	Key     string
	Context string
	Enabled bool
}

// CommandFetcher возвращает доступные команды.
type CommandFetcher func() []CommandEntry

// CommandPaletteScreen отображает список команд с фильтром.
type CommandPaletteScreen struct {
	BaseScreen

	theme    *styles.Theme
	fetch    CommandFetcher
	filter   textinput.Model
	entries  []CommandEntry
	filtered []CommandEntry
	selected int
}

func NewCommandPaletteScreen(theme *styles.Theme, fetch CommandFetcher) *CommandPaletteScreen {
	ti := textinput.New()
	ti.Placeholder = "Filter commands"
	ti.Prompt = "> "
	ti.Focus()

	return &CommandPaletteScreen{
		BaseScreen: NewBaseScreen("Command Palette"),
		theme:      theme,
		fetch:      fetch,
		filter:     ti,
	}
}

func (ps *CommandPaletteScreen) Init() tea.Cmd {
	ps.refresh()
	return textinput.Blink
}

func (ps *CommandPaletteScreen) OnEnter() tea.Cmd {
	ps.filter.SetValue("")
	ps.selected = 0
	ps.refresh()
	return ps.filter.Focus()
}

// HandleGlobalEsc закрывает палитру вместо перехода на домашний экран.
func (ps *CommandPaletteScreen) HandleGlobalEsc() (bool, tea.Cmd) {
	return true, func() tea.Msg { return CommandPaletteClosedMsg{} }
}

func (ps *CommandPaletteScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		ps.SetSize(m.Width, m.Height-1)
		ps.filter.Width = ps.Width() - 8
		return ps, nil
	case tea.KeyMsg:
		switch m.String() {
		case "up", "shift+tab":
			if ps.selected > 0 {
				ps.selected--
			}
			return ps, nil
		case "down", "tab":
			if ps.selected < len(ps.filtered)-1 {
				ps.selected++
			}
			return ps, nil
		case "enter":
			if entry, ok := ps.Selected(); ok && entry.Enabled {
				return ps, func() tea.Msg { return CommandExecuteMsg{ID: entry.ID} }
			}
			return ps, nil
		}
		before := ps.filter.Value()
		var cmd tea.Cmd
		ps.filter, cmd = ps.filter.Update(m)
		if ps.filter.Value() != before {
			ps.applyFilter()
		}
		return ps, cmd
	}

	var cmd tea.Cmd
	ps.filter, cmd = ps.filter.Update(msg)
	return ps, cmd
}

// Selected возвращает выбранную команду.
func (ps *CommandPaletteScreen) Selected() (CommandEntry, bool) {
	if ps.selected < 0 || ps.selected >= len(ps.filtered) {
		return CommandEntry{}, false
	}
	return ps.filtered[ps.selected], true
}

func (ps *CommandPaletteScreen) View() string {
	width := ps.Width()
	if width <= 0 {
		width = 80
	}
	if width < 20 {
		width = 20
	}

	var lines []string
	if len(ps.filtered) == 0 {
		lines = append(lines, ps.theme.DimStyle.Render("No commands match filter"))
	}
	for i, entry := range ps.filtered {
		prefix := "  "
		style := ps.theme.TextStyle
		if !entry.Enabled {
			style = ps.theme.DimStyle.Faint(true)
		}
		if i == ps.selected {
			prefix = "→ "
			style = ps.theme.PanelHeaderStyle
		}
		line := style.Render(prefix + entry.Title)
		if entry.Context != "" {
			line += ps.theme.DimStyle.Render(" — " + entry.Context)
		}
		if entry.Key != "" {
			line += ps.theme.DimStyle.Render(" [" + entry.Key + "]")
		}
		lines = append(lines, line)
	}

	content := lipgloss.NewStyle().Padding(1).Width(width - 2).
		Render(ps.filter.View() + "\n\n" + strings.Join(lines, "\n"))
	return ps.theme.PanelFocusStyle.Width(width - 2).Render(content)
}

func (ps *CommandPaletteScreen) ShortHelp() string {
	return "↑↓: Select • Enter: Run • Esc: Close"
}

func (ps *CommandPaletteScreen) refresh() {
	if ps.fetch == nil {
		ps.entries = nil
		ps.filtered = nil
		return
	}
	ps.entries = ps.fetch()
	ps.applyFilter()
}

func (ps *CommandPaletteScreen) applyFilter() {
	filter := strings.ToLower(strings.TrimSpace(ps.filter.Value()))
	filtered := make([]CommandEntry, 0, len(ps.entries))
	for _, entry := range ps.entries {
		if filter == "" ||
			strings.Contains(strings.ToLower(entry.Title), filter) ||
			strings.Contains(strings.ToLower(entry.Key), filter) ||
			strings.Contains(strings.ToLower(entry.Context), filter) {
			filtered = append(filtered, entry)
		}
	}
	ps.filtered = filtered
	if len(ps.filtered) == 0 {
		ps.selected = -1
	} else if ps.selected >= len(ps.filtered) {
		ps.selected = len(ps.filtered) - 1
	} else if ps.selected < 0 {
		ps.selected = 0
	}
}
