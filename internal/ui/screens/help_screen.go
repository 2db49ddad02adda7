package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"kanji-tui/internal/ui/styles"
)

// HelpScreen shows key bindings and the registered commands.
type HelpScreen struct {
	BaseScreen
	theme *styles.Theme
	fetch CommandFetcher
	extra func() []string
}

// NewHelpScreen builds the help screen. extra supplies the help of the screen
// the user came from.
func NewHelpScreen(theme *styles.Theme, fetch CommandFetcher, extra func() []string) *HelpScreen {
	return &HelpScreen{
		BaseScreen: NewBaseScreen("Help"),
		theme:      theme,
		fetch:      fetch,
		extra:      extra,
	}
}

func (hs *HelpScreen) Init() tea.Cmd { return nil }

func (hs *HelpScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		hs.SetSize(m.Width, m.Height-1)
	}
	return hs, nil
}

func (hs *HelpScreen) View() string {
	var lines []string
	lines = append(lines, hs.theme.TitleStyle.Render("Help"), "")

	if hs.extra != nil {
		lines = append(lines, hs.extra()...)
	} else {
		lines = append(lines, hs.FullHelp()...)
	}

	if hs.fetch != nil {
		lines = append(lines, "", "Commands:")
		for _, entry := range hs.fetch() {
			line := "  " + entry.Title
			if entry.Key != "" {
				line += hs.theme.DimStyle.Render(" (" + entry.Key + ")")
			}
			lines = append(lines, line)
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}
