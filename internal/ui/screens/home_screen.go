package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"kanji-tui/internal/ui/styles"
)

// HomeHint строка подсказки на домашнем экране
type HomeHint struct {
	Key         string
	Description string
}

// HomeScreen стартовый экран основной области
type HomeScreen struct {
	BaseScreen
	theme *styles.Theme
	hints []HomeHint
}

// NewHomeScreen создает домашний экран
func NewHomeScreen(theme *styles.Theme, hints []HomeHint) *HomeScreen {
	return &HomeScreen{
		BaseScreen: NewBaseScreen("Home"),
		theme:      theme,
		hints:      hints,
	}
}

// Init инициализирует экран (Bubble Tea)
func (hs *HomeScreen) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения (Bubble Tea)
func (hs *HomeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		hs.SetSize(m.Width, m.Height-1)
	}
	return hs, nil
}

// View отрисовывает экран (Bubble Tea)
func (hs *HomeScreen) View() string {
	if hs.Width() == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(hs.theme.TitleStyle.Render("漢字 kanji-tui"))
	b.WriteString("\n\n")
	b.WriteString(hs.theme.DimStyle.Render("A random kanji in the side panel. Keep your list in the settings."))
	b.WriteString("\n\n")

	keyWidth := 0
	for _, h := range hs.hints {
		if w := lipgloss.Width(h.Key); w > keyWidth {
			keyWidth = w
		}
	}
	keyStyle := hs.theme.HighlightStyle.Width(keyWidth + 2)
	for _, h := range hs.hints {
		if h.Key == "" {
			continue
		}
		b.WriteString(keyStyle.Render(h.Key))
		b.WriteString(hs.theme.TextStyle.Render(h.Description))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(hs.Width()).
		Height(hs.Height()).
		Render(b.String())
}
