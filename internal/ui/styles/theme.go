package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme содержит все стили приложения
type Theme struct {
	// Размеры окна
	width  int
	height int

	// Цветовая схема
	colors ColorScheme

	// Стили компонентов
	StatusBarStyle   lipgloss.Style
	TitleStyle       lipgloss.Style
	SubtitleStyle    lipgloss.Style
	TextStyle        lipgloss.Style
	DimStyle         lipgloss.Style
	HighlightStyle   lipgloss.Style
	ErrorStyle       lipgloss.Style
	SuccessStyle     lipgloss.Style
	PanelStyle       lipgloss.Style
	PanelFocusStyle  lipgloss.Style
	PanelHeaderStyle lipgloss.Style
	ButtonStyle      lipgloss.Style
	ButtonFocusStyle lipgloss.Style
	InputStyle       lipgloss.Style
	InputFocusStyle  lipgloss.Style
	TableHeaderStyle lipgloss.Style
	PlaceholderStyle lipgloss.Style
}

// ColorScheme цветовая схема
type ColorScheme struct {
	Primary     string
	Secondary   string
	Accent      string
	Background  string
	Surface     string
	Text        string
	TextDim     string
	Error       string
	Success     string
	Border      string
	BorderFocus string
}

// Предустановленные цветовые схемы
var (
	DarkScheme = ColorScheme{
		Primary:     "#7C3AED", // Фиолетовый
		Secondary:   "#10B981", // Зеленый
		Accent:      "#F59E0B", // Оранжевый
		Background:  "#0F172A", // Темно-синий
		Surface:     "#1E293B", // Темно-серый
		Text:        "#F1F5F9", // Светло-серый
		TextDim:     "#94A3B8", // Серый
		Error:       "#EF4444", // Красный
		Success:     "#10B981", // Зеленый
		Border:      "#334155", // Серый
		BorderFocus: "#7C3AED", // Фиолетовый
	}

	LightScheme = ColorScheme{
		Primary:     "#7C3AED", // Фиолетовый
		Secondary:   "#059669", // Зеленый
		Accent:      "#D97706", // Оранжевый
		Background:  "#FFFFFF", // Белый
		Surface:     "#F8FAFC", // Светло-серый
		Text:        "#0F172A", // Темно-синий
		TextDim:     "#64748B", // Серый
		Error:       "#DC2626", // Красный
		Success:     "#059669", // Зеленый
		Border:      "#E2E8F0", // Светло-серый
		BorderFocus: "#7C3AED", // Фиолетовый
	}
)

// NewTheme создает новую тему
func NewTheme(themeName string) *Theme {
	var colors ColorScheme
	switch themeName {
	case "light":
		colors = LightScheme
	default:
		colors = DarkScheme
	}

	theme := &Theme{
		colors: colors,
	}

	theme.initStyles()
	return theme
}

// Colors возвращает цветовую схему
func (t *Theme) Colors() ColorScheme {
	return t.colors
}

// initStyles инициализирует стили
func (t *Theme) initStyles() {
	t.StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Surface)).
		Foreground(lipgloss.Color(t.colors.Text)).
		Padding(0, 1)

	t.TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Primary)).
		Bold(true).
		Padding(0, 1)

	t.SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.TextDim)).
		Padding(0, 1)

	t.TextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Text))

	t.DimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.TextDim))

	t.HighlightStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Accent)).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Error)).
		Bold(true)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Success)).
		Bold(true)

	t.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.colors.Border))

	t.PanelFocusStyle = t.PanelStyle.
		BorderForeground(lipgloss.Color(t.colors.BorderFocus))

	t.PanelHeaderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Primary)).
		Bold(true)

	t.ButtonStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Surface)).
		Foreground(lipgloss.Color(t.colors.Text)).
		Padding(0, 1)

	t.ButtonFocusStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Primary)).
		Foreground(lipgloss.Color(t.colors.Background)).
		Padding(0, 1).
		Bold(true)

	t.InputStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Surface)).
		Foreground(lipgloss.Color(t.colors.Text))

	t.InputFocusStyle = t.InputStyle.
		Foreground(lipgloss.Color(t.colors.Accent)).
		Underline(true)

	t.TableHeaderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.TextDim)).
		Bold(true)

	t.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.TextDim)).
		Italic(true)
}

// SetDimensions устанавливает размеры окна
func (t *Theme) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Width возвращает ширину окна
func (t *Theme) Width() int {
	return t.width
}

// Height возвращает высоту окна
func (t *Theme) Height() int {
	return t.height
}

// StatusBar рендерит статус-бар на всю ширину
func (t *Theme) StatusBar(text string) string {
	return t.StatusBarStyle.
		Width(t.width).
		MaxHeight(1).
		Render(text)
}

// ErrorMessage рендерит сообщение об ошибке
func (t *Theme) ErrorMessage(text string) string {
	return t.ErrorStyle.Render("Error: " + text)
}

// SuccessMessage рендерит сообщение об успехе
func (t *Theme) SuccessMessage(text string) string {
	return t.SuccessStyle.Render("✓ " + text)
}
