package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"kanji-tui/internal/config"
	"kanji-tui/internal/host"
	"kanji-tui/internal/ui/components"
	"kanji-tui/internal/ui/screens"
	"kanji-tui/internal/ui/styles"
)

// ScreenType определяет тип экрана
type ScreenType int

const (
	HomeScreen ScreenType = iota
	CommandPaletteScreen
	SettingsScreen
	HelpScreen
)

// App представляет главное приложение
type App struct {
	config        *config.Config
	logger        *zap.Logger
	currentScreen ScreenType
	screens       map[ScreenType]screens.Screen
	router        *ScreenRouter
	eventBus      *EventBus
	commands      *CommandRegistry
	theme         *styles.Theme
	quitDialog    *components.ConfirmDialog

	// Плагины и боковая панель
	plugins     []*loadedPlugin
	views       map[string]host.ViewCreator
	leaves      []*Leaf
	activeLeaf  int
	settingTabs []host.SettingTab

	// Глобальное состояние
	lastError error
	width     int
	height    int
}

// New создает новое приложение
func New(cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	app := &App{
		config:   cfg,
		logger:   logger,
		screens:  make(map[ScreenType]screens.Screen),
		eventBus: NewEventBus(),
		commands: NewCommandRegistry(),
		theme:    styles.NewTheme(cfg.Theme),
		views:    make(map[string]host.ViewCreator),
	}

	if cfg.ConfirmQuit {
		app.quitDialog = components.NewConfirmDialog(app.theme, "Quit kanji-tui?")
	}

	// Инициализируем роутер
	app.router = NewScreenRouter(app)

	subscribeLogger(app.eventBus, logger)
	app.registerBuiltins()

	return app
}

// Init инициализирует приложение (Bubble Tea)
func (a *App) Init() tea.Cmd {
	a.currentScreen = HomeScreen
	screen := a.createScreen(HomeScreen)
	a.screens[HomeScreen] = screen
	return screen.Init()
}

// Update обрабатывает сообщения (Bubble Tea)
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleGlobalKeys(msg)
	case tea.WindowSizeMsg:
		return a.handleWindowResize(msg)
	case ScreenSwitchMsg:
		return a.handleScreenSwitch(msg)
	case screens.ErrorMsg:
		return a.handleError(msg)
	case screens.CommandExecuteMsg:
		return a.handleCommandExecute(msg)
	case screens.CommandPaletteClosedMsg:
		return a, a.router.GoBack()
	case DataChangedMsg:
		return a, a.handleDataChanged(msg)
	case quitConfirmedMsg:
		if msg.confirmed {
			return a, tea.Quit
		}
		return a, nil
	}

	// Передаем сообщение текущему экрану
	currentScreen := a.getCurrentScreen()
	if currentScreen != nil {
		updatedScreen, cmd := currentScreen.Update(msg)
		a.screens[a.currentScreen] = updatedScreen
		return a, cmd
	}

	return a, nil
}

// View отрисовывает приложение (Bubble Tea)
func (a *App) View() string {
	currentScreen := a.getCurrentScreen()
	if currentScreen == nil {
		return "Loading..."
	}

	if a.quitDialog != nil && a.quitDialog.IsVisible() && a.width > 0 {
		dialog := lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, a.quitDialog.View())
		return fmt.Sprintf("%s\n%s", dialog, a.renderStatusBar())
	}

	view := currentScreen.View()
	if a.sidebarWidth() > 0 {
		bodyHeight := a.height - 1
		main := lipgloss.NewStyle().
			Width(a.mainWidth()).MaxWidth(a.mainWidth()).
			Height(bodyHeight).MaxHeight(bodyHeight).
			Render(view)
		view = lipgloss.JoinHorizontal(lipgloss.Top, main, a.renderSidebar(bodyHeight))
	}

	return fmt.Sprintf("%s\n%s", view, a.renderStatusBar())
}

// getCurrentScreen возвращает текущий экран
func (a *App) getCurrentScreen() screens.Screen {
	return a.screens[a.currentScreen]
}

// CurrentScreen возвращает тип активного экрана
func (a *App) CurrentScreen() ScreenType {
	return a.currentScreen
}

// LastError возвращает последнюю показанную ошибку
func (a *App) LastError() error {
	return a.lastError
}

// createScreen создает экран по типу
func (a *App) createScreen(screenType ScreenType) screens.Screen {
	switch screenType {
	case CommandPaletteScreen:
		return screens.NewCommandPaletteScreen(a.theme, a.commandEntries)
	case SettingsScreen:
		return screens.NewSettingsScreen(a.theme, a.settingTabs)
	case HelpScreen:
		return screens.NewHelpScreen(a.theme, a.commandEntries, a.previousHelp)
	default:
		return screens.NewHomeScreen(a.theme, a.homeHints())
	}
}

func (a *App) homeHints() []screens.HomeHint {
	var hints []screens.HomeHint
	for _, entry := range a.commandEntries() {
		if entry.Key == "" {
			continue
		}
		hints = append(hints, screens.HomeHint{Key: entry.Key, Description: entry.Title})
	}
	return hints
}

// previousHelp отдает полную справку экрана, с которого открыли помощь
func (a *App) previousHelp() []string {
	prev, ok := a.router.Previous()
	if !ok {
		return nil
	}
	if screen := a.screens[prev]; screen != nil {
		return screen.FullHelp()
	}
	return nil
}

// Ширины для раскладки с боковой панелью
const (
	minMainWidth    = 20
	minSidebarWidth = 12
)

// sidebarWidth ширина боковой панели; 0, если панель скрыта или для нее нет места
func (a *App) sidebarWidth() int {
	if len(a.leaves) == 0 {
		return 0
	}
	width := a.config.Sidebar.Width
	if room := a.width - minMainWidth; width > room {
		width = room
	}
	if width < minSidebarWidth {
		return 0
	}
	return width
}

// mainWidth ширина основной области с учетом боковой панели
func (a *App) mainWidth() int {
	return a.width - a.sidebarWidth()
}

func (a *App) renderSidebar(height int) string {
	n := len(a.leaves)
	panelHeight := height / n
	var panels []string
	for i, leaf := range a.leaves {
		h := panelHeight
		if i == n-1 {
			h = height - panelHeight*(n-1)
		}
		panels = append(panels, screens.RenderPanel(a.theme, screens.PanelFrame{
			Title:   leaf.view.DisplayText(),
			Icon:    leaf.view.Icon(),
			Content: leaf.content,
			Focused: i == a.activeLeaf,
		}, a.sidebarWidth(), h))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

// renderStatusBar отрисовывает статус-бар
func (a *App) renderStatusBar() string {
	parts := []string{a.getCurrentScreen().Title()}
	if a.lastError != nil {
		parts = append(parts, a.theme.ErrorMessage(a.lastError.Error()))
	} else {
		parts = append(parts, a.getCurrentScreen().ShortHelp())
	}
	if n := len(a.leaves); n > 0 {
		parts = append(parts, fmt.Sprintf("%d panel(s)", n))
	}
	return a.theme.StatusBar(strings.Join(parts, " │ "))
}

// Сообщения для приложения

// ScreenSwitchMsg сообщение о переключении экрана
type ScreenSwitchMsg struct {
	ScreenType ScreenType
}

// DataChangedMsg файл данных плагина изменился на диске
type DataChangedMsg struct {
	PluginID string
}

type quitConfirmedMsg struct {
	confirmed bool
}
