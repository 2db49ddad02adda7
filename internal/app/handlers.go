package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"kanji-tui/internal/platform"
	"kanji-tui/internal/ui/screens"
)

// escHandler экран, который сам обрабатывает Esc
type escHandler interface {
	HandleGlobalEsc() (bool, tea.Cmd)
}

// handleGlobalKeys обрабатывает глобальные горячие клавиши
func (a *App) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rawKey := msg.String()

	if a.quitDialog != nil && a.quitDialog.IsVisible() {
		return a, a.quitDialog.Update(msg)
	}

	if platform.CanonicalKeyForLookup(rawKey) == "esc" {
		if handler, ok := a.getCurrentScreen().(escHandler); ok {
			if handled, cmd := handler.HandleGlobalEsc(); handled {
				return a, cmd
			}
		}
	}

	// Сначала пытаемся найти команду через реестр
	if cmd := a.commands.Resolve(rawKey, a.currentScreen); cmd != nil {
		a.lastError = nil
		if cmd.Enabled == nil || cmd.Enabled(a) {
			return a, cmd.Run(a)
		}
		return a, nil
	}

	if platform.MatchesKey(rawKey, "ctrl+c") {
		return a, a.requestQuit()
	}

	// Если глобальные клавиши не обработаны, передаем экрану
	currentScreen := a.getCurrentScreen()
	if currentScreen != nil {
		updatedScreen, cmd := currentScreen.Update(msg)
		a.screens[a.currentScreen] = updatedScreen
		return a, cmd
	}

	return a, nil
}

// handleWindowResize обрабатывает изменение размера окна
func (a *App) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height
	a.theme.SetDimensions(msg.Width, msg.Height)

	return a, a.resizeScreens()
}

// resizeScreens передает экранам размер основной области
func (a *App) resizeScreens() tea.Cmd {
	if a.width <= 0 || a.height <= 0 {
		return nil
	}
	size := tea.WindowSizeMsg{Width: a.mainWidth(), Height: a.height}

	var cmds []tea.Cmd
	for screenType, screen := range a.screens {
		if screen == nil {
			continue
		}
		updatedScreen, cmd := screen.Update(size)
		a.screens[screenType] = updatedScreen
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// handleScreenSwitch обрабатывает переключение экранов
func (a *App) handleScreenSwitch(msg ScreenSwitchMsg) (tea.Model, tea.Cmd) {
	currentScreen := a.getCurrentScreen()
	if currentScreen != nil && !currentScreen.CanExit() {
		return a, nil
	}

	// Выходим из текущего экрана
	var cmds []tea.Cmd
	if currentScreen != nil {
		if exit := currentScreen.OnExit(); exit != nil {
			cmds = append(cmds, exit)
		}
	}

	a.currentScreen = msg.ScreenType
	a.lastError = nil

	// Инициализируем новый экран если нужно
	newScreen := a.screens[a.currentScreen]
	created := false
	if newScreen == nil {
		newScreen = a.createScreen(a.currentScreen)
		a.screens[a.currentScreen] = newScreen
		created = true
	}

	// Прокидываем последнюю известную геометрию, иначе у нового экрана
	// останутся нулевые размеры
	if a.width > 0 && a.height > 0 {
		updated, cmd := newScreen.Update(tea.WindowSizeMsg{Width: a.mainWidth(), Height: a.height})
		if updated != nil {
			newScreen = updated
			a.screens[a.currentScreen] = updated
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if created {
		if init := newScreen.Init(); init != nil {
			cmds = append(cmds, init)
		}
	}

	// Входим в новый экран
	if enter := newScreen.OnEnter(); enter != nil {
		cmds = append(cmds, enter)
	}

	if len(cmds) == 0 {
		return a, nil
	}
	return a, tea.Batch(cmds...)
}

// handleCommandExecute закрывает палитру и выполняет выбранную команду
// уже на том экране, с которого палитру открыли
func (a *App) handleCommandExecute(msg screens.CommandExecuteMsg) (tea.Model, tea.Cmd) {
	var back tea.Cmd
	if a.currentScreen == CommandPaletteScreen {
		_, back = a.handleScreenSwitch(ScreenSwitchMsg{ScreenType: a.router.pop()})
	}
	return a, tea.Batch(back, a.commands.Run(msg.ID, a))
}

// handleError логирует ошибку и показывает ее в статус-баре
func (a *App) handleError(msg screens.ErrorMsg) (tea.Model, tea.Cmd) {
	if msg.Err == nil {
		return a, nil
	}
	a.lastError = msg.Err
	a.logger.Error("operation failed", zap.Error(msg.Err))
	return a, nil
}

func (a *App) requestQuit() tea.Cmd {
	if a.quitDialog == nil {
		return tea.Quit
	}
	if a.quitDialog.IsVisible() {
		return nil
	}

	ch := a.quitDialog.Ask(a.quitPrompt())
	return func() tea.Msg {
		confirmed := <-ch
		return quitConfirmedMsg{confirmed: confirmed}
	}
}

// quitPrompt описывает, что закроется вместе с приложением
func (a *App) quitPrompt() string {
	switch n := len(a.leaves); n {
	case 0:
		return "Nothing is open."
	case 1:
		return "1 open panel will be closed."
	default:
		return fmt.Sprintf("%d open panels will be closed.", n)
	}
}
