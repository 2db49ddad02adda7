package screens

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ErrorMsg reports a failure to the application. Screens never show errors
// themselves; the status bar does.
type ErrorMsg struct {
	Err error
}

// CommandExecuteMsg сообщает приложению, какую команду нужно выполнить.
type CommandExecuteMsg struct {
	ID string
}

// CommandPaletteClosedMsg сигнал закрытия палитры без выбора.
type CommandPaletteClosedMsg struct{}

// ReportError wraps err into a command for the application. Nil error gives
// nil command.
func ReportError(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg { return ErrorMsg{Err: err} }
}
