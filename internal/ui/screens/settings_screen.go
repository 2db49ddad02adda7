package screens

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"kanji-tui/internal/host"
	"kanji-tui/internal/ui/components"
	"kanji-tui/internal/ui/styles"
)

// SettingsScreen hosts the setting tabs registered by plugins. Every
// keystroke in a focused input is forwarded to the input's change handler
// right away; there is no save step.
type SettingsScreen struct {
	BaseScreen

	theme   *styles.Theme
	tabs    []host.SettingTab
	active  int
	focus   int
	version int
	offset  int
	input   textinput.Model
}

// NewSettingsScreen constructs the settings page over the given tabs.
func NewSettingsScreen(theme *styles.Theme, tabs []host.SettingTab) *SettingsScreen {
	ti := textinput.New()
	ti.Prompt = ""
	// Entry fields are free-form; a limit would truncate stored values.
	ti.CharLimit = 0

	return &SettingsScreen{
		BaseScreen: NewBaseScreen("Settings"),
		theme:      theme,
		tabs:       tabs,
		input:      ti,
	}
}

func (ss *SettingsScreen) Init() tea.Cmd {
	return nil
}

// OnEnter asks the active tab to draw itself from the current settings.
func (ss *SettingsScreen) OnEnter() tea.Cmd {
	ss.Redisplay()
	return textinput.Blink
}

// Redisplay rebuilds the active tab, keeping the focus position when possible.
func (ss *SettingsScreen) Redisplay() {
	tab := ss.activeTab()
	if tab == nil {
		return
	}
	tab.Display()
	ss.resync()
}

// Update routes keys to the focused control.
func (ss *SettingsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		ss.SetSize(m.Width, m.Height-1)
		return ss, nil
	case tea.KeyMsg:
		return ss, ss.handleKey(m)
	}

	var cmd tea.Cmd
	ss.input, cmd = ss.input.Update(msg)
	return ss, cmd
}

func (ss *SettingsScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctrl, ok := ss.focused()

	switch msg.String() {
	case "down", "tab":
		ss.moveFocus(1)
		return nil
	case "up", "shift+tab":
		ss.moveFocus(-1)
		return nil
	case "pgdown":
		ss.switchTab(1)
		return nil
	case "pgup":
		ss.switchTab(-1)
		return nil
	case "alt+right", "alt+left":
		if ok && ctrl.Input != nil && ctrl.Input.Color {
			step := 1
			if msg.String() == "alt+left" {
				step = -1
			}
			return ss.change(ctrl.Input, components.PickColor(ctrl.Input.Value, step))
		}
		return nil
	case "enter":
		if ok && ctrl.Button != nil {
			return ss.click(ctrl.Button)
		}
		ss.moveFocus(1)
		return nil
	case " ":
		if ok && ctrl.Button != nil {
			return ss.click(ctrl.Button)
		}
	}

	if !ok || ctrl.Input == nil {
		return nil
	}

	before := ss.input.Value()
	var cmd tea.Cmd
	ss.input, cmd = ss.input.Update(msg)
	after := ss.input.Value()
	if after == before {
		return cmd
	}
	return tea.Batch(cmd, ss.change(ctrl.Input, after))
}

func (ss *SettingsScreen) change(in *components.Input, value string) tea.Cmd {
	err := in.Change(value)
	if ss.input.Value() != value {
		ss.input.SetValue(value)
		ss.input.CursorEnd()
	}
	ss.afterAction()
	return ReportError(err)
}

func (ss *SettingsScreen) click(b *components.Button) tea.Cmd {
	err := b.Click()
	ss.afterAction()
	return ReportError(err)
}

// afterAction picks up a rebuilt form: old controls are gone, so focus is
// re-resolved against the new build.
func (ss *SettingsScreen) afterAction() {
	if form := ss.Form(); form != nil && form.Version() != ss.version {
		ss.resync()
	}
}

func (ss *SettingsScreen) resync() {
	form := ss.Form()
	if form == nil {
		return
	}
	ss.version = form.Version()

	n := len(form.Controls())
	if ss.focus >= n {
		ss.focus = n - 1
	}
	if ss.focus < 0 {
		ss.focus = 0
	}
	ss.syncInput()
}

func (ss *SettingsScreen) moveFocus(delta int) {
	n := len(ss.controls())
	if n == 0 {
		return
	}
	ss.focus = ((ss.focus+delta)%n + n) % n
	ss.syncInput()
}

func (ss *SettingsScreen) switchTab(delta int) {
	if len(ss.tabs) < 2 {
		return
	}
	ss.active = ((ss.active+delta)%len(ss.tabs) + len(ss.tabs)) % len(ss.tabs)
	ss.focus = 0
	ss.offset = 0
	ss.Redisplay()
}

// syncInput loads the focused value into the single-line editor. Newlines
// and tabs in values edited outside the program become spaces here.
func (ss *SettingsScreen) syncInput() {
	ctrl, ok := ss.focused()
	if !ok || ctrl.Input == nil {
		ss.input.Blur()
		return
	}
	ss.input.SetValue(ctrl.Input.Value)
	ss.input.Placeholder = ctrl.Input.Placeholder
	ss.input.CursorEnd()
	ss.input.Focus()
}

func (ss *SettingsScreen) activeTab() host.SettingTab {
	if ss.active < 0 || ss.active >= len(ss.tabs) {
		return nil
	}
	return ss.tabs[ss.active]
}

// Form returns the form of the active tab.
func (ss *SettingsScreen) Form() *components.Form {
	tab := ss.activeTab()
	if tab == nil {
		return nil
	}
	return tab.Container()
}

func (ss *SettingsScreen) controls() []components.Control {
	form := ss.Form()
	if form == nil {
		return nil
	}
	return form.Controls()
}

func (ss *SettingsScreen) focused() (components.Control, bool) {
	controls := ss.controls()
	if ss.focus < 0 || ss.focus >= len(controls) {
		return components.Control{}, false
	}
	return controls[ss.focus], true
}

// FocusIndex returns the position of the focused control.
func (ss *SettingsScreen) FocusIndex() int {
	return ss.focus
}

func (ss *SettingsScreen) Title() string {
	if tab := ss.activeTab(); tab != nil {
		return "Settings — " + tab.Name()
	}
	return "Settings"
}

func (ss *SettingsScreen) ShortHelp() string {
	return "↑↓/Tab: Move • Enter/Space: Press • Alt+←/→: Pick color • Esc: Back"
}

func (ss *SettingsScreen) FullHelp() []string {
	help := ss.BaseScreen.FullHelp()
	return append(help,
		"",
		"Settings Screen:",
		"  ↑/↓ or Tab/Shift+Tab - Move between fields and buttons",
		"  Typing - Edits the focused field, saved immediately",
		"  Enter or Space - Press the focused button",
		"  Alt+←/Alt+→ - Step through the color palette",
		"  PgUp/PgDn - Switch between plugin tabs",
	)
}
