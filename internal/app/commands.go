package app

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"kanji-tui/internal/platform"
	"kanji-tui/internal/ui/screens"
)

// Command describes an executable action, optionally bound to a key and/or screen.
type Command struct {
	ID      string
	Title   string
	Key     string
	Context string      // plugin id for extension commands
	Screen  *ScreenType // nil → global
	Enabled func(*App) bool
	Run     func(*App) tea.Cmd
}

// CommandRegistry stores commands and resolves them by key and screen.
type CommandRegistry struct {
	byID  map[string]*Command
	byKey map[string][]*Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		byID:  make(map[string]*Command),
		byKey: make(map[string][]*Command),
	}
}

// Register adds a command. IDs are unique across the application.
func (r *CommandRegistry) Register(cmd *Command) error {
	if cmd == nil || cmd.ID == "" {
		return fmt.Errorf("command without id")
	}
	if _, exists := r.byID[cmd.ID]; exists {
		return fmt.Errorf("command %q already registered", cmd.ID)
	}
	r.byID[cmd.ID] = cmd
	if cmd.Key != "" {
		canonical := platform.CanonicalKeyForLookup(cmd.Key)
		if canonical == "" {
			canonical = cmd.Key
		}
		r.byKey[canonical] = append(r.byKey[canonical], cmd)
	}
	return nil
}

// Resolve returns the first matching command for key and screen.
func (r *CommandRegistry) Resolve(key string, screen ScreenType) *Command {
	canonical := platform.CanonicalKeyForLookup(key)
	if canonical == "" {
		canonical = key
	}
	cmds := r.byKey[canonical]
	if len(cmds) == 0 {
		return nil
	}
	// Prefer screen-specific command, fall back to global
	var global *Command
	for _, c := range cmds {
		if c.Screen == nil {
			if global == nil {
				global = c
			}
			continue
		}
		if *c.Screen == screen {
			return c
		}
	}
	return global
}

// Get returns command by id.
func (r *CommandRegistry) Get(id string) *Command {
	if r == nil {
		return nil
	}
	return r.byID[id]
}

// All returns commands sorted by title.
func (r *CommandRegistry) All() []*Command {
	list := make([]*Command, 0, len(r.byID))
	for _, cmd := range r.byID {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Title == list[j].Title {
			return list[i].ID < list[j].ID
		}
		return list[i].Title < list[j].Title
	})
	return list
}

// Run executes command by id if enabled.
func (r *CommandRegistry) Run(id string, app *App) tea.Cmd {
	cmd := r.Get(id)
	if cmd == nil {
		return nil
	}
	if cmd.Enabled != nil && !cmd.Enabled(app) {
		return nil
	}
	if cmd.Run == nil {
		return nil
	}
	return cmd.Run(app)
}

// registerBuiltins wires the application's own actions.
func (a *App) registerBuiltins() {
	builtins := []*Command{
		{
			ID:    "quit",
			Title: "Quit",
			Run:   func(a *App) tea.Cmd { return a.requestQuit() },
		},
		{
			ID:    "command_palette",
			Title: "Command Palette",
			Run:   func(a *App) tea.Cmd { return a.router.SwitchTo(CommandPaletteScreen) },
		},
		{
			ID:    "help",
			Title: "Help",
			Run:   func(a *App) tea.Cmd { return a.router.SwitchTo(HelpScreen) },
		},
		{
			ID:      "settings",
			Title:   "Settings",
			Enabled: func(a *App) bool { return len(a.settingTabs) > 0 },
			Run:     func(a *App) tea.Cmd { return a.router.SwitchTo(SettingsScreen) },
		},
		{
			ID:      "close_panel",
			Title:   "Close Panel",
			Enabled: func(a *App) bool { return len(a.leaves) > 0 },
			Run:     func(a *App) tea.Cmd { return screens.ReportError(a.CloseActiveLeaf()) },
		},
		{
			ID:      "focus_next_panel",
			Title:   "Focus Next Panel",
			Enabled: func(a *App) bool { return len(a.leaves) > 1 },
			Run: func(a *App) tea.Cmd {
				a.activeLeaf = (a.activeLeaf + 1) % len(a.leaves)
				return nil
			},
		},
		{
			ID:    "focus_home",
			Title: "Go Home",
			Run:   func(a *App) tea.Cmd { return a.router.Home() },
		},
	}

	for _, cmd := range builtins {
		cmd.Key = a.config.Keybinding(cmd.ID)
		if err := a.commands.Register(cmd); err != nil {
			a.logger.Warn("register builtin command", zap.Error(err))
		}
	}
}

// commandEntries lists commands for the palette and the help screen.
func (a *App) commandEntries() []screens.CommandEntry {
	all := a.commands.All()
	entries := make([]screens.CommandEntry, 0, len(all))
	for _, cmd := range all {
		entries = append(entries, screens.CommandEntry{
			ID:      cmd.ID,
			Title:   cmd.Title,
			Key:     platform.DisplayKey(cmd.Key),
			Context: cmd.Context,
			Enabled: cmd.Enabled == nil || cmd.Enabled(a),
		})
	}
	return entries
}
