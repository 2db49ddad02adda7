package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"kanji-tui/internal/host"
	"kanji-tui/internal/storage"
	"kanji-tui/internal/ui/components"
	"kanji-tui/internal/ui/screens"
)

// Leaf is one panel of the side region.
type Leaf struct {
	viewType string
	view     host.View
	content  *components.Container
}

// View returns the view living in the leaf.
func (l *Leaf) View() host.View { return l.view }

// Content returns the container the view draws into.
func (l *Leaf) Content() *components.Container { return l.content }

type loadedPlugin struct {
	plugin host.Plugin
	store  *storage.FileStore
}

// pluginHost is the handle a plugin receives in OnLoad.
type pluginHost struct {
	app   *App
	entry *loadedPlugin
}

var (
	_ host.Host      = (*pluginHost)(nil)
	_ host.Workspace = (*App)(nil)
)

func (h *pluginHost) AddCommand(cmd host.Command) error {
	if cmd.Callback == nil {
		return fmt.Errorf("command %q has no callback", cmd.ID)
	}
	callback := cmd.Callback
	id := cmd.ID
	return h.app.commands.Register(&Command{
		ID:      id,
		Title:   cmd.Name,
		Key:     h.app.config.Keybinding(id),
		Context: h.entry.plugin.ID(),
		Run: func(a *App) tea.Cmd {
			err := callback()
			a.eventBus.Publish(NewCommandExecutedEvent(id, err))
			return screens.ReportError(err)
		},
	})
}

func (h *pluginHost) RegisterView(viewType string, creator host.ViewCreator) error {
	if creator == nil {
		return fmt.Errorf("view %q has no creator", viewType)
	}
	if _, exists := h.app.views[viewType]; exists {
		return fmt.Errorf("view type %q already registered", viewType)
	}
	h.app.views[viewType] = creator
	return nil
}

func (h *pluginHost) AddSettingTab(tab host.SettingTab) {
	if tab != nil {
		h.app.settingTabs = append(h.app.settingTabs, tab)
	}
}

func (h *pluginHost) Workspace() host.Workspace { return h.app }

func (h *pluginHost) Data() host.DataStore { return h.entry.store }

// LoadPlugin hands the plugin a host and keeps it for the session. A plugin
// whose OnLoad fails stays loaded with whatever it managed to register.
func (a *App) LoadPlugin(p host.Plugin) error {
	entry := &loadedPlugin{
		plugin: p,
		store:  storage.NewFileStore(a.config.DataDir, p.ID()),
	}
	a.plugins = append(a.plugins, entry)

	err := p.OnLoad(&pluginHost{app: a, entry: entry})
	a.eventBus.Publish(NewPluginLoadedEvent(p.ID(), err))
	if err != nil {
		a.logger.Error("plugin load", zap.String("plugin", p.ID()), zap.Error(err))
		return fmt.Errorf("load plugin %s: %w", p.ID(), err)
	}
	a.logger.Info("plugin loaded", zap.String("plugin", p.ID()), zap.String("data", entry.store.Path()))
	return nil
}

// PluginDataPaths maps plugin ids to their data files.
func (a *App) PluginDataPaths() map[string]string {
	paths := make(map[string]string, len(a.plugins))
	for _, entry := range a.plugins {
		paths[entry.plugin.ID()] = entry.store.Path()
	}
	return paths
}

// OpenView opens a panel of the type or focuses the one already open.
func (a *App) OpenView(viewType string) error {
	for i, leaf := range a.leaves {
		if leaf.viewType == viewType {
			a.activeLeaf = i
			return nil
		}
	}

	creator, ok := a.views[viewType]
	if !ok {
		return fmt.Errorf("unknown view type %q", viewType)
	}

	content := components.NewContainer("view-content")
	view := creator(content)
	if view == nil {
		return fmt.Errorf("view %q was not created", viewType)
	}

	a.leaves = append(a.leaves, &Leaf{viewType: viewType, view: view, content: content})
	a.activeLeaf = len(a.leaves) - 1
	a.resizeScreens()
	a.eventBus.Publish(NewViewOpenedEvent(viewType))
	return nil
}

// LeavesOfType returns open views of the type in opening order.
func (a *App) LeavesOfType(viewType string) []host.View {
	var views []host.View
	for _, leaf := range a.leaves {
		if leaf.viewType == viewType {
			views = append(views, leaf.view)
		}
	}
	return views
}

// Leaves returns the open panels.
func (a *App) Leaves() []*Leaf {
	return a.leaves
}

// CloseActiveLeaf closes the focused panel.
func (a *App) CloseActiveLeaf() error {
	if len(a.leaves) == 0 {
		return nil
	}
	return a.closeLeaf(a.activeLeaf)
}

func (a *App) closeLeaf(i int) error {
	leaf := a.leaves[i]
	err := leaf.view.OnClose()

	a.leaves = append(a.leaves[:i], a.leaves[i+1:]...)
	if a.activeLeaf >= len(a.leaves) {
		a.activeLeaf = len(a.leaves) - 1
	}
	if a.activeLeaf < 0 {
		a.activeLeaf = 0
	}
	a.resizeScreens()
	a.eventBus.Publish(NewViewClosedEvent(leaf.viewType))

	if err != nil {
		return fmt.Errorf("close %s: %w", leaf.viewType, err)
	}
	return nil
}

// handleDataChanged reloads a plugin whose data file changed on disk.
func (a *App) handleDataChanged(msg DataChangedMsg) tea.Cmd {
	var entry *loadedPlugin
	for _, e := range a.plugins {
		if e.plugin.ID() == msg.PluginID {
			entry = e
			break
		}
	}
	if entry == nil {
		return nil
	}

	stale, err := entry.store.Stale()
	if err != nil {
		return screens.ReportError(fmt.Errorf("check %s data: %w", msg.PluginID, err))
	}
	if !stale {
		return nil
	}

	listener, ok := entry.plugin.(host.ExternalSettingsListener)
	if !ok {
		return nil
	}

	err = listener.OnExternalSettingsChange()
	a.eventBus.Publish(NewSettingsReloadedEvent(msg.PluginID, err))
	if err != nil {
		return screens.ReportError(fmt.Errorf("reload %s data: %w", msg.PluginID, err))
	}

	if a.currentScreen == SettingsScreen {
		if ss, ok := a.screens[SettingsScreen].(*screens.SettingsScreen); ok {
			ss.Redisplay()
		}
	}
	return nil
}

// Shutdown closes panels and unloads plugins in reverse order.
func (a *App) Shutdown() {
	for len(a.leaves) > 0 {
		if err := a.closeLeaf(len(a.leaves) - 1); err != nil {
			a.logger.Warn("close panel", zap.Error(err))
		}
	}
	for i := len(a.plugins) - 1; i >= 0; i-- {
		a.plugins[i].plugin.OnUnload()
	}
	_ = a.logger.Sync()
}
