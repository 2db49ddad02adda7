// Package kanji is an extension that shows a random kanji with its reading
// and meaning in a side panel.
package kanji

import (
	"fmt"

	"kanji-tui/internal/host"
	"kanji-tui/internal/ui/components"
)

const (
	PluginID = "kanji"

	CommandOpenTab     = "open-kanji-tab"
	CommandLoadAnother = "load-another-kanji"
)

// Plugin owns the settings and wires the view and setting tab into the host.
type Plugin struct {
	host     host.Host
	store    *SettingsStore
	settings *Settings
	// loadErr blocks saves until the record has been read successfully, so
	// defaults never overwrite a record that could not be parsed.
	loadErr error
}

var (
	_ host.Plugin                   = (*Plugin)(nil)
	_ host.ExternalSettingsListener = (*Plugin)(nil)
)

// New returns an unloaded plugin.
func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return PluginID }

// Settings returns the shared settings instance. Nil before OnLoad.
func (p *Plugin) Settings() *Settings { return p.settings }

// OnLoad loads settings and registers commands, the view and the setting tab.
// A failed load leaves the defaults in place and is reported to the host.
func (p *Plugin) OnLoad(h host.Host) error {
	p.host = h
	p.store = NewSettingsStore(h.Data())

	settings, loadErr := p.store.Load()
	p.settings = settings
	p.loadErr = loadErr

	if err := h.AddCommand(host.Command{
		ID:   CommandOpenTab,
		Name: "Open Kanji Tab",
		Callback: func() error {
			return h.Workspace().OpenView(ViewType)
		},
	}); err != nil {
		return err
	}

	if err := h.AddCommand(host.Command{
		ID:       CommandLoadAnother,
		Name:     "Load Another Kanji",
		Callback: p.loadAnother,
	}); err != nil {
		return err
	}

	if err := h.RegisterView(ViewType, func(content *components.Container) host.View {
		return NewView(content, p.settings)
	}); err != nil {
		return err
	}

	h.AddSettingTab(NewSettingTab(p))

	return loadErr
}

func (p *Plugin) OnUnload() {}

// SaveSettings persists the shared settings. After a failed load it refuses
// until OnExternalSettingsChange reads the record back.
func (p *Plugin) SaveSettings() error {
	if p.store == nil {
		return fmt.Errorf("kanji plugin is not loaded")
	}
	if p.loadErr != nil {
		return fmt.Errorf("kanji settings not saved, stored record is unreadable: %w", p.loadErr)
	}
	return p.store.Save(p.settings)
}

// OnExternalSettingsChange reloads the record into the shared instance and
// redraws open panels.
func (p *Plugin) OnExternalSettingsChange() error {
	if err := p.store.Reload(p.settings); err != nil {
		return err
	}
	p.loadErr = nil
	for _, view := range p.host.Workspace().LeavesOfType(ViewType) {
		view.Render()
	}
	return nil
}

// loadAnother redraws the first open kanji panel, if there is one.
func (p *Plugin) loadAnother() error {
	leaves := p.host.Workspace().LeavesOfType(ViewType)
	if len(leaves) == 0 {
		return nil
	}
	leaves[0].Render()
	return nil
}
