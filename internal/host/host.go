// Package host describes the contract between the terminal application and
// the extensions it loads. Extensions never see the Bubble Tea program; they
// register commands, view factories and setting tabs through Host.
package host

import (
	"kanji-tui/internal/ui/components"
)

// Plugin is an extension loaded by the application.
type Plugin interface {
	// ID is a stable identifier, also used as the name of the data directory.
	ID() string
	OnLoad(h Host) error
	OnUnload()
}

// ExternalSettingsListener is implemented by plugins that want to know about
// edits made to their data record outside the program.
type ExternalSettingsListener interface {
	OnExternalSettingsChange() error
}

// Host is the per-plugin handle given to OnLoad.
type Host interface {
	AddCommand(cmd Command) error
	RegisterView(viewType string, creator ViewCreator) error
	AddSettingTab(tab SettingTab)
	Workspace() Workspace
	Data() DataStore
}

// Command is a named action shown in the command palette and optionally bound
// to a key through the keybindings config.
type Command struct {
	ID       string
	Name     string
	Callback func() error
}

// Workspace gives access to the side region.
type Workspace interface {
	// OpenView opens a view of the given type in the side region, or focuses
	// the one that is already open.
	OpenView(viewType string) error
	// LeavesOfType returns open views of the type in the order they were opened.
	LeavesOfType(viewType string) []View
}

// View is a panel living in a leaf of the side region.
type View interface {
	ViewType() string
	DisplayText() string
	Icon() string
	// Render replaces the content of the view's container.
	Render()
	OnClose() error
}

// ViewCreator materializes a view of a registered type inside content.
type ViewCreator func(content *components.Container) View

// SettingTab fills the application's settings page.
type SettingTab interface {
	Name() string
	// Container is the form the tab draws into. Display empties and rebuilds it.
	Container() *components.Form
	Display()
}

// DataStore is the persistence pair offered to a plugin. The record format and
// location belong to the application.
type DataStore interface {
	// LoadData decodes the stored record into v. found is false when nothing
	// has been stored yet; v is left untouched in that case.
	LoadData(v any) (found bool, err error)
	SaveData(v any) error
}
