package kanji

import (
	"errors"

	"gopkg.in/yaml.v3"

	"kanji-tui/internal/host"
	"kanji-tui/internal/ui/components"
)

// memoryStore keeps the record as YAML bytes so tests exercise the same
// encode/decode path as the file store.
type memoryStore struct {
	data     []byte
	saves    int
	failSave error
	failLoad error
}

func (m *memoryStore) LoadData(v any) (bool, error) {
	if m.failLoad != nil {
		return false, m.failLoad
	}
	if m.data == nil {
		return false, nil
	}
	return true, yaml.Unmarshal(m.data, v)
}

func (m *memoryStore) SaveData(v any) error {
	if m.failSave != nil {
		return m.failSave
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	m.data = data
	m.saves++
	return nil
}

type fakeLeaf struct {
	view    host.View
	content *components.Container
}

// fakeHost mimics the application: one leaf per view type.
type fakeHost struct {
	store    *memoryStore
	commands map[string]host.Command
	creators map[string]host.ViewCreator
	tabs     []host.SettingTab
	leaves   []*fakeLeaf
}

func newFakeHost(store *memoryStore) *fakeHost {
	return &fakeHost{
		store:    store,
		commands: make(map[string]host.Command),
		creators: make(map[string]host.ViewCreator),
	}
}

func (h *fakeHost) AddCommand(cmd host.Command) error {
	if _, ok := h.commands[cmd.ID]; ok {
		return errors.New("duplicate command")
	}
	h.commands[cmd.ID] = cmd
	return nil
}

func (h *fakeHost) RegisterView(viewType string, creator host.ViewCreator) error {
	h.creators[viewType] = creator
	return nil
}

func (h *fakeHost) AddSettingTab(tab host.SettingTab) { h.tabs = append(h.tabs, tab) }
func (h *fakeHost) Workspace() host.Workspace         { return h }
func (h *fakeHost) Data() host.DataStore              { return h.store }

func (h *fakeHost) OpenView(viewType string) error {
	for _, leaf := range h.leaves {
		if leaf.view.ViewType() == viewType {
			return nil
		}
	}
	creator, ok := h.creators[viewType]
	if !ok {
		return errors.New("unknown view type")
	}
	content := components.NewContainer("view-content")
	h.leaves = append(h.leaves, &fakeLeaf{view: creator(content), content: content})
	return nil
}

func (h *fakeHost) LeavesOfType(viewType string) []host.View {
	var out []host.View
	for _, leaf := range h.leaves {
		if leaf.view.ViewType() == viewType {
			out = append(out, leaf.view)
		}
	}
	return out
}

func (h *fakeHost) run(id string) error {
	cmd, ok := h.commands[id]
	if !ok {
		return errors.New("unknown command " + id)
	}
	return cmd.Callback()
}
