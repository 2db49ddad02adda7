package kanji

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanji-tui/internal/ui/components"
)

func TestPlugin_OnLoadRegistersEverything(t *testing.T) {
	_, h := loadedPlugin(t)

	require.Contains(t, h.commands, CommandOpenTab)
	require.Contains(t, h.commands, CommandLoadAnother)
	assert.Equal(t, "Open Kanji Tab", h.commands[CommandOpenTab].Name)
	assert.Equal(t, "Load Another Kanji", h.commands[CommandLoadAnother].Name)
	assert.Contains(t, h.creators, ViewType)
	assert.Len(t, h.tabs, 1)
}

func TestPlugin_LoadFailureKeepsDefaults(t *testing.T) {
	boom := errors.New("permission denied")
	h := newFakeHost(&memoryStore{failLoad: boom})
	p := New()

	err := p.OnLoad(h)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, DefaultSettings(), p.Settings())
	assert.Len(t, h.commands, 2)
}

func TestPlugin_FailedLoadBlocksSavesUntilReload(t *testing.T) {
	boom := errors.New("yaml: did not find expected key")
	mem := &memoryStore{failLoad: boom}
	h := newFakeHost(mem)
	p := New()
	require.ErrorIs(t, p.OnLoad(h), boom)

	assert.ErrorIs(t, p.SaveSettings(), boom)

	tab := h.tabs[0]
	tab.Display()
	controls := tab.Container().Controls()
	require.NotEmpty(t, controls)
	require.NotNil(t, controls[0].Input)
	assert.ErrorIs(t, controls[0].Input.Change("#000000"), boom)
	assert.Equal(t, 0, mem.saves)

	mem.failLoad = nil
	require.NoError(t, p.OnExternalSettingsChange())
	require.NoError(t, p.SaveSettings())
	assert.Equal(t, 1, mem.saves)
}

func TestPlugin_LoadAnotherWithoutPanelIsNoop(t *testing.T) {
	_, h := loadedPlugin(t, Entry{Kanji: "日"})

	require.NoError(t, h.run(CommandLoadAnother))
	assert.Empty(t, h.leaves)
}

func TestPlugin_SingleEntryScenario(t *testing.T) {
	_, h := loadedPlugin(t, Entry{Kanji: "日", Furigana: "に", Meaning: "sun"})

	require.NoError(t, h.run(CommandOpenTab))
	require.Len(t, h.leaves, 1)

	want := []components.Element{
		{Class: "kanji", Text: "日", Color: DefaultKanjiColor, FontSize: 48},
		{Class: "furigana", Text: "に", Color: DefaultFuriganaColor, FontSize: 24},
		{Class: "meaning", Text: "sun", Color: DefaultMeaningColor, FontSize: 24},
	}
	assert.Equal(t, want, h.leaves[0].content.Elements())

	require.NoError(t, h.run(CommandLoadAnother))
	assert.Equal(t, want, h.leaves[0].content.Elements())

	// Opening again focuses the existing panel.
	require.NoError(t, h.run(CommandOpenTab))
	assert.Len(t, h.leaves, 1)
}

func TestPlugin_EditorChangesVisibleToPanel(t *testing.T) {
	_, h := loadedPlugin(t)
	require.NoError(t, h.run(CommandOpenTab))
	assert.Equal(t, EmptyListMessage, h.leaves[0].content.Elements()[0].Text)

	tab := displayedTab(t, h)
	items := tab.Container().Items()
	require.NoError(t, items[len(items)-1].(*components.Button).Click())
	require.NoError(t, entryTable(t, tab.Container()).Rows[0].Inputs[0].Change("花"))

	require.NoError(t, h.run(CommandLoadAnother))
	assert.Equal(t, "花", h.leaves[0].content.Elements()[0].Text)
}

func TestPlugin_ExternalChangeReloadsAndRedraws(t *testing.T) {
	p, h := loadedPlugin(t)
	shared := p.Settings()
	require.NoError(t, h.run(CommandOpenTab))

	h.store.data = []byte("kanjiList:\n  - kanji: 雨\n    furigana: あめ\n    meaning: rain\n")
	require.NoError(t, p.OnExternalSettingsChange())

	assert.Same(t, shared, p.Settings())
	assert.Equal(t, "雨", h.leaves[0].content.Elements()[0].Text)
}

func TestPlugin_SaveBeforeLoad(t *testing.T) {
	assert.Error(t, New().SaveSettings())
}
