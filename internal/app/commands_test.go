package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRegistry_ResolveByCanonicalKey(t *testing.T) {
	r := NewCommandRegistry()
	require.NoError(t, r.Register(&Command{ID: "a", Title: "A", Key: "Shift+Ctrl+N"}))

	got := r.Resolve("ctrl+shift+n", HomeScreen)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
	assert.Nil(t, r.Resolve("ctrl+n", HomeScreen))
}

func TestCommandRegistry_ScreenSpecificWins(t *testing.T) {
	settings := SettingsScreen
	r := NewCommandRegistry()
	require.NoError(t, r.Register(&Command{ID: "global", Key: "ctrl+s"}))
	require.NoError(t, r.Register(&Command{ID: "local", Key: "ctrl+s", Screen: &settings}))

	assert.Equal(t, "local", r.Resolve("ctrl+s", SettingsScreen).ID)
	assert.Equal(t, "global", r.Resolve("ctrl+s", HomeScreen).ID)
}

func TestCommandRegistry_RejectsDuplicatesAndEmptyIDs(t *testing.T) {
	r := NewCommandRegistry()
	require.NoError(t, r.Register(&Command{ID: "a"}))

	assert.Error(t, r.Register(&Command{ID: "a"}))
	assert.Error(t, r.Register(&Command{}))
	assert.Error(t, r.Register(nil))
}

func TestCommandRegistry_AllSortedByTitle(t *testing.T) {
	r := NewCommandRegistry()
	for _, c := range []*Command{
		{ID: "z", Title: "Zeta"},
		{ID: "a", Title: "Alpha"},
		{ID: "m", Title: "Mu"},
	} {
		require.NoError(t, r.Register(c))
	}

	var titles []string
	for _, c := range r.All() {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"Alpha", "Mu", "Zeta"}, titles)
}

func TestCommandRegistry_RunHonorsEnabled(t *testing.T) {
	ran := 0
	enabled := false
	r := NewCommandRegistry()
	require.NoError(t, r.Register(&Command{
		ID:      "x",
		Enabled: func(*App) bool { return enabled },
		Run: func(*App) tea.Cmd {
			ran++
			return nil
		},
	}))

	r.Run("x", nil)
	assert.Equal(t, 0, ran)

	enabled = true
	r.Run("x", nil)
	r.Run("missing", nil)
	assert.Equal(t, 1, ran)
}

func TestApp_CommandEntriesForPalette(t *testing.T) {
	a, _ := newKanjiApp(t)

	byID := make(map[string]bool)
	for _, e := range a.commandEntries() {
		byID[e.ID] = e.Enabled
	}

	assert.True(t, byID["open-kanji-tab"])
	assert.True(t, byID["settings"])
	assert.False(t, byID["close_panel"])
	assert.False(t, byID["focus_next_panel"])
}

func TestScreenRouter_History(t *testing.T) {
	a, _ := newTestApp(t)
	a.Init()

	a.Update(a.router.SwitchTo(SettingsScreen)())
	a.Update(a.router.SwitchTo(HelpScreen)())

	prev, ok := a.router.Previous()
	require.True(t, ok)
	assert.Equal(t, SettingsScreen, prev)

	a.Update(a.router.GoBack()())
	assert.Equal(t, SettingsScreen, a.CurrentScreen())

	assert.Nil(t, a.router.SwitchTo(SettingsScreen))

	cmd := a.router.Home()
	require.NotNil(t, cmd)
	a.Update(cmd())
	assert.Equal(t, HomeScreen, a.CurrentScreen())
	assert.False(t, a.router.CanNavigateBack())
}
