package screens

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanji-tui/internal/host"
	"kanji-tui/internal/ui/components"
	"kanji-tui/internal/ui/styles"
)

// recordingTab builds a color setting and a one-row table, recording every
// change and rebuilding itself when its button is pressed.
type recordingTab struct {
	form     *components.Form
	displays int
	color    string
	word     string
	changes  []string
	clicks   int
	clickErr error
}

func newRecordingTab() *recordingTab {
	return &recordingTab{form: components.NewForm(), color: "#FF0000", word: "日"}
}

func (t *recordingTab) Name() string                { return "Test" }
func (t *recordingTab) Container() *components.Form { return t.form }

func (t *recordingTab) Display() {
	t.displays++
	t.form.Empty()
	t.form.AddHeading("Test Settings")

	s := t.form.AddSetting("Color", "Pick one")
	s.Input.Value = t.color
	s.Input.Color = true
	s.Input.OnChange = func(v string) error {
		t.color = v
		t.changes = append(t.changes, v)
		return nil
	}

	row := t.form.AddTable("Word", "").AddRow()
	row.AddInput(t.word, func(v string) error {
		t.word = v
		t.changes = append(t.changes, v)
		return nil
	})
	row.AddButton("-", func() error {
		t.clicks++
		if t.clickErr != nil {
			return t.clickErr
		}
		t.Display()
		return nil
	})
}

func newSettings(t *testing.T) (*SettingsScreen, *recordingTab) {
	t.Helper()
	tab := newRecordingTab()
	ss := NewSettingsScreen(styles.NewTheme("dark"), []host.SettingTab{tab})
	ss.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	ss.OnEnter()
	return ss, tab
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestSettingsScreen_OnEnterDisplaysTab(t *testing.T) {
	ss, tab := newSettings(t)

	assert.Equal(t, 1, tab.displays)
	assert.Equal(t, 0, ss.FocusIndex())
	assert.Equal(t, "Settings — Test", ss.Title())
	assert.Contains(t, ss.View(), "Test Settings")
}

func TestSettingsScreen_TypingChangesFocusedInput(t *testing.T) {
	ss, tab := newSettings(t)

	ss.Update(key(tea.KeyDown))
	require.Equal(t, 1, ss.FocusIndex())

	ss.Update(runes("本"))

	assert.Equal(t, "日本", tab.word)
	assert.Equal(t, []string{"日本"}, tab.changes)
	assert.Equal(t, "#FF0000", tab.color)
}

func TestSettingsScreen_NavigationKeysDoNotChangeValues(t *testing.T) {
	ss, tab := newSettings(t)

	ss.Update(key(tea.KeyTab))
	ss.Update(key(tea.KeyShiftTab))
	ss.Update(key(tea.KeyUp))

	assert.Empty(t, tab.changes)
	assert.Equal(t, 2, ss.FocusIndex())
}

func TestSettingsScreen_ColorPicker(t *testing.T) {
	ss, tab := newSettings(t)

	ss.Update(tea.KeyMsg{Type: tea.KeyRight, Alt: true})

	assert.Equal(t, components.PickColor("#FF0000", 1), tab.color)
	assert.Equal(t, []string{tab.color}, tab.changes)
}

func TestSettingsScreen_ButtonRebuildsForm(t *testing.T) {
	ss, tab := newSettings(t)
	ss.Update(key(tea.KeyDown))
	ss.Update(key(tea.KeyDown))

	_, cmd := ss.Update(key(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Equal(t, 1, tab.clicks)
	assert.Equal(t, 2, tab.displays)
	assert.Equal(t, 2, ss.FocusIndex())

	// после пересборки фокус указывает на новую кнопку
	ss.Update(runes(" "))
	assert.Equal(t, 2, tab.clicks)
}

func TestSettingsScreen_ErrorIsReported(t *testing.T) {
	ss, tab := newSettings(t)
	tab.clickErr = errors.New("save failed")
	ss.Update(key(tea.KeyUp))

	_, cmd := ss.Update(key(tea.KeyEnter))

	require.NotNil(t, cmd)
	assert.Equal(t, ErrorMsg{Err: tab.clickErr}, cmd())
}

func TestSettingsScreen_ExternalRedisplayKeepsFocus(t *testing.T) {
	ss, tab := newSettings(t)
	ss.Update(key(tea.KeyDown))

	tab.word = "水"
	ss.Redisplay()

	assert.Equal(t, 1, ss.FocusIndex())
	assert.Equal(t, "水", ss.input.Value())
}

func TestSettingsScreen_LongValueIsNotTruncated(t *testing.T) {
	ss, tab := newSettings(t)
	tab.word = strings.Repeat("あ", 600)
	ss.Redisplay()
	ss.Update(key(tea.KeyDown))

	ss.Update(key(tea.KeyBackspace))

	assert.Equal(t, 599, utf8.RuneCountInString(tab.word))
	assert.Equal(t, []string{strings.Repeat("あ", 599)}, tab.changes)
}

func TestSettingsScreen_MultilineValueBecomesSingleLine(t *testing.T) {
	ss, tab := newSettings(t)
	tab.word = "to see\nto look"
	ss.Redisplay()
	ss.Update(key(tea.KeyDown))

	ss.Update(runes("!"))

	assert.Equal(t, "to see to look!", tab.word)
}
