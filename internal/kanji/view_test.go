package kanji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanji-tui/internal/ui/components"
)

func TestView_EmptyListShowsPlaceholder(t *testing.T) {
	content := components.NewContainer("kanji-plugin-container")
	NewView(content, DefaultSettings())

	elements := content.Elements()
	require.Len(t, elements, 1)
	assert.Equal(t, "empty-list-message", elements[0].Class)
	assert.Equal(t, EmptyListMessage, elements[0].Text)
	assert.Empty(t, elements[0].Color)
}

func TestView_SingleEntryAlwaysShown(t *testing.T) {
	settings := DefaultSettings()
	settings.KanjiList = []Entry{{Kanji: "日", Furigana: "に", Meaning: "sun"}}

	content := components.NewContainer("kanji-plugin-container")
	view := NewView(content, settings)

	for i := 0; i < 50; i++ {
		view.Render()
		elements := content.Elements()
		require.Len(t, elements, 3)
		assert.Equal(t, "日", elements[0].Text)
		assert.Equal(t, "に", elements[1].Text)
		assert.Equal(t, "sun", elements[2].Text)
	}
}

func TestView_IndexAlwaysInRange(t *testing.T) {
	settings := DefaultSettings()
	settings.KanjiList = []Entry{
		{Kanji: "一"}, {Kanji: "二"}, {Kanji: "三"}, {Kanji: "四"},
	}

	content := components.NewContainer("kanji-plugin-container")
	view := NewView(content, settings)

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		view.Render()
		elements := content.Elements()
		require.Len(t, elements, 3)
		seen[elements[0].Text] = true
	}
	for text := range seen {
		assert.Contains(t, []string{"一", "二", "三", "四"}, text)
	}
}

func TestView_UsesDrawnIndexAndColors(t *testing.T) {
	settings := DefaultSettings()
	settings.KanjiList = []Entry{
		{Kanji: "山", Furigana: "やま", Meaning: "mountain"},
		{Kanji: "川", Furigana: "かわ", Meaning: "river"},
	}
	settings.KanjiColor = "#111111"

	content := components.NewContainer("kanji-plugin-container")
	view := NewView(content, settings)
	view.intn = func(n int) int {
		assert.Equal(t, 2, n)
		return 1
	}
	view.Render()

	assert.Equal(t, []components.Element{
		{Class: "kanji", Text: "川", Color: "#111111", FontSize: 48},
		{Class: "furigana", Text: "かわ", Color: DefaultFuriganaColor, FontSize: 24},
		{Class: "meaning", Text: "river", Color: DefaultMeaningColor, FontSize: 24},
	}, content.Elements())
}

func TestView_ReadsSharedSettingsOnEachRender(t *testing.T) {
	settings := DefaultSettings()
	content := components.NewContainer("kanji-plugin-container")
	view := NewView(content, settings)
	require.Equal(t, EmptyListMessage, content.Elements()[0].Text)

	settings.KanjiList = append(settings.KanjiList, Entry{Kanji: "木"})
	settings.KanjiColor = "#00FF00"
	view.Render()

	elements := content.Elements()
	require.Len(t, elements, 3)
	assert.Equal(t, "木", elements[0].Text)
	assert.Equal(t, "#00FF00", elements[0].Color)
}

func TestView_Identity(t *testing.T) {
	view := NewView(components.NewContainer("c"), DefaultSettings())

	assert.Equal(t, "kanji-view", view.ViewType())
	assert.Equal(t, "Kanji View", view.DisplayText())
	assert.Equal(t, "languages", view.Icon())
}

func TestView_OnCloseReleasesContent(t *testing.T) {
	settings := DefaultSettings()
	settings.KanjiList = []Entry{{Kanji: "人"}}
	content := components.NewContainer("c")
	view := NewView(content, settings)

	require.NoError(t, view.OnClose())
	assert.True(t, content.Removed())
	assert.Empty(t, content.Elements())
}
