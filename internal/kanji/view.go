package kanji

import (
	"math/rand/v2"

	"kanji-tui/internal/host"
	"kanji-tui/internal/ui/components"
)

const (
	ViewType = "kanji-view"

	viewDisplayText = "Kanji View"
	viewIcon        = "languages"

	// EmptyListMessage is shown instead of an entry when the list is empty.
	EmptyListMessage = "No Kanji entries found. Please add entries in the plugin settings."

	kanjiFontSize     = 48
	secondaryFontSize = 24
)

// View shows one random entry from the shared settings.
type View struct {
	settings  *Settings
	container *components.Container
	intn      func(n int) int
}

var _ host.View = (*View)(nil)

// NewView creates the panel and renders the first entry.
func NewView(content *components.Container, settings *Settings) *View {
	v := &View{
		settings:  settings,
		container: content,
		intn:      rand.IntN,
	}
	v.Render()
	return v
}

// Render picks a random entry and replaces the panel content with it.
func (v *View) Render() {
	list := v.settings.KanjiList
	v.container.Empty()

	if len(list) == 0 {
		v.container.CreateDiv("empty-list-message").Text = EmptyListMessage
		return
	}

	entry := list[v.intn(len(list))]

	kanjiEl := v.container.CreateDiv("kanji")
	kanjiEl.FontSize = kanjiFontSize
	kanjiEl.Color = v.settings.KanjiColor
	kanjiEl.Text = entry.Kanji

	furiganaEl := v.container.CreateDiv("furigana")
	furiganaEl.FontSize = secondaryFontSize
	furiganaEl.Color = v.settings.FuriganaColor
	furiganaEl.Text = entry.Furigana

	meaningEl := v.container.CreateDiv("meaning")
	meaningEl.FontSize = secondaryFontSize
	meaningEl.Color = v.settings.MeaningColor
	meaningEl.Text = entry.Meaning
}

func (v *View) ViewType() string    { return ViewType }
func (v *View) DisplayText() string { return viewDisplayText }
func (v *View) Icon() string        { return viewIcon }

// OnClose releases the rendered content.
func (v *View) OnClose() error {
	v.container.Remove()
	return nil
}
