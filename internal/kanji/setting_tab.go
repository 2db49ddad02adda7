package kanji

import (
	"kanji-tui/internal/host"
	"kanji-tui/internal/ui/components"
)

// SettingTab edits the plugin settings. Every change is written to the shared
// Settings and saved immediately.
type SettingTab struct {
	plugin      *Plugin
	containerEl *components.Form
}

var _ host.SettingTab = (*SettingTab)(nil)

// NewSettingTab creates the tab; nothing is drawn until Display.
func NewSettingTab(plugin *Plugin) *SettingTab {
	return &SettingTab{
		plugin:      plugin,
		containerEl: components.NewForm(),
	}
}

func (t *SettingTab) Name() string { return "Kanji" }

func (t *SettingTab) Container() *components.Form { return t.containerEl }

// Display rebuilds the whole form. Row handlers capture their index, so the
// form must be rebuilt after every add or delete.
func (t *SettingTab) Display() {
	form := t.containerEl
	form.Empty()

	form.AddHeading("Kanji Plugin Settings")

	t.addColorSetting("Kanji Color", "Set the color for kanji", &t.plugin.settings.KanjiColor)
	t.addColorSetting("Furigana Color", "Set the color for furigana", &t.plugin.settings.FuriganaColor)
	t.addColorSetting("Meaning Color", "Set the color for meaning", &t.plugin.settings.MeaningColor)

	table := form.AddTable("Kanji", "Furigana", "Meaning", "")

	list := t.plugin.settings.KanjiList
	for index, entry := range list {
		row := table.AddRow()

		row.AddInput(entry.Kanji, func(value string) error {
			t.plugin.settings.KanjiList[index].Kanji = value
			return t.plugin.SaveSettings()
		})
		row.AddInput(entry.Furigana, func(value string) error {
			t.plugin.settings.KanjiList[index].Furigana = value
			return t.plugin.SaveSettings()
		})
		row.AddInput(entry.Meaning, func(value string) error {
			t.plugin.settings.KanjiList[index].Meaning = value
			return t.plugin.SaveSettings()
		})

		row.AddButton("-", func() error {
			return t.deleteEntry(index)
		})

		if index == len(list)-1 {
			row.AddButton("+", t.addEntry)
		}
	}

	// Without rows there is no last row to carry "+".
	if len(list) == 0 {
		form.AddButton("+", t.addEntry)
	}
}

func (t *SettingTab) addColorSetting(name, desc string, field *string) {
	setting := t.containerEl.AddSetting(name, desc)
	setting.Input.Placeholder = "Enter color"
	setting.Input.Color = true
	setting.Input.Value = *field
	setting.Input.OnChange = func(value string) error {
		*field = value
		return t.plugin.SaveSettings()
	}
}

func (t *SettingTab) deleteEntry(index int) error {
	s := t.plugin.settings
	s.KanjiList = append(s.KanjiList[:index], s.KanjiList[index+1:]...)
	if err := t.plugin.SaveSettings(); err != nil {
		return err
	}
	t.Display()
	return nil
}

func (t *SettingTab) addEntry() error {
	s := t.plugin.settings
	s.KanjiList = append(s.KanjiList, Entry{})
	if err := t.plugin.SaveSettings(); err != nil {
		return err
	}
	t.Display()
	return nil
}
