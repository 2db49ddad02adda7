package kanji

// Entry is one vocabulary record.
type Entry struct {
	Kanji    string `yaml:"kanji"`
	Furigana string `yaml:"furigana"`
	Meaning  string `yaml:"meaning"`
}

// Settings is the persisted configuration shared by the panel and the
// settings tab. There is exactly one instance per plugin; everything holds a
// pointer to it.
type Settings struct {
	KanjiList     []Entry `yaml:"kanjiList"`
	KanjiColor    string  `yaml:"kanjiColor"`
	FuriganaColor string  `yaml:"furiganaColor"`
	MeaningColor  string  `yaml:"meaningColor"`
}

const (
	DefaultKanjiColor    = "#222222"
	DefaultFuriganaColor = "#0000FF"
	DefaultMeaningColor  = "#FF0000"
)

// DefaultSettings returns the configuration used for fields that were never
// stored.
func DefaultSettings() *Settings {
	return &Settings{
		KanjiList:     []Entry{},
		KanjiColor:    DefaultKanjiColor,
		FuriganaColor: DefaultFuriganaColor,
		MeaningColor:  DefaultMeaningColor,
	}
}
