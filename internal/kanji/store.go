package kanji

import (
	"fmt"

	"kanji-tui/internal/host"
)

// SettingsStore loads and saves Settings through the host's data store.
type SettingsStore struct {
	data host.DataStore
}

// NewSettingsStore wraps a host data store.
func NewSettingsStore(data host.DataStore) *SettingsStore {
	return &SettingsStore{data: data}
}

// Load merges the stored record over the defaults. A missing record is not an
// error.
func (s *SettingsStore) Load() (*Settings, error) {
	settings := DefaultSettings()
	if _, err := s.data.LoadData(settings); err != nil {
		return DefaultSettings(), fmt.Errorf("load kanji settings: %w", err)
	}
	if settings.KanjiList == nil {
		settings.KanjiList = []Entry{}
	}
	return settings, nil
}

// Save writes the full record.
func (s *SettingsStore) Save(settings *Settings) error {
	if err := s.data.SaveData(settings); err != nil {
		return fmt.Errorf("save kanji settings: %w", err)
	}
	return nil
}

// Reload loads the record again and copies it into dst, so holders of dst see
// the new values.
func (s *SettingsStore) Reload(dst *Settings) error {
	loaded, err := s.Load()
	if err != nil {
		return err
	}
	*dst = *loaded
	return nil
}
