// Package storage implements the host's per-plugin data records as YAML files.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DataFileName имя файла данных внутри директории плагина
const DataFileName = "data.yaml"

// FileStore хранит одну запись плагина в YAML-файле.
// Не потокобезопасен: все вызовы идут из цикла Update.
type FileStore struct {
	path     string
	lastSeen []byte // содержимое файла после последнего чтения или записи
}

// NewFileStore создает хранилище для плагина в dataDir/<pluginID>/data.yaml
func NewFileStore(dataDir, pluginID string) *FileStore {
	return &FileStore{
		path: filepath.Join(dataDir, pluginID, DataFileName),
	}
}

// Path возвращает путь к файлу данных
func (s *FileStore) Path() string {
	return s.path
}

// LoadData декодирует запись в v. Отсутствие файла не является ошибкой.
func (s *FileStore) LoadData(v any) (bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", s.path, err)
	}
	s.lastSeen = data

	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return true, nil
}

// SaveData сериализует v и атомарно заменяет файл
func (s *FileStore) SaveData(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Пишем во временный файл рядом и переименовываем поверх
	tmp, err := os.CreateTemp(dir, DataFileName+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}

	s.lastSeen = data
	return nil
}

// Stale сообщает, изменился ли файл с момента последнего чтения или записи.
// Собственные записи хранилища изменением не считаются.
func (s *FileStore) Stale() (bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !bytes.Equal(data, s.lastSeen), nil
}
