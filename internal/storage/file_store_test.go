package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
	Color string   `yaml:"color"`
}

func TestFileStore_MissingFileIsNotAnError(t *testing.T) {
	store := NewFileStore(t.TempDir(), "kanji")

	rec := record{Color: "default"}
	found, err := store.LoadData(&rec)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "default", rec.Color)
}

func TestFileStore_EmptyFileIsNotFound(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "kanji")
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("\n"), 0644))

	found, err := store.LoadData(&record{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "kanji")
	assert.Equal(t, filepath.Join(dir, "kanji", "data.yaml"), store.Path())

	in := record{Name: "漢字", Items: []string{"a", "b"}, Color: "#0000FF"}
	require.NoError(t, store.SaveData(in))

	var out record
	found, err := NewFileStore(dir, "kanji").LoadData(&out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)

	// Temp files are renamed away.
	entries, err := os.ReadDir(filepath.Join(dir, "kanji"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DataFileName, entries[0].Name())
}

func TestFileStore_MergesOverExistingValues(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "kanji")
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("name: stored\n"), 0644))

	rec := record{Name: "default", Color: "default"}
	found, err := store.LoadData(&rec)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "stored", rec.Name)
	assert.Equal(t, "default", rec.Color)
}

func TestFileStore_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "kanji")
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("name: [unterminated\n"), 0644))

	_, err := store.LoadData(&record{})
	assert.Error(t, err)
}

func TestFileStore_Stale(t *testing.T) {
	store := NewFileStore(t.TempDir(), "kanji")

	stale, err := store.Stale()
	require.NoError(t, err)
	assert.False(t, stale, "missing file")

	require.NoError(t, store.SaveData(record{Name: "ours"}))
	stale, err = store.Stale()
	require.NoError(t, err)
	assert.False(t, stale, "own write")

	require.NoError(t, os.WriteFile(store.Path(), []byte("name: theirs\n"), 0644))
	stale, err = store.Stale()
	require.NoError(t, err)
	assert.True(t, stale, "external write")

	var rec record
	_, err = store.LoadData(&rec)
	require.NoError(t, err)
	stale, err = store.Stale()
	require.NoError(t, err)
	assert.False(t, stale, "after reload")
}
