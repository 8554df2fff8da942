package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveOpenDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("students_abc.csv", []byte("ID,Name\n"))
	require.NoError(t, err)
	assert.Equal(t, "students_abc.csv", name)

	file, err := store.Open(name)
	require.NoError(t, err)
	defer file.Close()

	info, err := file.Stat()
	require.NoError(t, err)
	assert.EqualValues(t, 8, info.Size())

	require.NoError(t, store.Delete(name))
	_, err = store.Open(name)
	require.Error(t, err)

	require.NoError(t, store.Delete(name), "deleting a missing file is fine")
}

func TestLocalStorageRejectsEscapingNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../evil.csv", "/etc/passwd", "nested/file.csv", ".hidden"} {
		_, err := store.Save(name, []byte("x"))
		assert.Error(t, err, "name %q", name)
	}
}

func TestLocalStorageCleanupOlderThan(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	_, err = store.Save("old.csv", []byte("old"))
	require.NoError(t, err)
	_, err = store.Save("fresh.csv", []byte("fresh"))
	require.NoError(t, err)

	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.csv"), stale, stale))

	deleted, err := store.CleanupOlderThan(time.Hour)
	require.NoError(t, err)

	assert.Equal(t, []string{"old.csv"}, deleted)
	file, err := store.Open("fresh.csv")
	require.NoError(t, err)
	file.Close()
}
