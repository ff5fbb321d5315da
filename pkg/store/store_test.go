package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.res")
	fs := FileStore{}

	want := []byte{1, 2, 3, 4, 0, 0, 0, 0}
	require.NoError(t, fs.Save(path, want))

	got, err := fs.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStoreSaveReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "version.res")
	fs := FileStore{}

	require.NoError(t, fs.Save(path, []byte("old")))
	require.NoError(t, fs.Save(path, []byte("new")))

	got, err := fs.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)

	// No temp files may survive a successful save.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "version.res", entries[0].Name())
}

func TestFileStoreLoadMissing(t *testing.T) {
	fs := FileStore{}
	_, err := fs.Load(filepath.Join(t.TempDir(), "absent.res"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileStoreSaveBadDir(t *testing.T) {
	fs := FileStore{}
	err := fs.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "x.res"), []byte{1})
	assert.Error(t, err)
}

func TestMemStore(t *testing.T) {
	ms := NewMemStore()

	_, err := ms.Load("missing")
	assert.ErrorIs(t, err, os.ErrNotExist)

	data := []byte{0xDE, 0xAD}
	require.NoError(t, ms.Save("a", data))

	got, err := ms.Load("a")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Stored bytes must be isolated from caller mutation.
	data[0] = 0
	got2, err := ms.Load("a")
	require.NoError(t, err)
	assert.Equal(t, byte(0xDE), got2[0])
}
