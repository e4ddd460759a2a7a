package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "none", "hs.msgpack"))
	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoHighScore)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "hs.msgpack")
	s := NewFileStore(path)

	require.NoError(t, s.Save(1200))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1200, got)

	// Lower scores never overwrite.
	require.NoError(t, s.Save(900))
	got, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1200, got)

	require.NoError(t, s.Save(5000))
	got, err = NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.msgpack")
	require.NoError(t, os.WriteFile(path, []byte{0xc1}, 0o644))

	_, err := NewFileStore(path).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoHighScore)
}

func TestMemoryStore(t *testing.T) {
	var m Memory
	_, err := m.Load()
	assert.ErrorIs(t, err, ErrNoHighScore)

	require.NoError(t, m.Save(10))
	require.NoError(t, m.Save(5))
	got, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, 10, got)
	assert.Equal(t, 1, m.Saves)
}
