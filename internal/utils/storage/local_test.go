package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndPath(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalImageStore(dir)

	require.NoError(t, store.Save(7, []byte("png-bytes")))

	assert.Equal(t, filepath.Join(dir, "7.png"), store.Path(7))
	assert.True(t, store.Exists(7))

	data, err := os.ReadFile(store.Path(7))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	store := NewLocalImageStore(dir)

	require.NoError(t, store.Save(1, []byte("x")))
	assert.True(t, store.Exists(1))
}

func TestDeleteIdempotent(t *testing.T) {
	store := NewLocalImageStore(t.TempDir())

	require.NoError(t, store.Save(3, []byte("x")))
	require.NoError(t, store.Delete(3))
	assert.False(t, store.Exists(3))

	// already gone: still no error
	require.NoError(t, store.Delete(3))
	// never existed: still no error
	require.NoError(t, store.Delete(99))
}
