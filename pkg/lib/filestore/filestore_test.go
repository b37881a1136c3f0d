package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNameKeepsExtension(t *testing.T) {
	name := GenerateName("notes.py")
	assert.True(t, strings.HasSuffix(name, ".py"))
	assert.NotEqual(t, "notes.py", name)

	other := GenerateName("notes.py")
	assert.NotEqual(t, name, other)

	bare := GenerateName("README")
	assert.NotContains(t, bare, ".")
}

func TestSaveReadRemove(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("a.txt", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Root(), "a.txt"), path)

	data, err := store.Read("a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	require.NoError(t, store.Remove("a.txt"))
	_, err = store.Read("a.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)

	// removing again is still success
	require.NoError(t, store.Remove("a.txt"))
}

func TestFindFallsBackToPrefixAndSuffix(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("abc123.py", []byte("print(1)"))
	require.NoError(t, err)

	byExact, err := store.Find("abc123.py")
	require.NoError(t, err)
	assert.Equal(t, []byte("print(1)"), byExact)

	byPrefix, err := store.Find("abc123")
	require.NoError(t, err)
	assert.Equal(t, []byte("print(1)"), byPrefix)

	bySuffix, err := store.Find(".py")
	require.NoError(t, err)
	assert.Equal(t, []byte("print(1)"), bySuffix)

	_, err = store.Find("missing.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestSubCreatesNestedStore(t *testing.T) {
	root := t.TempDir()
	store, err := New(root)
	require.NoError(t, err)

	audio, err := store.Sub("audio")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "audio"), audio.Root())

	info, err := os.Stat(audio.Root())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRemovePath(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("x.bin", []byte{1})
	require.NoError(t, err)

	require.NoError(t, RemovePath(path))
	require.NoError(t, RemovePath(path))
}
