package usecase

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskmanager/internal/modules/note"
	noteRp "taskmanager/internal/modules/note/repo"
	noteDb "taskmanager/internal/modules/note/repo/database"
	"taskmanager/pkg/lib/filestore"
)

func newTestUseCase(t *testing.T) (*NoteUseCase, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&note.Note{}))

	root := t.TempDir()
	store, err := filestore.New(root)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := noteRp.NewNoteRepo(noteDb.NewNoteDatabase(db, log), store)
	return NewNoteUseCase(log, repo), root
}

func TestCreateNoteDefaultsToText(t *testing.T) {
	uc, _ := newTestUseCase(t)

	n, err := uc.CreateNote(1, note.CreateNoteRequest{Title: "shopping", Content: "milk"})
	require.NoError(t, err)

	assert.Equal(t, note.TypeText, n.Type)
	assert.False(t, n.IsPinned)
	assert.Nil(t, n.MediaPath)
}

func TestCreateNoteWithAudio(t *testing.T) {
	uc, root := newTestUseCase(t)

	n, err := uc.CreateNoteWithAudio(1, note.CreateNoteRequest{Title: "memo"}, "memo.mp3", []byte{0xff, 0xfb})
	require.NoError(t, err)

	assert.Equal(t, note.TypeVoice, n.Type)
	require.NotNil(t, n.MediaPath)
	assert.Equal(t, ".mp3", filepath.Ext(*n.MediaPath))

	data, contentType, err := uc.AudioFile(*n.MediaPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xfb}, data)
	assert.Equal(t, "audio/mpeg", contentType)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateNoteWithEmptyAudio(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.CreateNoteWithAudio(1, note.CreateNoteRequest{Title: "memo"}, "memo.mp3", nil)
	assert.ErrorIs(t, err, note.ErrEmptyAudio)
}

func TestTogglePin(t *testing.T) {
	uc, _ := newTestUseCase(t)

	n, err := uc.CreateNote(1, note.CreateNoteRequest{Title: "pin me"})
	require.NoError(t, err)

	pinned, err := uc.TogglePin(1, n.NoteID)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	unpinned, err := uc.TogglePin(1, n.NoteID)
	require.NoError(t, err)
	assert.False(t, unpinned.IsPinned)
}

func TestGetNotesByTypeValidation(t *testing.T) {
	uc, _ := newTestUseCase(t)

	checklist := note.TypeChecklist
	_, err := uc.CreateNote(1, note.CreateNoteRequest{Title: "todo", Type: &checklist})
	require.NoError(t, err)
	_, err = uc.CreateNote(1, note.CreateNoteRequest{Title: "plain"})
	require.NoError(t, err)

	notes, err := uc.GetNotesByType(1, note.TypeChecklist)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "todo", notes[0].Title)

	_, err = uc.GetNotesByType(1, "DOODLE")
	assert.ErrorIs(t, err, note.ErrInvalidType)
}

func TestDeleteNoteRemovesMedia(t *testing.T) {
	uc, root := newTestUseCase(t)

	n, err := uc.CreateNoteWithAudio(1, note.CreateNoteRequest{Title: "memo"}, "memo.wav", []byte{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteNote(1, n.NoteID))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = uc.GetNote(1, n.NoteID)
	assert.ErrorIs(t, err, note.ErrNoteNotFound)
}

func TestNoteOwnership(t *testing.T) {
	uc, _ := newTestUseCase(t)

	n, err := uc.CreateNote(1, note.CreateNoteRequest{Title: "mine"})
	require.NoError(t, err)

	_, err = uc.GetNote(2, n.NoteID)
	assert.ErrorIs(t, err, note.ErrNoteAccessDenied)

	err = uc.DeleteNote(2, n.NoteID)
	assert.ErrorIs(t, err, note.ErrNoteAccessDenied)
}
