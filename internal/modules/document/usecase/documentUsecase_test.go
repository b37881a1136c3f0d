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

	"taskmanager/internal/modules/document"
	documentRp "taskmanager/internal/modules/document/repo"
	documentDb "taskmanager/internal/modules/document/repo/database"
	"taskmanager/pkg/lib/filestore"
)

func newTestUseCase(t *testing.T) (*DocumentUseCase, *gorm.DB, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&document.Document{}))

	root := t.TempDir()
	store, err := filestore.New(root)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := documentRp.NewDocumentRepo(documentDb.NewDocumentDatabase(db, log), store)
	return NewDocumentUseCase(log, repo), db, root
}

func TestUploadTextFileInlinesContent(t *testing.T) {
	uc, _, root := newTestUseCase(t)

	d, err := uc.Upload(1, nil, "notes.py", "text/plain", []byte("print(1)"))
	require.NoError(t, err)

	require.NotNil(t, d.FileType)
	assert.Equal(t, document.FileTypeText, *d.FileType)
	require.NotNil(t, d.Content)
	assert.Equal(t, "print(1)", *d.Content)
	require.NotNil(t, d.FileSize)
	assert.Equal(t, int64(8), *d.FileSize)
	require.NotNil(t, d.FileURL)
	assert.Contains(t, *d.FileURL, "/api/documents/files/")
	assert.Equal(t, document.TypeFile, d.Type)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".py", filepath.Ext(entries[0].Name()))

	served, err := uc.FileContent(entries[0].Name())
	require.NoError(t, err)
	assert.Equal(t, []byte("print(1)"), served)
}

func TestUploadEmptyFile(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Upload(1, nil, "empty.txt", "text/plain", nil)
	assert.ErrorIs(t, err, document.ErrEmptyFile)
}

func TestUploadBinaryFileNotInlined(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	d, err := uc.Upload(1, nil, "archive.zip", "application/zip", []byte{0x50, 0x4b})
	require.NoError(t, err)

	require.NotNil(t, d.FileType)
	assert.Equal(t, document.FileTypeOther, *d.FileType)
	assert.Nil(t, d.Content)
}

func TestDeleteFolderRecursive(t *testing.T) {
	uc, db, root := newTestUseCase(t)

	folder, err := uc.CreateDocument(1, document.CreateDocumentRequest{Name: "projects", Type: document.TypeFolder})
	require.NoError(t, err)

	sub, err := uc.CreateDocument(1, document.CreateDocumentRequest{Name: "ideas", Type: document.TypeFolder, ParentID: &folder.DocumentID})
	require.NoError(t, err)

	_, err = uc.Upload(1, &folder.DocumentID, "a.txt", "text/plain", []byte("a"))
	require.NoError(t, err)
	_, err = uc.Upload(1, &sub.DocumentID, "b.txt", "text/plain", []byte("b"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDocument(1, folder.DocumentID))

	var remaining int64
	require.NoError(t, db.Model(&document.Document{}).Count(&remaining).Error)
	assert.Zero(t, remaining)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteIsIdempotent(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	d, err := uc.Upload(1, nil, "once.txt", "text/plain", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDocument(1, d.DocumentID))
	require.NoError(t, uc.DeleteDocument(1, d.DocumentID))
	require.NoError(t, uc.DeleteDocument(1, 99999))
}

func TestDeleteDeniedForOtherUser(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	d, err := uc.Upload(1, nil, "mine.txt", "text/plain", []byte("x"))
	require.NoError(t, err)

	err = uc.DeleteDocument(2, d.DocumentID)
	assert.ErrorIs(t, err, document.ErrDocumentAccessDenied)
}

func TestUpdateDocumentPartial(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	d, err := uc.Upload(1, nil, "notes.txt", "text/plain", []byte("original"))
	require.NoError(t, err)

	newName := "renamed.txt"
	updated, err := uc.UpdateDocument(1, d.DocumentID, document.UpdateDocumentRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "renamed.txt", updated.Name)
	require.NotNil(t, updated.Content)
	assert.Equal(t, "original", *updated.Content)
}

func TestListByParent(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	folder, err := uc.CreateDocument(1, document.CreateDocumentRequest{Name: "root", Type: document.TypeFolder})
	require.NoError(t, err)
	_, err = uc.Upload(1, &folder.DocumentID, "child.txt", "text/plain", []byte("c"))
	require.NoError(t, err)

	rootDocs, err := uc.GetDocumentsByParent(1, nil)
	require.NoError(t, err)
	require.Len(t, rootDocs, 1)
	assert.Equal(t, "root", rootDocs[0].Name)

	children, err := uc.GetDocumentsByParent(1, &folder.DocumentID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "child.txt", children[0].Name)

	otherUser, err := uc.GetDocumentsByParent(2, nil)
	require.NoError(t, err)
	assert.Empty(t, otherUser)
}
