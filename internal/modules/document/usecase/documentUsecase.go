package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"taskmanager/internal/modules/document"
	"taskmanager/pkg/lib/filestore"
)

type DocumentUseCase struct {
	log *slog.Logger
	rp  document.Repo
}

func NewDocumentUseCase(log *slog.Logger, rp document.Repo) *DocumentUseCase {
	return &DocumentUseCase{log: log, rp: rp}
}

func (uc *DocumentUseCase) GetDocumentsByUser(userID uint) ([]document.Document, error) {
	docs, err := uc.rp.GetDocumentsByUserID(userID)
	if err != nil {
		uc.log.Error("failed to fetch user documents", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, err
	}
	return docs, nil
}

func (uc *DocumentUseCase) GetDocumentsByParent(userID uint, parentID *uint) ([]document.Document, error) {
	docs, err := uc.rp.GetDocumentsByParent(userID, parentID)
	if err != nil {
		uc.log.Error("failed to fetch documents by parent", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, err
	}
	return docs, nil
}

func (uc *DocumentUseCase) GetDocument(documentID uint) (*document.Document, error) {
	return uc.rp.GetDocumentByID(documentID)
}

func (uc *DocumentUseCase) CreateDocument(userID uint, req document.CreateDocumentRequest) (*document.Document, error) {
	op := "DocumentUseCase.CreateDocument"
	log := uc.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	d := &document.Document{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
		Content:  req.Content,
		UserID:   userID,
	}
	if err := uc.rp.CreateDocument(d); err != nil {
		log.Error("failed to create document", "error", err)
		return nil, err
	}
	return d, nil
}

// Upload stores the blob under a generated name, classifies the file type
// from the MIME hint with extension fallback, and persists the FILE record.
// Text files additionally get their content inlined on the record.
func (uc *DocumentUseCase) Upload(userID uint, parentID *uint, filename, mimeHint string, data []byte) (*document.Document, error) {
	op := "DocumentUseCase.Upload"
	log := uc.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)), slog.String("filename", filename))

	if len(data) == 0 {
		return nil, document.ErrEmptyFile
	}

	storedName := filestore.GenerateName(filename)
	storedPath, err := uc.rp.SaveBlob(storedName, data)
	if err != nil {
		log.Error("failed to store blob", "error", err)
		return nil, document.ErrStorage
	}

	fileType := document.Classify(filename, mimeHint)
	size := int64(len(data))
	fileURL := fmt.Sprintf("/api/documents/files/%s", storedName)

	d := &document.Document{
		Name:     filename,
		Type:     document.TypeFile,
		FileType: &fileType,
		ParentID: parentID,
		FilePath: &storedPath,
		FileURL:  &fileURL,
		FileSize: &size,
		MimeType: &mimeHint,
		UserID:   userID,
	}
	if fileType == document.FileTypeText {
		content := string(data)
		d.Content = &content
	}

	if err := uc.rp.CreateDocument(d); err != nil {
		log.Error("failed to persist document record", "error", err)
		if removeErr := uc.rp.RemoveBlobPath(storedPath); removeErr != nil {
			log.Warn("failed to clean up orphaned blob", "error", removeErr)
		}
		return nil, err
	}

	log.Info("file uploaded", slog.String("fileType", fileType), slog.Int64("size", size))
	return d, nil
}

func (uc *DocumentUseCase) UpdateDocument(userID, documentID uint, req document.UpdateDocumentRequest) (*document.Document, error) {
	op := "DocumentUseCase.UpdateDocument"
	log := uc.log.With(slog.String("op", op), slog.Uint64("documentID", uint64(documentID)))

	d, err := uc.rp.GetDocumentByID(documentID)
	if err != nil {
		return nil, err
	}
	if d.UserID != userID {
		return nil, document.ErrDocumentAccessDenied
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Content != nil {
		d.Content = req.Content
	}
	if req.ParentID != nil {
		d.ParentID = req.ParentID
	}

	if err := uc.rp.UpdateDocument(d); err != nil {
		log.Error("failed to update document", "error", err)
		return nil, err
	}
	return d, nil
}

// DeleteDocument removes the record, its blob, and for folders every
// descendant. Deleting an id that no longer exists is a no-op.
func (uc *DocumentUseCase) DeleteDocument(userID, documentID uint) error {
	op := "DocumentUseCase.DeleteDocument"
	log := uc.log.With(slog.String("op", op), slog.Uint64("documentID", uint64(documentID)))

	d, err := uc.rp.GetDocumentByID(documentID)
	if err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			return nil
		}
		return err
	}
	if d.UserID != userID {
		return document.ErrDocumentAccessDenied
	}

	visited := make(map[uint]bool)
	if err := uc.deleteRecursive(d, visited); err != nil {
		log.Error("failed to delete document tree", "error", err)
		return err
	}
	return nil
}

// deleteRecursive walks the tree depth-first. The visited set guards against
// parentId cycles that would otherwise recurse forever.
func (uc *DocumentUseCase) deleteRecursive(d *document.Document, visited map[uint]bool) error {
	if visited[d.DocumentID] {
		return nil
	}
	visited[d.DocumentID] = true

	if d.FilePath != nil {
		if err := uc.rp.RemoveBlobPath(*d.FilePath); err != nil {
			uc.log.Warn("failed to remove blob", "error", err, slog.Uint64("documentID", uint64(d.DocumentID)))
		}
	}

	if d.Type == document.TypeFolder {
		children, err := uc.rp.GetChildren(d.DocumentID)
		if err != nil {
			return err
		}
		for i := range children {
			if err := uc.deleteRecursive(&children[i], visited); err != nil {
				return err
			}
		}
	}

	return uc.rp.DeleteDocument(d.DocumentID)
}

func (uc *DocumentUseCase) FileContent(filename string) ([]byte, error) {
	data, err := uc.rp.FindBlob(filename)
	if err != nil {
		return nil, err
	}
	return data, nil
}
