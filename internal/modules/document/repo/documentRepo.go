package repo

import (
	"errors"

	"taskmanager/internal/modules/document"
	"taskmanager/pkg/lib/filestore"
)

type DocumentDb interface {
	CreateDocument(d *document.Document) error
	GetDocumentByID(documentID uint) (*document.Document, error)
	GetDocumentsByUserID(userID uint) ([]document.Document, error)
	GetDocumentsByParent(userID uint, parentID *uint) ([]document.Document, error)
	GetChildren(parentID uint) ([]document.Document, error)
	UpdateDocument(d *document.Document) error
	DeleteDocument(documentID uint) error
}

type BlobStore interface {
	Save(name string, data []byte) (string, error)
	Find(name string) ([]byte, error)
}

type Repo struct {
	db    DocumentDb
	blobs BlobStore
}

func NewDocumentRepo(db DocumentDb, blobs BlobStore) *Repo {
	return &Repo{db: db, blobs: blobs}
}

func (r *Repo) CreateDocument(d *document.Document) error {
	return r.db.CreateDocument(d)
}

func (r *Repo) GetDocumentByID(documentID uint) (*document.Document, error) {
	return r.db.GetDocumentByID(documentID)
}

func (r *Repo) GetDocumentsByUserID(userID uint) ([]document.Document, error) {
	return r.db.GetDocumentsByUserID(userID)
}

func (r *Repo) GetDocumentsByParent(userID uint, parentID *uint) ([]document.Document, error) {
	return r.db.GetDocumentsByParent(userID, parentID)
}

func (r *Repo) GetChildren(parentID uint) ([]document.Document, error) {
	return r.db.GetChildren(parentID)
}

func (r *Repo) UpdateDocument(d *document.Document) error {
	return r.db.UpdateDocument(d)
}

func (r *Repo) DeleteDocument(documentID uint) error {
	return r.db.DeleteDocument(documentID)
}

func (r *Repo) SaveBlob(name string, data []byte) (string, error) {
	return r.blobs.Save(name, data)
}

func (r *Repo) FindBlob(filename string) ([]byte, error) {
	data, err := r.blobs.Find(filename)
	if err != nil {
		if errors.Is(err, filestore.ErrFileNotFound) {
			return nil, document.ErrFileNotFound
		}
		return nil, err
	}
	return data, nil
}

// RemoveBlobPath deletes by stored path; a blob already gone is success.
func (r *Repo) RemoveBlobPath(path string) error {
	return filestore.RemovePath(path)
}
