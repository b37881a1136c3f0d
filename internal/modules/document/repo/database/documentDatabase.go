package database

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"taskmanager/internal/modules/document"
)

type DocumentDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewDocumentDatabase(db *gorm.DB, log *slog.Logger) *DocumentDatabase {
	return &DocumentDatabase{db: db, log: log}
}

func (r *DocumentDatabase) CreateDocument(d *document.Document) error {
	if err := r.db.Create(d).Error; err != nil {
		r.log.Error("failed to insert document", "error", err)
		return document.ErrInternal
	}
	return nil
}

func (r *DocumentDatabase) GetDocumentByID(documentID uint) (*document.Document, error) {
	var d document.Document
	if err := r.db.First(&d, "document_id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, document.ErrDocumentNotFound
		}
		r.log.Error("failed to fetch document", "error", err, slog.Uint64("documentID", uint64(documentID)))
		return nil, document.ErrInternal
	}
	return &d, nil
}

func (r *DocumentDatabase) GetDocumentsByUserID(userID uint) ([]document.Document, error) {
	var docs []document.Document
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		r.log.Error("failed to fetch user documents", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, document.ErrInternal
	}
	return docs, nil
}

// A nil parentID selects root-level documents.
func (r *DocumentDatabase) GetDocumentsByParent(userID uint, parentID *uint) ([]document.Document, error) {
	var docs []document.Document
	query := r.db.Where("user_id = ?", userID)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	if err := query.Order("doc_type DESC, name ASC").Find(&docs).Error; err != nil {
		r.log.Error("failed to fetch documents by parent", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, document.ErrInternal
	}
	return docs, nil
}

func (r *DocumentDatabase) GetChildren(parentID uint) ([]document.Document, error) {
	var docs []document.Document
	if err := r.db.Where("parent_id = ?", parentID).Find(&docs).Error; err != nil {
		r.log.Error("failed to fetch child documents", "error", err, slog.Uint64("parentID", uint64(parentID)))
		return nil, document.ErrInternal
	}
	return docs, nil
}

func (r *DocumentDatabase) UpdateDocument(d *document.Document) error {
	err := r.db.Model(d).
		Select("Name", "Content", "ParentID").
		Updates(d).Error
	if err != nil {
		r.log.Error("failed to update document", "error", err, slog.Uint64("documentID", uint64(d.DocumentID)))
		return document.ErrInternal
	}
	return nil
}

func (r *DocumentDatabase) DeleteDocument(documentID uint) error {
	if err := r.db.Delete(&document.Document{}, "document_id = ?", documentID).Error; err != nil {
		r.log.Error("failed to delete document", "error", err, slog.Uint64("documentID", uint64(documentID)))
		return document.ErrInternal
	}
	return nil
}
