package document

import (
	"net/http"
	"time"
)

const (
	TypeFile   = "FILE"
	TypeFolder = "FOLDER"
)

const (
	FileTypeImage = "IMAGE"
	FileTypePDF   = "PDF"
	FileTypeVideo = "VIDEO"
	FileTypeAudio = "AUDIO"
	FileTypeText  = "TEXT"
	FileTypeOther = "OTHER"
)

type Document struct {
	DocumentID uint      `gorm:"primaryKey;column:document_id" json:"id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	Type       string    `gorm:"column:doc_type;not null" json:"type"`
	FileType   *string   `gorm:"column:file_type" json:"fileType,omitempty"`
	ParentID   *uint     `gorm:"column:parent_id" json:"parentId,omitempty"`
	Content    *string   `gorm:"column:content" json:"content,omitempty"`
	FilePath   *string   `gorm:"column:file_path" json:"filePath,omitempty"`
	FileURL    *string   `gorm:"column:file_url" json:"fileUrl,omitempty"`
	FileSize   *int64    `gorm:"column:file_size" json:"size,omitempty"`
	MimeType   *string   `gorm:"column:mime_type" json:"mimeType,omitempty"`
	UserID     uint      `gorm:"column:user_id;not null" json:"userId"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Document) TableName() string {
	return "documents"
}

type CreateDocumentRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Type     string  `json:"type" validate:"required,oneof=FILE FOLDER"`
	ParentID *uint   `json:"parentId,omitempty"`
	Content  *string `json:"content,omitempty"`
}

// UpdateDocumentRequest carries a partial update; only non-nil fields are
// applied.
type UpdateDocumentRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Content  *string `json:"content,omitempty"`
	ParentID *uint   `json:"parentId,omitempty"`
}

type Controller interface {
	GetDocumentsByUser(w http.ResponseWriter, r *http.Request)
	GetRootDocuments(w http.ResponseWriter, r *http.Request)
	GetDocumentsByParent(w http.ResponseWriter, r *http.Request)
	GetDocument(w http.ResponseWriter, r *http.Request)
	CreateDocument(w http.ResponseWriter, r *http.Request)
	UploadFile(w http.ResponseWriter, r *http.Request)
	UpdateDocument(w http.ResponseWriter, r *http.Request)
	DeleteDocument(w http.ResponseWriter, r *http.Request)
	ServeFile(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	GetDocumentsByUser(userID uint) ([]Document, error)
	GetDocumentsByParent(userID uint, parentID *uint) ([]Document, error)
	GetDocument(documentID uint) (*Document, error)
	CreateDocument(userID uint, req CreateDocumentRequest) (*Document, error)
	Upload(userID uint, parentID *uint, filename, mimeHint string, data []byte) (*Document, error)
	UpdateDocument(userID, documentID uint, req UpdateDocumentRequest) (*Document, error)
	DeleteDocument(userID, documentID uint) error
	FileContent(filename string) ([]byte, error)
}

type Repo interface {
	CreateDocument(d *Document) error
	GetDocumentByID(documentID uint) (*Document, error)
	GetDocumentsByUserID(userID uint) ([]Document, error)
	GetDocumentsByParent(userID uint, parentID *uint) ([]Document, error)
	GetChildren(parentID uint) ([]Document, error)
	UpdateDocument(d *Document) error
	DeleteDocument(documentID uint) error
	SaveBlob(name string, data []byte) (string, error)
	FindBlob(filename string) ([]byte, error)
	RemoveBlobPath(path string) error
}
