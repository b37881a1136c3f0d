package note

import (
	"net/http"
	"time"
)

const (
	TypeText      = "TEXT"
	TypeVoice     = "VOICE"
	TypeImage     = "IMAGE"
	TypeChecklist = "CHECKLIST"
)

// ValidType reports whether t is one of the known note types.
func ValidType(t string) bool {
	switch t {
	case TypeText, TypeVoice, TypeImage, TypeChecklist:
		return true
	}
	return false
}

type Note struct {
	NoteID    uint      `gorm:"primaryKey;column:note_id" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Content   string    `gorm:"column:content" json:"content"`
	IsPinned  bool      `gorm:"column:is_pinned;default:false" json:"isPinned"`
	Type      string    `gorm:"column:note_type;default:TEXT" json:"type"`
	MediaPath *string   `gorm:"column:media_path" json:"mediaPath,omitempty"`
	UserID    uint      `gorm:"column:user_id;not null" json:"userId"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Note) TableName() string {
	return "notes"
}

type CreateNoteRequest struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Content  string  `json:"content"`
	IsPinned *bool   `json:"isPinned,omitempty"`
	Type     *string `json:"type,omitempty" validate:"omitempty,oneof=TEXT VOICE IMAGE CHECKLIST"`
}

type UpdateNoteRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Content  *string `json:"content,omitempty"`
	IsPinned *bool   `json:"isPinned,omitempty"`
	Type     *string `json:"type,omitempty" validate:"omitempty,oneof=TEXT VOICE IMAGE CHECKLIST"`
}

type Controller interface {
	CreateNote(w http.ResponseWriter, r *http.Request)
	CreateNoteWithAudio(w http.ResponseWriter, r *http.Request)
	GetNotes(w http.ResponseWriter, r *http.Request)
	GetNote(w http.ResponseWriter, r *http.Request)
	GetPinnedNotes(w http.ResponseWriter, r *http.Request)
	GetNotesByType(w http.ResponseWriter, r *http.Request)
	UpdateNote(w http.ResponseWriter, r *http.Request)
	TogglePin(w http.ResponseWriter, r *http.Request)
	DeleteNote(w http.ResponseWriter, r *http.Request)
	ServeAudio(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	CreateNote(userID uint, req CreateNoteRequest) (*Note, error)
	CreateNoteWithAudio(userID uint, req CreateNoteRequest, audioName string, audio []byte) (*Note, error)
	GetNotes(userID uint) ([]Note, error)
	GetNote(userID, noteID uint) (*Note, error)
	GetPinnedNotes(userID uint) ([]Note, error)
	GetNotesByType(userID uint, noteType string) ([]Note, error)
	UpdateNote(userID, noteID uint, req UpdateNoteRequest) (*Note, error)
	TogglePin(userID, noteID uint) (*Note, error)
	DeleteNote(userID, noteID uint) error
	AudioFile(filename string) ([]byte, string, error)
}

type Repo interface {
	CreateNote(n *Note) error
	GetNoteByID(noteID uint) (*Note, error)
	GetNotesByUserID(userID uint) ([]Note, error)
	GetPinnedNotesByUserID(userID uint) ([]Note, error)
	GetNotesByUserIDAndType(userID uint, noteType string) ([]Note, error)
	UpdateNote(n *Note) error
	DeleteNote(noteID uint) error
	SaveAudio(name string, data []byte) (string, error)
	ReadAudio(filename string) ([]byte, error)
	RemoveAudio(filename string) error
}
