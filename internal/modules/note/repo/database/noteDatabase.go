package database

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"taskmanager/internal/modules/note"
)

type NoteDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewNoteDatabase(db *gorm.DB, log *slog.Logger) *NoteDatabase {
	return &NoteDatabase{db: db, log: log}
}

func (r *NoteDatabase) CreateNote(n *note.Note) error {
	if err := r.db.Create(n).Error; err != nil {
		r.log.Error("failed to insert note", "error", err)
		return note.ErrInternal
	}
	return nil
}

func (r *NoteDatabase) GetNoteByID(noteID uint) (*note.Note, error) {
	var n note.Note
	if err := r.db.First(&n, "note_id = ?", noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, note.ErrNoteNotFound
		}
		r.log.Error("failed to fetch note", "error", err, slog.Uint64("noteID", uint64(noteID)))
		return nil, note.ErrInternal
	}
	return &n, nil
}

// Pinned notes come first, newest within each group.
func (r *NoteDatabase) GetNotesByUserID(userID uint) ([]note.Note, error) {
	var notes []note.Note
	err := r.db.
		Where("user_id = ?", userID).
		Order("is_pinned DESC, created_at DESC").
		Find(&notes).Error
	if err != nil {
		r.log.Error("failed to fetch user notes", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, note.ErrInternal
	}
	return notes, nil
}

func (r *NoteDatabase) GetPinnedNotesByUserID(userID uint) ([]note.Note, error) {
	var notes []note.Note
	err := r.db.
		Where("user_id = ? AND is_pinned = ?", userID, true).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		r.log.Error("failed to fetch pinned notes", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, note.ErrInternal
	}
	return notes, nil
}

func (r *NoteDatabase) GetNotesByUserIDAndType(userID uint, noteType string) ([]note.Note, error) {
	var notes []note.Note
	err := r.db.
		Where("user_id = ? AND note_type = ?", userID, noteType).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		r.log.Error("failed to fetch notes by type", "error", err, slog.String("type", noteType))
		return nil, note.ErrInternal
	}
	return notes, nil
}

func (r *NoteDatabase) UpdateNote(n *note.Note) error {
	err := r.db.Model(n).
		Select("Title", "Content", "IsPinned", "Type", "MediaPath").
		Updates(n).Error
	if err != nil {
		r.log.Error("failed to update note", "error", err, slog.Uint64("noteID", uint64(n.NoteID)))
		return note.ErrInternal
	}
	return nil
}

func (r *NoteDatabase) DeleteNote(noteID uint) error {
	if err := r.db.Delete(&note.Note{}, "note_id = ?", noteID).Error; err != nil {
		r.log.Error("failed to delete note", "error", err, slog.Uint64("noteID", uint64(noteID)))
		return note.ErrInternal
	}
	return nil
}
