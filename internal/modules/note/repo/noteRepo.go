package repo

import (
	"errors"

	"taskmanager/internal/modules/note"
	"taskmanager/pkg/lib/filestore"
)

type NoteDb interface {
	CreateNote(n *note.Note) error
	GetNoteByID(noteID uint) (*note.Note, error)
	GetNotesByUserID(userID uint) ([]note.Note, error)
	GetPinnedNotesByUserID(userID uint) ([]note.Note, error)
	GetNotesByUserIDAndType(userID uint, noteType string) ([]note.Note, error)
	UpdateNote(n *note.Note) error
	DeleteNote(noteID uint) error
}

type MediaStore interface {
	Save(name string, data []byte) (string, error)
	Read(name string) ([]byte, error)
	Remove(name string) error
}

type Repo struct {
	db    NoteDb
	media MediaStore
}

func NewNoteRepo(db NoteDb, media MediaStore) *Repo {
	return &Repo{db: db, media: media}
}

func (r *Repo) CreateNote(n *note.Note) error {
	return r.db.CreateNote(n)
}

func (r *Repo) GetNoteByID(noteID uint) (*note.Note, error) {
	return r.db.GetNoteByID(noteID)
}

func (r *Repo) GetNotesByUserID(userID uint) ([]note.Note, error) {
	return r.db.GetNotesByUserID(userID)
}

func (r *Repo) GetPinnedNotesByUserID(userID uint) ([]note.Note, error) {
	return r.db.GetPinnedNotesByUserID(userID)
}

func (r *Repo) GetNotesByUserIDAndType(userID uint, noteType string) ([]note.Note, error) {
	return r.db.GetNotesByUserIDAndType(userID, noteType)
}

func (r *Repo) UpdateNote(n *note.Note) error {
	return r.db.UpdateNote(n)
}

func (r *Repo) DeleteNote(noteID uint) error {
	return r.db.DeleteNote(noteID)
}

// SaveAudio writes the blob under a generated unique name and returns it.
func (r *Repo) SaveAudio(name string, data []byte) (string, error) {
	storedName := filestore.GenerateName(name)
	if _, err := r.media.Save(storedName, data); err != nil {
		return "", err
	}
	return storedName, nil
}

func (r *Repo) ReadAudio(filename string) ([]byte, error) {
	data, err := r.media.Read(filename)
	if err != nil {
		if errors.Is(err, filestore.ErrFileNotFound) {
			return nil, note.ErrAudioNotFound
		}
		return nil, err
	}
	return data, nil
}

func (r *Repo) RemoveAudio(filename string) error {
	return r.media.Remove(filename)
}
