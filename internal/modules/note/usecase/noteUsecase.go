package usecase

import (
	"log/slog"
	"mime"
	"path/filepath"

	"taskmanager/internal/modules/note"
)

type NoteUseCase struct {
	log *slog.Logger
	rp  note.Repo
}

func NewNoteUseCase(log *slog.Logger, rp note.Repo) *NoteUseCase {
	return &NoteUseCase{log: log, rp: rp}
}

func (uc *NoteUseCase) CreateNote(userID uint, req note.CreateNoteRequest) (*note.Note, error) {
	op := "NoteUseCase.CreateNote"
	log := uc.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	n := &note.Note{
		Title:   req.Title,
		Content: req.Content,
		Type:    note.TypeText,
		UserID:  userID,
	}
	if req.IsPinned != nil {
		n.IsPinned = *req.IsPinned
	}
	if req.Type != nil {
		n.Type = *req.Type
	}

	if err := uc.rp.CreateNote(n); err != nil {
		log.Error("failed to create note", "error", err)
		return nil, err
	}
	return n, nil
}

// CreateNoteWithAudio stores the audio blob first, then the note row
// referencing it. The stored note is always a voice note regardless of the
// type carried in the request.
func (uc *NoteUseCase) CreateNoteWithAudio(userID uint, req note.CreateNoteRequest, audioName string, audio []byte) (*note.Note, error) {
	op := "NoteUseCase.CreateNoteWithAudio"
	log := uc.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	if len(audio) == 0 {
		return nil, note.ErrEmptyAudio
	}

	storedName, err := uc.rp.SaveAudio(audioName, audio)
	if err != nil {
		log.Error("failed to store audio file", "error", err)
		return nil, err
	}

	n := &note.Note{
		Title:     req.Title,
		Content:   req.Content,
		Type:      note.TypeVoice,
		MediaPath: &storedName,
		UserID:    userID,
	}
	if req.IsPinned != nil {
		n.IsPinned = *req.IsPinned
	}

	if err := uc.rp.CreateNote(n); err != nil {
		log.Error("failed to create voice note", "error", err)
		if removeErr := uc.rp.RemoveAudio(storedName); removeErr != nil {
			log.Warn("failed to clean up orphaned audio file", "error", removeErr)
		}
		return nil, err
	}
	return n, nil
}

func (uc *NoteUseCase) GetNotes(userID uint) ([]note.Note, error) {
	notes, err := uc.rp.GetNotesByUserID(userID)
	if err != nil {
		uc.log.Error("failed to fetch notes", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, err
	}
	return notes, nil
}

func (uc *NoteUseCase) GetNote(userID, noteID uint) (*note.Note, error) {
	return uc.ownedNote(userID, noteID)
}

func (uc *NoteUseCase) GetPinnedNotes(userID uint) ([]note.Note, error) {
	notes, err := uc.rp.GetPinnedNotesByUserID(userID)
	if err != nil {
		uc.log.Error("failed to fetch pinned notes", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, err
	}
	return notes, nil
}

func (uc *NoteUseCase) GetNotesByType(userID uint, noteType string) ([]note.Note, error) {
	if !note.ValidType(noteType) {
		return nil, note.ErrInvalidType
	}
	notes, err := uc.rp.GetNotesByUserIDAndType(userID, noteType)
	if err != nil {
		uc.log.Error("failed to fetch notes by type", "error", err, slog.String("type", noteType))
		return nil, err
	}
	return notes, nil
}

func (uc *NoteUseCase) UpdateNote(userID, noteID uint, req note.UpdateNoteRequest) (*note.Note, error) {
	op := "NoteUseCase.UpdateNote"
	log := uc.log.With(slog.String("op", op), slog.Uint64("noteID", uint64(noteID)))

	n, err := uc.ownedNote(userID, noteID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Content != nil {
		n.Content = *req.Content
	}
	if req.IsPinned != nil {
		n.IsPinned = *req.IsPinned
	}
	if req.Type != nil {
		n.Type = *req.Type
	}

	if err := uc.rp.UpdateNote(n); err != nil {
		log.Error("failed to update note", "error", err)
		return nil, err
	}
	return n, nil
}

func (uc *NoteUseCase) TogglePin(userID, noteID uint) (*note.Note, error) {
	op := "NoteUseCase.TogglePin"
	log := uc.log.With(slog.String("op", op), slog.Uint64("noteID", uint64(noteID)))

	n, err := uc.ownedNote(userID, noteID)
	if err != nil {
		return nil, err
	}

	n.IsPinned = !n.IsPinned
	if err := uc.rp.UpdateNote(n); err != nil {
		log.Error("failed to toggle pin", "error", err)
		return nil, err
	}
	return n, nil
}

func (uc *NoteUseCase) DeleteNote(userID, noteID uint) error {
	op := "NoteUseCase.DeleteNote"
	log := uc.log.With(slog.String("op", op), slog.Uint64("noteID", uint64(noteID)))

	n, err := uc.ownedNote(userID, noteID)
	if err != nil {
		return err
	}

	if err := uc.rp.DeleteNote(noteID); err != nil {
		log.Error("failed to delete note", "error", err)
		return err
	}

	if n.MediaPath != nil {
		if err := uc.rp.RemoveAudio(*n.MediaPath); err != nil {
			log.Warn("failed to remove note media file", "error", err)
		}
	}
	return nil
}

// AudioFile returns the audio blob and a content type guessed from the
// file extension, falling back to audio/mpeg.
func (uc *NoteUseCase) AudioFile(filename string) ([]byte, string, error) {
	data, err := uc.rp.ReadAudio(filename)
	if err != nil {
		return nil, "", err
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	return data, contentType, nil
}

func (uc *NoteUseCase) ownedNote(userID, noteID uint) (*note.Note, error) {
	n, err := uc.rp.GetNoteByID(noteID)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, note.ErrNoteAccessDenied
	}
	return n, nil
}
