package note

import "errors"

var (
	ErrInternal         = errors.New("internal server error")
	ErrNoteNotFound     = errors.New("note not found")
	ErrNoteAccessDenied = errors.New("access to note denied")
	ErrInvalidType      = errors.New("invalid note type")
	ErrAudioNotFound    = errors.New("audio file not found")
	ErrEmptyAudio       = errors.New("audio file is empty")
)
