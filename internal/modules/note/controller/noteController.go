package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"taskmanager/internal/modules/note"
	resp "taskmanager/pkg/lib/response"
	"taskmanager/pkg/middleware/identity"
)

const maxAudioSizeBytes = 20 << 20

type NoteController struct {
	log      *slog.Logger
	useCase  note.UseCase
	validate *validator.Validate
}

func NewNoteController(log *slog.Logger, useCase note.UseCase) *NoteController {
	return &NoteController{
		log:      log,
		useCase:  useCase,
		validate: validator.New(),
	}
}

func (c *NoteController) CreateNote(w http.ResponseWriter, r *http.Request) {
	op := "NoteController.CreateNote"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	var req note.CreateNoteRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	created, err := c.useCase.CreateNote(userID, req)
	if err != nil {
		log.Error("usecase CreateNote failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to create note")
		return
	}

	resp.SendSuccess(w, r, http.StatusCreated, created)
}

// CreateNoteWithAudio accepts multipart form data with a "note" JSON part and
// an "audio" file part.
func (c *NoteController) CreateNoteWithAudio(w http.ResponseWriter, r *http.Request) {
	op := "NoteController.CreateNoteWithAudio"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	if err := r.ParseMultipartForm(maxAudioSizeBytes); err != nil {
		log.Warn("failed to parse multipart form", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	var req note.CreateNoteRequest
	if err := json.Unmarshal([]byte(r.FormValue("note")), &req); err != nil {
		log.Warn("failed to decode note part", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "Invalid note payload")
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		log.Warn("audio part missing", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "audio file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("failed to read audio part", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to read audio file")
		return
	}

	created, err := c.useCase.CreateNoteWithAudio(userID, req, header.Filename, data)
	if err != nil {
		if errors.Is(err, note.ErrEmptyAudio) {
			resp.SendError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("usecase CreateNoteWithAudio failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to create voice note")
		return
	}

	resp.SendSuccess(w, r, http.StatusCreated, created)
}

func (c *NoteController) GetNotes(w http.ResponseWriter, r *http.Request) {
	op := "NoteController.GetNotes"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	notes, err := c.useCase.GetNotes(userID)
	if err != nil {
		log.Error("usecase GetNotes failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, notes)
}

func (c *NoteController) GetNote(w http.ResponseWriter, r *http.Request) {
	op := "NoteController.GetNote"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	noteID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid note ID")
		return
	}

	n, err := c.useCase.GetNote(userID, noteID)
	if err != nil {
		c.sendNoteError(w, r, log, err)
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, n)
}

func (c *NoteController) GetPinnedNotes(w http.ResponseWriter, r *http.Request) {
	op := "NoteController.GetPinnedNotes"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	notes, err := c.useCase.GetPinnedNotes(userID)
	if err != nil {
		log.Error("usecase GetPinnedNotes failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch pinned notes")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, notes)
}

func (c *NoteController) GetNotesByType(w http.ResponseWriter, r *http.Request) {
	op := "NoteController.GetNotesByType"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	noteType := chi.URLParam(r, "type")
	notes, err := c.useCase.GetNotesByType(userID, noteType)
	if err != nil {
		if errors.Is(err, note.ErrInvalidType) {
			resp.SendError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("usecase GetNotesByType failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, notes)
}

func (c *NoteController) UpdateNote(w http.ResponseWriter, r *http.Request) {
	op := "NoteController.UpdateNote"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	noteID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid note ID")
		return
	}

	var req note.UpdateNoteRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	updated, err := c.useCase.UpdateNote(userID, noteID, req)
	if err != nil {
		c.sendNoteError(w, r, log, err)
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, updated)
}

func (c *NoteController) TogglePin(w http.ResponseWriter, r *http.Request) {
	op := "NoteController.TogglePin"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	noteID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid note ID")
		return
	}

	updated, err := c.useCase.TogglePin(userID, noteID)
	if err != nil {
		c.sendNoteError(w, r, log, err)
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, updated)
}

func (c *NoteController) DeleteNote(w http.ResponseWriter, r *http.Request) {
	op := "NoteController.DeleteNote"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	noteID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid note ID")
		return
	}

	if err := c.useCase.DeleteNote(userID, noteID); err != nil {
		c.sendNoteError(w, r, log, err)
		return
	}

	resp.SendOK(w, r, http.StatusOK)
}

// ServeAudio streams a stored voice note recording. It is not user-scoped;
// the generated filename is the capability.
func (c *NoteController) ServeAudio(w http.ResponseWriter, r *http.Request) {
	op := "NoteController.ServeAudio"
	log := c.log.With(slog.String("op", op))

	filename := chi.URLParam(r, "filename")
	data, contentType, err := c.useCase.AudioFile(filename)
	if err != nil {
		if errors.Is(err, note.ErrAudioNotFound) {
			resp.SendError(w, r, http.StatusNotFound, err.Error())
			return
		}
		log.Error("usecase AudioFile failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to read audio file")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Warn("failed to write audio response", "error", err)
	}
}

func (c *NoteController) sendNoteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, note.ErrNoteNotFound):
		resp.SendError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, note.ErrNoteAccessDenied):
		resp.SendError(w, r, http.StatusForbidden, err.Error())
	default:
		log.Error("note operation failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

func parseID(r *http.Request, param string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
