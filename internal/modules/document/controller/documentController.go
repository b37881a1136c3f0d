package controller

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"taskmanager/internal/modules/document"
	resp "taskmanager/pkg/lib/response"
	"taskmanager/pkg/middleware/identity"
)

const maxUploadSizeBytes = 20 << 20

type DocumentController struct {
	log      *slog.Logger
	useCase  document.UseCase
	validate *validator.Validate
}

func NewDocumentController(log *slog.Logger, useCase document.UseCase) *DocumentController {
	return &DocumentController{
		log:      log,
		useCase:  useCase,
		validate: validator.New(),
	}
}

func (c *DocumentController) GetDocumentsByUser(w http.ResponseWriter, r *http.Request) {
	op := "DocumentController.GetDocumentsByUser"
	log := c.log.With(slog.String("op", op))

	userID, err := parseID(r, "userId")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	docs, err := c.useCase.GetDocumentsByUser(userID)
	if err != nil {
		log.Error("usecase GetDocumentsByUser failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch documents")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, docs)
}

func (c *DocumentController) GetRootDocuments(w http.ResponseWriter, r *http.Request) {
	op := "DocumentController.GetRootDocuments"
	log := c.log.With(slog.String("op", op))

	userID, err := parseID(r, "userId")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	docs, err := c.useCase.GetDocumentsByParent(userID, nil)
	if err != nil {
		log.Error("usecase GetDocumentsByParent failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch documents")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, docs)
}

func (c *DocumentController) GetDocumentsByParent(w http.ResponseWriter, r *http.Request) {
	op := "DocumentController.GetDocumentsByParent"
	log := c.log.With(slog.String("op", op))

	userID, err := parseID(r, "userId")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}
	parentID, err := parseID(r, "parentId")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid parent ID")
		return
	}

	docs, err := c.useCase.GetDocumentsByParent(userID, &parentID)
	if err != nil {
		log.Error("usecase GetDocumentsByParent failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch documents")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, docs)
}

func (c *DocumentController) GetDocument(w http.ResponseWriter, r *http.Request) {
	op := "DocumentController.GetDocument"
	log := c.log.With(slog.String("op", op))

	documentID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid document ID")
		return
	}

	d, err := c.useCase.GetDocument(documentID)
	if err != nil {
		c.sendDocumentError(w, r, log, err)
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, d)
}

func (c *DocumentController) CreateDocument(w http.ResponseWriter, r *http.Request) {
	op := "DocumentController.CreateDocument"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	var req document.CreateDocumentRequest
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

	created, err := c.useCase.CreateDocument(userID, req)
	if err != nil {
		log.Error("usecase CreateDocument failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to create document")
		return
	}

	resp.SendSuccess(w, r, http.StatusCreated, created)
}

// UploadFile accepts multipart form data with a "file" part and an optional
// "parentId" form value.
func (c *DocumentController) UploadFile(w http.ResponseWriter, r *http.Request) {
	op := "DocumentController.UploadFile"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSizeBytes); err != nil {
		log.Warn("failed to parse multipart form", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	var parentID *uint
	if raw := r.FormValue("parentId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			resp.SendError(w, r, http.StatusBadRequest, "Invalid parent ID")
			return
		}
		id := uint(parsed)
		parentID = &id
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("file part missing", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("failed to read file part", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	mimeHint := header.Header.Get("Content-Type")
	uploaded, err := c.useCase.Upload(userID, parentID, header.Filename, mimeHint, data)
	if err != nil {
		if errors.Is(err, document.ErrEmptyFile) {
			resp.SendError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("usecase Upload failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	resp.SendSuccess(w, r, http.StatusCreated, uploaded)
}

func (c *DocumentController) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	op := "DocumentController.UpdateDocument"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	documentID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid document ID")
		return
	}

	var req document.UpdateDocumentRequest
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

	updated, err := c.useCase.UpdateDocument(userID, documentID, req)
	if err != nil {
		c.sendDocumentError(w, r, log, err)
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, updated)
}

func (c *DocumentController) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	op := "DocumentController.DeleteDocument"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	documentID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid document ID")
		return
	}

	if err := c.useCase.DeleteDocument(userID, documentID); err != nil {
		c.sendDocumentError(w, r, log, err)
		return
	}

	resp.SendOK(w, r, http.StatusOK)
}

// ServeFile streams a stored blob. Image, pdf, video, audio and text content
// is served inline for browser rendering; everything else forces a download.
func (c *DocumentController) ServeFile(w http.ResponseWriter, r *http.Request) {
	op := "DocumentController.ServeFile"
	log := c.log.With(slog.String("op", op))

	filename := chi.URLParam(r, "filename")
	data, err := c.useCase.FileContent(filename)
	if err != nil {
		if errors.Is(err, document.ErrFileNotFound) {
			resp.SendError(w, r, http.StatusNotFound, err.Error())
			return
		}
		log.Error("usecase FileContent failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to read file")
		return
	}

	contentType := document.ResolveContentType(filename)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if document.InlineDisplayable(contentType) {
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	} else {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Warn("failed to write file response", "error", err)
	}
}

func (c *DocumentController) sendDocumentError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, document.ErrDocumentNotFound):
		resp.SendError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, document.ErrDocumentAccessDenied):
		resp.SendError(w, r, http.StatusForbidden, err.Error())
	default:
		log.Error("document operation failed", "error", err)
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
