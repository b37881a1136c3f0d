package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"taskmanager/internal/modules/comment"
	resp "taskmanager/pkg/lib/response"
)

type CommentController struct {
	log      *slog.Logger
	useCase  comment.UseCase
	validate *validator.Validate
}

func NewCommentController(log *slog.Logger, useCase comment.UseCase) *CommentController {
	return &CommentController{
		log:      log,
		useCase:  useCase,
		validate: validator.New(),
	}
}

func (c *CommentController) GetCommentsByTask(w http.ResponseWriter, r *http.Request) {
	op := "CommentController.GetCommentsByTask"
	log := c.log.With(slog.String("op", op))

	taskID, err := parseID(r, "taskId")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	comments, err := c.useCase.GetCommentsByTask(taskID)
	if err != nil {
		log.Error("usecase GetCommentsByTask failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, comments)
}

func (c *CommentController) CreateComment(w http.ResponseWriter, r *http.Request) {
	op := "CommentController.CreateComment"
	log := c.log.With(slog.String("op", op))

	var req comment.CreateCommentRequest
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

	created, err := c.useCase.CreateComment(req)
	if err != nil {
		if errors.Is(err, comment.ErrTaskNotFound) {
			resp.SendError(w, r, http.StatusNotFound, err.Error())
			return
		}
		log.Error("usecase CreateComment failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	resp.SendSuccess(w, r, http.StatusCreated, created)
}

func (c *CommentController) DeleteComment(w http.ResponseWriter, r *http.Request) {
	op := "CommentController.DeleteComment"
	log := c.log.With(slog.String("op", op))

	commentID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	if err := c.useCase.DeleteComment(commentID); err != nil {
		if errors.Is(err, comment.ErrCommentNotFound) {
			resp.SendError(w, r, http.StatusNotFound, err.Error())
			return
		}
		log.Error("usecase DeleteComment failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	resp.SendOK(w, r, http.StatusOK)
}

func parseID(r *http.Request, param string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
