package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"taskmanager/internal/modules/task"
	resp "taskmanager/pkg/lib/response"
	"taskmanager/pkg/middleware/identity"
)

type TaskController struct {
	log      *slog.Logger
	useCase  task.UseCase
	validate *validator.Validate
}

func NewTaskController(log *slog.Logger, useCase task.UseCase) *TaskController {
	return &TaskController{
		log:      log,
		useCase:  useCase,
		validate: validator.New(),
	}
}

func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	op := "TaskController.CreateTask"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	var req task.CreateTaskRequest
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

	created, err := c.useCase.CreateTask(userID, req)
	if err != nil {
		log.Error("usecase CreateTask failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to create task")
		return
	}

	resp.SendSuccess(w, r, http.StatusCreated, created)
}

func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	op := "TaskController.GetTasks"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	tasks, err := c.useCase.GetTasks(userID)
	if err != nil {
		log.Error("usecase GetTasks failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, tasks)
}

func (c *TaskController) GetTask(w http.ResponseWriter, r *http.Request) {
	op := "TaskController.GetTask"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	taskID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	t, err := c.useCase.GetTask(userID, taskID)
	if err != nil {
		c.sendTaskError(w, r, log, err)
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, t)
}

func (c *TaskController) GetTasksByStatus(w http.ResponseWriter, r *http.Request) {
	op := "TaskController.GetTasksByStatus"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	status := chi.URLParam(r, "status")
	tasks, err := c.useCase.GetTasksByStatus(userID, status)
	if err != nil {
		if errors.Is(err, task.ErrInvalidStatus) {
			resp.SendError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("usecase GetTasksByStatus failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, tasks)
}

func (c *TaskController) UpdateTask(w http.ResponseWriter, r *http.Request) {
	op := "TaskController.UpdateTask"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	taskID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req task.UpdateTaskRequest
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

	updated, err := c.useCase.UpdateTask(userID, taskID, req)
	if err != nil {
		c.sendTaskError(w, r, log, err)
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, updated)
}

func (c *TaskController) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	op := "TaskController.UpdateTaskStatus"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	taskID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		resp.SendError(w, r, http.StatusBadRequest, "status query parameter is required")
		return
	}

	updated, err := c.useCase.UpdateTaskStatus(userID, taskID, status)
	if err != nil {
		if errors.Is(err, task.ErrInvalidStatus) {
			resp.SendError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		c.sendTaskError(w, r, log, err)
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, updated)
}

func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	op := "TaskController.DeleteTask"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	taskID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := c.useCase.DeleteTask(userID, taskID); err != nil {
		c.sendTaskError(w, r, log, err)
		return
	}

	resp.SendOK(w, r, http.StatusOK)
}

func (c *TaskController) sendTaskError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		resp.SendError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrTaskAccessDenied):
		resp.SendError(w, r, http.StatusForbidden, err.Error())
	default:
		log.Error("task operation failed", "error", err)
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
