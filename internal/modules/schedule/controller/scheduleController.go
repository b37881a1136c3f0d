package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"taskmanager/internal/modules/schedule"
	resp "taskmanager/pkg/lib/response"
	"taskmanager/pkg/middleware/identity"
)

type ScheduleController struct {
	log      *slog.Logger
	useCase  schedule.UseCase
	validate *validator.Validate
}

func NewScheduleController(log *slog.Logger, useCase schedule.UseCase) *ScheduleController {
	return &ScheduleController{
		log:      log,
		useCase:  useCase,
		validate: validator.New(),
	}
}

func (c *ScheduleController) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	op := "ScheduleController.CreateSchedule"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	var req schedule.CreateScheduleRequest
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

	created, err := c.useCase.CreateSchedule(userID, req)
	if err != nil {
		log.Error("usecase CreateSchedule failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to create schedule")
		return
	}

	resp.SendSuccess(w, r, http.StatusCreated, created)
}

func (c *ScheduleController) GetSchedules(w http.ResponseWriter, r *http.Request) {
	op := "ScheduleController.GetSchedules"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	schedules, err := c.useCase.GetSchedules(userID)
	if err != nil {
		log.Error("usecase GetSchedules failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch schedules")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, schedules)
}

func (c *ScheduleController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	op := "ScheduleController.GetSchedule"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	scheduleID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	s, err := c.useCase.GetSchedule(userID, scheduleID)
	if err != nil {
		c.sendScheduleError(w, r, log, err)
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, s)
}

func (c *ScheduleController) GetSchedulesByDay(w http.ResponseWriter, r *http.Request) {
	op := "ScheduleController.GetSchedulesByDay"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	dayOfWeek := chi.URLParam(r, "dayOfWeek")
	schedules, err := c.useCase.GetSchedulesByDay(userID, dayOfWeek)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDayOfWeek) {
			resp.SendError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("usecase GetSchedulesByDay failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch schedules")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, schedules)
}

func (c *ScheduleController) GetSchedulesByWorkFlag(w http.ResponseWriter, r *http.Request) {
	op := "ScheduleController.GetSchedulesByWorkFlag"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	flag, err := strconv.ParseBool(chi.URLParam(r, "flag"))
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid work flag")
		return
	}

	schedules, err := c.useCase.GetSchedulesByWorkFlag(userID, flag)
	if err != nil {
		log.Error("usecase GetSchedulesByWorkFlag failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch schedules")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, schedules)
}

func (c *ScheduleController) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	op := "ScheduleController.UpdateSchedule"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	scheduleID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	var req schedule.UpdateScheduleRequest
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

	updated, err := c.useCase.UpdateSchedule(userID, scheduleID, req)
	if err != nil {
		c.sendScheduleError(w, r, log, err)
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, updated)
}

func (c *ScheduleController) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	op := "ScheduleController.DeleteSchedule"
	log := c.log.With(slog.String("op", op))

	userID, ok := identity.UserID(r.Context())
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, "X-User-Id header is required")
		return
	}

	scheduleID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	if err := c.useCase.DeleteSchedule(userID, scheduleID); err != nil {
		c.sendScheduleError(w, r, log, err)
		return
	}

	resp.SendOK(w, r, http.StatusOK)
}

func (c *ScheduleController) sendScheduleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, schedule.ErrScheduleNotFound):
		resp.SendError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, schedule.ErrScheduleAccessDenied):
		resp.SendError(w, r, http.StatusForbidden, err.Error())
	default:
		log.Error("schedule operation failed", "error", err)
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
