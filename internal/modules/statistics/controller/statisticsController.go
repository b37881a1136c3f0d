package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"taskmanager/internal/modules/statistics"
	resp "taskmanager/pkg/lib/response"
)

const dateLayout = "2006-01-02"

type StatisticsController struct {
	log      *slog.Logger
	useCase  statistics.UseCase
	validate *validator.Validate
}

func NewStatisticsController(log *slog.Logger, useCase statistics.UseCase) *StatisticsController {
	return &StatisticsController{
		log:      log,
		useCase:  useCase,
		validate: validator.New(),
	}
}

func (c *StatisticsController) GetByDate(w http.ResponseWriter, r *http.Request) {
	op := "StatisticsController.GetByDate"
	log := c.log.With(slog.String("op", op))

	date, err := time.Parse(dateLayout, chi.URLParam(r, "date"))
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	s, err := c.useCase.ComputeForDate(date)
	if err != nil {
		log.Error("usecase ComputeForDate failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, s)
}

func (c *StatisticsController) GetRange(w http.ResponseWriter, r *http.Request) {
	op := "StatisticsController.GetRange"
	log := c.log.With(slog.String("op", op))

	startDate, err := time.Parse(dateLayout, r.URL.Query().Get("startDate"))
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid startDate, expected YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(dateLayout, r.URL.Query().Get("endDate"))
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid endDate, expected YYYY-MM-DD")
		return
	}

	rows, err := c.useCase.Range(startDate, endDate)
	if err != nil {
		log.Error("usecase Range failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to fetch statistics range")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, rows)
}

func (c *StatisticsController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	op := "StatisticsController.GetDashboard"
	log := c.log.With(slog.String("op", op))

	dashboard, err := c.useCase.Dashboard(r.Context())
	if err != nil {
		log.Error("usecase Dashboard failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, dashboard)
}

func (c *StatisticsController) CreateStatistics(w http.ResponseWriter, r *http.Request) {
	op := "StatisticsController.CreateStatistics"
	log := c.log.With(slog.String("op", op))

	s, ok := c.decodeSnapshot(w, r, log)
	if !ok {
		return
	}

	if err := c.useCase.CreateStatistics(s); err != nil {
		log.Error("usecase CreateStatistics failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to create statistics")
		return
	}

	resp.SendSuccess(w, r, http.StatusCreated, s)
}

func (c *StatisticsController) UpdateStatistics(w http.ResponseWriter, r *http.Request) {
	op := "StatisticsController.UpdateStatistics"
	log := c.log.With(slog.String("op", op))

	statID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid statistics ID")
		return
	}

	s, ok := c.decodeSnapshot(w, r, log)
	if !ok {
		return
	}

	updated, err := c.useCase.UpdateStatistics(statID, s)
	if err != nil {
		if errors.Is(err, statistics.ErrStatisticsNotFound) {
			resp.SendError(w, r, http.StatusNotFound, err.Error())
			return
		}
		log.Error("usecase UpdateStatistics failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to update statistics")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, updated)
}

func (c *StatisticsController) DeleteStatistics(w http.ResponseWriter, r *http.Request) {
	op := "StatisticsController.DeleteStatistics"
	log := c.log.With(slog.String("op", op))

	statID, err := parseID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid statistics ID")
		return
	}

	if err := c.useCase.DeleteStatistics(statID); err != nil {
		log.Error("usecase DeleteStatistics failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to delete statistics")
		return
	}

	resp.SendOK(w, r, http.StatusOK)
}

func (c *StatisticsController) decodeSnapshot(w http.ResponseWriter, r *http.Request, log *slog.Logger) (*statistics.Statistics, bool) {
	var req statistics.UpsertStatisticsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "Invalid request payload")
		return nil, false
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed", "error", err)
		resp.SendValidationError(w, r, err)
		return nil, false
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return nil, false
	}

	return &statistics.Statistics{
		StatDate:              date,
		ProductiveTimeMinutes: req.ProductiveTimeMinutes,
		TasksCompleted:        req.TasksCompleted,
		NotesCreated:          req.NotesCreated,
		TasksByDifficulty:     req.TasksByDifficulty,
		NotesByType:           req.NotesByType,
	}, true
}

func parseID(r *http.Request, param string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
