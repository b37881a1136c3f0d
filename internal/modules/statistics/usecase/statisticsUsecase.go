package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"taskmanager/internal/modules/statistics"
	"taskmanager/internal/modules/task"
)

// Per-difficulty productive time estimates, in minutes.
var productiveMinutes = map[string]int{
	task.DifficultyEasy:   30,
	task.DifficultyMedium: 60,
	task.DifficultyHard:   120,
}

const defaultProductiveMinutes = 45

type StatisticsUseCase struct {
	log *slog.Logger
	rp  statistics.Repo
	now func() time.Time
}

func NewStatisticsUseCase(log *slog.Logger, rp statistics.Repo) *StatisticsUseCase {
	return &StatisticsUseCase{
		log: log,
		rp:  rp,
		now: time.Now,
	}
}

// WithClock overrides the time source, used by tests.
func (uc *StatisticsUseCase) WithClock(now func() time.Time) *StatisticsUseCase {
	uc.now = now
	return uc
}

// ComputeForDate recomputes the snapshot for one calendar day from the raw
// task and note rows and upserts it keyed by date.
func (uc *StatisticsUseCase) ComputeForDate(date time.Time) (*statistics.Statistics, error) {
	op := "StatisticsUseCase.ComputeForDate"
	log := uc.log.With(slog.String("op", op), slog.String("date", date.Format("2006-01-02")))

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)

	difficulties, err := uc.rp.CompletedTaskDifficultiesBetween(start, end)
	if err != nil {
		log.Error("failed to fetch completed tasks", "error", err)
		return nil, err
	}
	noteTypes, err := uc.rp.NoteTypesBetween(start, end)
	if err != nil {
		log.Error("failed to fetch notes", "error", err)
		return nil, err
	}

	productive := 0
	difficultyCounts := make(map[string]int64)
	for _, d := range difficulties {
		difficultyCounts[d]++
		if minutes, ok := productiveMinutes[d]; ok {
			productive += minutes
		} else {
			productive += defaultProductiveMinutes
		}
	}

	typeCounts := make(map[string]int64)
	for _, t := range noteTypes {
		typeCounts[t]++
	}

	s := &statistics.Statistics{
		StatDate:              start,
		ProductiveTimeMinutes: productive,
		TasksCompleted:        len(difficulties),
		NotesCreated:          len(noteTypes),
		TasksByDifficulty:     marshalCounts(difficultyCounts),
		NotesByType:           marshalCounts(typeCounts),
	}

	if err := uc.rp.Upsert(s); err != nil {
		log.Error("failed to upsert snapshot", "error", err)
		return nil, err
	}
	return s, nil
}

// Range reads the stored snapshots whose date falls within the inclusive
// window. It does not recompute.
func (uc *StatisticsUseCase) Range(startDate, endDate time.Time) ([]statistics.Statistics, error) {
	op := "StatisticsUseCase.Range"
	log := uc.log.With(slog.String("op", op))

	rows, err := uc.rp.GetByDateRange(startDate, endDate)
	if err != nil {
		log.Error("failed to fetch snapshot range", "error", err)
		return nil, err
	}
	return rows, nil
}

// Dashboard serves the cached payload when present. On a miss it recomputes
// today plus the trailing week and the global distributions, then caches the
// result.
func (uc *StatisticsUseCase) Dashboard(ctx context.Context) (*statistics.DashboardResponse, error) {
	op := "StatisticsUseCase.Dashboard"
	log := uc.log.With(slog.String("op", op))

	if cached, err := uc.rp.CachedDashboard(ctx); err == nil {
		return cached, nil
	} else if !errors.Is(err, statistics.ErrDashboardNotCached) {
		log.Warn("dashboard cache read failed", "error", err)
	}

	today := uc.now()
	todayStats, err := uc.ComputeForDate(today)
	if err != nil {
		return nil, err
	}

	last7Days := make([]statistics.DaySummary, 0, 7)
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		dayStats, err := uc.ComputeForDate(date)
		if err != nil {
			return nil, err
		}
		last7Days = append(last7Days, statistics.DaySummary{
			Date:                  date.Format("2006-01-02"),
			DayName:               strings.ToUpper(date.Weekday().String()[:3]),
			TasksCompleted:        dayStats.TasksCompleted,
			NotesCreated:          dayStats.NotesCreated,
			ProductiveTimeMinutes: dayStats.ProductiveTimeMinutes,
		})
	}

	difficultyStats, err := uc.rp.TaskDifficultyCounts()
	if err != nil {
		log.Error("failed to fetch difficulty distribution", "error", err)
		return nil, err
	}
	noteTypeStats, err := uc.rp.NoteTypeCounts()
	if err != nil {
		log.Error("failed to fetch note type distribution", "error", err)
		return nil, err
	}

	dashboard := &statistics.DashboardResponse{
		TodayStats:      todayStats,
		Last7Days:       last7Days,
		DifficultyStats: difficultyStats,
		NoteTypeStats:   noteTypeStats,
	}

	if err := uc.rp.CacheDashboard(ctx, dashboard); err != nil {
		log.Warn("failed to cache dashboard", "error", err)
	}
	return dashboard, nil
}

func (uc *StatisticsUseCase) CreateStatistics(s *statistics.Statistics) error {
	op := "StatisticsUseCase.CreateStatistics"
	log := uc.log.With(slog.String("op", op))

	if err := uc.rp.Create(s); err != nil {
		log.Error("failed to create snapshot", "error", err)
		return err
	}
	return nil
}

func (uc *StatisticsUseCase) UpdateStatistics(statID uint, s *statistics.Statistics) (*statistics.Statistics, error) {
	op := "StatisticsUseCase.UpdateStatistics"
	log := uc.log.With(slog.String("op", op), slog.Uint64("statID", uint64(statID)))

	if _, err := uc.rp.GetByID(statID); err != nil {
		return nil, err
	}

	s.StatID = statID
	if err := uc.rp.Update(s); err != nil {
		log.Error("failed to update snapshot", "error", err)
		return nil, err
	}
	return s, nil
}

func (uc *StatisticsUseCase) DeleteStatistics(statID uint) error {
	op := "StatisticsUseCase.DeleteStatistics"
	log := uc.log.With(slog.String("op", op), slog.Uint64("statID", uint64(statID)))

	if err := uc.rp.Delete(statID); err != nil {
		log.Error("failed to delete snapshot", "error", err)
		return err
	}
	return nil
}

// marshalCounts serializes a frequency map as a compact JSON object with
// deterministically ordered keys.
func marshalCounts(counts map[string]int64) string {
	blob, err := json.Marshal(counts)
	if err != nil {
		return "{}"
	}
	return string(blob)
}
