package usecase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskmanager/internal/modules/note"
	"taskmanager/internal/modules/statistics"
	statsRp "taskmanager/internal/modules/statistics/repo"
	statsDb "taskmanager/internal/modules/statistics/repo/database"
	"taskmanager/internal/modules/task"
)

type stubCache struct {
	saved *statistics.DashboardResponse
}

func (c *stubCache) CachedDashboard(ctx context.Context) (*statistics.DashboardResponse, error) {
	return nil, statistics.ErrDashboardNotCached
}

func (c *stubCache) CacheDashboard(ctx context.Context, d *statistics.DashboardResponse) error {
	c.saved = d
	return nil
}

func newTestUseCase(t *testing.T) (*StatisticsUseCase, *gorm.DB, *stubCache) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&task.Task{}, &note.Note{}, &statistics.Statistics{}))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := &stubCache{}
	repo := statsRp.NewStatisticsRepo(statsDb.NewStatisticsDatabase(db, log), cache)
	return NewStatisticsUseCase(log, repo), db, cache
}

func seedTask(t *testing.T, db *gorm.DB, status, difficulty string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&task.Task{
		Title:      "seed",
		Status:     status,
		Difficulty: difficulty,
		Priority:   task.PriorityMedium,
		UserID:     1,
		CreatedAt:  createdAt,
	}).Error)
}

func seedNote(t *testing.T, db *gorm.DB, noteType string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&note.Note{
		Title:     "seed",
		Type:      noteType,
		UserID:    1,
		CreatedAt: createdAt,
	}).Error)
}

func TestComputeForDate(t *testing.T) {
	uc, db, _ := newTestUseCase(t)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	inDay := day.Add(10 * time.Hour)

	seedTask(t, db, task.StatusCompleted, task.DifficultyEasy, inDay)
	seedTask(t, db, task.StatusCompleted, task.DifficultyMedium, inDay)
	seedTask(t, db, task.StatusCompleted, task.DifficultyHard, inDay)
	seedTask(t, db, task.StatusCompleted, task.DifficultyHard, inDay)
	seedTask(t, db, task.StatusPending, task.DifficultyHard, inDay)
	seedTask(t, db, task.StatusCompleted, task.DifficultyEasy, day.AddDate(0, 0, 1))

	seedNote(t, db, note.TypeText, inDay)
	seedNote(t, db, note.TypeVoice, inDay)
	seedNote(t, db, note.TypeText, day.AddDate(0, 0, -1))

	s, err := uc.ComputeForDate(day)
	require.NoError(t, err)

	assert.Equal(t, 4, s.TasksCompleted)
	assert.Equal(t, 2, s.NotesCreated)
	assert.Equal(t, 30+60+120+120, s.ProductiveTimeMinutes)

	var difficulties map[string]int64
	require.NoError(t, json.Unmarshal([]byte(s.TasksByDifficulty), &difficulties))
	assert.Equal(t, map[string]int64{
		task.DifficultyEasy:   1,
		task.DifficultyMedium: 1,
		task.DifficultyHard:   2,
	}, difficulties)

	var types map[string]int64
	require.NoError(t, json.Unmarshal([]byte(s.NotesByType), &types))
	assert.Equal(t, map[string]int64{
		note.TypeText:  1,
		note.TypeVoice: 1,
	}, types)
}

func TestComputeForDateEmptyDay(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	s, err := uc.ComputeForDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Zero(t, s.TasksCompleted)
	assert.Zero(t, s.NotesCreated)
	assert.Zero(t, s.ProductiveTimeMinutes)
	assert.Equal(t, "{}", s.TasksByDifficulty)
	assert.Equal(t, "{}", s.NotesByType)
}

func TestComputeForDateUpsertsSnapshot(t *testing.T) {
	uc, db, _ := newTestUseCase(t)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := uc.ComputeForDate(day)
	require.NoError(t, err)

	seedTask(t, db, task.StatusCompleted, task.DifficultyEasy, day.Add(time.Hour))
	s, err := uc.ComputeForDate(day)
	require.NoError(t, err)
	assert.Equal(t, 1, s.TasksCompleted)

	var rows int64
	require.NoError(t, db.Model(&statistics.Statistics{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestRangeReadsStoredRows(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	for d := 8; d <= 12; d++ {
		_, err := uc.ComputeForDate(time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
	}

	rows, err := uc.Range(
		time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2025-03-09", rows[0].StatDate.Format("2006-01-02"))
	assert.Equal(t, "2025-03-11", rows[2].StatDate.Format("2006-01-02"))
}

func TestDashboard(t *testing.T) {
	uc, db, cache := newTestUseCase(t)

	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	uc.WithClock(func() time.Time { return now })

	seedTask(t, db, task.StatusCompleted, task.DifficultyMedium, now.Add(-time.Hour))
	seedTask(t, db, task.StatusPending, task.DifficultyEasy, now.AddDate(0, 0, -3))
	seedNote(t, db, note.TypeChecklist, now.Add(-time.Hour))

	dashboard, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	require.NotNil(t, dashboard.TodayStats)
	assert.Equal(t, 1, dashboard.TodayStats.TasksCompleted)
	assert.Equal(t, 60, dashboard.TodayStats.ProductiveTimeMinutes)

	require.Len(t, dashboard.Last7Days, 7)
	assert.Equal(t, "2025-03-04", dashboard.Last7Days[0].Date)
	assert.Equal(t, "TUE", dashboard.Last7Days[0].DayName)
	assert.Equal(t, "2025-03-10", dashboard.Last7Days[6].Date)
	assert.Equal(t, "MON", dashboard.Last7Days[6].DayName)
	assert.Equal(t, 1, dashboard.Last7Days[6].TasksCompleted)

	assert.Equal(t, map[string]int64{
		task.DifficultyEasy:   1,
		task.DifficultyMedium: 1,
	}, dashboard.DifficultyStats)
	assert.Equal(t, map[string]int64{note.TypeChecklist: 1}, dashboard.NoteTypeStats)

	require.NotNil(t, cache.saved)
	assert.Equal(t, dashboard.TodayStats.TasksCompleted, cache.saved.TodayStats.TasksCompleted)
}
