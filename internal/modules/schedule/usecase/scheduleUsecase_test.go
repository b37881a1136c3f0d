package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskmanager/internal/modules/schedule"
	scheduleRp "taskmanager/internal/modules/schedule/repo"
	scheduleDb "taskmanager/internal/modules/schedule/repo/database"
)

func newTestUseCase(t *testing.T) *ScheduleUseCase {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&schedule.Schedule{}))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := scheduleRp.NewScheduleRepo(scheduleDb.NewScheduleDatabase(db, log))
	return NewScheduleUseCase(log, repo)
}

func TestCreateScheduleNormalizesDay(t *testing.T) {
	uc := newTestUseCase(t)

	created, err := uc.CreateSchedule(1, schedule.CreateScheduleRequest{
		DayOfWeek: "monday",
		StartTime: "09:00",
		EndTime:   "17:00",
		Title:     "office",
	})
	require.NoError(t, err)

	assert.Equal(t, "MONDAY", created.DayOfWeek)
	assert.False(t, created.IsWorkSchedule)
}

func TestGetSchedulesByDay(t *testing.T) {
	uc := newTestUseCase(t)

	for _, day := range []string{"MONDAY", "MONDAY", "FRIDAY"} {
		_, err := uc.CreateSchedule(1, schedule.CreateScheduleRequest{
			DayOfWeek: day, StartTime: "08:00", EndTime: "10:00", Title: "slot",
		})
		require.NoError(t, err)
	}

	monday, err := uc.GetSchedulesByDay(1, "monday")
	require.NoError(t, err)
	assert.Len(t, monday, 2)

	_, err = uc.GetSchedulesByDay(1, "someday")
	assert.ErrorIs(t, err, schedule.ErrInvalidDayOfWeek)
}

func TestGetSchedulesByWorkFlag(t *testing.T) {
	uc := newTestUseCase(t)

	work := true
	_, err := uc.CreateSchedule(1, schedule.CreateScheduleRequest{
		DayOfWeek: "TUESDAY", StartTime: "09:00", EndTime: "18:00",
		Title: "shift", IsWorkSchedule: &work,
	})
	require.NoError(t, err)
	_, err = uc.CreateSchedule(1, schedule.CreateScheduleRequest{
		DayOfWeek: "SATURDAY", StartTime: "10:00", EndTime: "11:00", Title: "gym",
	})
	require.NoError(t, err)

	workOnly, err := uc.GetSchedulesByWorkFlag(1, true)
	require.NoError(t, err)
	require.Len(t, workOnly, 1)
	assert.Equal(t, "shift", workOnly[0].Title)
}

func TestUpdateSchedulePartial(t *testing.T) {
	uc := newTestUseCase(t)

	created, err := uc.CreateSchedule(1, schedule.CreateScheduleRequest{
		DayOfWeek: "WEDNESDAY", StartTime: "09:00", EndTime: "17:00", Title: "old",
	})
	require.NoError(t, err)

	newTitle := "new"
	newEnd := "18:30"
	updated, err := uc.UpdateSchedule(1, created.ScheduleID, schedule.UpdateScheduleRequest{
		Title:   &newTitle,
		EndTime: &newEnd,
	})
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "18:30", updated.EndTime)
	assert.Equal(t, "WEDNESDAY", updated.DayOfWeek)
	assert.Equal(t, "09:00", updated.StartTime)
}

func TestScheduleOwnership(t *testing.T) {
	uc := newTestUseCase(t)

	created, err := uc.CreateSchedule(1, schedule.CreateScheduleRequest{
		DayOfWeek: "THURSDAY", StartTime: "09:00", EndTime: "10:00", Title: "standup",
	})
	require.NoError(t, err)

	_, err = uc.GetSchedule(2, created.ScheduleID)
	assert.ErrorIs(t, err, schedule.ErrScheduleAccessDenied)

	err = uc.DeleteSchedule(2, created.ScheduleID)
	assert.ErrorIs(t, err, schedule.ErrScheduleAccessDenied)

	require.NoError(t, uc.DeleteSchedule(1, created.ScheduleID))
	_, err = uc.GetSchedule(1, created.ScheduleID)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}
