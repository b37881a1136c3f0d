package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskmanager/internal/modules/task"
	taskRp "taskmanager/internal/modules/task/repo"
	taskDb "taskmanager/internal/modules/task/repo/database"
)

func newTestUseCase(t *testing.T) *TaskUseCase {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&task.Task{}))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := taskRp.NewTaskRepo(taskDb.NewTaskDatabase(db, log))
	return NewTaskUseCase(log, repo)
}

func TestCreateTaskDefaults(t *testing.T) {
	uc := newTestUseCase(t)

	created, err := uc.CreateTask(1, task.CreateTaskRequest{Title: "write report"})
	require.NoError(t, err)

	assert.Equal(t, task.StatusPending, created.Status)
	assert.Equal(t, task.DifficultyMedium, created.Difficulty)
	assert.Equal(t, task.PriorityMedium, created.Priority)
	assert.False(t, created.Overdue)
}

func TestOverdueDerivation(t *testing.T) {
	uc := newTestUseCase(t)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	uc.WithClock(func() time.Time { return now })

	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	pastDue, err := uc.CreateTask(1, task.CreateTaskRequest{Title: "late", DueDate: &yesterday})
	require.NoError(t, err)
	assert.True(t, pastDue.Overdue)

	futureDue, err := uc.CreateTask(1, task.CreateTaskRequest{Title: "on time", DueDate: &tomorrow})
	require.NoError(t, err)
	assert.False(t, futureDue.Overdue)

	dueToday, err := uc.CreateTask(1, task.CreateTaskRequest{Title: "today", DueDate: &now})
	require.NoError(t, err)
	assert.False(t, dueToday.Overdue)

	// a completed task is never overdue
	completed, err := uc.UpdateTaskStatus(1, pastDue.ID, task.StatusCompleted)
	require.NoError(t, err)
	assert.False(t, completed.Overdue)
}

func TestOwnershipEnforced(t *testing.T) {
	uc := newTestUseCase(t)

	created, err := uc.CreateTask(1, task.CreateTaskRequest{Title: "private"})
	require.NoError(t, err)

	_, err = uc.GetTask(2, created.ID)
	assert.ErrorIs(t, err, task.ErrTaskAccessDenied)

	newTitle := "hijacked"
	_, err = uc.UpdateTask(2, created.ID, task.UpdateTaskRequest{Title: &newTitle})
	assert.ErrorIs(t, err, task.ErrTaskAccessDenied)

	err = uc.DeleteTask(2, created.ID)
	assert.ErrorIs(t, err, task.ErrTaskAccessDenied)

	_, err = uc.GetTask(1, created.ID)
	require.NoError(t, err)
}

func TestGetTasksByStatus(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.CreateTask(1, task.CreateTaskRequest{Title: "a"})
	require.NoError(t, err)
	inProgress := task.StatusInProgress
	_, err = uc.CreateTask(1, task.CreateTaskRequest{Title: "b", Status: &inProgress})
	require.NoError(t, err)

	pending, err := uc.GetTasksByStatus(1, task.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "a", pending[0].Title)

	_, err = uc.GetTasksByStatus(1, "BOGUS")
	assert.ErrorIs(t, err, task.ErrInvalidStatus)
}

func TestUpdateTaskStatusValidation(t *testing.T) {
	uc := newTestUseCase(t)

	created, err := uc.CreateTask(1, task.CreateTaskRequest{Title: "a"})
	require.NoError(t, err)

	_, err = uc.UpdateTaskStatus(1, created.ID, "DONE")
	assert.ErrorIs(t, err, task.ErrInvalidStatus)

	updated, err := uc.UpdateTaskStatus(1, created.ID, task.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, updated.Status)
}

func TestDeleteTask(t *testing.T) {
	uc := newTestUseCase(t)

	created, err := uc.CreateTask(1, task.CreateTaskRequest{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTask(1, created.ID))

	_, err = uc.GetTask(1, created.ID)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}
