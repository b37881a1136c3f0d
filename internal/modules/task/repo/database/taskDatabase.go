package database

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"taskmanager/internal/modules/task"
)

type TaskDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewTaskDatabase(db *gorm.DB, log *slog.Logger) *TaskDatabase {
	return &TaskDatabase{db: db, log: log}
}

func (r *TaskDatabase) CreateTask(t *task.Task) error {
	if err := r.db.Create(t).Error; err != nil {
		r.log.Error("failed to insert task", "error", err)
		return task.ErrInternal
	}
	return nil
}

func (r *TaskDatabase) GetTaskByID(taskID uint) (*task.Task, error) {
	var t task.Task
	if err := r.db.First(&t, "task_id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, task.ErrTaskNotFound
		}
		r.log.Error("failed to fetch task", "error", err, slog.Uint64("taskID", uint64(taskID)))
		return nil, task.ErrInternal
	}
	return &t, nil
}

func (r *TaskDatabase) GetTasksByUserID(userID uint) ([]task.Task, error) {
	var tasks []task.Task
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		r.log.Error("failed to fetch user tasks", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, task.ErrInternal
	}
	return tasks, nil
}

func (r *TaskDatabase) GetTasksByUserIDAndStatus(userID uint, status string) ([]task.Task, error) {
	var tasks []task.Task
	err := r.db.
		Where("user_id = ? AND status = ?", userID, status).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		r.log.Error("failed to fetch tasks by status", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, task.ErrInternal
	}
	return tasks, nil
}

func (r *TaskDatabase) UpdateTask(t *task.Task) error {
	err := r.db.Model(t).
		Select("Title", "Description", "Status", "Difficulty", "Priority", "DueDate").
		Updates(t).Error
	if err != nil {
		r.log.Error("failed to update task", "error", err, slog.Uint64("taskID", uint64(t.TaskID)))
		return task.ErrInternal
	}
	return nil
}

func (r *TaskDatabase) DeleteTask(taskID uint) error {
	if err := r.db.Delete(&task.Task{}, "task_id = ?", taskID).Error; err != nil {
		r.log.Error("failed to delete task", "error", err, slog.Uint64("taskID", uint64(taskID)))
		return task.ErrInternal
	}
	return nil
}
