package repo

import "taskmanager/internal/modules/task"

type TaskDb interface {
	CreateTask(t *task.Task) error
	GetTaskByID(taskID uint) (*task.Task, error)
	GetTasksByUserID(userID uint) ([]task.Task, error)
	GetTasksByUserIDAndStatus(userID uint, status string) ([]task.Task, error)
	UpdateTask(t *task.Task) error
	DeleteTask(taskID uint) error
}

type Repo struct {
	db TaskDb
}

func NewTaskRepo(db TaskDb) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateTask(t *task.Task) error {
	return r.db.CreateTask(t)
}

func (r *Repo) GetTaskByID(taskID uint) (*task.Task, error) {
	return r.db.GetTaskByID(taskID)
}

func (r *Repo) GetTasksByUserID(userID uint) ([]task.Task, error) {
	return r.db.GetTasksByUserID(userID)
}

func (r *Repo) GetTasksByUserIDAndStatus(userID uint, status string) ([]task.Task, error) {
	return r.db.GetTasksByUserIDAndStatus(userID, status)
}

func (r *Repo) UpdateTask(t *task.Task) error {
	return r.db.UpdateTask(t)
}

func (r *Repo) DeleteTask(taskID uint) error {
	return r.db.DeleteTask(taskID)
}
