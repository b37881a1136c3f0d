package task

import (
	"net/http"
	"time"
)

const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// ValidStatus reports whether s is one of the known task statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	TaskID      uint       `gorm:"primaryKey;column:task_id" json:"id"`
	Title       string     `gorm:"column:title;not null" json:"title"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	Status      string     `gorm:"column:status;default:PENDING" json:"status"`
	Difficulty  string     `gorm:"column:difficulty;default:MEDIUM" json:"difficulty"`
	Priority    string     `gorm:"column:priority;default:MEDIUM" json:"priority"`
	DueDate     *time.Time `gorm:"column:due_date" json:"dueDate,omitempty"`
	UserID      uint       `gorm:"column:user_id;not null" json:"userId"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

func (Task) TableName() string {
	return "tasks"
}

type TaskResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	Difficulty  string     `json:"difficulty"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Overdue     bool       `json:"overdue"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ToResponse derives the overdue flag against the supplied reference time.
// A task is overdue when its due date has passed and it is not completed.
func ToResponse(t *Task, now time.Time) TaskResponse {
	overdue := false
	if t.DueDate != nil && t.Status != StatusCompleted {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		due := time.Date(t.DueDate.Year(), t.DueDate.Month(), t.DueDate.Day(), 0, 0, 0, 0, now.Location())
		overdue = due.Before(today)
	}
	return TaskResponse{
		ID:          t.TaskID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Difficulty:  t.Difficulty,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		Overdue:     overdue,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Difficulty  *string    `json:"difficulty,omitempty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
	Priority    *string    `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Difficulty  *string    `json:"difficulty,omitempty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
	Priority    *string    `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

type Controller interface {
	CreateTask(w http.ResponseWriter, r *http.Request)
	GetTasks(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	GetTasksByStatus(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	UpdateTaskStatus(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	CreateTask(userID uint, req CreateTaskRequest) (*TaskResponse, error)
	GetTasks(userID uint) ([]TaskResponse, error)
	GetTask(userID, taskID uint) (*TaskResponse, error)
	GetTasksByStatus(userID uint, status string) ([]TaskResponse, error)
	UpdateTask(userID, taskID uint, req UpdateTaskRequest) (*TaskResponse, error)
	UpdateTaskStatus(userID, taskID uint, status string) (*TaskResponse, error)
	DeleteTask(userID, taskID uint) error
}

type Repo interface {
	CreateTask(t *Task) error
	GetTaskByID(taskID uint) (*Task, error)
	GetTasksByUserID(userID uint) ([]Task, error)
	GetTasksByUserIDAndStatus(userID uint, status string) ([]Task, error)
	UpdateTask(t *Task) error
	DeleteTask(taskID uint) error
}
