package usecase

import (
	"log/slog"
	"time"

	"taskmanager/internal/modules/task"
)

type TaskUseCase struct {
	log *slog.Logger
	rp  task.Repo
	now func() time.Time
}

func NewTaskUseCase(log *slog.Logger, rp task.Repo) *TaskUseCase {
	return &TaskUseCase{
		log: log,
		rp:  rp,
		now: time.Now,
	}
}

// WithClock overrides the time source, used by tests.
func (uc *TaskUseCase) WithClock(now func() time.Time) *TaskUseCase {
	uc.now = now
	return uc
}

func (uc *TaskUseCase) CreateTask(userID uint, req task.CreateTaskRequest) (*task.TaskResponse, error) {
	op := "TaskUseCase.CreateTask"
	log := uc.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	t := &task.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      task.StatusPending,
		Difficulty:  task.DifficultyMedium,
		Priority:    task.PriorityMedium,
		DueDate:     req.DueDate,
		UserID:      userID,
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Difficulty != nil {
		t.Difficulty = *req.Difficulty
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}

	if err := uc.rp.CreateTask(t); err != nil {
		log.Error("failed to create task", "error", err)
		return nil, err
	}

	r := task.ToResponse(t, uc.now())
	return &r, nil
}

func (uc *TaskUseCase) GetTasks(userID uint) ([]task.TaskResponse, error) {
	op := "TaskUseCase.GetTasks"
	log := uc.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	tasks, err := uc.rp.GetTasksByUserID(userID)
	if err != nil {
		log.Error("failed to fetch tasks", "error", err)
		return nil, err
	}
	return uc.toResponses(tasks), nil
}

func (uc *TaskUseCase) GetTask(userID, taskID uint) (*task.TaskResponse, error) {
	t, err := uc.ownedTask(userID, taskID)
	if err != nil {
		return nil, err
	}
	r := task.ToResponse(t, uc.now())
	return &r, nil
}

func (uc *TaskUseCase) GetTasksByStatus(userID uint, status string) ([]task.TaskResponse, error) {
	op := "TaskUseCase.GetTasksByStatus"
	log := uc.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	if !task.ValidStatus(status) {
		return nil, task.ErrInvalidStatus
	}

	tasks, err := uc.rp.GetTasksByUserIDAndStatus(userID, status)
	if err != nil {
		log.Error("failed to fetch tasks by status", "error", err, slog.String("status", status))
		return nil, err
	}
	return uc.toResponses(tasks), nil
}

func (uc *TaskUseCase) UpdateTask(userID, taskID uint, req task.UpdateTaskRequest) (*task.TaskResponse, error) {
	op := "TaskUseCase.UpdateTask"
	log := uc.log.With(slog.String("op", op), slog.Uint64("taskID", uint64(taskID)))

	t, err := uc.ownedTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Difficulty != nil {
		t.Difficulty = *req.Difficulty
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}

	if err := uc.rp.UpdateTask(t); err != nil {
		log.Error("failed to update task", "error", err)
		return nil, err
	}

	r := task.ToResponse(t, uc.now())
	return &r, nil
}

func (uc *TaskUseCase) UpdateTaskStatus(userID, taskID uint, status string) (*task.TaskResponse, error) {
	op := "TaskUseCase.UpdateTaskStatus"
	log := uc.log.With(slog.String("op", op), slog.Uint64("taskID", uint64(taskID)))

	if !task.ValidStatus(status) {
		return nil, task.ErrInvalidStatus
	}

	t, err := uc.ownedTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	t.Status = status
	if err := uc.rp.UpdateTask(t); err != nil {
		log.Error("failed to update task status", "error", err)
		return nil, err
	}

	r := task.ToResponse(t, uc.now())
	return &r, nil
}

func (uc *TaskUseCase) DeleteTask(userID, taskID uint) error {
	op := "TaskUseCase.DeleteTask"
	log := uc.log.With(slog.String("op", op), slog.Uint64("taskID", uint64(taskID)))

	if _, err := uc.ownedTask(userID, taskID); err != nil {
		return err
	}

	if err := uc.rp.DeleteTask(taskID); err != nil {
		log.Error("failed to delete task", "error", err)
		return err
	}
	return nil
}

func (uc *TaskUseCase) ownedTask(userID, taskID uint) (*task.Task, error) {
	t, err := uc.rp.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, task.ErrTaskAccessDenied
	}
	return t, nil
}

func (uc *TaskUseCase) toResponses(tasks []task.Task) []task.TaskResponse {
	now := uc.now()
	responses := make([]task.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, task.ToResponse(&tasks[i], now))
	}
	return responses
}
