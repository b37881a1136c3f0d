package repo

import "taskmanager/internal/modules/schedule"

type ScheduleDb interface {
	CreateSchedule(s *schedule.Schedule) error
	GetScheduleByID(scheduleID uint) (*schedule.Schedule, error)
	GetSchedulesByUserID(userID uint) ([]schedule.Schedule, error)
	GetSchedulesByUserIDAndDay(userID uint, dayOfWeek string) ([]schedule.Schedule, error)
	GetSchedulesByUserIDAndWorkFlag(userID uint, isWork bool) ([]schedule.Schedule, error)
	UpdateSchedule(s *schedule.Schedule) error
	DeleteSchedule(scheduleID uint) error
}

type Repo struct {
	db ScheduleDb
}

func NewScheduleRepo(db ScheduleDb) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateSchedule(s *schedule.Schedule) error {
	return r.db.CreateSchedule(s)
}

func (r *Repo) GetScheduleByID(scheduleID uint) (*schedule.Schedule, error) {
	return r.db.GetScheduleByID(scheduleID)
}

func (r *Repo) GetSchedulesByUserID(userID uint) ([]schedule.Schedule, error) {
	return r.db.GetSchedulesByUserID(userID)
}

func (r *Repo) GetSchedulesByUserIDAndDay(userID uint, dayOfWeek string) ([]schedule.Schedule, error) {
	return r.db.GetSchedulesByUserIDAndDay(userID, dayOfWeek)
}

func (r *Repo) GetSchedulesByUserIDAndWorkFlag(userID uint, isWork bool) ([]schedule.Schedule, error) {
	return r.db.GetSchedulesByUserIDAndWorkFlag(userID, isWork)
}

func (r *Repo) UpdateSchedule(s *schedule.Schedule) error {
	return r.db.UpdateSchedule(s)
}

func (r *Repo) DeleteSchedule(scheduleID uint) error {
	return r.db.DeleteSchedule(scheduleID)
}
