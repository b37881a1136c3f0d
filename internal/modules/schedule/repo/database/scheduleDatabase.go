package database

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"taskmanager/internal/modules/schedule"
)

type ScheduleDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewScheduleDatabase(db *gorm.DB, log *slog.Logger) *ScheduleDatabase {
	return &ScheduleDatabase{db: db, log: log}
}

func (r *ScheduleDatabase) CreateSchedule(s *schedule.Schedule) error {
	if err := r.db.Create(s).Error; err != nil {
		r.log.Error("failed to insert schedule", "error", err)
		return schedule.ErrInternal
	}
	return nil
}

func (r *ScheduleDatabase) GetScheduleByID(scheduleID uint) (*schedule.Schedule, error) {
	var s schedule.Schedule
	if err := r.db.First(&s, "schedule_id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrScheduleNotFound
		}
		r.log.Error("failed to fetch schedule", "error", err, slog.Uint64("scheduleID", uint64(scheduleID)))
		return nil, schedule.ErrInternal
	}
	return &s, nil
}

func (r *ScheduleDatabase) GetSchedulesByUserID(userID uint) ([]schedule.Schedule, error) {
	var schedules []schedule.Schedule
	err := r.db.
		Where("user_id = ?", userID).
		Order("day_of_week ASC, start_time ASC").
		Find(&schedules).Error
	if err != nil {
		r.log.Error("failed to fetch user schedules", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, schedule.ErrInternal
	}
	return schedules, nil
}

func (r *ScheduleDatabase) GetSchedulesByUserIDAndDay(userID uint, dayOfWeek string) ([]schedule.Schedule, error) {
	var schedules []schedule.Schedule
	err := r.db.
		Where("user_id = ? AND day_of_week = ?", userID, dayOfWeek).
		Order("start_time ASC").
		Find(&schedules).Error
	if err != nil {
		r.log.Error("failed to fetch schedules by day", "error", err, slog.String("day", dayOfWeek))
		return nil, schedule.ErrInternal
	}
	return schedules, nil
}

func (r *ScheduleDatabase) GetSchedulesByUserIDAndWorkFlag(userID uint, isWork bool) ([]schedule.Schedule, error) {
	var schedules []schedule.Schedule
	err := r.db.
		Where("user_id = ? AND is_work_schedule = ?", userID, isWork).
		Order("day_of_week ASC, start_time ASC").
		Find(&schedules).Error
	if err != nil {
		r.log.Error("failed to fetch schedules by work flag", "error", err, slog.Bool("isWork", isWork))
		return nil, schedule.ErrInternal
	}
	return schedules, nil
}

func (r *ScheduleDatabase) UpdateSchedule(s *schedule.Schedule) error {
	err := r.db.Model(s).
		Select("DayOfWeek", "StartTime", "EndTime", "Title", "Description", "IsWorkSchedule").
		Updates(s).Error
	if err != nil {
		r.log.Error("failed to update schedule", "error", err, slog.Uint64("scheduleID", uint64(s.ScheduleID)))
		return schedule.ErrInternal
	}
	return nil
}

func (r *ScheduleDatabase) DeleteSchedule(scheduleID uint) error {
	if err := r.db.Delete(&schedule.Schedule{}, "schedule_id = ?", scheduleID).Error; err != nil {
		r.log.Error("failed to delete schedule", "error", err, slog.Uint64("scheduleID", uint64(scheduleID)))
		return schedule.ErrInternal
	}
	return nil
}
