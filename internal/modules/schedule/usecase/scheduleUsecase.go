package usecase

import (
	"log/slog"
	"strings"

	"taskmanager/internal/modules/schedule"
)

type ScheduleUseCase struct {
	log *slog.Logger
	rp  schedule.Repo
}

func NewScheduleUseCase(log *slog.Logger, rp schedule.Repo) *ScheduleUseCase {
	return &ScheduleUseCase{log: log, rp: rp}
}

func (uc *ScheduleUseCase) CreateSchedule(userID uint, req schedule.CreateScheduleRequest) (*schedule.Schedule, error) {
	op := "ScheduleUseCase.CreateSchedule"
	log := uc.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	s := &schedule.Schedule{
		DayOfWeek:   strings.ToUpper(req.DayOfWeek),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
	}
	if req.IsWorkSchedule != nil {
		s.IsWorkSchedule = *req.IsWorkSchedule
	}

	if err := uc.rp.CreateSchedule(s); err != nil {
		log.Error("failed to create schedule", "error", err)
		return nil, err
	}
	return s, nil
}

func (uc *ScheduleUseCase) GetSchedules(userID uint) ([]schedule.Schedule, error) {
	schedules, err := uc.rp.GetSchedulesByUserID(userID)
	if err != nil {
		uc.log.Error("failed to fetch schedules", "error", err, slog.Uint64("userID", uint64(userID)))
		return nil, err
	}
	return schedules, nil
}

func (uc *ScheduleUseCase) GetSchedule(userID, scheduleID uint) (*schedule.Schedule, error) {
	return uc.ownedSchedule(userID, scheduleID)
}

func (uc *ScheduleUseCase) GetSchedulesByDay(userID uint, dayOfWeek string) ([]schedule.Schedule, error) {
	if !schedule.ValidDayOfWeek(dayOfWeek) {
		return nil, schedule.ErrInvalidDayOfWeek
	}
	schedules, err := uc.rp.GetSchedulesByUserIDAndDay(userID, strings.ToUpper(dayOfWeek))
	if err != nil {
		uc.log.Error("failed to fetch schedules by day", "error", err, slog.String("day", dayOfWeek))
		return nil, err
	}
	return schedules, nil
}

func (uc *ScheduleUseCase) GetSchedulesByWorkFlag(userID uint, isWork bool) ([]schedule.Schedule, error) {
	schedules, err := uc.rp.GetSchedulesByUserIDAndWorkFlag(userID, isWork)
	if err != nil {
		uc.log.Error("failed to fetch schedules by work flag", "error", err, slog.Bool("isWork", isWork))
		return nil, err
	}
	return schedules, nil
}

func (uc *ScheduleUseCase) UpdateSchedule(userID, scheduleID uint, req schedule.UpdateScheduleRequest) (*schedule.Schedule, error) {
	op := "ScheduleUseCase.UpdateSchedule"
	log := uc.log.With(slog.String("op", op), slog.Uint64("scheduleID", uint64(scheduleID)))

	s, err := uc.ownedSchedule(userID, scheduleID)
	if err != nil {
		return nil, err
	}

	if req.DayOfWeek != nil {
		s.DayOfWeek = strings.ToUpper(*req.DayOfWeek)
	}
	if req.StartTime != nil {
		s.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		s.EndTime = *req.EndTime
	}
	if req.Title != nil {
		s.Title = *req.Title
	}
	if req.Description != nil {
		s.Description = req.Description
	}
	if req.IsWorkSchedule != nil {
		s.IsWorkSchedule = *req.IsWorkSchedule
	}

	if err := uc.rp.UpdateSchedule(s); err != nil {
		log.Error("failed to update schedule", "error", err)
		return nil, err
	}
	return s, nil
}

func (uc *ScheduleUseCase) DeleteSchedule(userID, scheduleID uint) error {
	op := "ScheduleUseCase.DeleteSchedule"
	log := uc.log.With(slog.String("op", op), slog.Uint64("scheduleID", uint64(scheduleID)))

	if _, err := uc.ownedSchedule(userID, scheduleID); err != nil {
		return err
	}
	if err := uc.rp.DeleteSchedule(scheduleID); err != nil {
		log.Error("failed to delete schedule", "error", err)
		return err
	}
	return nil
}

func (uc *ScheduleUseCase) ownedSchedule(userID, scheduleID uint) (*schedule.Schedule, error) {
	s, err := uc.rp.GetScheduleByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if s.UserID != userID {
		return nil, schedule.ErrScheduleAccessDenied
	}
	return s, nil
}
