package schedule

import (
	"net/http"
	"strings"
	"time"
)

var daysOfWeek = map[string]bool{
	"MONDAY": true, "TUESDAY": true, "WEDNESDAY": true, "THURSDAY": true,
	"FRIDAY": true, "SATURDAY": true, "SUNDAY": true,
}

// ValidDayOfWeek reports whether d is an upper-case English day name.
func ValidDayOfWeek(d string) bool {
	return daysOfWeek[strings.ToUpper(d)]
}

type Schedule struct {
	ScheduleID     uint      `gorm:"primaryKey;column:schedule_id" json:"id"`
	DayOfWeek      string    `gorm:"column:day_of_week;not null" json:"dayOfWeek"`
	StartTime      string    `gorm:"column:start_time;not null" json:"startTime"`
	EndTime        string    `gorm:"column:end_time;not null" json:"endTime"`
	Title          string    `gorm:"column:title;not null" json:"title"`
	Description    *string   `gorm:"column:description" json:"description,omitempty"`
	IsWorkSchedule bool      `gorm:"column:is_work_schedule;default:false" json:"isWorkSchedule"`
	UserID         uint      `gorm:"column:user_id;not null" json:"userId"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Schedule) TableName() string {
	return "schedules"
}

type CreateScheduleRequest struct {
	DayOfWeek      string  `json:"dayOfWeek" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime      string  `json:"startTime" validate:"required,len=5"`
	EndTime        string  `json:"endTime" validate:"required,len=5"`
	Title          string  `json:"title" validate:"required,max=255"`
	Description    *string `json:"description,omitempty"`
	IsWorkSchedule *bool   `json:"isWorkSchedule,omitempty"`
}

type UpdateScheduleRequest struct {
	DayOfWeek      *string `json:"dayOfWeek,omitempty" validate:"omitempty,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime      *string `json:"startTime,omitempty" validate:"omitempty,len=5"`
	EndTime        *string `json:"endTime,omitempty" validate:"omitempty,len=5"`
	Title          *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description    *string `json:"description,omitempty"`
	IsWorkSchedule *bool   `json:"isWorkSchedule,omitempty"`
}

type Controller interface {
	CreateSchedule(w http.ResponseWriter, r *http.Request)
	GetSchedules(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
	GetSchedulesByDay(w http.ResponseWriter, r *http.Request)
	GetSchedulesByWorkFlag(w http.ResponseWriter, r *http.Request)
	UpdateSchedule(w http.ResponseWriter, r *http.Request)
	DeleteSchedule(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	CreateSchedule(userID uint, req CreateScheduleRequest) (*Schedule, error)
	GetSchedules(userID uint) ([]Schedule, error)
	GetSchedule(userID, scheduleID uint) (*Schedule, error)
	GetSchedulesByDay(userID uint, dayOfWeek string) ([]Schedule, error)
	GetSchedulesByWorkFlag(userID uint, isWork bool) ([]Schedule, error)
	UpdateSchedule(userID, scheduleID uint, req UpdateScheduleRequest) (*Schedule, error)
	DeleteSchedule(userID, scheduleID uint) error
}

type Repo interface {
	CreateSchedule(s *Schedule) error
	GetScheduleByID(scheduleID uint) (*Schedule, error)
	GetSchedulesByUserID(userID uint) ([]Schedule, error)
	GetSchedulesByUserIDAndDay(userID uint, dayOfWeek string) ([]Schedule, error)
	GetSchedulesByUserIDAndWorkFlag(userID uint, isWork bool) ([]Schedule, error)
	UpdateSchedule(s *Schedule) error
	DeleteSchedule(scheduleID uint) error
}
