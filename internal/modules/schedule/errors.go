package schedule

import "errors"

var (
	ErrInternal             = errors.New("internal server error")
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrScheduleAccessDenied = errors.New("access to schedule denied")
	ErrInvalidDayOfWeek     = errors.New("invalid day of week")
)
