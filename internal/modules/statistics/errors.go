package statistics

import "errors"

var (
	ErrInternal           = errors.New("internal server error")
	ErrStatisticsNotFound = errors.New("statistics not found")
	ErrDashboardNotCached = errors.New("dashboard not cached")
)
