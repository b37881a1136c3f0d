package task

import "errors"

var (
	ErrInternal         = errors.New("internal server error")
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskAccessDenied = errors.New("access to task denied")
	ErrInvalidStatus    = errors.New("invalid task status")
)
