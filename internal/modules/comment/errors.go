package comment

import "errors"

var (
	ErrInternal        = errors.New("internal server error")
	ErrCommentNotFound = errors.New("comment not found")
	ErrTaskNotFound    = errors.New("task not found")
)
