package document

import "errors"

var (
	ErrInternal             = errors.New("internal server error")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrDocumentAccessDenied = errors.New("access to document denied")
	ErrEmptyFile            = errors.New("uploaded file is empty")
	ErrFileNotFound         = errors.New("file not found")
	ErrStorage              = errors.New("file storage failure")
)
