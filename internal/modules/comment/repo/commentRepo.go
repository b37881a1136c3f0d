package repo

import "taskmanager/internal/modules/comment"

type CommentDb interface {
	CreateComment(c *comment.Comment) error
	GetCommentsByTaskID(taskID uint) ([]comment.Comment, error)
	GetCommentByID(commentID uint) (*comment.Comment, error)
	DeleteComment(commentID uint) error
	TaskExists(taskID uint) (bool, error)
}

type Repo struct {
	db CommentDb
}

func NewCommentRepo(db CommentDb) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateComment(c *comment.Comment) error {
	return r.db.CreateComment(c)
}

func (r *Repo) GetCommentsByTaskID(taskID uint) ([]comment.Comment, error) {
	return r.db.GetCommentsByTaskID(taskID)
}

func (r *Repo) GetCommentByID(commentID uint) (*comment.Comment, error) {
	return r.db.GetCommentByID(commentID)
}

func (r *Repo) DeleteComment(commentID uint) error {
	return r.db.DeleteComment(commentID)
}

func (r *Repo) TaskExists(taskID uint) (bool, error) {
	return r.db.TaskExists(taskID)
}
