package comment

import (
	"net/http"
	"time"
)

type Comment struct {
	CommentID  uint      `gorm:"primaryKey;column:comment_id" json:"id"`
	Content    string    `gorm:"column:content;not null" json:"content"`
	AuthorName string    `gorm:"column:author_name;default:User" json:"authorName"`
	FileName   *string   `gorm:"column:file_name" json:"fileName,omitempty"`
	FilePath   *string   `gorm:"column:file_path" json:"filePath,omitempty"`
	TaskID     uint      `gorm:"column:task_id;not null" json:"taskId"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}

type CreateCommentRequest struct {
	TaskID     uint    `json:"taskId" validate:"required"`
	Content    string  `json:"content" validate:"required,max=2000"`
	AuthorName *string `json:"authorName,omitempty" validate:"omitempty,max=255"`
	FileName   *string `json:"fileName,omitempty"`
	FilePath   *string `json:"filePath,omitempty"`
}

type Controller interface {
	GetCommentsByTask(w http.ResponseWriter, r *http.Request)
	CreateComment(w http.ResponseWriter, r *http.Request)
	DeleteComment(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	GetCommentsByTask(taskID uint) ([]Comment, error)
	CreateComment(req CreateCommentRequest) (*Comment, error)
	DeleteComment(commentID uint) error
}

type Repo interface {
	CreateComment(c *Comment) error
	GetCommentsByTaskID(taskID uint) ([]Comment, error)
	GetCommentByID(commentID uint) (*Comment, error)
	DeleteComment(commentID uint) error
	TaskExists(taskID uint) (bool, error)
}
