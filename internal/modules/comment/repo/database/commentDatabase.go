package database

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"taskmanager/internal/modules/comment"
	"taskmanager/internal/modules/task"
)

type CommentDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewCommentDatabase(db *gorm.DB, log *slog.Logger) *CommentDatabase {
	return &CommentDatabase{db: db, log: log}
}

func (r *CommentDatabase) CreateComment(c *comment.Comment) error {
	if err := r.db.Create(c).Error; err != nil {
		r.log.Error("failed to insert comment", "error", err)
		return comment.ErrInternal
	}
	return nil
}

func (r *CommentDatabase) GetCommentsByTaskID(taskID uint) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.
		Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		r.log.Error("failed to fetch task comments", "error", err, slog.Uint64("taskID", uint64(taskID)))
		return nil, comment.ErrInternal
	}
	return comments, nil
}

func (r *CommentDatabase) GetCommentByID(commentID uint) (*comment.Comment, error) {
	var c comment.Comment
	if err := r.db.First(&c, "comment_id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		r.log.Error("failed to fetch comment", "error", err, slog.Uint64("commentID", uint64(commentID)))
		return nil, comment.ErrInternal
	}
	return &c, nil
}

func (r *CommentDatabase) DeleteComment(commentID uint) error {
	if err := r.db.Delete(&comment.Comment{}, "comment_id = ?", commentID).Error; err != nil {
		r.log.Error("failed to delete comment", "error", err, slog.Uint64("commentID", uint64(commentID)))
		return comment.ErrInternal
	}
	return nil
}

func (r *CommentDatabase) TaskExists(taskID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&task.Task{}).Where("task_id = ?", taskID).Count(&count).Error; err != nil {
		r.log.Error("failed to check task existence", "error", err, slog.Uint64("taskID", uint64(taskID)))
		return false, comment.ErrInternal
	}
	return count > 0, nil
}
