package usecase

import (
	"log/slog"

	"taskmanager/internal/modules/comment"
)

const defaultAuthorName = "User"

type CommentUseCase struct {
	log *slog.Logger
	rp  comment.Repo
}

func NewCommentUseCase(log *slog.Logger, rp comment.Repo) *CommentUseCase {
	return &CommentUseCase{log: log, rp: rp}
}

func (uc *CommentUseCase) GetCommentsByTask(taskID uint) ([]comment.Comment, error) {
	op := "CommentUseCase.GetCommentsByTask"
	log := uc.log.With(slog.String("op", op), slog.Uint64("taskID", uint64(taskID)))

	comments, err := uc.rp.GetCommentsByTaskID(taskID)
	if err != nil {
		log.Error("failed to fetch comments", "error", err)
		return nil, err
	}
	return comments, nil
}

func (uc *CommentUseCase) CreateComment(req comment.CreateCommentRequest) (*comment.Comment, error) {
	op := "CommentUseCase.CreateComment"
	log := uc.log.With(slog.String("op", op), slog.Uint64("taskID", uint64(req.TaskID)))

	exists, err := uc.rp.TaskExists(req.TaskID)
	if err != nil {
		log.Error("failed to check task existence", "error", err)
		return nil, err
	}
	if !exists {
		return nil, comment.ErrTaskNotFound
	}

	author := defaultAuthorName
	if req.AuthorName != nil && *req.AuthorName != "" {
		author = *req.AuthorName
	}

	c := &comment.Comment{
		Content:    req.Content,
		AuthorName: author,
		FileName:   req.FileName,
		FilePath:   req.FilePath,
		TaskID:     req.TaskID,
	}
	if err := uc.rp.CreateComment(c); err != nil {
		log.Error("failed to create comment", "error", err)
		return nil, err
	}
	return c, nil
}

func (uc *CommentUseCase) DeleteComment(commentID uint) error {
	op := "CommentUseCase.DeleteComment"
	log := uc.log.With(slog.String("op", op), slog.Uint64("commentID", uint64(commentID)))

	if _, err := uc.rp.GetCommentByID(commentID); err != nil {
		return err
	}
	if err := uc.rp.DeleteComment(commentID); err != nil {
		log.Error("failed to delete comment", "error", err)
		return err
	}
	return nil
}
