package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskmanager/internal/modules/comment"
	commentRp "taskmanager/internal/modules/comment/repo"
	commentDb "taskmanager/internal/modules/comment/repo/database"
	"taskmanager/internal/modules/task"
)

func newTestUseCase(t *testing.T) (*CommentUseCase, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&task.Task{}, &comment.Comment{}))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := commentRp.NewCommentRepo(commentDb.NewCommentDatabase(db, log))
	return NewCommentUseCase(log, repo), db
}

func seedTask(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	tk := task.Task{Title: "review draft", Status: task.StatusPending, UserID: 1}
	require.NoError(t, db.Create(&tk).Error)
	return tk.TaskID
}

func TestCreateCommentDefaultsAuthor(t *testing.T) {
	uc, db := newTestUseCase(t)
	taskID := seedTask(t, db)

	created, err := uc.CreateComment(comment.CreateCommentRequest{
		TaskID:  taskID,
		Content: "looks good",
	})
	require.NoError(t, err)

	assert.Equal(t, "User", created.AuthorName)
	assert.Equal(t, taskID, created.TaskID)
	assert.NotZero(t, created.CommentID)
}

func TestCreateCommentUnknownTask(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.CreateComment(comment.CreateCommentRequest{
		TaskID:  999,
		Content: "orphan",
	})
	assert.ErrorIs(t, err, comment.ErrTaskNotFound)
}

func TestGetCommentsNewestFirst(t *testing.T) {
	uc, db := newTestUseCase(t)
	taskID := seedTask(t, db)

	author := "alice"
	first, err := uc.CreateComment(comment.CreateCommentRequest{
		TaskID: taskID, Content: "first", AuthorName: &author,
	})
	require.NoError(t, err)
	second, err := uc.CreateComment(comment.CreateCommentRequest{
		TaskID: taskID, Content: "second",
	})
	require.NoError(t, err)

	// Equal timestamps would make the order ambiguous; force a gap.
	require.NoError(t, db.Model(first).Update("created_at", first.CreatedAt.Add(-1)).Error)

	comments, err := uc.GetCommentsByTask(taskID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, second.CommentID, comments[0].CommentID)
	assert.Equal(t, "alice", comments[1].AuthorName)
}

func TestDeleteComment(t *testing.T) {
	uc, db := newTestUseCase(t)
	taskID := seedTask(t, db)

	created, err := uc.CreateComment(comment.CreateCommentRequest{
		TaskID: taskID, Content: "remove me",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteComment(created.CommentID))

	err = uc.DeleteComment(created.CommentID)
	assert.ErrorIs(t, err, comment.ErrCommentNotFound)
}
