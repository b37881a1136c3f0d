package usecase

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	u "taskmanager/internal/modules/user"
	"taskmanager/internal/modules/user/auth"
	authRp "taskmanager/internal/modules/user/auth/repo"
	authDb "taskmanager/internal/modules/user/auth/repo/database"
)

type recordingSender struct {
	mu    sync.Mutex
	codes []string
}

func (s *recordingSender) SendResetCode(code, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes = append(s.codes, code)
	return nil
}

func newTestUseCase(t *testing.T) (*AuthUseCase, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&u.User{}))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := authRp.NewRepo(authDb.NewAuthDatabase(db, log))
	return NewAuthUseCase(log, repo, &recordingSender{}), db
}

func registerUser(t *testing.T, uc *AuthUseCase) *auth.AuthResponse {
	t.Helper()
	res, err := uc.Register(auth.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return res
}

func TestRegisterThenLogin(t *testing.T) {
	uc, _ := newTestUseCase(t)

	registered := registerUser(t, uc)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "alice", registered.User.Username)

	loggedIn, err := uc.Login(auth.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.Token)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestRegisterDuplicates(t *testing.T) {
	uc, _ := newTestUseCase(t)
	registerUser(t, uc)

	_, err := uc.Register(auth.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, u.ErrUsernameExists)

	_, err = uc.Register(auth.RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, u.ErrEmailExists)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	uc, _ := newTestUseCase(t)
	registerUser(t, uc)

	_, wrongPassword := uc.Login(auth.LoginRequest{Username: "alice", Password: "wrong"})
	_, unknownUser := uc.Login(auth.LoginRequest{Username: "nobody", Password: "secret123"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	assert.ErrorIs(t, wrongPassword, u.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, u.ErrInvalidCredentials)
}

func TestRequestPasswordResetUnknownEmailLeaksNothing(t *testing.T) {
	uc, db := newTestUseCase(t)
	registerUser(t, uc)

	require.NoError(t, uc.RequestPasswordReset("alice@example.com"))
	require.NoError(t, uc.RequestPasswordReset("stranger@example.com"))

	var alice u.User
	require.NoError(t, db.First(&alice, "email = ?", "alice@example.com").Error)
	require.NotNil(t, alice.ResetCode)
	assert.Len(t, *alice.ResetCode, 6)
	require.NotNil(t, alice.ResetCodeExpiry)

	var strangers int64
	require.NoError(t, db.Model(&u.User{}).Where("email = ?", "stranger@example.com").Count(&strangers).Error)
	assert.Zero(t, strangers)
}

func TestResetFlowExpiry(t *testing.T) {
	uc, _ := newTestUseCase(t)
	registerUser(t, uc)

	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.WithClock(func() time.Time { return current })
	uc.WithCodeSource(func() (string, error) { return "123456", nil })

	require.NoError(t, uc.RequestPasswordReset("alice@example.com"))

	valid, err := uc.VerifyResetCode("alice@example.com", "123456")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = uc.VerifyResetCode("alice@example.com", "654321")
	require.NoError(t, err)
	assert.False(t, valid)

	current = current.Add(16 * time.Minute)
	valid, err = uc.VerifyResetCode("alice@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, valid)

	err = uc.ResetPassword("alice@example.com", "123456", "newsecret")
	assert.ErrorIs(t, err, u.ErrExpiredResetCode)
}

func TestResetPasswordSingleUse(t *testing.T) {
	uc, _ := newTestUseCase(t)
	registerUser(t, uc)

	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.WithClock(func() time.Time { return current })
	uc.WithCodeSource(func() (string, error) { return "123456", nil })

	require.NoError(t, uc.RequestPasswordReset("alice@example.com"))
	require.NoError(t, uc.ResetPassword("alice@example.com", "123456", "newsecret"))

	_, err := uc.Login(auth.LoginRequest{Username: "alice", Password: "newsecret"})
	require.NoError(t, err)

	valid, err := uc.VerifyResetCode("alice@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, valid)

	err = uc.ResetPassword("alice@example.com", "123456", "anothersecret")
	assert.ErrorIs(t, err, u.ErrInvalidResetCode)
}

func TestResetPasswordWrongCode(t *testing.T) {
	uc, _ := newTestUseCase(t)
	registerUser(t, uc)

	uc.WithCodeSource(func() (string, error) { return "123456", nil })
	require.NoError(t, uc.RequestPasswordReset("alice@example.com"))

	err := uc.ResetPassword("alice@example.com", "000000", "newsecret")
	assert.ErrorIs(t, err, u.ErrInvalidResetCode)
}

func TestGenerateResetCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateResetCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}
