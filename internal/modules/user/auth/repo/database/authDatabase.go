package database

import (
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"taskmanager/internal/modules/user"
)

type AuthDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewAuthDatabase(db *gorm.DB, log *slog.Logger) *AuthDatabase {
	return &AuthDatabase{
		db:  db,
		log: log.With(slog.String("op", "authDb")),
	}
}

func (r *AuthDatabase) CreateUser(u *user.User) (*user.User, error) {
	if err := r.db.Create(u).Error; err != nil {
		r.log.Error("failed to create user", "error", err)
		// A concurrent registration can slip past the pre-insert checks; the
		// unique constraints report it here.
		if strings.Contains(err.Error(), "username") {
			return nil, user.ErrUsernameExists
		}
		if strings.Contains(err.Error(), "email") {
			return nil, user.ErrEmailExists
		}
		return nil, user.ErrInternal
	}
	return u, nil
}

func (r *AuthDatabase) GetUserByUsername(username string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.log.Error("failed to get user by username", "error", err)
		return nil, user.ErrInternal
	}
	return &u, nil
}

func (r *AuthDatabase) GetUserByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.log.Error("failed to get user by email", "error", err)
		return nil, user.ErrInternal
	}
	return &u, nil
}

func (r *AuthDatabase) UpdateUser(u *user.User) error {
	// Select lists nullable fields explicitly so clearing the reset code
	// actually writes NULL.
	err := r.db.Model(u).Select(
		"HashedPassword", "FirstName", "LastName", "LastLogin", "ResetCode", "ResetCodeExpiry",
	).Updates(u).Error
	if err != nil {
		r.log.Error("failed to update user", "error", err)
		return user.ErrInternal
	}
	return nil
}

func (r *AuthDatabase) UsernameExists(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&user.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		r.log.Error("failed to check username existence", "error", err)
		return false, user.ErrInternal
	}
	return count > 0, nil
}

func (r *AuthDatabase) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&user.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		r.log.Error("failed to check email existence", "error", err)
		return false, user.ErrInternal
	}
	return count > 0, nil
}
