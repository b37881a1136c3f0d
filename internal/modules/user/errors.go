package user

import "errors"

var (
	ErrInternal     = errors.New("internal server error")
	ErrUserNotFound = errors.New("user not found")

	ErrUsernameExists = errors.New("user with this username already exists")
	ErrEmailExists    = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers both unknown username and wrong password so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrInvalidResetCode = errors.New("invalid reset code")
	ErrExpiredResetCode = errors.New("reset code has expired")
)
