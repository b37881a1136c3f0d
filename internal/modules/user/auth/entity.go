package auth

import (
	"net/http"

	"taskmanager/internal/modules/user"
)

// UserResponse - DTO for the user payload returned by register/login.
type UserResponse struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// AuthResponse carries the opaque per-login token together with the user.
// The token is never validated on later requests.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type RegisterRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyCodeRequest struct {
	Email     string `json:"email" validate:"required,email"`
	ResetCode string `json:"resetCode" validate:"required,len=6,numeric"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	ResetCode   string `json:"resetCode" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type Controller interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	VerifyCode(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Login(req LoginRequest) (*AuthResponse, error)
	RequestPasswordReset(email string) error
	VerifyResetCode(email, code string) (bool, error)
	ResetPassword(email, code, newPassword string) error
}

type Repo interface {
	CreateUser(u *user.User) (*user.User, error)
	GetUserByUsername(username string) (*user.User, error)
	GetUserByEmail(email string) (*user.User, error)
	UpdateUser(u *user.User) error
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
}
