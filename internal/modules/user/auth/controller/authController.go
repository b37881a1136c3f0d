package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	u "taskmanager/internal/modules/user"
	"taskmanager/internal/modules/user/auth"
	resp "taskmanager/pkg/lib/response"
)

type AuthController struct {
	log      *slog.Logger
	useCase  auth.UseCase
	validate *validator.Validate
}

func NewAuthController(log *slog.Logger, useCase auth.UseCase) *AuthController {
	return &AuthController{
		log:      log,
		useCase:  useCase,
		validate: validator.New(),
	}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	op := "AuthController.Register"
	log := c.log.With(slog.String("op", op))

	var req auth.RegisterRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	authResponse, err := c.useCase.Register(req)
	if err != nil {
		log.Error("usecase Register failed", "error", err)
		switch {
		case errors.Is(err, u.ErrUsernameExists), errors.Is(err, u.ErrEmailExists):
			resp.SendError(w, r, http.StatusBadRequest, err.Error())
		default:
			resp.SendError(w, r, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	log.Info("user registered", slog.Uint64("userID", uint64(authResponse.User.ID)))
	resp.SendSuccess(w, r, http.StatusCreated, authResponse)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	op := "AuthController.Login"
	log := c.log.With(slog.String("op", op))

	var req auth.LoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	authResponse, err := c.useCase.Login(req)
	if err != nil {
		log.Warn("usecase Login failed", "error", err)
		if errors.Is(err, u.ErrInvalidCredentials) {
			resp.SendError(w, r, http.StatusUnauthorized, err.Error())
		} else {
			resp.SendError(w, r, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	log.Info("user logged in", slog.Uint64("userID", uint64(authResponse.User.ID)))
	resp.SendSuccess(w, r, http.StatusOK, authResponse)
}

// ForgotPassword always answers 200 with the same message so callers cannot
// probe which emails are registered.
func (c *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	op := "AuthController.ForgotPassword"
	log := c.log.With(slog.String("op", op))

	var req auth.ForgotPasswordRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	if err := c.useCase.RequestPasswordReset(req.Email); err != nil {
		log.Error("usecase RequestPasswordReset failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to process reset request")
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, map[string]string{
		"message": "If this email exists, a reset code has been sent",
	})
}

func (c *AuthController) VerifyCode(w http.ResponseWriter, r *http.Request) {
	op := "AuthController.VerifyCode"
	log := c.log.With(slog.String("op", op))

	var req auth.VerifyCodeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	valid, err := c.useCase.VerifyResetCode(req.Email, req.ResetCode)
	if err != nil {
		log.Error("usecase VerifyResetCode failed", "error", err)
		resp.SendError(w, r, http.StatusInternalServerError, "Failed to verify reset code")
		return
	}

	if !valid {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]interface{}{
			"valid": false,
			"error": "Invalid or expired code",
		})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"valid":   true,
		"message": "Code is valid",
	})
}

func (c *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	op := "AuthController.ResetPassword"
	log := c.log.With(slog.String("op", op))

	var req auth.ResetPasswordRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	if err := c.useCase.ResetPassword(req.Email, req.ResetCode, req.NewPassword); err != nil {
		log.Warn("usecase ResetPassword failed", "error", err)
		switch {
		case errors.Is(err, u.ErrUserNotFound),
			errors.Is(err, u.ErrInvalidResetCode),
			errors.Is(err, u.ErrExpiredResetCode):
			resp.SendError(w, r, http.StatusBadRequest, err.Error())
		default:
			resp.SendError(w, r, http.StatusInternalServerError, "Failed to reset password")
		}
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, map[string]string{
		"message": "Password reset successfully",
	})
}
