package usecase

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	u "taskmanager/internal/modules/user"
	"taskmanager/internal/modules/user/auth"
)

const resetCodeTTL = 15 * time.Minute

// ResetCodeSender dispatches the reset code email.
type ResetCodeSender interface {
	SendResetCode(code string, email string) error
}

type AuthUseCase struct {
	log    *slog.Logger
	rp     auth.Repo
	sender ResetCodeSender

	// Injected for deterministic tests.
	now     func() time.Time
	genCode func() (string, error)
}

func NewAuthUseCase(log *slog.Logger, rp auth.Repo, sender ResetCodeSender) *AuthUseCase {
	return &AuthUseCase{
		log:     log,
		rp:      rp,
		sender:  sender,
		now:     time.Now,
		genCode: GenerateResetCode,
	}
}

// WithClock overrides the time source.
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// WithCodeSource overrides the reset code generator.
func (uc *AuthUseCase) WithCodeSource(genCode func() (string, error)) *AuthUseCase {
	uc.genCode = genCode
	return uc
}

func (uc *AuthUseCase) Register(req auth.RegisterRequest) (*auth.AuthResponse, error) {
	op := "AuthUseCase.Register"
	log := uc.log.With(slog.String("op", op), slog.String("username", req.Username))

	// The unique constraints catch concurrent registrations; these checks
	// exist for the clean error before the insert even runs.
	exists, err := uc.rp.UsernameExists(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, u.ErrUsernameExists
	}
	exists, err = uc.rp.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, u.ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, u.ErrInternal
	}

	newUser := &u.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: string(hashedPassword),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		CreatedAt:      uc.now(),
	}

	created, err := uc.rp.CreateUser(newUser)
	if err != nil {
		return nil, err
	}

	log.Info("user registered", slog.Uint64("userID", uint64(created.UserID)))
	return &auth.AuthResponse{
		Token: uuid.NewString(),
		User:  auth.ToUserResponse(created),
	}, nil
}

func (uc *AuthUseCase) Login(req auth.LoginRequest) (*auth.AuthResponse, error) {
	op := "AuthUseCase.Login"
	log := uc.log.With(slog.String("op", op), slog.String("username", req.Username))

	usr, err := uc.rp.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, u.ErrUserNotFound) {
			// Same error as a wrong password, by contract.
			return nil, u.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.HashedPassword), []byte(req.Password)); err != nil {
		return nil, u.ErrInvalidCredentials
	}

	loginTime := uc.now()
	usr.LastLogin = &loginTime
	if err := uc.rp.UpdateUser(usr); err != nil {
		log.Error("failed to update last login", "error", err)
		return nil, err
	}

	log.Info("user logged in", slog.Uint64("userID", uint64(usr.UserID)))
	return &auth.AuthResponse{
		Token: uuid.NewString(),
		User:  auth.ToUserResponse(usr),
	}, nil
}

// RequestPasswordReset never reports whether the email exists. For a known
// user it persists a fresh code with a 15 minute expiry and mails it
// asynchronously; a send failure is only logged since the code is already
// usable.
func (uc *AuthUseCase) RequestPasswordReset(email string) error {
	op := "AuthUseCase.RequestPasswordReset"
	log := uc.log.With(slog.String("op", op), slog.String("email", email))

	usr, err := uc.rp.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, u.ErrUserNotFound) {
			log.Info("reset requested for unknown email, responding success")
			return nil
		}
		return err
	}

	code, err := uc.genCode()
	if err != nil {
		log.Error("failed to generate reset code", "error", err)
		return u.ErrInternal
	}

	expiry := uc.now().Add(resetCodeTTL)
	usr.ResetCode = &code
	usr.ResetCodeExpiry = &expiry
	if err := uc.rp.UpdateUser(usr); err != nil {
		return err
	}

	go func(currentEmail, currentCode string) {
		if sendErr := uc.sender.SendResetCode(currentCode, currentEmail); sendErr != nil {
			uc.log.Error("async reset code email failed", slog.String("email", currentEmail), slog.String("error", sendErr.Error()))
		} else {
			uc.log.Info("reset code email sent", slog.String("email", currentEmail))
		}
	}(email, code)

	log.Info("reset code persisted")
	return nil
}

func (uc *AuthUseCase) VerifyResetCode(email, code string) (bool, error) {
	usr, err := uc.rp.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, u.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if usr.ResetCode == nil || *usr.ResetCode != code {
		return false, nil
	}
	if usr.ResetCodeExpiry == nil || !uc.now().Before(*usr.ResetCodeExpiry) {
		return false, nil
	}
	return true, nil
}

func (uc *AuthUseCase) ResetPassword(email, code, newPassword string) error {
	op := "AuthUseCase.ResetPassword"
	log := uc.log.With(slog.String("op", op), slog.String("email", email))

	usr, err := uc.rp.GetUserByEmail(email)
	if err != nil {
		return err
	}

	if usr.ResetCode == nil || *usr.ResetCode != code {
		return u.ErrInvalidResetCode
	}
	if usr.ResetCodeExpiry == nil || !uc.now().Before(*usr.ResetCodeExpiry) {
		return u.ErrExpiredResetCode
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash new password", "error", err)
		return u.ErrInternal
	}

	usr.HashedPassword = string(hashedPassword)
	usr.ResetCode = nil
	usr.ResetCodeExpiry = nil
	if err := uc.rp.UpdateUser(usr); err != nil {
		return err
	}

	log.Info("password reset completed", slog.Uint64("userID", uint64(usr.UserID)))
	return nil
}

// GenerateResetCode returns a 6-digit numeric code uniform in
// [100000, 999999].
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
