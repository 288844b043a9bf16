package usecases

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/menuqr-inc/menuqr/internal/domain/user"
	"github.com/menuqr-inc/menuqr/internal/shared/biztime"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

const resetTokenTTL = time.Hour

// ForgotPasswordUseCase issues a one-time reset token and emails the reset
// link. Only the token hash is stored. The response is identical whether or
// not the email exists.
type ForgotPasswordUseCase struct {
	userRepo user.UserRepository
	mailer   EmailSender
	clock    biztime.Clock
	baseURL  string
	logger   logger.Interface
}

func NewForgotPasswordUseCase(userRepo user.UserRepository, mailer EmailSender,
	clock biztime.Clock, baseURL string, log logger.Interface) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo: userRepo,
		mailer:   mailer,
		clock:    clock,
		baseURL:  baseURL,
		logger:   log,
	}
}

func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, email string) error {
	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return errors.NewInternalError("failed to load user", err.Error())
	}
	if u == nil {
		return nil
	}

	token, err := generateResetToken()
	if err != nil {
		return errors.NewInternalError("failed to generate reset token")
	}

	u.SetResetToken(hashResetToken(token), uc.clock.Now().Add(resetTokenTTL))
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return errors.NewInternalError("failed to save reset token", err.Error())
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.baseURL, token)
	if err := uc.mailer.SendPasswordReset(u.Email(), resetURL); err != nil {
		uc.logger.Errorw("failed to send reset email", "user_id", u.ID(), "error", err)
		return errors.NewInternalError("failed to send reset email")
	}

	uc.logger.Infow("password reset requested", "user_id", u.ID())
	return nil
}

type ResetPasswordCommand struct {
	Email       string
	Token       string
	NewPassword string
}

type ResetPasswordUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	clock    biztime.Clock
	logger   logger.Interface
}

func NewResetPasswordUseCase(userRepo user.UserRepository, hasher PasswordHasher,
	clock biztime.Clock, log logger.Interface) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		clock:    clock,
		logger:   log,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if len(cmd.NewPassword) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return errors.NewInternalError("failed to load user", err.Error())
	}
	if u == nil || !u.CanResetWith(hashResetToken(cmd.Token), uc.clock.Now()) {
		return errors.NewUnauthorizedError("invalid or expired reset token")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		return errors.NewInternalError("failed to hash password")
	}

	if err := u.ChangePassword(hash); err != nil {
		return errors.NewValidationError("invalid password", err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return errors.NewInternalError("failed to save password", err.Error())
	}

	uc.logger.Infow("password reset completed", "user_id", u.ID())
	return nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
