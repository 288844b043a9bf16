package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/auth/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/user"
	"github.com/menuqr-inc/menuqr/internal/shared/constants"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type CreateAdminCommand struct {
	Name     string
	Email    string
	Password string
}

// CreateAdminUseCase lets an existing admin create another admin account.
type CreateAdminUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateAdminUseCase(userRepo user.UserRepository, hasher PasswordHasher, log logger.Interface) *CreateAdminUseCase {
	return &CreateAdminUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   log,
	}
}

func (uc *CreateAdminUseCase) Execute(ctx context.Context, cmd CreateAdminCommand) (*dto.UserDTO, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewInternalError("failed to check email", err.Error())
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	admin, err := user.NewUser(cmd.Name, cmd.Email, hash, constants.RoleAdmin)
	if err != nil {
		return nil, errors.NewValidationError("invalid user", err.Error())
	}

	if err := uc.userRepo.Create(ctx, admin); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		return nil, errors.NewInternalError("failed to create admin", err.Error())
	}

	uc.logger.Infow("admin account created", "user_id", admin.ID(), "email", cmd.Email)

	result := dto.FromUser(admin)
	return &result, nil
}
