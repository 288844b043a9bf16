package usecases

import (
	"context"

	"github.com/menuqr-inc/menuqr/internal/application/auth/dto"
	"github.com/menuqr-inc/menuqr/internal/domain/restaurant"
	"github.com/menuqr-inc/menuqr/internal/domain/user"
	"github.com/menuqr-inc/menuqr/internal/shared/errors"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo       user.UserRepository
	restaurantRepo restaurant.RestaurantRepository
	hasher         PasswordHasher
	tokens         TokenIssuer
	logger         logger.Interface
}

func NewLoginUseCase(userRepo user.UserRepository, restaurantRepo restaurant.RestaurantRepository,
	hasher PasswordHasher, tokens TokenIssuer, log logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		hasher:         hasher,
		tokens:         tokens,
		logger:         log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewInternalError("failed to load user", err.Error())
	}
	// Same response for unknown email and wrong password.
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errors.NewInternalError("failed to issue token")
	}

	result := &dto.AuthResultDTO{
		Token: token,
		User:  dto.FromUser(u),
	}

	if !u.IsAdmin() {
		rest, err := uc.restaurantRepo.GetByUserID(ctx, u.ID())
		if err != nil {
			return nil, errors.NewInternalError("failed to load restaurant", err.Error())
		}
		if rest != nil {
			restDTO := dto.FromRestaurant(rest)
			result.Restaurant = &restDTO
		}
	}

	return result, nil
}
